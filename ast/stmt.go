package ast

type (
	Statements []Statement

	BlockStatement struct {
		NodeBase
		Body Statements
	}

	EmptyStatement struct {
		NodeBase
	}

	// ExpressionStatement. Directive holds the raw text of a directive
	// prologue entry ("use strict") and is empty otherwise.
	ExpressionStatement struct {
		NodeBase
		Expression Expression
		Directive  string
	}

	IfStatement struct {
		NodeBase
		Test       Expression
		Consequent Statement
		Alternate  Statement `optional:"true"`
	}

	LabeledStatement struct {
		NodeBase
		Label *Identifier
		Body  Statement
	}

	BreakStatement struct {
		NodeBase
		Label *Identifier `optional:"true"`
	}

	ContinueStatement struct {
		NodeBase
		Label *Identifier `optional:"true"`
	}

	WithStatement struct {
		NodeBase
		Object Expression
		Body   Statement
	}

	// SwitchCase is a default clause when Test is ExprNone.
	SwitchCase struct {
		NodeBase
		Test       Expression `optional:"true"`
		Consequent Statements
	}

	SwitchStatement struct {
		NodeBase
		Discriminant Expression
		Cases        []*SwitchCase
	}

	ReturnStatement struct {
		NodeBase
		Argument Expression `optional:"true"`
	}

	ThrowStatement struct {
		NodeBase
		Argument Expression
	}

	CatchClause struct {
		NodeBase
		Param *Identifier
		Body  *BlockStatement
	}

	TryStatement struct {
		NodeBase
		Block     *BlockStatement
		Handler   *CatchClause    `optional:"true"`
		Finalizer *BlockStatement `optional:"true"`
	}

	WhileStatement struct {
		NodeBase
		Test Expression
		Body Statement
	}

	DoWhileStatement struct {
		NodeBase
		Body Statement
		Test Expression
	}

	ForStatement struct {
		NodeBase
		Init   ForHead    `optional:"true"`
		Test   Expression `optional:"true"`
		Update Expression `optional:"true"`
		Body   Statement
	}

	ForInStatement struct {
		NodeBase
		Left  ForHead
		Right Expression
		Body  Statement
	}

	DebuggerStatement struct {
		NodeBase
	}

	// ForHead is the init of a ForStatement or the left side of a
	// ForInStatement. At most one of the fields is set.
	ForHead struct {
		Declaration *VariableDeclaration
		Expression  Expression
	}
)

// IsNone reports whether the head is empty (for (;;)).
func (h ForHead) IsNone() bool {
	return h.Declaration == nil && h.Expression.IsNone()
}

// Unwrap returns the declaration or expression held by the head, or nil.
func (h ForHead) Unwrap() VisitableNode {
	if h.Declaration != nil {
		return h.Declaration
	}
	return h.Expression.Unwrap()
}

func (h ForHead) VisitWith(v Visitor) {
	if h.Declaration != nil {
		h.Declaration.VisitWith(v)
		return
	}
	h.Expression.VisitWith(v)
}
