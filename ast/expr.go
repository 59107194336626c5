package ast

import "github.com/t14raptor/go-esprima/token"

type (
	Expressions []Expression

	ThisExpression struct {
		NodeBase
	}

	// ArrayExpression holds its elements in source order. An elided
	// element ([a,,b]) is an Expression with kind ExprNone.
	ArrayExpression struct {
		NodeBase
		Elements Expressions
	}

	ObjectExpression struct {
		NodeBase
		Properties []*Property
	}

	SequenceExpression struct {
		NodeBase
		Expressions Expressions
	}

	// UnaryExpression covers + - ! ~ typeof void delete. Prefix is always true.
	UnaryExpression struct {
		NodeBase
		Operator token.Token
		Prefix   bool
		Argument Expression
	}

	BinaryExpression struct {
		NodeBase
		Operator token.Token
		Left     Expression
		Right    Expression
	}

	AssignmentExpression struct {
		NodeBase
		Operator token.Token
		Left     Expression
		Right    Expression
	}

	UpdateExpression struct {
		NodeBase
		Operator token.Token
		Argument Expression
		Prefix   bool
	}

	// LogicalExpression is a BinaryExpression whose operator is && or ||.
	LogicalExpression struct {
		NodeBase
		Operator token.Token
		Left     Expression
		Right    Expression
	}

	ConditionalExpression struct {
		NodeBase
		Test       Expression
		Consequent Expression
		Alternate  Expression
	}

	// NewExpression has no Arguments when written without parentheses.
	NewExpression struct {
		NodeBase
		Callee    Expression
		Arguments Expressions
	}

	CallExpression struct {
		NodeBase
		Callee    Expression
		Arguments Expressions
	}

	// MemberExpression is a.b (Computed false, Property is an Identifier)
	// or a[b] (Computed true, Property is any expression).
	MemberExpression struct {
		NodeBase
		Object   Expression
		Property Expression
		Computed bool
	}
)
