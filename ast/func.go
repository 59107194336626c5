package ast

type (
	// Function is the shape shared by FunctionDeclaration and
	// FunctionExpression. It is embedded by value and is not a node.
	Function struct {
		ID     *Identifier `optional:"true"`
		Params []*Identifier
		Body   *BlockStatement
	}

	// FunctionExpression may be anonymous (ID == nil).
	FunctionExpression struct {
		NodeBase
		Function
	}
)

func (f *Function) visitFunctionWith(v Visitor) {
	if f.ID != nil {
		f.ID.VisitWith(v)
	}
	for _, p := range f.Params {
		p.VisitWith(v)
	}
	f.Body.VisitWith(v)
}
