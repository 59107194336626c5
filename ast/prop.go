package ast

type PropertyKind string

const (
	PropertyKindInit PropertyKind = "init"
	PropertyKindGet  PropertyKind = "get"
	PropertyKindSet  PropertyKind = "set"
)

// Property is a member of an ObjectExpression. Key is an Identifier,
// StringLiteral or NumericLiteral. For get and set properties Value is a
// FunctionExpression.
type Property struct {
	NodeBase
	Key   Expression
	Value Expression
	Kind  PropertyKind
}
