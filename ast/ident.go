package ast

type Identifier struct {
	NodeBase
	Name string
}
