package ast

import "github.com/t14raptor/go-esprima/token"

type (
	FunctionDeclaration struct {
		NodeBase
		Function
	}

	// VariableDeclaration. Kind is token.Var or token.Const.
	VariableDeclaration struct {
		NodeBase
		Declarations []*VariableDeclarator
		Kind         token.Token
	}

	VariableDeclarator struct {
		NodeBase
		ID   *Identifier
		Init Expression `optional:"true"`
	}
)
