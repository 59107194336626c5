package ast

// Visitor has one method per concrete node kind. VisitX is called by
// (*X).VisitWith; an implementation descends by calling VisitChildrenWith.
type Visitor interface {
	VisitProgram(n *Program)
	VisitIdentifier(n *Identifier)
	VisitBlockStatement(n *BlockStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitIfStatement(n *IfStatement)
	VisitLabeledStatement(n *LabeledStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitWithStatement(n *WithStatement)
	VisitSwitchCase(n *SwitchCase)
	VisitSwitchStatement(n *SwitchStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitCatchClause(n *CatchClause)
	VisitTryStatement(n *TryStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitDoWhileStatement(n *DoWhileStatement)
	VisitForStatement(n *ForStatement)
	VisitForInStatement(n *ForInStatement)
	VisitDebuggerStatement(n *DebuggerStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitThisExpression(n *ThisExpression)
	VisitArrayExpression(n *ArrayExpression)
	VisitProperty(n *Property)
	VisitObjectExpression(n *ObjectExpression)
	VisitFunctionExpression(n *FunctionExpression)
	VisitSequenceExpression(n *SequenceExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitAssignmentExpression(n *AssignmentExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitLogicalExpression(n *LogicalExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitNewExpression(n *NewExpression)
	VisitCallExpression(n *CallExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitNullLiteral(n *NullLiteral)
	VisitRegExpLiteral(n *RegExpLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitNumericLiteral(n *NumericLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
}

// NoopVisitor implements every Visitor method by visiting the node's
// children. Embed it and override the methods of interest; V must point to
// the embedding visitor so that children are dispatched to the overrides.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) visitor() Visitor {
	if nv.V != nil {
		return nv.V
	}
	return nv
}

func (nv *NoopVisitor) VisitProgram(n *Program) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitIdentifier(n *Identifier) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitLabeledStatement(n *LabeledStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitWithStatement(n *WithStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitSwitchCase(n *SwitchCase) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitCatchClause(n *CatchClause) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitTryStatement(n *TryStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitForStatement(n *ForStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitDebuggerStatement(n *DebuggerStatement) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitArrayExpression(n *ArrayExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitProperty(n *Property) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitObjectExpression(n *ObjectExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitFunctionExpression(n *FunctionExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitAssignmentExpression(n *AssignmentExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitLogicalExpression(n *LogicalExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitRegExpLiteral(n *RegExpLiteral) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitNumericLiteral(n *NumericLiteral) {
	n.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) {
	n.VisitChildrenWith(nv.visitor())
}

func (s Statements) VisitWith(v Visitor) {
	for _, st := range s {
		st.VisitWith(v)
	}
}

// VisitWith visits every element in order. Elisions are skipped.
func (e Expressions) VisitWith(v Visitor) {
	for _, ex := range e {
		ex.VisitWith(v)
	}
}

func (n *Program) VisitWith(v Visitor) {
	v.VisitProgram(n)
}

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Identifier) VisitWith(v Visitor) {
	v.VisitIdentifier(n)
}

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) {
	v.VisitBlockStatement(n)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor) {
	v.VisitEmptyStatement(n)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) {
	v.VisitExpressionStatement(n)
}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) {
	v.VisitIfStatement(n)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *LabeledStatement) VisitWith(v Visitor) {
	v.VisitLabeledStatement(n)
}

func (n *LabeledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *BreakStatement) VisitWith(v Visitor) {
	v.VisitBreakStatement(n)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *ContinueStatement) VisitWith(v Visitor) {
	v.VisitContinueStatement(n)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *WithStatement) VisitWith(v Visitor) {
	v.VisitWithStatement(n)
}

func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *SwitchCase) VisitWith(v Visitor) {
	v.VisitSwitchCase(n)
}

func (n *SwitchCase) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
}

func (n *SwitchStatement) VisitWith(v Visitor) {
	v.VisitSwitchStatement(n)
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for _, c := range n.Cases {
		c.VisitWith(v)
	}
}

func (n *ReturnStatement) VisitWith(v Visitor) {
	v.VisitReturnStatement(n)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *ThrowStatement) VisitWith(v Visitor) {
	v.VisitThrowStatement(n)
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *CatchClause) VisitWith(v Visitor) {
	v.VisitCatchClause(n)
}

func (n *CatchClause) VisitChildrenWith(v Visitor) {
	n.Param.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *TryStatement) VisitWith(v Visitor) {
	v.VisitTryStatement(n)
}

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
	if n.Handler != nil {
		n.Handler.VisitWith(v)
	}
	if n.Finalizer != nil {
		n.Finalizer.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) {
	v.VisitWhileStatement(n)
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *DoWhileStatement) VisitWith(v Visitor) {
	v.VisitDoWhileStatement(n)
}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) {
	v.VisitForStatement(n)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	n.Init.VisitWith(v)
	n.Test.VisitWith(v)
	n.Update.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) {
	v.VisitForInStatement(n)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *DebuggerStatement) VisitWith(v Visitor) {
	v.VisitDebuggerStatement(n)
}

func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *FunctionDeclaration) VisitWith(v Visitor) {
	v.VisitFunctionDeclaration(n)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.visitFunctionWith(v)
}

func (n *VariableDeclarator) VisitWith(v Visitor) {
	v.VisitVariableDeclarator(n)
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.ID.VisitWith(v)
	n.Init.VisitWith(v)
}

func (n *VariableDeclaration) VisitWith(v Visitor) {
	v.VisitVariableDeclaration(n)
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for _, d := range n.Declarations {
		d.VisitWith(v)
	}
}

func (n *ThisExpression) VisitWith(v Visitor) {
	v.VisitThisExpression(n)
}

func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *ArrayExpression) VisitWith(v Visitor) {
	v.VisitArrayExpression(n)
}

func (n *ArrayExpression) VisitChildrenWith(v Visitor) {
	n.Elements.VisitWith(v)
}

func (n *Property) VisitWith(v Visitor) {
	v.VisitProperty(n)
}

func (n *Property) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *ObjectExpression) VisitWith(v Visitor) {
	v.VisitObjectExpression(n)
}

func (n *ObjectExpression) VisitChildrenWith(v Visitor) {
	for _, p := range n.Properties {
		p.VisitWith(v)
	}
}

func (n *FunctionExpression) VisitWith(v Visitor) {
	v.VisitFunctionExpression(n)
}

func (n *FunctionExpression) VisitChildrenWith(v Visitor) {
	n.visitFunctionWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) {
	v.VisitSequenceExpression(n)
}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Expressions.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) {
	v.VisitUnaryExpression(n)
}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) {
	v.VisitBinaryExpression(n)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *AssignmentExpression) VisitWith(v Visitor) {
	v.VisitAssignmentExpression(n)
}

func (n *AssignmentExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) {
	v.VisitUpdateExpression(n)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *LogicalExpression) VisitWith(v Visitor) {
	v.VisitLogicalExpression(n)
}

func (n *LogicalExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) {
	v.VisitConditionalExpression(n)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) {
	v.VisitNewExpression(n)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.Arguments.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) {
	v.VisitCallExpression(n)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.Arguments.VisitWith(v)
}

func (n *MemberExpression) VisitWith(v Visitor) {
	v.VisitMemberExpression(n)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *NullLiteral) VisitWith(v Visitor) {
	v.VisitNullLiteral(n)
}

func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *RegExpLiteral) VisitWith(v Visitor) {
	v.VisitRegExpLiteral(n)
}

func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor) {
	v.VisitStringLiteral(n)
}

func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumericLiteral) VisitWith(v Visitor) {
	v.VisitNumericLiteral(n)
}

func (n *NumericLiteral) VisitChildrenWith(v Visitor) {}

func (n *BooleanLiteral) VisitWith(v Visitor) {
	v.VisitBooleanLiteral(n)
}

func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}
