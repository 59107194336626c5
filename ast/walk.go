package ast

// Walk dispatches node to v. It is shorthand for node.VisitWith(v).
func Walk(v Visitor, node VisitableNode) {
	if node == nil {
		return
	}
	node.VisitWith(v)
}

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(n) for each node; if f returns true, Inspect visits the children of n
// and then calls f(nil).
func Inspect(node VisitableNode, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) visit(n VisitableNode) {
	if f(n) {
		n.VisitChildrenWith(f)
		f(nil)
	}
}

func (f inspector) VisitProgram(n *Program)                             { f.visit(n) }
func (f inspector) VisitIdentifier(n *Identifier)                       { f.visit(n) }
func (f inspector) VisitBlockStatement(n *BlockStatement)               { f.visit(n) }
func (f inspector) VisitEmptyStatement(n *EmptyStatement)               { f.visit(n) }
func (f inspector) VisitExpressionStatement(n *ExpressionStatement)     { f.visit(n) }
func (f inspector) VisitIfStatement(n *IfStatement)                     { f.visit(n) }
func (f inspector) VisitLabeledStatement(n *LabeledStatement)           { f.visit(n) }
func (f inspector) VisitBreakStatement(n *BreakStatement)               { f.visit(n) }
func (f inspector) VisitContinueStatement(n *ContinueStatement)         { f.visit(n) }
func (f inspector) VisitWithStatement(n *WithStatement)                 { f.visit(n) }
func (f inspector) VisitSwitchCase(n *SwitchCase)                       { f.visit(n) }
func (f inspector) VisitSwitchStatement(n *SwitchStatement)             { f.visit(n) }
func (f inspector) VisitReturnStatement(n *ReturnStatement)             { f.visit(n) }
func (f inspector) VisitThrowStatement(n *ThrowStatement)               { f.visit(n) }
func (f inspector) VisitCatchClause(n *CatchClause)                     { f.visit(n) }
func (f inspector) VisitTryStatement(n *TryStatement)                   { f.visit(n) }
func (f inspector) VisitWhileStatement(n *WhileStatement)               { f.visit(n) }
func (f inspector) VisitDoWhileStatement(n *DoWhileStatement)           { f.visit(n) }
func (f inspector) VisitForStatement(n *ForStatement)                   { f.visit(n) }
func (f inspector) VisitForInStatement(n *ForInStatement)               { f.visit(n) }
func (f inspector) VisitDebuggerStatement(n *DebuggerStatement)         { f.visit(n) }
func (f inspector) VisitFunctionDeclaration(n *FunctionDeclaration)     { f.visit(n) }
func (f inspector) VisitVariableDeclarator(n *VariableDeclarator)       { f.visit(n) }
func (f inspector) VisitVariableDeclaration(n *VariableDeclaration)     { f.visit(n) }
func (f inspector) VisitThisExpression(n *ThisExpression)               { f.visit(n) }
func (f inspector) VisitArrayExpression(n *ArrayExpression)             { f.visit(n) }
func (f inspector) VisitProperty(n *Property)                           { f.visit(n) }
func (f inspector) VisitObjectExpression(n *ObjectExpression)           { f.visit(n) }
func (f inspector) VisitFunctionExpression(n *FunctionExpression)       { f.visit(n) }
func (f inspector) VisitSequenceExpression(n *SequenceExpression)       { f.visit(n) }
func (f inspector) VisitUnaryExpression(n *UnaryExpression)             { f.visit(n) }
func (f inspector) VisitBinaryExpression(n *BinaryExpression)           { f.visit(n) }
func (f inspector) VisitAssignmentExpression(n *AssignmentExpression)   { f.visit(n) }
func (f inspector) VisitUpdateExpression(n *UpdateExpression)           { f.visit(n) }
func (f inspector) VisitLogicalExpression(n *LogicalExpression)         { f.visit(n) }
func (f inspector) VisitConditionalExpression(n *ConditionalExpression) { f.visit(n) }
func (f inspector) VisitNewExpression(n *NewExpression)                 { f.visit(n) }
func (f inspector) VisitCallExpression(n *CallExpression)               { f.visit(n) }
func (f inspector) VisitMemberExpression(n *MemberExpression)           { f.visit(n) }
func (f inspector) VisitNullLiteral(n *NullLiteral)                     { f.visit(n) }
func (f inspector) VisitRegExpLiteral(n *RegExpLiteral)                 { f.visit(n) }
func (f inspector) VisitStringLiteral(n *StringLiteral)                 { f.visit(n) }
func (f inspector) VisitNumericLiteral(n *NumericLiteral)               { f.visit(n) }
func (f inspector) VisitBooleanLiteral(n *BooleanLiteral)               { f.visit(n) }
