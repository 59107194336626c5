package ast

import "github.com/t14raptor/go-esprima/token"

// miniArena is a typed bump allocator that hands out pointers into
// pre-allocated chunks of T. When a chunk fills up, a new chunk is
// allocated at 1.5x the previous size. Chunks are never reallocated, so
// pointers handed out stay valid until release.
type miniArena[T any] struct {
	chunks [][]T
	cur    []T
	index  int
	count  int
}

func newArena[T any](startLen int) miniArena[T] {
	cur := make([]T, startLen)
	return miniArena[T]{chunks: [][]T{cur}, cur: cur}
}

func (a *miniArena[T]) make() *T {
	if a.index == len(a.cur) {
		a.grow(1)
	}
	n := &a.cur[a.index]
	a.index++
	a.count++
	return n
}

// makeSlice allocates n contiguous elements from the arena. The capacity of
// the returned slice is n, so appending to it never writes into arena memory
// owned by another slice.
func (a *miniArena[T]) makeSlice(n int) []T {
	if n == 0 {
		return nil
	}
	if a.index+n > len(a.cur) {
		a.grow(n)
	}
	s := a.cur[a.index : a.index+n : a.index+n]
	a.index += n
	a.count += n
	return s
}

//go:noinline
func (a *miniArena[T]) grow(minElems int) {
	newLen := len(a.cur) + len(a.cur)>>1 // 1.5x growth, integer math
	if newLen < minElems {
		newLen = minElems
	}
	if newLen < 8 {
		newLen = 8
	}
	a.cur = make([]T, newLen)
	a.chunks = append(a.chunks, a.cur)
	a.index = 0
}

// release zeroes every chunk and forgets them.
func (a *miniArena[T]) release() {
	var zero T
	for _, c := range a.chunks {
		for i := range c {
			c[i] = zero
		}
	}
	*a = miniArena[T]{}
}

// Arena owns every node produced by a parse. Nodes are allocated from
// per-kind stores and live as long as the Arena does. An Arena is not safe
// for concurrent use; give each concurrent parse its own.
type Arena struct {
	program miniArena[Program]

	ident     miniArena[Identifier]
	thisExpr  miniArena[ThisExpression]
	arrExpr   miniArena[ArrayExpression]
	objExpr   miniArena[ObjectExpression]
	prop      miniArena[Property]
	funcExpr  miniArena[FunctionExpression]
	seqExpr   miniArena[SequenceExpression]
	unaryExpr miniArena[UnaryExpression]
	binExpr   miniArena[BinaryExpression]
	assignExp miniArena[AssignmentExpression]
	updateExp miniArena[UpdateExpression]
	logicExpr miniArena[LogicalExpression]
	condExpr  miniArena[ConditionalExpression]
	newExpr   miniArena[NewExpression]
	callExpr  miniArena[CallExpression]
	memberExp miniArena[MemberExpression]

	nullLit   miniArena[NullLiteral]
	regexpLit miniArena[RegExpLiteral]
	strLit    miniArena[StringLiteral]
	numLit    miniArena[NumericLiteral]
	boolLit   miniArena[BooleanLiteral]

	blockStmt miniArena[BlockStatement]
	emptyStmt miniArena[EmptyStatement]
	exprStmt  miniArena[ExpressionStatement]
	ifStmt    miniArena[IfStatement]
	labelStmt miniArena[LabeledStatement]
	breakStmt miniArena[BreakStatement]
	contStmt  miniArena[ContinueStatement]
	withStmt  miniArena[WithStatement]
	caseStmt  miniArena[SwitchCase]
	switchStm miniArena[SwitchStatement]
	retStmt   miniArena[ReturnStatement]
	throwStmt miniArena[ThrowStatement]
	catchCl   miniArena[CatchClause]
	tryStmt   miniArena[TryStatement]
	whileStmt miniArena[WhileStatement]
	doWhile   miniArena[DoWhileStatement]
	forStmt   miniArena[ForStatement]
	forInStmt miniArena[ForInStatement]
	debugStmt miniArena[DebuggerStatement]
	funcDecl  miniArena[FunctionDeclaration]
	varDecl   miniArena[VariableDeclaration]
	varDeclr  miniArena[VariableDeclarator]

	loc miniArena[SourceLocation]
	rng miniArena[Range]

	// Slice backing arenas, separate from the per-element arenas.
	exprSlice  miniArena[Expression]
	stmtSlice  miniArena[Statement]
	identSlice miniArena[*Identifier]
	propSlice  miniArena[*Property]
	caseSlice  miniArena[*SwitchCase]
	declSlice  miniArena[*VariableDeclarator]
}

func NewArena() *Arena {
	return &Arena{
		program: newArena[Program](1),

		// Identifiers are the most frequent node.
		ident:     newArena[Identifier](1024),
		thisExpr:  newArena[ThisExpression](32),
		arrExpr:   newArena[ArrayExpression](64),
		objExpr:   newArena[ObjectExpression](64),
		prop:      newArena[Property](128),
		funcExpr:  newArena[FunctionExpression](64),
		seqExpr:   newArena[SequenceExpression](32),
		unaryExpr: newArena[UnaryExpression](64),
		binExpr:   newArena[BinaryExpression](256),
		assignExp: newArena[AssignmentExpression](64),
		updateExp: newArena[UpdateExpression](64),
		logicExpr: newArena[LogicalExpression](64),
		condExpr:  newArena[ConditionalExpression](64),
		newExpr:   newArena[NewExpression](32),
		callExpr:  newArena[CallExpression](256),
		memberExp: newArena[MemberExpression](256),

		nullLit:   newArena[NullLiteral](32),
		regexpLit: newArena[RegExpLiteral](32),
		strLit:    newArena[StringLiteral](256),
		numLit:    newArena[NumericLiteral](256),
		boolLit:   newArena[BooleanLiteral](64),

		blockStmt: newArena[BlockStatement](128),
		emptyStmt: newArena[EmptyStatement](16),
		exprStmt:  newArena[ExpressionStatement](256),
		ifStmt:    newArena[IfStatement](64),
		labelStmt: newArena[LabeledStatement](16),
		breakStmt: newArena[BreakStatement](16),
		contStmt:  newArena[ContinueStatement](16),
		withStmt:  newArena[WithStatement](8),
		caseStmt:  newArena[SwitchCase](32),
		switchStm: newArena[SwitchStatement](16),
		retStmt:   newArena[ReturnStatement](64),
		throwStmt: newArena[ThrowStatement](32),
		catchCl:   newArena[CatchClause](16),
		tryStmt:   newArena[TryStatement](16),
		whileStmt: newArena[WhileStatement](32),
		doWhile:   newArena[DoWhileStatement](16),
		forStmt:   newArena[ForStatement](32),
		forInStmt: newArena[ForInStatement](16),
		debugStmt: newArena[DebuggerStatement](8),
		funcDecl:  newArena[FunctionDeclaration](32),
		varDecl:   newArena[VariableDeclaration](64),
		varDeclr:  newArena[VariableDeclarator](128),

		loc: newArena[SourceLocation](1024),
		rng: newArena[Range](64),

		exprSlice:  newArena[Expression](1024),
		stmtSlice:  newArena[Statement](1024),
		identSlice: newArena[*Identifier](64),
		propSlice:  newArena[*Property](128),
		caseSlice:  newArena[*SwitchCase](32),
		declSlice:  newArena[*VariableDeclarator](128),
	}
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return a.program.count +
		a.ident.count + a.thisExpr.count + a.arrExpr.count + a.objExpr.count +
		a.prop.count + a.funcExpr.count + a.seqExpr.count + a.unaryExpr.count +
		a.binExpr.count + a.assignExp.count + a.updateExp.count + a.logicExpr.count +
		a.condExpr.count + a.newExpr.count + a.callExpr.count + a.memberExp.count +
		a.nullLit.count + a.regexpLit.count + a.strLit.count + a.numLit.count +
		a.boolLit.count +
		a.blockStmt.count + a.emptyStmt.count + a.exprStmt.count + a.ifStmt.count +
		a.labelStmt.count + a.breakStmt.count + a.contStmt.count + a.withStmt.count +
		a.caseStmt.count + a.switchStm.count + a.retStmt.count + a.throwStmt.count +
		a.catchCl.count + a.tryStmt.count + a.whileStmt.count + a.doWhile.count +
		a.forStmt.count + a.forInStmt.count + a.debugStmt.count + a.funcDecl.count +
		a.varDecl.count + a.varDeclr.count
}

// Release tears down every store at once. Nodes previously handed out are
// zeroed and must not be used afterwards. The Arena itself may be reused.
func (a *Arena) Release() {
	a.program.release()
	a.ident.release()
	a.thisExpr.release()
	a.arrExpr.release()
	a.objExpr.release()
	a.prop.release()
	a.funcExpr.release()
	a.seqExpr.release()
	a.unaryExpr.release()
	a.binExpr.release()
	a.assignExp.release()
	a.updateExp.release()
	a.logicExpr.release()
	a.condExpr.release()
	a.newExpr.release()
	a.callExpr.release()
	a.memberExp.release()
	a.nullLit.release()
	a.regexpLit.release()
	a.strLit.release()
	a.numLit.release()
	a.boolLit.release()
	a.blockStmt.release()
	a.emptyStmt.release()
	a.exprStmt.release()
	a.ifStmt.release()
	a.labelStmt.release()
	a.breakStmt.release()
	a.contStmt.release()
	a.withStmt.release()
	a.caseStmt.release()
	a.switchStm.release()
	a.retStmt.release()
	a.throwStmt.release()
	a.catchCl.release()
	a.tryStmt.release()
	a.whileStmt.release()
	a.doWhile.release()
	a.forStmt.release()
	a.forInStmt.release()
	a.debugStmt.release()
	a.funcDecl.release()
	a.varDecl.release()
	a.varDeclr.release()
	a.loc.release()
	a.rng.release()
	a.exprSlice.release()
	a.stmtSlice.release()
	a.identSlice.release()
	a.propSlice.release()
	a.caseSlice.release()
	a.declSlice.release()
}

// ---------------------------------------------------------------------------
// Positions and child lists
// ---------------------------------------------------------------------------

func (a *Arena) Location(start, end Position) *SourceLocation {
	n := a.loc.make()
	*n = SourceLocation{Start: start, End: end}
	return n
}

func (a *Arena) Range(r Range) *Range {
	n := a.rng.make()
	*n = r
	return n
}

// CopyExpressions allocates a contiguous []Expression from the arena and copies
// src into it.
func (a *Arena) CopyExpressions(src []Expression) Expressions {
	if len(src) == 0 {
		return nil
	}
	dst := a.exprSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

// CopyStatements allocates a contiguous []Statement from the arena and copies
// src into it.
func (a *Arena) CopyStatements(src []Statement) Statements {
	if len(src) == 0 {
		return nil
	}
	dst := a.stmtSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

func (a *Arena) CopyIdentifiers(src []*Identifier) []*Identifier {
	if len(src) == 0 {
		return nil
	}
	dst := a.identSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

func (a *Arena) CopyProperties(src []*Property) []*Property {
	if len(src) == 0 {
		return nil
	}
	dst := a.propSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

func (a *Arena) CopySwitchCases(src []*SwitchCase) []*SwitchCase {
	if len(src) == 0 {
		return nil
	}
	dst := a.caseSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

func (a *Arena) CopyDeclarators(src []*VariableDeclarator) []*VariableDeclarator {
	if len(src) == 0 {
		return nil
	}
	dst := a.declSlice.makeSlice(len(src))
	copy(dst, src)
	return dst
}

// ---------------------------------------------------------------------------
// Program / identifier / literals
// ---------------------------------------------------------------------------

func (a *Arena) Program(base NodeBase, body Statements) *Program {
	n := a.program.make()
	*n = Program{NodeBase: base, Body: body}
	return n
}

func (a *Arena) Identifier(base NodeBase, name string) *Identifier {
	n := a.ident.make()
	*n = Identifier{NodeBase: base, Name: name}
	return n
}

func (a *Arena) NullLiteral(base NodeBase) *NullLiteral {
	n := a.nullLit.make()
	*n = NullLiteral{NodeBase: base}
	return n
}

func (a *Arena) BooleanLiteral(base NodeBase, value bool) *BooleanLiteral {
	n := a.boolLit.make()
	*n = BooleanLiteral{NodeBase: base, Value: value}
	return n
}

func (a *Arena) NumericLiteral(base NodeBase, value float64, raw string) *NumericLiteral {
	n := a.numLit.make()
	*n = NumericLiteral{NodeBase: base, Value: value, Raw: raw}
	return n
}

func (a *Arena) StringLiteral(base NodeBase, value, raw string) *StringLiteral {
	n := a.strLit.make()
	*n = StringLiteral{NodeBase: base, Value: value, Raw: raw}
	return n
}

func (a *Arena) RegExpLiteral(base NodeBase, pattern, flags, raw string) *RegExpLiteral {
	n := a.regexpLit.make()
	*n = RegExpLiteral{NodeBase: base, Pattern: pattern, Flags: flags, Raw: raw}
	return n
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (a *Arena) ThisExpression(base NodeBase) *ThisExpression {
	n := a.thisExpr.make()
	*n = ThisExpression{NodeBase: base}
	return n
}

func (a *Arena) ArrayExpression(base NodeBase, elements Expressions) *ArrayExpression {
	n := a.arrExpr.make()
	*n = ArrayExpression{NodeBase: base, Elements: elements}
	return n
}

func (a *Arena) ObjectExpression(base NodeBase, properties []*Property) *ObjectExpression {
	n := a.objExpr.make()
	*n = ObjectExpression{NodeBase: base, Properties: properties}
	return n
}

func (a *Arena) Property(base NodeBase, key, value Expression, kind PropertyKind) *Property {
	n := a.prop.make()
	*n = Property{NodeBase: base, Key: key, Value: value, Kind: kind}
	return n
}

func (a *Arena) FunctionExpression(base NodeBase, id *Identifier, params []*Identifier, body *BlockStatement) *FunctionExpression {
	n := a.funcExpr.make()
	*n = FunctionExpression{NodeBase: base, Function: Function{ID: id, Params: params, Body: body}}
	return n
}

func (a *Arena) SequenceExpression(base NodeBase, expressions Expressions) *SequenceExpression {
	n := a.seqExpr.make()
	*n = SequenceExpression{NodeBase: base, Expressions: expressions}
	return n
}

func (a *Arena) UnaryExpression(base NodeBase, op token.Token, argument Expression) *UnaryExpression {
	n := a.unaryExpr.make()
	*n = UnaryExpression{NodeBase: base, Operator: op, Prefix: true, Argument: argument}
	return n
}

func (a *Arena) BinaryExpression(base NodeBase, op token.Token, left, right Expression) *BinaryExpression {
	n := a.binExpr.make()
	*n = BinaryExpression{NodeBase: base, Operator: op, Left: left, Right: right}
	return n
}

func (a *Arena) AssignmentExpression(base NodeBase, op token.Token, left, right Expression) *AssignmentExpression {
	n := a.assignExp.make()
	*n = AssignmentExpression{NodeBase: base, Operator: op, Left: left, Right: right}
	return n
}

func (a *Arena) UpdateExpression(base NodeBase, op token.Token, argument Expression, prefix bool) *UpdateExpression {
	n := a.updateExp.make()
	*n = UpdateExpression{NodeBase: base, Operator: op, Argument: argument, Prefix: prefix}
	return n
}

func (a *Arena) LogicalExpression(base NodeBase, op token.Token, left, right Expression) *LogicalExpression {
	n := a.logicExpr.make()
	*n = LogicalExpression{NodeBase: base, Operator: op, Left: left, Right: right}
	return n
}

func (a *Arena) ConditionalExpression(base NodeBase, test, consequent, alternate Expression) *ConditionalExpression {
	n := a.condExpr.make()
	*n = ConditionalExpression{NodeBase: base, Test: test, Consequent: consequent, Alternate: alternate}
	return n
}

func (a *Arena) NewExpression(base NodeBase, callee Expression, args Expressions) *NewExpression {
	n := a.newExpr.make()
	*n = NewExpression{NodeBase: base, Callee: callee, Arguments: args}
	return n
}

func (a *Arena) CallExpression(base NodeBase, callee Expression, args Expressions) *CallExpression {
	n := a.callExpr.make()
	*n = CallExpression{NodeBase: base, Callee: callee, Arguments: args}
	return n
}

func (a *Arena) MemberExpression(base NodeBase, object, property Expression, computed bool) *MemberExpression {
	n := a.memberExp.make()
	*n = MemberExpression{NodeBase: base, Object: object, Property: property, Computed: computed}
	return n
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (a *Arena) BlockStatement(base NodeBase, body Statements) *BlockStatement {
	n := a.blockStmt.make()
	*n = BlockStatement{NodeBase: base, Body: body}
	return n
}

func (a *Arena) EmptyStatement(base NodeBase) *EmptyStatement {
	n := a.emptyStmt.make()
	*n = EmptyStatement{NodeBase: base}
	return n
}

func (a *Arena) ExpressionStatement(base NodeBase, expr Expression, directive string) *ExpressionStatement {
	n := a.exprStmt.make()
	*n = ExpressionStatement{NodeBase: base, Expression: expr, Directive: directive}
	return n
}

func (a *Arena) IfStatement(base NodeBase, test Expression, consequent, alternate Statement) *IfStatement {
	n := a.ifStmt.make()
	*n = IfStatement{NodeBase: base, Test: test, Consequent: consequent, Alternate: alternate}
	return n
}

func (a *Arena) LabeledStatement(base NodeBase, label *Identifier, body Statement) *LabeledStatement {
	n := a.labelStmt.make()
	*n = LabeledStatement{NodeBase: base, Label: label, Body: body}
	return n
}

func (a *Arena) BreakStatement(base NodeBase, label *Identifier) *BreakStatement {
	n := a.breakStmt.make()
	*n = BreakStatement{NodeBase: base, Label: label}
	return n
}

func (a *Arena) ContinueStatement(base NodeBase, label *Identifier) *ContinueStatement {
	n := a.contStmt.make()
	*n = ContinueStatement{NodeBase: base, Label: label}
	return n
}

func (a *Arena) WithStatement(base NodeBase, object Expression, body Statement) *WithStatement {
	n := a.withStmt.make()
	*n = WithStatement{NodeBase: base, Object: object, Body: body}
	return n
}

func (a *Arena) SwitchCase(base NodeBase, test Expression, consequent Statements) *SwitchCase {
	n := a.caseStmt.make()
	*n = SwitchCase{NodeBase: base, Test: test, Consequent: consequent}
	return n
}

func (a *Arena) SwitchStatement(base NodeBase, discriminant Expression, cases []*SwitchCase) *SwitchStatement {
	n := a.switchStm.make()
	*n = SwitchStatement{NodeBase: base, Discriminant: discriminant, Cases: cases}
	return n
}

func (a *Arena) ReturnStatement(base NodeBase, argument Expression) *ReturnStatement {
	n := a.retStmt.make()
	*n = ReturnStatement{NodeBase: base, Argument: argument}
	return n
}

func (a *Arena) ThrowStatement(base NodeBase, argument Expression) *ThrowStatement {
	n := a.throwStmt.make()
	*n = ThrowStatement{NodeBase: base, Argument: argument}
	return n
}

func (a *Arena) CatchClause(base NodeBase, param *Identifier, body *BlockStatement) *CatchClause {
	n := a.catchCl.make()
	*n = CatchClause{NodeBase: base, Param: param, Body: body}
	return n
}

func (a *Arena) TryStatement(base NodeBase, block *BlockStatement, handler *CatchClause, finalizer *BlockStatement) *TryStatement {
	n := a.tryStmt.make()
	*n = TryStatement{NodeBase: base, Block: block, Handler: handler, Finalizer: finalizer}
	return n
}

func (a *Arena) WhileStatement(base NodeBase, test Expression, body Statement) *WhileStatement {
	n := a.whileStmt.make()
	*n = WhileStatement{NodeBase: base, Test: test, Body: body}
	return n
}

func (a *Arena) DoWhileStatement(base NodeBase, body Statement, test Expression) *DoWhileStatement {
	n := a.doWhile.make()
	*n = DoWhileStatement{NodeBase: base, Body: body, Test: test}
	return n
}

func (a *Arena) ForStatement(base NodeBase, init ForHead, test, update Expression, body Statement) *ForStatement {
	n := a.forStmt.make()
	*n = ForStatement{NodeBase: base, Init: init, Test: test, Update: update, Body: body}
	return n
}

func (a *Arena) ForInStatement(base NodeBase, left ForHead, right Expression, body Statement) *ForInStatement {
	n := a.forInStmt.make()
	*n = ForInStatement{NodeBase: base, Left: left, Right: right, Body: body}
	return n
}

func (a *Arena) DebuggerStatement(base NodeBase) *DebuggerStatement {
	n := a.debugStmt.make()
	*n = DebuggerStatement{NodeBase: base}
	return n
}

func (a *Arena) FunctionDeclaration(base NodeBase, id *Identifier, params []*Identifier, body *BlockStatement) *FunctionDeclaration {
	n := a.funcDecl.make()
	*n = FunctionDeclaration{NodeBase: base, Function: Function{ID: id, Params: params, Body: body}}
	return n
}

func (a *Arena) VariableDeclaration(base NodeBase, declarations []*VariableDeclarator, kind token.Token) *VariableDeclaration {
	n := a.varDecl.make()
	*n = VariableDeclaration{NodeBase: base, Declarations: declarations, Kind: kind}
	return n
}

func (a *Arena) VariableDeclarator(base NodeBase, id *Identifier, init Expression) *VariableDeclarator {
	n := a.varDeclr.make()
	*n = VariableDeclarator{NodeBase: base, ID: id, Init: init}
	return n
}
