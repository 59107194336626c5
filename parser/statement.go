package parser

import (
	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

// parseSourceElements parses statements up to end. Leading string
// statements form the directive prologue.
func (p *parser) parseSourceElements(end token.Token) ast.Statements {
	mark := len(p.stmtBuf)
	prologue := true
	for p.token.Kind != end && p.token.Kind != token.Eof {
		if prologue {
			if p.token.Kind != token.String {
				prologue = false
			} else {
				tok := p.token
				stmt := p.parseStatement()
				if directive, ok := p.directive(stmt, tok.Idx0, tok.Idx1); ok {
					stmt.MustExpression().Directive = directive
				} else {
					prologue = false
				}
				p.stmtBuf = append(p.stmtBuf, stmt)
				continue
			}
		}
		stmt := p.parseStatement()
		p.stmtBuf = append(p.stmtBuf, stmt)
	}
	return p.finishStmtBuf(mark)
}

// directive returns the raw text between the quotes when stmt consists of
// nothing but the string literal spanning [start, end).
func (p *parser) directive(stmt ast.Statement, start, end ast.Idx) (string, bool) {
	es, ok := stmt.Expression()
	if !ok {
		return "", false
	}
	lit, ok := es.Expression.StrLit()
	if !ok || lit.Parenthesized() || lit.Idx0() != start || lit.Idx1() != end {
		return "", false
	}
	return lit.Raw[1 : len(lit.Raw)-1], true
}

func (p *parser) parseStatement() ast.Statement {
	p.enter()
	defer p.leave()

	chain := p.scope.labelChain
	p.scope.labelChain = 0

	switch p.token.Kind {
	case token.Semicolon:
		return ast.NewEmptyStmt(p.parseEmptyStatement())
	case token.LeftBrace:
		return ast.NewBlockStmt(p.parseBlockStatement())
	case token.Var, token.Const:
		return ast.NewVarDeclStmt(p.parseVariableStatement())
	case token.If:
		return ast.NewIfStmt(p.parseIfStatement())
	case token.Do:
		p.scope.markIterationLabels(chain)
		return ast.NewDoWhileStmt(p.parseDoWhileStatement())
	case token.While:
		p.scope.markIterationLabels(chain)
		return ast.NewWhileStmt(p.parseWhileStatement())
	case token.For:
		p.scope.markIterationLabels(chain)
		return p.parseForOrForInStatement()
	case token.Break:
		return ast.NewBreakStmt(p.parseBreakStatement())
	case token.Continue:
		return ast.NewContinueStmt(p.parseContinueStatement())
	case token.Return:
		return ast.NewReturnStmt(p.parseReturnStatement())
	case token.Throw:
		return ast.NewThrowStmt(p.parseThrowStatement())
	case token.With:
		return ast.NewWithStmt(p.parseWithStatement())
	case token.Switch:
		return ast.NewSwitchStmt(p.parseSwitchStatement())
	case token.Try:
		return ast.NewTryStmt(p.parseTryStatement())
	case token.Debugger:
		return ast.NewDebuggerStmt(p.parseDebuggerStatement())
	case token.Function:
		return ast.NewFuncDeclStmt(p.parseFunctionDeclaration())
	case token.Identifier:
		if p.peek().Kind == token.Colon {
			return ast.NewLabeledStmt(p.parseLabeledStatement(chain))
		}
	case token.Eof:
		p.errorUnexpectedToken(p.token)
	}

	return ast.NewExpressionStmt(p.parseExpressionStatement())
}

func (p *parser) parseEmptyStatement() *ast.EmptyStatement {
	start := p.token.Idx0
	p.next()
	return p.arena.EmptyStatement(p.finish(start))
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	start := p.token.Idx0
	p.expect(token.LeftBrace)
	body := p.parseStatementList()
	p.expect(token.RightBrace)
	return p.arena.BlockStatement(p.finish(start), body)
}

func (p *parser) parseStatementList() ast.Statements {
	mark := len(p.stmtBuf)
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
		stmt := p.parseStatement()
		p.stmtBuf = append(p.stmtBuf, stmt)
	}
	return p.finishStmtBuf(mark)
}

func (p *parser) parseExpressionStatement() *ast.ExpressionStatement {
	start := p.token.Idx0
	expr := p.parseExpression()
	p.consumeSemicolon()
	return p.arena.ExpressionStatement(p.finish(start), expr, "")
}

func (p *parser) parseVariableStatement() *ast.VariableDeclaration {
	start := p.token.Idx0
	kind := p.token.Kind
	p.next()
	list := p.parseVariableDeclarationList(kind)
	p.consumeSemicolon()
	return p.arena.VariableDeclaration(p.finish(start), list, kind)
}

func (p *parser) parseVariableDeclarationList(kind token.Token) []*ast.VariableDeclarator {
	mark := len(p.declBuf)
	for {
		decl := p.parseVariableDeclarator(kind)
		p.declBuf = append(p.declBuf, decl)
		if p.token.Kind != token.Comma {
			break
		}
		p.next()
	}
	return p.finishDeclBuf(mark)
}

// parseVariableDeclarator parses one binding. A const binding must be
// initialized.
func (p *parser) parseVariableDeclarator(kind token.Token) *ast.VariableDeclarator {
	start := p.token.Idx0
	id := p.parseIdentifier()
	var init ast.Expression
	if kind == token.Const {
		p.expect(token.Assign)
		init = p.parseAssignmentExpression()
	} else if p.token.Kind == token.Assign {
		p.next()
		init = p.parseAssignmentExpression()
	}
	return p.arena.VariableDeclarator(p.finish(start), id, init)
}

func (p *parser) parseIfStatement() *ast.IfStatement {
	start := p.token.Idx0
	p.expect(token.If)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	consequent := p.parseStatement()
	var alternate ast.Statement
	if p.token.Kind == token.Else {
		p.next()
		alternate = p.parseStatement()
	}
	return p.arena.IfStatement(p.finish(start), test, consequent, alternate)
}

// parseIterationBody parses a loop body with break and continue allowed.
func (p *parser) parseIterationBody() ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	body := p.parseStatement()
	p.scope.inIteration = inIteration
	return body
}

// parseDoWhileStatement parses do ... while (...). The trailing semicolon
// is optional.
func (p *parser) parseDoWhileStatement() *ast.DoWhileStatement {
	start := p.token.Idx0
	p.expect(token.Do)
	body := p.parseIterationBody()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	if p.token.Kind == token.Semicolon {
		p.next()
	}
	return p.arena.DoWhileStatement(p.finish(start), body, test)
}

func (p *parser) parseWhileStatement() *ast.WhileStatement {
	start := p.token.Idx0
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseIterationBody()
	return p.arena.WhileStatement(p.finish(start), test, body)
}

// parseForOrForInStatement parses both loop forms. The head is parsed once
// with the in operator disabled; a following in commits to for-in.
func (p *parser) parseForOrForInStatement() ast.Statement {
	start := p.token.Idx0
	p.expect(token.For)
	p.expect(token.LeftParenthesis)

	var init ast.ForHead
	if p.token.Kind != token.Semicolon {
		allowIn := p.scope.allowIn
		p.scope.allowIn = false
		if p.token.Kind == token.Var || p.token.Kind == token.Const {
			declStart := p.token.Idx0
			kind := p.token.Kind
			p.next()
			list := p.parseVariableDeclarationList(kind)
			init.Declaration = p.arena.VariableDeclaration(p.finish(declStart), list, kind)
			p.scope.allowIn = allowIn
			if p.token.Kind == token.In && len(list) == 1 {
				return ast.NewForInStmt(p.parseForIn(start, init))
			}
		} else {
			expr := p.parseExpression()
			p.scope.allowIn = allowIn
			if p.token.Kind == token.In {
				if !isLeftHandSide(expr) {
					p.errorAt(expr.Idx0(), errInvalidLHSForIn)
				}
				init.Expression = expr
				return ast.NewForInStmt(p.parseForIn(start, init))
			}
			init.Expression = expr
		}
	}
	return ast.NewForStmt(p.parseFor(start, init))
}

func (p *parser) parseForIn(start ast.Idx, left ast.ForHead) *ast.ForInStatement {
	p.expect(token.In)
	right := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseIterationBody()
	return p.arena.ForInStatement(p.finish(start), left, right, body)
}

func (p *parser) parseFor(start ast.Idx, init ast.ForHead) *ast.ForStatement {
	var test, update ast.Expression
	p.expect(token.Semicolon)
	if p.token.Kind != token.Semicolon {
		test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.token.Kind != token.RightParenthesis {
		update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	body := p.parseIterationBody()
	return p.arena.ForStatement(p.finish(start), init, test, update, body)
}

// parseJumpLabel parses the optional label of break and continue. A label
// must be on the same line as the keyword.
func (p *parser) parseJumpLabel() (*ast.Identifier, label) {
	if p.token.Kind != token.Identifier || p.token.OnNewLine {
		return nil, label{}
	}
	offset := p.token.Idx0
	id := p.parseIdentifier()
	l, ok := p.scope.lookupLabel(id.Name)
	if !ok {
		p.errorAt(offset, errUnknownLabel, id.Name)
	}
	return id, l
}

func (p *parser) parseBreakStatement() *ast.BreakStatement {
	start := p.token.Idx0
	p.expect(token.Break)
	id, _ := p.parseJumpLabel()
	if id == nil && !p.scope.inIteration && !p.scope.inSwitch {
		p.errorAt(start, errIllegalBreak)
	}
	p.consumeSemicolon()
	return p.arena.BreakStatement(p.finish(start), id)
}

func (p *parser) parseContinueStatement() *ast.ContinueStatement {
	start := p.token.Idx0
	p.expect(token.Continue)
	id, l := p.parseJumpLabel()
	if !p.scope.inIteration || (id != nil && !l.iteration) {
		p.errorAt(start, errIllegalContinue)
	}
	p.consumeSemicolon()
	return p.arena.ContinueStatement(p.finish(start), id)
}

func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.token.Idx0
	if p.opts.functionOnlyReturn && !p.scope.inFunction {
		p.errorAt(start, errIllegalReturn)
	}
	p.expect(token.Return)
	var argument ast.Expression
	switch {
	case p.token.OnNewLine:
	case p.token.Kind == token.Semicolon, p.token.Kind == token.RightBrace, p.token.Kind == token.Eof:
	default:
		argument = p.parseExpression()
	}
	p.consumeSemicolon()
	return p.arena.ReturnStatement(p.finish(start), argument)
}

func (p *parser) parseThrowStatement() *ast.ThrowStatement {
	start := p.token.Idx0
	p.expect(token.Throw)
	if p.token.OnNewLine {
		p.errorAt(p.lastEnd, errNewlineAfterThrow)
	}
	argument := p.parseExpression()
	p.consumeSemicolon()
	return p.arena.ThrowStatement(p.finish(start), argument)
}

func (p *parser) parseWithStatement() *ast.WithStatement {
	start := p.token.Idx0
	p.expect(token.With)
	p.expect(token.LeftParenthesis)
	object := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return p.arena.WithStatement(p.finish(start), object, body)
}

func (p *parser) parseSwitchStatement() *ast.SwitchStatement {
	start := p.token.Idx0
	p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	discriminant := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true

	mark := len(p.caseBuf)
	seenDefault := false
	for p.token.Kind != token.RightBrace {
		clause := p.parseCaseClause(&seenDefault)
		p.caseBuf = append(p.caseBuf, clause)
	}
	cases := p.finishCaseBuf(mark)
	p.expect(token.RightBrace)

	p.scope.inSwitch = inSwitch
	return p.arena.SwitchStatement(p.finish(start), discriminant, cases)
}

func (p *parser) parseCaseClause(seenDefault *bool) *ast.SwitchCase {
	start := p.token.Idx0
	var test ast.Expression
	if p.token.Kind == token.Default {
		if *seenDefault {
			p.errorAt(start, errMultipleDefaults)
		}
		*seenDefault = true
		p.next()
	} else {
		p.expect(token.Case)
		test = p.parseExpression()
	}
	p.expect(token.Colon)

	mark := len(p.stmtBuf)
	for {
		switch p.token.Kind {
		case token.Case, token.Default, token.RightBrace, token.Eof:
			return p.arena.SwitchCase(p.finish(start), test, p.finishStmtBuf(mark))
		}
		stmt := p.parseStatement()
		p.stmtBuf = append(p.stmtBuf, stmt)
	}
}

func (p *parser) parseTryStatement() *ast.TryStatement {
	start := p.token.Idx0
	p.expect(token.Try)
	block := p.parseBlockStatement()

	var handler *ast.CatchClause
	if p.token.Kind == token.Catch {
		catchStart := p.token.Idx0
		p.next()
		p.expect(token.LeftParenthesis)
		param := p.parseIdentifier()
		p.expect(token.RightParenthesis)
		body := p.parseBlockStatement()
		handler = p.arena.CatchClause(p.finish(catchStart), param, body)
	}

	var finalizer *ast.BlockStatement
	if p.token.Kind == token.Finally {
		p.next()
		finalizer = p.parseBlockStatement()
	}

	if handler == nil && finalizer == nil {
		p.errorAt(p.token.Idx0, errNoCatchOrFinally)
	}
	return p.arena.TryStatement(p.finish(start), block, handler, finalizer)
}

func (p *parser) parseDebuggerStatement() *ast.DebuggerStatement {
	start := p.token.Idx0
	p.expect(token.Debugger)
	p.consumeSemicolon()
	return p.arena.DebuggerStatement(p.finish(start))
}

// parseLabeledStatement parses label: body. chain is the number of labels
// directly enclosing this one.
func (p *parser) parseLabeledStatement(chain int) *ast.LabeledStatement {
	start := p.token.Idx0
	id := p.parseIdentifier()
	if p.scope.hasLabel(id.Name) {
		p.errorAt(start, errLabelRedeclaration, id.Name)
	}
	p.expect(token.Colon)

	p.scope.labels = append(p.scope.labels, label{name: id.Name})
	p.scope.labelChain = chain + 1
	body := p.parseStatement()
	p.scope.labels = p.scope.labels[:len(p.scope.labels)-1]

	return p.arena.LabeledStatement(p.finish(start), id, body)
}

func (p *parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	start := p.token.Idx0
	p.expect(token.Function)
	id := p.parseIdentifier()
	params := p.parseFormalParameters()
	body := p.parseFunctionBody()
	return p.arena.FunctionDeclaration(p.finish(start), id, params, body)
}

func (p *parser) parseFormalParameters() []*ast.Identifier {
	p.expect(token.LeftParenthesis)
	mark := len(p.identBuf)
	for p.token.Kind != token.RightParenthesis {
		id := p.parseIdentifier()
		p.identBuf = append(p.identBuf, id)
		if p.token.Kind != token.RightParenthesis {
			p.expect(token.Comma)
			if p.token.Kind == token.RightParenthesis {
				p.errorUnexpectedToken(p.token)
			}
		}
	}
	params := p.finishIdentBuf(mark)
	p.expect(token.RightParenthesis)
	return params
}

// parseFunctionBody parses { ... } in a fresh function scope.
func (p *parser) parseFunctionBody() *ast.BlockStatement {
	p.openScope(true)
	defer p.closeScope()

	start := p.token.Idx0
	p.expect(token.LeftBrace)
	body := p.parseSourceElements(token.RightBrace)
	p.expect(token.RightBrace)
	return p.arena.BlockStatement(p.finish(start), body)
}
