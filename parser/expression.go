package parser

import (
	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	start := p.token.Idx0
	if p.token.Kind != token.Identifier {
		p.errorUnexpectedToken(p.token)
	}
	name := p.token.Value
	p.next()
	return p.arena.Identifier(p.finish(start), name)
}

// parseIdentifierName accepts any IdentifierName, reserved words included.
func (p *parser) parseIdentifierName() *ast.Identifier {
	start := p.token.Idx0
	if !p.token.IsIdentifierName() {
		p.errorUnexpectedToken(p.token)
	}
	name := p.token.Value
	p.next()
	return p.arena.Identifier(p.finish(start), name)
}

func (p *parser) parsePrimaryExpression() ast.Expression {
	start := p.token.Idx0
	switch p.token.Kind {
	case token.This:
		p.next()
		return ast.NewThisExpr(p.arena.ThisExpression(p.finish(start)))
	case token.Identifier:
		return ast.NewIdentExpr(p.parseIdentifier())
	case token.Number:
		value, raw := p.token.Number, p.token.Literal
		p.next()
		return ast.NewNumLitExpr(p.arena.NumericLiteral(p.finish(start), value, raw))
	case token.String:
		value, raw := p.token.Value, p.token.Literal
		p.next()
		return ast.NewStrLitExpr(p.arena.StringLiteral(p.finish(start), value, raw))
	case token.Boolean:
		value := p.token.Value == "true"
		p.next()
		return ast.NewBoolLitExpr(p.arena.BooleanLiteral(p.finish(start), value))
	case token.Null:
		p.next()
		return ast.NewNullLitExpr(p.arena.NullLiteral(p.finish(start)))
	case token.Slash, token.QuotientAssign:
		return ast.NewRegExpLitExpr(p.parseRegExpLiteral())
	case token.LeftBracket:
		return ast.NewArrayExpr(p.parseArrayLiteral())
	case token.LeftBrace:
		return ast.NewObjectExpr(p.parseObjectLiteral())
	case token.LeftParenthesis:
		return p.parseGroupExpression()
	case token.Function:
		return ast.NewFuncExpr(p.parseFunctionExpression())
	}

	p.errorUnexpectedToken(p.token)
	return ast.Expression{}
}

// parseRegExpLiteral re-reads a / or /= token, which can only start a
// regular expression in operand position.
func (p *parser) parseRegExpLiteral() *ast.RegExpLiteral {
	start := p.token.Idx0
	p.rescanRegExp()
	pattern, flags := p.token.RegExp()
	raw := p.token.Literal
	p.next()
	return p.arena.RegExpLiteral(p.finish(start), pattern, flags, raw)
}

// parseGroupExpression parses ( Expression ). The parentheses do not form
// a node; their span is recorded on the inner expression.
func (p *parser) parseGroupExpression() ast.Expression {
	start := p.token.Idx0
	p.expect(token.LeftParenthesis)
	expr := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.group(expr, start)
	return expr
}

// parseArrayLiteral parses [ ... ]. Holes become ExprNone elements and a
// single trailing comma is dropped.
func (p *parser) parseArrayLiteral() *ast.ArrayExpression {
	start := p.token.Idx0
	p.expect(token.LeftBracket)
	mark := len(p.exprBuf)
	for p.token.Kind != token.RightBracket {
		if p.token.Kind == token.Comma {
			p.next()
			p.exprBuf = append(p.exprBuf, ast.Expression{})
			continue
		}
		elem := p.parseAssignmentExpression()
		p.exprBuf = append(p.exprBuf, elem)
		if p.token.Kind != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	elements := p.finishExprBuf(mark)
	p.expect(token.RightBracket)
	return p.arena.ArrayExpression(p.finish(start), elements)
}

func (p *parser) parseObjectLiteral() *ast.ObjectExpression {
	start := p.token.Idx0
	p.expect(token.LeftBrace)
	mark := len(p.propBuf)
	for p.token.Kind != token.RightBrace {
		prop := p.parseObjectProperty()
		p.propBuf = append(p.propBuf, prop)
		if p.token.Kind != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	properties := p.finishPropBuf(mark)
	p.expect(token.RightBrace)
	return p.arena.ObjectExpression(p.finish(start), properties)
}

// parseObjectPropertyKey parses an IdentifierName, string or number key.
func (p *parser) parseObjectPropertyKey() ast.Expression {
	start := p.token.Idx0
	switch p.token.Kind {
	case token.String:
		value, raw := p.token.Value, p.token.Literal
		p.next()
		return ast.NewStrLitExpr(p.arena.StringLiteral(p.finish(start), value, raw))
	case token.Number:
		value, raw := p.token.Number, p.token.Literal
		p.next()
		return ast.NewNumLitExpr(p.arena.NumericLiteral(p.finish(start), value, raw))
	}
	return ast.NewIdentExpr(p.parseIdentifierName())
}

// parseObjectProperty parses key: value, get key() {...} or
// set key(v) {...}. A get or set followed by a colon is an ordinary key.
func (p *parser) parseObjectProperty() *ast.Property {
	start := p.token.Idx0
	var key ast.Expression
	if p.token.Kind == token.Identifier && (p.token.Value == "get" || p.token.Value == "set") {
		tok := p.token
		p.next()
		if p.token.Kind != token.Colon {
			kind := ast.PropertyKindGet
			if tok.Value == "set" {
				kind = ast.PropertyKindSet
			}
			key = p.parseObjectPropertyKey()
			value := p.parseAccessor(kind)
			return p.arena.Property(p.finish(start), key, ast.NewFuncExpr(value), kind)
		}
		key = ast.NewIdentExpr(p.arena.Identifier(p.tokenBase(tok), tok.Value))
	} else {
		key = p.parseObjectPropertyKey()
	}
	p.expect(token.Colon)
	value := p.parseAssignmentExpression()
	return p.arena.Property(p.finish(start), key, value, ast.PropertyKindInit)
}

// parseAccessor parses the parameter list and body of a getter (no
// parameters) or setter (exactly one).
func (p *parser) parseAccessor(kind ast.PropertyKind) *ast.FunctionExpression {
	start := p.token.Idx0
	p.expect(token.LeftParenthesis)
	var params []*ast.Identifier
	if kind == ast.PropertyKindSet {
		params = p.arena.CopyIdentifiers([]*ast.Identifier{p.parseIdentifier()})
	}
	p.expect(token.RightParenthesis)
	body := p.parseFunctionBody()
	return p.arena.FunctionExpression(p.finish(start), nil, params, body)
}

func (p *parser) parseFunctionExpression() *ast.FunctionExpression {
	start := p.token.Idx0
	p.expect(token.Function)
	var id *ast.Identifier
	if p.token.Kind != token.LeftParenthesis {
		id = p.parseIdentifier()
	}
	params := p.parseFormalParameters()
	body := p.parseFunctionBody()
	return p.arena.FunctionExpression(p.finish(start), id, params, body)
}

func (p *parser) parseArguments() ast.Expressions {
	p.expect(token.LeftParenthesis)
	mark := len(p.exprBuf)
	for p.token.Kind != token.RightParenthesis {
		arg := p.parseAssignmentExpression()
		p.exprBuf = append(p.exprBuf, arg)
		if p.token.Kind != token.RightParenthesis {
			p.expect(token.Comma)
			if p.token.Kind == token.RightParenthesis {
				p.errorUnexpectedToken(p.token)
			}
		}
	}
	args := p.finishExprBuf(mark)
	p.expect(token.RightParenthesis)
	return args
}

func (p *parser) parseDotMember(start ast.Idx, left ast.Expression) ast.Expression {
	p.expect(token.Period)
	property := p.parseIdentifierName()
	return ast.NewMemberExpr(p.arena.MemberExpression(p.finish(start), left, ast.NewIdentExpr(property), false))
}

func (p *parser) parseBracketMember(start ast.Idx, left ast.Expression) ast.Expression {
	p.expect(token.LeftBracket)
	property := p.parseExpression()
	p.expect(token.RightBracket)
	return ast.NewMemberExpr(p.arena.MemberExpression(p.finish(start), left, property, true))
}

// parseNewExpression parses new callee, new callee(args). The callee
// cannot contain a call; the first argument list belongs to the new.
func (p *parser) parseNewExpression() ast.Expression {
	start := p.token.Idx0
	p.expect(token.New)
	callee := p.parseLeftHandSideExpression()
	var args ast.Expressions
	if p.token.Kind == token.LeftParenthesis {
		args = p.parseArguments()
	}
	return ast.NewNewExpr(p.arena.NewExpression(p.finish(start), callee, args))
}

// parseLeftHandSideExpression parses a member chain without calls.
func (p *parser) parseLeftHandSideExpression() ast.Expression {
	start := p.token.Idx0
	var left ast.Expression
	if p.token.Kind == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		switch p.token.Kind {
		case token.Period:
			left = p.parseDotMember(start, left)
		case token.LeftBracket:
			left = p.parseBracketMember(start, left)
		default:
			return left
		}
	}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() ast.Expression {
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	defer func() {
		p.scope.allowIn = allowIn
	}()

	start := p.token.Idx0
	var left ast.Expression
	if p.token.Kind == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		switch p.token.Kind {
		case token.Period:
			left = p.parseDotMember(start, left)
		case token.LeftBracket:
			left = p.parseBracketMember(start, left)
		case token.LeftParenthesis:
			args := p.parseArguments()
			left = ast.NewCallExpr(p.arena.CallExpression(p.finish(start), left, args))
		default:
			return left
		}
	}
}

// parsePostfixExpression parses a++ and a--. The operator must be on the
// same line as its operand.
func (p *parser) parsePostfixExpression() ast.Expression {
	start := p.token.Idx0
	operand := p.parseLeftHandSideExpressionAllowCall()
	switch p.token.Kind {
	case token.Increment, token.Decrement:
		if p.token.OnNewLine {
			break
		}
		op := p.token.Kind
		if !isLeftHandSide(operand) {
			p.errorAt(p.token.Idx0, errInvalidLHSAssignment)
		}
		p.next()
		return ast.NewUpdateExpr(p.arena.UpdateExpression(p.finish(start), op, operand, false))
	}
	return operand
}

func (p *parser) parseUnaryExpression() ast.Expression {
	p.enter()
	defer p.leave()

	start := p.token.Idx0
	switch p.token.Kind {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Delete, token.Void, token.Typeof:
		op := p.token.Kind
		p.next()
		operand := p.parseUnaryExpression()
		return ast.NewUnaryExpr(p.arena.UnaryExpression(p.finish(start), op, operand))
	case token.Increment, token.Decrement:
		op := p.token.Kind
		p.next()
		operand := p.parseUnaryExpression()
		if !isLeftHandSide(operand) {
			p.errorAt(operand.Idx0(), errInvalidLHSAssignment)
		}
		return ast.NewUpdateExpr(p.arena.UpdateExpression(p.finish(start), op, operand, true))
	}

	return p.parsePostfixExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) ast.Expression {
	start := p.token.Idx0
	left := p.parseUnaryExpression()
	return p.parseBinaryExpressionRest(start, left, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(start ast.Idx, left ast.Expression, minPrecedence Precedence) ast.Expression {
	for {
		op := p.token.Kind
		lbp := kindToPrecedence(op, p.scope.allowIn)
		if lbp <= minPrecedence {
			return left
		}
		p.next()
		right := p.parseBinaryExpressionOrHigher(lbp ^ 1)
		if op.IsLogical() {
			left = ast.NewLogicalExpr(p.arena.LogicalExpression(p.finish(start), op, left, right))
		} else {
			left = ast.NewBinaryExpr(p.arena.BinaryExpression(p.finish(start), op, left, right))
		}
	}
}

func (p *parser) parseConditionalExpression() ast.Expression {
	start := p.token.Idx0
	test := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if p.token.Kind != token.QuestionMark {
		return test
	}
	p.next()

	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn

	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return ast.NewConditionalExpr(p.arena.ConditionalExpression(p.finish(start), test, consequent, alternate))
}

func (p *parser) parseAssignmentExpression() ast.Expression {
	start := p.token.Idx0
	left := p.parseConditionalExpression()
	if !p.token.Kind.IsAssign() {
		return left
	}
	if !isLeftHandSide(left) {
		p.errorAt(p.token.Idx0, errInvalidLHSAssignment)
	}
	op := p.token.Kind
	p.next()
	right := p.parseAssignmentExpression()
	return ast.NewAssignExpr(p.arena.AssignmentExpression(p.finish(start), op, left, right))
}

func (p *parser) parseExpression() ast.Expression {
	start := p.token.Idx0
	left := p.parseAssignmentExpression()
	if p.token.Kind != token.Comma {
		return left
	}

	mark := len(p.exprBuf)
	p.exprBuf = append(p.exprBuf, left)
	for p.token.Kind == token.Comma {
		p.next()
		expr := p.parseAssignmentExpression()
		p.exprBuf = append(p.exprBuf, expr)
	}
	return ast.NewSequenceExpr(p.arena.SequenceExpression(p.finish(start), p.finishExprBuf(mark)))
}

// isLeftHandSide reports whether expr may be assigned to.
func isLeftHandSide(expr ast.Expression) bool {
	switch expr.Kind() {
	case ast.ExprIdent, ast.ExprMember:
		return true
	}
	return false
}
