// Package generator prints a syntax tree back to JavaScript source.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

// Generate returns JavaScript source for node. Parsing the output yields a
// tree of the same shape: parentheses are emitted wherever operator
// precedence requires them and every statement ends with a semicolon.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

// Expression precedence levels, lowest first. Binary operators occupy
// precBinary+1 through precBinary+11.
const (
	precSequence    = 0
	precAssign      = 1
	precConditional = 2
	precBinary      = 3
	precUnary       = 15
	precPostfix     = 16
	precCall        = 17
	precPrimary     = 18
)

func precedence(e ast.Expression, noIn bool) int {
	switch e.Kind() {
	case ast.ExprSequence:
		return precSequence
	case ast.ExprAssign:
		return precAssign
	case ast.ExprConditional:
		return precConditional
	case ast.ExprLogical:
		return precBinary + e.MustLogical().Operator.Precedence(true)
	case ast.ExprBinary:
		op := e.MustBinary().Operator
		if noIn && op == token.In {
			return -1
		}
		return precBinary + op.Precedence(true)
	case ast.ExprUnary:
		return precUnary
	case ast.ExprUpdate:
		if e.MustUpdate().Prefix {
			return precUnary
		}
		return precPostfix
	case ast.ExprCall, ast.ExprMember, ast.ExprNew:
		return precCall
	}
	return precPrimary
}

// expr generates e, parenthesized when it binds looser than prec.
func (s *state) expr(e ast.Expression, prec int) {
	n := e.Unwrap()
	if n == nil {
		return
	}
	if precedence(e, s.noIn) < prec {
		s.paren(n)
		return
	}
	gen(s.wrap(n))
}

func (s *state) paren(n ast.Node) {
	inner := s.wrap(n)
	inner.noIn = false
	s.out.WriteString("(")
	gen(inner)
	s.out.WriteString(")")
}

func (s *state) stmt(st ast.Statement) {
	if n := st.Unwrap(); n != nil {
		gen(s.wrap(n))
	}
}

func (s *state) list(exprs ast.Expressions) {
	for i, e := range exprs {
		s.expr(e, precAssign)
		if i < len(exprs)-1 {
			s.out.WriteString(", ")
		}
	}
}

func (s *state) statements(list ast.Statements) {
	s.indent++
	for _, st := range list {
		s.lineAndPad()
		s.stmt(st)
	}
	s.indent--
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		if n != nil {
			for _, b := range n.Body {
				s.stmt(b)
				s.line()
			}
		}

	// Expressions

	case *ast.Identifier:
		if n != nil {
			s.out.WriteString(n.Name)
		}
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.NumericLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ast.StringLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(quote(n.Value))
		}
	case *ast.RegExpLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString("/" + n.Pattern + "/" + n.Flags)
		}
	case *ast.ArrayExpression:
		s.out.WriteString("[")
		for i, ex := range n.Elements {
			s.expr(ex, precAssign)
			if i < len(n.Elements)-1 {
				s.out.WriteString(", ")
			} else if ex.IsNone() {
				s.out.WriteString(",")
			}
		}
		s.out.WriteString("]")
	case *ast.ObjectExpression:
		s.out.WriteString("{")

		s.indent++
		for i, p := range n.Properties {
			s.lineAndPad()
			gen(s.wrap(p))
			if i < len(n.Properties)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--

		if len(n.Properties) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.Property:
		if n.Kind != ast.PropertyKindInit {
			if fn, ok := n.Value.Func(); ok {
				s.out.WriteString(string(n.Kind) + " ")
				s.expr(n.Key, precPrimary)
				genFunction(s, nil, fn.Params, fn.Body)
				return
			}
		}
		s.expr(n.Key, precPrimary)
		s.out.WriteString(": ")
		s.expr(n.Value, precAssign)
	case *ast.FunctionExpression:
		s.out.WriteString("function")
		if n.ID != nil {
			s.out.WriteString(" ")
		}
		genFunction(s, n.ID, n.Params, n.Body)
	case *ast.SequenceExpression:
		for i, e := range n.Expressions {
			s.expr(e, precAssign)
			if i < len(n.Expressions)-1 {
				s.out.WriteString(", ")
			}
		}
	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())
		if token.IsKeyword(n.Operator) || signClash(n.Operator, n.Argument) {
			s.out.WriteString(" ")
		}
		s.expr(n.Argument, precUnary)
	case *ast.UpdateExpression:
		if n.Prefix {
			s.out.WriteString(n.Operator.String())
			s.expr(n.Argument, precUnary)
		} else {
			s.expr(n.Argument, precPostfix)
			s.out.WriteString(n.Operator.String())
		}
	case *ast.BinaryExpression:
		prec := precBinary + n.Operator.Precedence(true)
		s.expr(n.Left, prec)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, prec+1)
	case *ast.LogicalExpression:
		prec := precBinary + n.Operator.Precedence(true)
		s.expr(n.Left, prec)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, prec+1)
	case *ast.AssignmentExpression:
		s.expr(n.Left, precCall)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, precAssign)
	case *ast.ConditionalExpression:
		s.expr(n.Test, precConditional+1)
		s.out.WriteString(" ? ")
		s.expr(n.Consequent, precAssign)
		s.out.WriteString(" : ")
		s.expr(n.Alternate, precAssign)
	case *ast.NewExpression:
		s.out.WriteString("new ")
		if hasCall(n.Callee) {
			s.paren(n.Callee.Unwrap())
		} else {
			s.expr(n.Callee, precCall)
		}
		s.out.WriteString("(")
		s.list(n.Arguments)
		s.out.WriteString(")")
	case *ast.CallExpression:
		s.expr(n.Callee, precCall)
		s.out.WriteString("(")
		s.list(n.Arguments)
		s.out.WriteString(")")
	case *ast.MemberExpression:
		if n.Object.IsNumLit() && !n.Computed {
			s.paren(n.Object.Unwrap())
		} else {
			s.expr(n.Object, precCall)
		}
		if n.Computed {
			s.out.WriteString("[")
			s.expr(n.Property, precSequence)
			s.out.WriteString("]")
		} else {
			s.out.WriteString(".")
			s.expr(n.Property, precPrimary)
		}

	// Statements

	case *ast.BlockStatement:
		s.out.WriteString("{")
		s.statements(n.Body)
		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		text := s.capture(n.Expression.Unwrap())
		if n.Directive == "" && needsStatementParens(n.Expression, text) {
			text = "(" + text + ")"
		}
		s.out.WriteString(text)
		s.out.WriteString(";")
	case *ast.IfStatement:
		s.out.WriteString("if (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		if inner, ok := n.Consequent.If(); ok && inner.Alternate.IsNone() && !n.Alternate.IsNone() {
			s.out.WriteString("{")
			s.statements(ast.Statements{n.Consequent})
			s.lineAndPad()
			s.out.WriteString("}")
		} else {
			s.stmt(n.Consequent)
		}
		if !n.Alternate.IsNone() {
			s.out.WriteString(" else ")
			s.stmt(n.Alternate)
		}
	case *ast.LabeledStatement:
		s.out.WriteString(n.Label.Name + ": ")
		s.stmt(n.Body)
	case *ast.BreakStatement:
		s.out.WriteString("break")
		if n.Label != nil {
			s.out.WriteString(" " + n.Label.Name)
		}
		s.out.WriteString(";")
	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		if n.Label != nil {
			s.out.WriteString(" " + n.Label.Name)
		}
		s.out.WriteString(";")
	case *ast.WithStatement:
		s.out.WriteString("with (")
		s.expr(n.Object, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		s.expr(n.Discriminant, precSequence)
		s.out.WriteString(") {")

		s.indent++
		for _, c := range n.Cases {
			s.lineAndPad()
			gen(s.wrap(c))
		}
		s.indent--

		if len(n.Cases) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")
	case *ast.SwitchCase:
		if n.Test.IsNone() {
			s.out.WriteString("default:")
		} else {
			s.out.WriteString("case ")
			s.expr(n.Test, precSequence)
			s.out.WriteString(":")
		}
		s.statements(n.Consequent)
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if !n.Argument.IsNone() {
			s.out.WriteString(" ")
			s.expr(n.Argument, precSequence)
		}
		s.out.WriteString(";")
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		s.expr(n.Argument, precSequence)
		s.out.WriteString(";")
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Block))
		if n.Handler != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Handler))
		}
		if n.Finalizer != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finalizer))
		}
	case *ast.CatchClause:
		s.out.WriteString("catch (" + n.Param.Name + ") ")
		gen(s.wrap(n.Body))
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		s.stmt(n.Body)
		s.out.WriteString(" while (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(");")
	case *ast.ForStatement:
		s.out.WriteString("for (")
		genForHead(s, n.Init)
		s.out.WriteString(";")
		if !n.Test.IsNone() {
			s.out.WriteString(" ")
			s.expr(n.Test, precSequence)
		}
		s.out.WriteString(";")
		if !n.Update.IsNone() {
			s.out.WriteString(" ")
			s.expr(n.Update, precSequence)
		}
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		genForHead(s, n.Left)
		s.out.WriteString(" in ")
		s.expr(n.Right, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.DebuggerStatement:
		s.out.WriteString("debugger;")
	case *ast.FunctionDeclaration:
		s.out.WriteString("function ")
		genFunction(s, n.ID, n.Params, n.Body)
	case *ast.VariableDeclaration:
		genDeclaration(s, n)
		s.out.WriteString(";")
	case *ast.VariableDeclarator:
		s.out.WriteString(n.ID.Name)
		if !n.Init.IsNone() {
			s.out.WriteString(" = ")
			s.expr(n.Init, precAssign)
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genFunction(s *state, id *ast.Identifier, params []*ast.Identifier, body *ast.BlockStatement) {
	if id != nil {
		s.out.WriteString(id.Name)
	}
	s.out.WriteString("(")
	for i, p := range params {
		s.out.WriteString(p.Name)
		if i < len(params)-1 {
			s.out.WriteString(", ")
		}
	}
	s.out.WriteString(") ")
	inner := s.wrap(body)
	inner.noIn = false
	gen(inner)
}

func genDeclaration(s *state, n *ast.VariableDeclaration) {
	s.out.WriteString(n.Kind.String())
	s.out.WriteString(" ")
	for i, d := range n.Declarations {
		gen(s.wrap(d))
		if i < len(n.Declarations)-1 {
			s.out.WriteString(", ")
		}
	}
}

func genForHead(s *state, h ast.ForHead) {
	head := s.wrap(h.Unwrap())
	head.noIn = true
	if h.Declaration != nil {
		genDeclaration(head, h.Declaration)
		return
	}
	head.expr(h.Expression, precSequence)
}

// hasCall reports whether a call appears in the member chain of e. Such a
// callee must be parenthesized after new.
func hasCall(e ast.Expression) bool {
	for {
		switch e.Kind() {
		case ast.ExprCall:
			return true
		case ast.ExprMember:
			e = e.MustMember().Object
		default:
			return false
		}
	}
}

// signClash reports whether writing op directly before arg would merge
// into ++ or --.
func signClash(op token.Token, arg ast.Expression) bool {
	if op != token.Plus && op != token.Minus {
		return false
	}
	var next token.Token
	switch {
	case arg.IsUnary():
		next = arg.MustUnary().Operator
	case arg.IsUpdate() && arg.MustUpdate().Prefix:
		next = arg.MustUpdate().Operator
	default:
		return false
	}
	switch op {
	case token.Plus:
		return next == token.Plus || next == token.Increment
	default:
		return next == token.Minus || next == token.Decrement
	}
}

// needsStatementParens reports whether an expression statement would be
// misread without parentheses: as a block, a function declaration or a
// directive.
func needsStatementParens(e ast.Expression, text string) bool {
	if e.IsStrLit() {
		return true
	}
	return strings.HasPrefix(text, "{") ||
		strings.HasPrefix(text, "function ") ||
		strings.HasPrefix(text, "function(")
}

// quote renders s as a double-quoted JavaScript string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
