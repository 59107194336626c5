package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/generator"
	"github.com/t14raptor/go-esprima/parser"
	"github.com/t14raptor/go-esprima/parser/scanner"
	"github.com/t14raptor/go-esprima/token"
)

func TestForInMemberTarget(t *testing.T) {
	code := `const a = {}
const c = { a: 1 }
for (a.b in c) {
  console.log(a.b)
}`
	p := mustParse(t, code)
	loop := firstStmt(p, 2).(*ast.ForInStatement)
	if loop.Left.Declaration != nil || !loop.Left.Expression.IsMember() {
		t.Errorf("for-in target = %v; want MemberExpression", loop.Left.Expression.Kind())
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string, opts ...parser.Option) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code, opts...)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail parses code and returns the error, failing the test if the
// parse succeeds.
func mustFail(t *testing.T, code string, opts ...parser.Option) *parser.ParseError {
	t.Helper()
	p, err := parser.ParseFile(code, opts...)
	if err == nil {
		t.Fatalf("Expected an error for:\n%s", code)
	}
	if p != nil {
		t.Errorf("Expected no program on error for:\n%s", code)
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a *parser.ParseError", err)
	}
	return perr
}

// roundTrip parses code, regenerates it, and returns the output.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	return strings.TrimSpace(generator.Generate(p))
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches the expected string.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.VisitableNode {
	return p.Body[i].Unwrap()
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.VisitableNode) ast.VisitableNode {
	return s.(*ast.ExpressionStatement).Expression.Unwrap()
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.VisitableNode) ast.VisitableNode {
	return s.(*ast.VariableDeclaration).Declarations[0].Init.Unwrap()
}

func rangeOf(n ast.Node) ast.Range {
	return ast.Range{n.Idx0(), n.Idx1()}
}

// ===========================================================================
// AST STRUCTURE
// ===========================================================================

func TestArrayLiteralAST(t *testing.T) {
	p := mustParse(t, "var a = [1, 'two', true, null]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayExpression)

	if got := len(arr.Elements); got != 4 {
		t.Fatalf("array length = %d; want 4", got)
	}
	if n := arr.Elements[0].MustNumLit(); n.Value != 1 {
		t.Errorf("arr[0] value = %v; want 1", n.Value)
	}
	if s := arr.Elements[1].MustStrLit(); s.Value != "two" || s.Raw != "'two'" {
		t.Errorf("arr[1] = %q (%s); want \"two\"", s.Value, s.Raw)
	}
	if b := arr.Elements[2].MustBoolLit(); !b.Value {
		t.Errorf("arr[2] = false; want true")
	}
	if !arr.Elements[3].IsNullLit() {
		t.Errorf("arr[3] kind = %v; want NullLiteral", arr.Elements[3].Kind())
	}
}

func TestArrayLiteralElisionsAST(t *testing.T) {
	tests := []struct {
		code  string
		holes []bool
	}{
		{"[1,,2,,3]", []bool{false, true, false, true, false}},
		{"[,]", []bool{true}},
		{"[a,]", []bool{false}},
		{"[a,,]", []bool{false, true}},
		{"[,a]", []bool{true, false}},
		{"[]", nil},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		arr := exprOf(firstStmt(p, 0)).(*ast.ArrayExpression)
		if len(arr.Elements) != len(tt.holes) {
			t.Errorf("%s: length = %d; want %d", tt.code, len(arr.Elements), len(tt.holes))
			continue
		}
		for i, hole := range tt.holes {
			if arr.Elements[i].IsNone() != hole {
				t.Errorf("%s: element %d hole = %v; want %v", tt.code, i, !hole, hole)
			}
		}
	}
}

func TestArgumentListAST(t *testing.T) {
	p := mustParse(t, "f(1, 'a', true)")
	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)

	if got := len(call.Arguments); got != 3 {
		t.Fatalf("arg count = %d; want 3", got)
	}
	if !call.Arguments[0].IsNumLit() || !call.Arguments[1].IsStrLit() || !call.Arguments[2].IsBoolLit() {
		t.Errorf("arg kinds = %v %v %v", call.Arguments[0].Kind(), call.Arguments[1].Kind(), call.Arguments[2].Kind())
	}
	if callee := call.Callee.MustIdent(); callee.Name != "f" {
		t.Errorf("callee = %s; want f", callee.Name)
	}
}

func TestSlashDisambiguation(t *testing.T) {
	p := mustParse(t, "a/b/g")
	outer := exprOf(firstStmt(p, 0)).(*ast.BinaryExpression)
	if outer.Operator != token.Slash || outer.Right.MustIdent().Name != "g" {
		t.Fatalf("outer = %v %v; want a/b / g", outer.Operator, outer.Right.Kind())
	}
	inner := outer.Left.MustBinary()
	if inner.Left.MustIdent().Name != "a" || inner.Right.MustIdent().Name != "b" {
		t.Errorf("inner operands wrong")
	}

	p = mustParse(t, "/a/g")
	re := exprOf(firstStmt(p, 0)).(*ast.RegExpLiteral)
	if re.Pattern != "a" || re.Flags != "g" || re.Raw != "/a/g" {
		t.Errorf("regexp = %q %q %q; want a g /a/g", re.Pattern, re.Flags, re.Raw)
	}

	p = mustParse(t, "x = /=/; if (y) /re/.test(y)")
	re = exprOf(firstStmt(p, 0)).(*ast.AssignmentExpression).Right.MustRegExpLit()
	if re.Pattern != "=" {
		t.Errorf("pattern = %q; want =", re.Pattern)
	}
	call := exprOf(firstStmt(p, 1).(*ast.IfStatement).Consequent.Unwrap()).(*ast.CallExpression)
	if !call.Callee.MustMember().Object.IsRegExpLit() {
		t.Errorf("callee object is not a regular expression")
	}
}

func TestConditionalAssignment(t *testing.T) {
	p := mustParse(t, "a = b ? c : d = e")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignmentExpression)
	if assign.Left.MustIdent().Name != "a" {
		t.Fatalf("left = %v; want a", assign.Left.Kind())
	}
	cond := assign.Right.MustConditional()
	if cond.Test.MustIdent().Name != "b" || cond.Consequent.MustIdent().Name != "c" {
		t.Errorf("test/consequent wrong")
	}
	alt := cond.Alternate.MustAssign()
	if alt.Left.MustIdent().Name != "d" || alt.Right.MustIdent().Name != "e" {
		t.Errorf("alternate is not d = e")
	}
}

func TestLeftAssociativity(t *testing.T) {
	p := mustParse(t, "a - b - c")
	outer := exprOf(firstStmt(p, 0)).(*ast.BinaryExpression)
	if outer.Right.MustIdent().Name != "c" {
		t.Fatalf("right = %v; want c", outer.Right.Kind())
	}
	inner := outer.Left.MustBinary()
	if inner.Left.MustIdent().Name != "a" || inner.Right.MustIdent().Name != "b" {
		t.Errorf("inner is not a - b")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"a + b * c", "a + b * c;"},
		{"(a + b) * c", "(a + b) * c;"},
		{"a || b && c | d ^ e & f == g < h << i + j * k", "a || b && c | d ^ e & f == g < h << i + j * k;"},
		{"a * b + c", "a * b + c;"},
		{"a = b = c", "a = b = c;"},
		{"a, b = c", "a, b = c;"},
		{"!a.b()", "!a.b();"},
		{"typeof a == 'b'", "typeof a == 'b';"},
		{"a instanceof b in c", "a instanceof b in c;"},
	}
	for _, tt := range tests {
		assertRoundTrip(t, tt.code, tt.want)
	}

	p := mustParse(t, "a || b && c")
	or := exprOf(firstStmt(p, 0)).(*ast.LogicalExpression)
	if or.Operator != token.LogicalOr || !or.Right.IsLogical() {
		t.Errorf("a || b && c parsed as %v with right %v", or.Operator, or.Right.Kind())
	}
}

func TestNewExpression(t *testing.T) {
	p := mustParse(t, "new a.b(); new a.b")
	for i := 0; i < 2; i++ {
		n := exprOf(firstStmt(p, i)).(*ast.NewExpression)
		callee := n.Callee.MustMember()
		if callee.Object.MustIdent().Name != "a" || callee.Property.MustIdent().Name != "b" {
			t.Errorf("statement %d: callee is not a.b", i)
		}
		if len(n.Arguments) != 0 {
			t.Errorf("statement %d: %d arguments; want 0", i, len(n.Arguments))
		}
	}

	p = mustParse(t, "new a().b")
	member := exprOf(firstStmt(p, 0)).(*ast.MemberExpression)
	if !member.Object.IsNew() {
		t.Errorf("object = %v; want NewExpression", member.Object.Kind())
	}

	p = mustParse(t, "new new X()()")
	outer := exprOf(firstStmt(p, 0)).(*ast.NewExpression)
	if inner := outer.Callee.MustNew(); inner.Callee.MustIdent().Name != "X" {
		t.Errorf("inner callee is not X")
	}

	p = mustParse(t, "new f(1)(2)")
	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)
	if n := call.Callee.MustNew(); len(n.Arguments) != 1 {
		t.Errorf("new has %d arguments; want 1", len(n.Arguments))
	}
}

func TestMemberExpression(t *testing.T) {
	p := mustParse(t, "a.if.b[c + 1]")
	outer := exprOf(firstStmt(p, 0)).(*ast.MemberExpression)
	if !outer.Computed || !outer.Property.IsBinary() {
		t.Errorf("outer member is not computed")
	}
	mid := outer.Object.MustMember()
	if mid.Computed || mid.Property.MustIdent().Name != "b" {
		t.Errorf("middle member wrong")
	}
	if name := mid.Object.MustMember().Property.MustIdent().Name; name != "if" {
		t.Errorf("reserved word property = %q; want if", name)
	}
}

func TestObjectLiteral(t *testing.T) {
	p := mustParse(t, "x = {a: 1, 'b': 2, 3: 3, if: 4, get: 5, set: 6, get c() { return 1 }, set c(v) {},}")
	obj := exprOf(firstStmt(p, 0)).(*ast.AssignmentExpression).Right.MustObject()
	if len(obj.Properties) != 8 {
		t.Fatalf("%d properties; want 8", len(obj.Properties))
	}
	kinds := []ast.PropertyKind{"init", "init", "init", "init", "init", "init", "get", "set"}
	for i, k := range kinds {
		if obj.Properties[i].Kind != k {
			t.Errorf("property %d kind = %s; want %s", i, obj.Properties[i].Kind, k)
		}
	}
	if !obj.Properties[1].Key.IsStrLit() || !obj.Properties[2].Key.IsNumLit() {
		t.Errorf("literal keys not preserved")
	}
	if obj.Properties[4].Key.MustIdent().Name != "get" {
		t.Errorf("plain get key lost")
	}
	setter := obj.Properties[7].Value.MustFunc()
	if len(setter.Params) != 1 || setter.Params[0].Name != "v" {
		t.Errorf("setter params = %d; want [v]", len(setter.Params))
	}
	if getter := obj.Properties[6].Value.MustFunc(); getter.ID != nil || len(getter.Body.Body) != 1 {
		t.Errorf("getter shape wrong")
	}
}

func TestFunctions(t *testing.T) {
	p := mustParse(t, "function f(a, b) { return a + b } var g = function () {}, h = function h2(x) {}")
	decl := firstStmt(p, 0).(*ast.FunctionDeclaration)
	if decl.ID.Name != "f" || len(decl.Params) != 2 || len(decl.Body.Body) != 1 {
		t.Errorf("declaration shape wrong")
	}
	vars := firstStmt(p, 1).(*ast.VariableDeclaration)
	if g := vars.Declarations[0].Init.MustFunc(); g.ID != nil || len(g.Params) != 0 {
		t.Errorf("anonymous function shape wrong")
	}
	if h := vars.Declarations[1].Init.MustFunc(); h.ID.Name != "h2" {
		t.Errorf("named function expression lost its name")
	}
}

func TestDirectives(t *testing.T) {
	p := mustParse(t, "'use strict'; \"b\";\n('c'); 'd'; function f() { 'inner'; 'x' + 1; 'no' }")
	want := []string{"use strict", "b", "", ""}
	for i, d := range want {
		if got := firstStmt(p, i).(*ast.ExpressionStatement).Directive; got != d {
			t.Errorf("statement %d directive = %q; want %q", i, got, d)
		}
	}
	body := firstStmt(p, 4).(*ast.FunctionDeclaration).Body.Body
	want = []string{"inner", "", ""}
	for i, d := range want {
		if got := body[i].MustExpression().Directive; got != d {
			t.Errorf("body statement %d directive = %q; want %q", i, got, d)
		}
	}
}

func TestVariableDeclarations(t *testing.T) {
	p := mustParse(t, "var a, b = 1; const c = 2; let = 3")
	v := firstStmt(p, 0).(*ast.VariableDeclaration)
	if v.Kind != token.Var || len(v.Declarations) != 2 || !v.Declarations[0].Init.IsNone() {
		t.Errorf("var declaration shape wrong")
	}
	if c := firstStmt(p, 1).(*ast.VariableDeclaration); c.Kind != token.Const {
		t.Errorf("kind = %v; want const", c.Kind)
	}
	if left := exprOf(firstStmt(p, 2)).(*ast.AssignmentExpression).Left; left.MustIdent().Name != "let" {
		t.Errorf("let is not an identifier")
	}
}

// ===========================================================================
// STATEMENTS AND AUTOMATIC SEMICOLON INSERTION
// ===========================================================================

func TestRestrictedProductions(t *testing.T) {
	p := mustParse(t, "return\na")
	if len(p.Body) != 2 {
		t.Fatalf("%d statements; want 2", len(p.Body))
	}
	if ret := p.Body[0].MustReturn(); !ret.Argument.IsNone() {
		t.Errorf("top-level return took the next line as its argument")
	}
	if es := p.Body[1].MustExpression(); !es.Expression.IsIdent() {
		t.Errorf("second statement = %v; want ExpressionStatement of a", es.Expression.Kind())
	}

	p = mustParse(t, "function f() { return\na }")
	body := firstStmt(p, 0).(*ast.FunctionDeclaration).Body.Body
	if len(body) != 2 {
		t.Fatalf("%d statements; want 2", len(body))
	}
	if ret := body[0].MustReturn(); !ret.Argument.IsNone() {
		t.Errorf("return took the next line as its argument")
	}
	if !body[1].IsExpression() {
		t.Errorf("second statement = %v; want ExpressionStatement", body[1].Kind())
	}

	p = mustParse(t, "a\n++b")
	if len(p.Body) != 2 {
		t.Fatalf("%d statements; want 2", len(p.Body))
	}
	if up := exprOf(firstStmt(p, 1)).(*ast.UpdateExpression); !up.Prefix || up.Argument.MustIdent().Name != "b" {
		t.Errorf("++ did not attach to b")
	}

	p = mustParse(t, "for (;;) { break\nfoo; continue\nfoo }")
	block := firstStmt(p, 0).(*ast.ForStatement).Body.MustBlock()
	if len(block.Body) != 4 {
		t.Fatalf("%d statements; want 4", len(block.Body))
	}
	if block.Body[0].MustBreak().Label != nil || block.Body[2].MustContinue().Label != nil {
		t.Errorf("jump took a label from the next line")
	}
}

func TestSemicolonInsertion(t *testing.T) {
	tests := []struct {
		code  string
		count int
	}{
		{"a\nb", 2},
		{"{ a } b", 2},
		{"a; b;", 2},
		{"var a = 1\nvar b", 2},
		{"do x; while (y) z", 2},
		{"if (a) b\nelse c", 1},
		{"x\n(y)", 1},
		{"a = b\n/c/g", 1},
		{"", 0},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if len(p.Body) != tt.count {
			t.Errorf("%q: %d statements; want %d", tt.code, len(p.Body), tt.count)
		}
	}
}

func TestForStatements(t *testing.T) {
	p := mustParse(t, "for (var i = 0, j; i < 10; i++) ; for (x in y) ; for (var k in o) ; for (a.b in c) ; for (;;) {} for (var z = 1 in o) ;")

	f := firstStmt(p, 0).(*ast.ForStatement)
	if f.Init.Declaration == nil || len(f.Init.Declaration.Declarations) != 2 || f.Test.IsNone() || f.Update.IsNone() {
		t.Errorf("for shape wrong")
	}
	if in := firstStmt(p, 1).(*ast.ForInStatement); in.Left.Expression.MustIdent().Name != "x" {
		t.Errorf("for-in left is not x")
	}
	if in := firstStmt(p, 2).(*ast.ForInStatement); in.Left.Declaration == nil {
		t.Errorf("for-var-in lost its declaration")
	}
	if in := firstStmt(p, 3).(*ast.ForInStatement); !in.Left.Expression.IsMember() {
		t.Errorf("for-in left is not a member expression")
	}
	if empty := firstStmt(p, 4).(*ast.ForStatement); !empty.Init.IsNone() || !empty.Test.IsNone() || !empty.Update.IsNone() {
		t.Errorf("for (;;) has parts")
	}
	if in := firstStmt(p, 5).(*ast.ForInStatement); in.Left.Declaration.Declarations[0].Init.IsNone() {
		t.Errorf("for-var-in lost its initializer")
	}

	p = mustParse(t, "for (var a = (b in c); a; ) ;")
	f = firstStmt(p, 0).(*ast.ForStatement)
	if init := f.Init.Declaration.Declarations[0].Init.MustBinary(); init.Operator != token.In {
		t.Errorf("parenthesized in lost")
	}
}

func TestSwitchAndTry(t *testing.T) {
	p := mustParse(t, "switch (x) { case 1: case 2: a(); break; default: b() } try {} catch (e) {} try {} finally {}")
	sw := firstStmt(p, 0).(*ast.SwitchStatement)
	if len(sw.Cases) != 3 {
		t.Fatalf("%d cases; want 3", len(sw.Cases))
	}
	if len(sw.Cases[0].Consequent) != 0 || len(sw.Cases[1].Consequent) != 2 || !sw.Cases[2].Test.IsNone() {
		t.Errorf("case shape wrong")
	}
	if try := firstStmt(p, 1).(*ast.TryStatement); try.Handler == nil || try.Handler.Param.Name != "e" || try.Finalizer != nil {
		t.Errorf("try/catch shape wrong")
	}
	if try := firstStmt(p, 2).(*ast.TryStatement); try.Handler != nil || try.Finalizer == nil {
		t.Errorf("try/finally shape wrong")
	}
}

func TestLabels(t *testing.T) {
	valid := []string{
		"a: while (1) { break a; }",
		"a: while (1) { continue a; }",
		"a: b: for (;;) continue a;",
		"a: { break a; }",
		"a: { b: while (1) continue b; }",
		"a: ; a: ;",
		"a: while (1) { (function () { a: ; }) }",
		"switch (x) { case 1: break; }",
	}
	for _, code := range valid {
		mustParse(t, code)
	}

	p := mustParse(t, "outer: inner: x;")
	l := firstStmt(p, 0).(*ast.LabeledStatement)
	if l.Label.Name != "outer" || l.Body.MustLabeled().Label.Name != "inner" {
		t.Errorf("label nesting wrong")
	}
}

// ===========================================================================
// ERRORS
// ===========================================================================

func TestErrorPosition(t *testing.T) {
	err := mustFail(t, "if (x")
	if err.Index != 5 || err.LineNumber != 1 || err.Column != 6 {
		t.Errorf("error at %d (%d:%d); want 5 (1:6)", err.Index, err.LineNumber, err.Column)
	}
	if err.Description != "Unexpected end of input" {
		t.Errorf("description = %q", err.Description)
	}
	if err.Error() != "Line 1: Unexpected end of input" {
		t.Errorf("Error() = %q", err.Error())
	}

	err = mustFail(t, "a: a: ;")
	if err.Description != "Label 'a' has already been declared" || err.Index != 3 {
		t.Errorf("got %q at %d", err.Description, err.Index)
	}

	err = mustFail(t, "a;\n  b c")
	if err.Index != 7 || err.LineNumber != 2 || err.Column != 5 {
		t.Errorf("error at %d (%d:%d); want 7 (2:5)", err.Index, err.LineNumber, err.Column)
	}
}

func TestFunctionOnlyReturn(t *testing.T) {
	mustParse(t, "return 1")
	mustParse(t, "function f() { return 1 }", parser.WithFunctionOnlyReturn())

	for _, code := range []string{"return 1", "if (a) { return }", "function f() {} return"} {
		err := mustFail(t, code, parser.WithFunctionOnlyReturn())
		if err.Description != "Illegal return statement" {
			t.Errorf("%q: got %q; want %q", code, err.Description, "Illegal return statement")
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"var", "Unexpected end of input"},
		{"a b", "Unexpected identifier"},
		{"a 1", "Unexpected number"},
		{"a 'b'", "Unexpected string"},
		{"a class", "Unexpected reserved word"},
		{"a )", "Unexpected token )"},
		{"var if = 1", "Unexpected token if"},
		{"break", "Illegal break statement"},
		{"continue", "Illegal continue statement"},
		{"switch (x) { case 1: continue; }", "Illegal continue statement"},
		{"while (1) { a: { continue a; } }", "Illegal continue statement"},
		{"while (1) break b", "Undefined label 'b'"},
		{"a: while (1) { (function () { break a; }) }", "Undefined label 'a'"},
		{"throw\na", "Illegal newline after throw"},
		{"try {}", "Missing catch or finally after try"},
		{"switch (x) { default: default: }", "More than one default clause in switch statement"},
		{"1 = 2", "Invalid left-hand side in assignment"},
		{"a() += 1", "Invalid left-hand side in assignment"},
		{"++a()", "Invalid left-hand side in assignment"},
		{"a()++", "Invalid left-hand side in assignment"},
		{"for (a() in b) ;", "Invalid left-hand side in for-in"},
		{"for (var a, b in c) ;", "Unexpected token in"},
		{"const a;", "Unexpected token ;"},
		{"f(a,)", "Unexpected token )"},
		{"function f(a,) {}", "Unexpected token )"},
		{"x = {get a(b) {}}", "Unexpected identifier"},
		{"x = {set a() {}}", "Unexpected token )"},
		{"for (;) ;", "Unexpected token )"},
		{"'abc", "Unterminated string constant"},
		{"a = @", "Unexpected token ILLEGAL"},
		{"/a", "Invalid regular expression: missing /"},
	}
	for _, tt := range tests {
		err := mustFail(t, tt.code)
		if err.Description != tt.want {
			t.Errorf("%q: got %q; want %q", tt.code, err.Description, tt.want)
		}
	}
}

func TestLexicalErrorCause(t *testing.T) {
	err := mustFail(t, "a = 'abc")
	var serr *scanner.Error
	if !errors.As(err, &serr) {
		t.Fatalf("cause is not a *scanner.Error")
	}
	if serr.Offset != 4 || err.Index != 4 {
		t.Errorf("offset = %d, index = %d; want 4", serr.Offset, err.Index)
	}

	err = mustFail(t, "a b")
	if errors.As(err, &serr) {
		t.Errorf("syntax error has a lexical cause")
	}
}

func TestMaxDepth(t *testing.T) {
	code := strings.Repeat("(", 50) + "a" + strings.Repeat(")", 50)
	mustParse(t, code)
	_, err := parser.ParseFile(code, parser.WithMaxDepth(20))
	if err == nil || !strings.Contains(err.Error(), "Maximum nesting depth exceeded") {
		t.Errorf("err = %v; want nesting depth error", err)
	}
}

// ===========================================================================
// RANGES AND LOCATIONS
// ===========================================================================

func TestRanges(t *testing.T) {
	p := mustParse(t, "(a)+b;")
	stmt := firstStmt(p, 0)
	bin := exprOf(stmt).(*ast.BinaryExpression)
	if got := rangeOf(stmt); got != (ast.Range{0, 6}) {
		t.Errorf("statement range = %v; want [0 6]", got)
	}
	if got := rangeOf(bin); got != (ast.Range{0, 5}) {
		t.Errorf("binary range = %v; want [0 5]", got)
	}
	a := bin.Left.MustIdent()
	if got := rangeOf(a); got != (ast.Range{1, 2}) {
		t.Errorf("identifier range = %v; want [1 2]", got)
	}
	if a.GroupRange == nil || *a.GroupRange != (ast.Range{0, 3}) {
		t.Errorf("group range = %v; want [0 3]", a.GroupRange)
	}
	if bin.Right.MustIdent().Parenthesized() {
		t.Errorf("b marked as parenthesized")
	}

	p = mustParse(t, "((a))")
	if g := exprOf(firstStmt(p, 0)).(*ast.Identifier).GroupRange; g == nil || *g != (ast.Range{0, 5}) {
		t.Errorf("outermost group range = %v; want [0 5]", g)
	}

	p = mustParse(t, "  ")
	if got := rangeOf(p); got != (ast.Range{2, 2}) {
		t.Errorf("empty program range = %v; want [2 2]", got)
	}

	p = mustParse(t, " var x = 1;\n")
	if got := rangeOf(firstStmt(p, 0)); got != (ast.Range{1, 11}) {
		t.Errorf("var statement range = %v; want [1 11]", got)
	}
	if got := rangeOf(p); got != (ast.Range{1, 11}) {
		t.Errorf("program range = %v; want [1 11]", got)
	}
}

func TestRangesNest(t *testing.T) {
	code := `function f(a, b) {
  'use strict';
  var o = { x: [1, , 2], get y() { return this.x } };
  for (var k in o) if (o[k]) { continue } else break;
  l: do { a = b ? a++ : --b, c = new C(a)(b) } while (!a && b || c);
  switch (typeof a) { case 'x': throw new Error('e'); default: }
  try { with (o) x = /re/g.test(a) } catch (e) { return e } finally { debugger }
}`
	p := mustParse(t, code)

	var stack []ast.Range
	count := 0
	ast.Inspect(p, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		count++
		r := rangeOf(n)
		if r[0] > r[1] || r[0] < 0 || int(r[1]) > len(code) {
			t.Errorf("%T has invalid range %v", n, r)
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			if r[0] < parent[0] || r[1] > parent[1] {
				t.Errorf("%T range %v escapes parent %v", n, r, parent)
			}
		}
		stack = append(stack, r)
		return true
	})
	if count < 50 {
		t.Errorf("visited %d nodes; expected a full traversal", count)
	}
}

func TestLocations(t *testing.T) {
	p := mustParse(t, "a;\n  bb;", parser.WithLocations())
	second := firstStmt(p, 1).(*ast.ExpressionStatement)
	loc := second.Loc
	if loc == nil {
		t.Fatalf("no location recorded")
	}
	if loc.Start != (ast.Position{Line: 2, Column: 2}) || loc.End != (ast.Position{Line: 2, Column: 5}) {
		t.Errorf("loc = %+v; want 2:2-2:5", *loc)
	}

	p = mustParse(t, "(a)", parser.WithSource("input.js"))
	a := exprOf(firstStmt(p, 0)).(*ast.Identifier)
	if a.Loc.Source != "input.js" || a.GroupLoc == nil || a.GroupLoc.Start.Column != 0 || a.Loc.Start.Column != 1 {
		t.Errorf("source or group location wrong: %+v %+v", a.Loc, a.GroupLoc)
	}

	p = mustParse(t, "a")
	if firstStmt(p, 0).(*ast.ExpressionStatement).Loc != nil {
		t.Errorf("location recorded without WithLocations")
	}
}

// ===========================================================================
// ARENA AND CONCURRENCY
// ===========================================================================

func TestParseIntoArena(t *testing.T) {
	arena := ast.NewArena()
	p, err := parser.Parse(arena, "var a = [1, 2], b = {c: a}")
	if err != nil {
		t.Fatal(err)
	}
	if arena.Len() == 0 {
		t.Fatalf("arena holds no nodes")
	}
	if got := generator.Generate(p); !strings.Contains(got, "var a = [1, 2]") {
		t.Errorf("generated %q", got)
	}

	arena.Release()
	if arena.Len() != 0 {
		t.Errorf("Len() = %d after Release; want 0", arena.Len())
	}
	p, err = parser.Parse(arena, "x")
	if err != nil {
		t.Fatal(err)
	}
	if exprOf(firstStmt(p, 0)).(*ast.Identifier).Name != "x" {
		t.Errorf("reused arena produced a wrong tree")
	}
}

func TestConcurrentParses(t *testing.T) {
	sources := make([]string, 8)
	for i := range sources {
		sources[i] = fmt.Sprintf("function f%d(a) { for (var i = 0; i < a; i++) { a += i * %d } return a }", i, i)
	}
	want := make([]string, len(sources))
	for i, src := range sources {
		want[i] = generator.Generate(mustParse(t, src))
	}

	var wg sync.WaitGroup
	got := make([]string, len(sources))
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			for n := 0; n < 20; n++ {
				p, err := parser.ParseFile(src)
				if err != nil {
					return
				}
				got[i] = generator.Generate(p)
			}
		}(i, src)
	}
	wg.Wait()

	for i := range sources {
		if got[i] != want[i] {
			t.Errorf("parse %d differs:\n got: %s\nwant: %s", i, got[i], want[i])
		}
	}
}
