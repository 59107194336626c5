package estree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esprima/parser"
)

func encode(t *testing.T, src string, opts Options, popts ...parser.Option) string {
	t.Helper()
	prog, err := parser.ParseFile(src, popts...)
	require.NoError(t, err)
	buf, err := Marshal(prog, opts)
	require.NoError(t, err)
	return string(buf)
}

func TestMarshalAssignment(t *testing.T) {
	got := encode(t, "a = 1", Options{Range: true})
	want := `{"type":"Program","body":[{"type":"ExpressionStatement","expression":` +
		`{"type":"AssignmentExpression","operator":"=",` +
		`"left":{"type":"Identifier","name":"a","range":[0,1]},` +
		`"right":{"type":"Literal","value":1,"raw":"1","range":[4,5]},"range":[0,5]},` +
		`"range":[0,5]}],"range":[0,5]}`
	assert.Equal(t, want, got)
}

func TestMarshalLiterals(t *testing.T) {
	got := encode(t, `x = [/a/g, 'b', true, null, , 1e400]`, Options{})
	assert.Contains(t, got, `{"type":"Literal","value":null,"raw":"/a/g","regex":{"pattern":"a","flags":"g"}}`)
	assert.Contains(t, got, `{"type":"Literal","value":"b","raw":"'b'"}`)
	assert.Contains(t, got, `{"type":"Literal","value":true,"raw":"true"}`)
	assert.Contains(t, got, `{"type":"Literal","value":null,"raw":"null"},null,`)
	assert.Contains(t, got, `{"type":"Literal","value":null,"raw":"1e400"}`)
	assert.NotContains(t, got, `"range"`)
}

func TestMarshalOperatorsUnescaped(t *testing.T) {
	got := encode(t, "a < b && c", Options{})
	assert.Contains(t, got, `"operator":"<"`)
	assert.Contains(t, got, `"operator":"&&"`)
	assert.Contains(t, got, `"type":"LogicalExpression"`)
}

func TestMarshalDirectiveAndOptionalFields(t *testing.T) {
	got := encode(t, "'use strict'; function f() { return } try {} finally {}", Options{})
	assert.Contains(t, got, `"directive":"use strict"`)
	assert.Contains(t, got, `{"type":"ReturnStatement","argument":null}`)
	assert.Contains(t, got, `"handler":null`)
	assert.Contains(t, got, `{"type":"FunctionDeclaration","id":{"type":"Identifier","name":"f"},"params":[]`)
}

func TestMarshalLocations(t *testing.T) {
	got := encode(t, "a;\nb", Options{Loc: true}, parser.WithSource("in.js"))

	var doc struct {
		Body []struct {
			Loc struct {
				Start  struct{ Line, Column int }
				End    struct{ Line, Column int }
				Source string
			}
		}
	}
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	require.Len(t, doc.Body, 2)
	assert.Equal(t, 2, doc.Body[1].Loc.Start.Line)
	assert.Equal(t, 0, doc.Body[1].Loc.Start.Column)
	assert.Equal(t, 1, doc.Body[1].Loc.End.Column)
	assert.Equal(t, "in.js", doc.Body[1].Loc.Source)
}

func TestValidateParsedPrograms(t *testing.T) {
	sources := []string{
		"",
		"a = 1",
		`'use strict';
var o = { a: [1, , 2], 'b': /x/g, 3: null, get c() { return this }, set c(v) {} };
function f(a, b) { return a instanceof b ? -a : typeof b }
for (var k in o) { if (!o[k]) continue; else break }
for (i = 0; i < 10; i++) ;
l: do { x = new F(1)(2)[3].y, x++ } while (a && b || c);
switch (x) { case 1: throw new Error('e'); default: }
try { with (o) debugger } catch (e) {} finally {}
while (0) ;
const z = function g() {};`,
	}
	for _, src := range sources {
		prog, err := parser.ParseFile(src, parser.WithLocations())
		require.NoError(t, err)
		for _, opts := range []Options{{}, {Range: true, Loc: true}} {
			buf, err := Marshal(prog, opts)
			require.NoError(t, err)
			assert.NoError(t, Validate(buf), "source %q", src)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	docs := []string{
		`{"type":"Program"}`,
		`{"type":"Program","body":[{"type":"Bogus"}]}`,
		`{"type":"Program","body":[{"type":"ExpressionStatement","expression":{"type":"Identifier"}}]}`,
		`{"type":"Program","body":[],"range":[1]}`,
		`{"type":"Program","body":[{"type":"VariableDeclaration","declarations":[],"kind":"let"}]}`,
	}
	for _, doc := range docs {
		assert.Error(t, Validate([]byte(doc)), doc)
	}
	assert.Error(t, Validate([]byte("{")))
}

func TestMarshalIndent(t *testing.T) {
	prog, err := parser.ParseFile("a")
	require.NoError(t, err)
	buf, err := MarshalIndent(prog, Options{}, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(buf), "\n  \"body\": [")
	assert.NoError(t, Validate(buf))
}
