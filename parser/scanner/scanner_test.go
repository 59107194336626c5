package scanner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esprima/ast"
	"github.com/t14raptor/go-esprima/token"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	s := New(src)
	var toks []Token
	for {
		tok := s.Next()
		require.NotEqual(t, token.Illegal, tok.Kind, "unexpected lexical error: %v", s.Err())
		if tok.Kind == token.Eof {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []Token) []token.Token {
	var out []token.Token
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func scanErr(t *testing.T, src string) *Error {
	t.Helper()
	s := New(src)
	for i := 0; i < 100; i++ {
		tok := s.Next()
		if tok.Kind == token.Illegal {
			require.NotNil(t, s.Err())
			return s.Err()
		}
		if tok.Kind == token.Eof {
			break
		}
	}
	t.Fatalf("expected a lexical error for %q", src)
	return nil
}

func TestPunctuators(t *testing.T) {
	toks := scanAll(t, "{ } ( ) [ ] . ; , < > <= >= == != === !== + - * % ++ -- << >> >>> & | ^ ! ~ && || ? : = += -= *= %= <<= >>= >>>= &= |= ^= / /=")
	assert.Equal(t, []token.Token{
		token.LeftBrace, token.RightBrace, token.LeftParenthesis, token.RightParenthesis,
		token.LeftBracket, token.RightBracket, token.Period, token.Semicolon, token.Comma,
		token.Less, token.Greater, token.LessOrEqual, token.GreaterOrEqual,
		token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual,
		token.Plus, token.Minus, token.Multiply, token.Remainder, token.Increment, token.Decrement,
		token.ShiftLeft, token.ShiftRight, token.UnsignedShiftRight,
		token.And, token.Or, token.ExclusiveOr, token.Not, token.BitwiseNot,
		token.LogicalAnd, token.LogicalOr, token.QuestionMark, token.Colon,
		token.Assign, token.AddAssign, token.SubtractAssign, token.MultiplyAssign, token.RemainderAssign,
		token.ShiftLeftAssign, token.ShiftRightAssign, token.UnsignedShiftRightAssign,
		token.AndAssign, token.OrAssign, token.ExclusiveOrAssign,
		token.Slash, token.QuotientAssign,
	}, kinds(toks))
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "var x = function instanceof class true null let $_a1")
	assert.Equal(t, []token.Token{
		token.Var, token.Identifier, token.Assign, token.Function, token.InstanceOf,
		token.Keyword, token.Boolean, token.Null, token.Identifier, token.Identifier,
	}, kinds(toks))
	assert.Equal(t, "x", toks[1].Value)
	assert.Equal(t, "class", toks[5].Value)
	assert.Equal(t, "$_a1", toks[9].Value)
}

func TestUnicodeIdentifiers(t *testing.T) {
	toks := scanAll(t, "caf\u00e9 \u00fcn\u200cx \\u0061b a\\u0062")
	require.Len(t, toks, 4)
	assert.Equal(t, "caf\u00e9", toks[0].Value)
	assert.Equal(t, "\u00fcn\u200cx", toks[1].Value)
	assert.Equal(t, "ab", toks[2].Value)
	assert.Equal(t, `\u0061b`, toks[2].Literal)
	assert.Equal(t, "ab", toks[3].Value)
}

func TestNonASCIIIdentifiers(t *testing.T) {
	toks := scanAll(t, "\u00f1 \u0646\u0627\u0645 e\u0301 \\u0646x a\u200db")
	require.Len(t, toks, 5)
	for _, tok := range toks {
		assert.Equal(t, token.Identifier, tok.Kind)
	}
	assert.Equal(t, "\u00f1", toks[0].Value)
	assert.Equal(t, "\u0646\u0627\u0645", toks[1].Value)
	assert.Equal(t, "e\u0301", toks[2].Value)
	assert.Equal(t, "\u0646x", toks[3].Value)
	assert.Equal(t, "a\u200db", toks[4].Value)

	for _, src := range []string{
		"\u0301e",   // combining mark cannot start an identifier
		"\u200cx",   // nor can ZWNJ
		"\u200dx",   // or ZWJ
		"\\u200cx",  // escaped or not
		"\u2118",    // Other_ID_Start
		"a\u00b7",   // Other_ID_Continue
	} {
		err := scanErr(t, src)
		assert.Equal(t, "Unexpected token ILLEGAL", err.Message, src)
	}
}

func TestEscapedKeywordIsKeyword(t *testing.T) {
	toks := scanAll(t, `\u0069f`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.If, toks[0].Kind)
	assert.Equal(t, "if", toks[0].Value)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src   string
		value float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"1.", 1},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		{"0x1F", 31},
		{"0XfF", 255},
		{"017", 15},
		{"1e400", posInf()},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			require.Len(t, toks, 1)
			assert.Equal(t, token.Number, toks[0].Kind)
			assert.Equal(t, tt.value, toks[0].Number)
			assert.Equal(t, tt.src, toks[0].Literal)
		})
	}
}

func TestMalformedNumbers(t *testing.T) {
	for _, src := range []string{"0x", "1e", "1e+", "3in", "0x1g", "09.5e", "018"} {
		t.Run(src, func(t *testing.T) {
			scanErr(t, src)
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src   string
		value string
	}{
		{`"abc"`, "abc"},
		{`'a"b'`, `a"b`},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"\x41B"`, "AB"},
		{`"\101\0"`, "A\x00"},
		{`"\477"`, "'7"},
		{`"\q\'"`, "q'"},
		{"\"a\\\nb\"", "ab"},
		{"\"a\\\r\nb\"", "ab"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"\u00e9"`, "\u00e9"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			require.Len(t, toks, 1)
			assert.Equal(t, token.String, toks[0].Kind)
			assert.Equal(t, tt.value, toks[0].Value)
			assert.Equal(t, tt.src, toks[0].Literal)
		})
	}
}

func TestUnterminated(t *testing.T) {
	tests := []struct {
		src     string
		message string
		offset  ast.Idx
		line    int
	}{
		{`"abc`, msgUnterminatedString, 0, 1},
		{"'abc\ndef'", msgUnterminatedString, 0, 1},
		{"/* abc", msgUnterminatedComment, 0, 1},
		{"a\n/* b\nc", msgUnterminatedComment, 2, 2},
		{`"\u00G0"`, msgInvalidEscape, 1, 1},
		{"#", msgIllegal, 0, 1},
		{"a\n  @", msgIllegal, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			err := scanErr(t, tt.src)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.offset, err.Offset)
			assert.Equal(t, tt.line, err.Line)
		})
	}
}

func TestLineTracking(t *testing.T) {
	toks := scanAll(t, "a\nb // c\n  /* x\n y */ d\r\ne f")
	require.Len(t, toks, 5)
	want := []struct {
		line, column int
		onNewLine    bool
	}{
		{1, 0, false},
		{2, 0, true},
		{4, 6, true},
		{5, 0, true},
		{5, 2, false},
	}
	for i, tok := range toks {
		assert.Equal(t, want[i].line, tok.Line, "line of %s", tok.Value)
		assert.Equal(t, want[i].column, tok.Column, "column of %s", tok.Value)
		assert.Equal(t, want[i].onNewLine, tok.OnNewLine, "newline before %s", tok.Value)
	}
}

func TestMultiLineCommentNewline(t *testing.T) {
	toks := scanAll(t, "a /* one line */ b /*\n*/ c")
	require.Len(t, toks, 3)
	assert.False(t, toks[1].OnNewLine)
	assert.True(t, toks[2].OnNewLine)
}

func TestPosition(t *testing.T) {
	src := "ab\ncd\n\nef"
	s := New(src)
	for s.Next().Kind != token.Eof {
	}
	assert.Equal(t, ast.Position{Line: 1, Column: 1}, s.Position(1))
	assert.Equal(t, ast.Position{Line: 2, Column: 0}, s.Position(3))
	assert.Equal(t, ast.Position{Line: 3, Column: 0}, s.Position(6))
	line, col := s.LineCol(8)
	assert.Equal(t, 4, line)
	assert.Equal(t, 1, col)
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := New("a\nb c")
	a := s.Next()
	peeked := s.Peek()
	assert.Equal(t, "b", peeked.Value)
	assert.True(t, peeked.OnNewLine)
	assert.Equal(t, a, s.Token())

	b := s.Next()
	assert.Equal(t, peeked, b)
	assert.Equal(t, 2, b.Line)
	assert.Equal(t, "c", s.Next().Value)
}

func TestRescanAsRegExp(t *testing.T) {
	tests := []struct {
		src     string
		pattern string
		flags   string
	}{
		{"/a/g", "a", "g"},
		{"/=a/", "=a", ""},
		{`/[/]\//gim`, `[/]\/`, "gim"},
		{`/a\]b/`, `a\]b`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := New(tt.src + " x")
			s.Next()
			tok := s.RescanAsRegExp()
			require.Equal(t, token.RegExp, tok.Kind, "%v", s.Err())
			assert.Equal(t, tt.pattern, tok.Value)
			assert.Equal(t, tt.src, tok.Literal)
			pattern, flags := tok.RegExp()
			assert.Equal(t, tt.pattern, pattern)
			assert.Equal(t, tt.flags, flags)
			assert.Equal(t, "x", s.Next().Value)
		})
	}
}

func TestRescanAsRegExpErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"/abc", msgUnterminatedRegExp},
		{"/a\n/", msgUnterminatedRegExp},
		{"/a/x", msgInvalidRegExpFlags},
		{"/a/gg", msgInvalidRegExpFlags},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := New(tt.src)
			s.Next()
			tok := s.RescanAsRegExp()
			assert.Equal(t, token.Illegal, tok.Kind)
			require.NotNil(t, s.Err())
			assert.Equal(t, tt.message, s.Err().Message)
		})
	}
}

func TestWhitespaceKinds(t *testing.T) {
	toks := scanAll(t, "\t\v\f \u00a0\ufeff\u2003a\u2028b")
	require.Len(t, toks, 2)
	assert.Equal(t, "a", toks[0].Value)
	assert.False(t, toks[0].OnNewLine)
	assert.True(t, toks[1].OnNewLine)
	assert.Equal(t, 2, toks[1].Line)
}

func TestErrorIsSticky(t *testing.T) {
	s := New("# a")
	assert.Equal(t, token.Illegal, s.Next().Kind)
	assert.Equal(t, token.Illegal, s.Next().Kind)
	assert.Equal(t, "Line 1: Unexpected token ILLEGAL", s.Err().Error())
}

func posInf() float64 {
	return math.Inf(1)
}
