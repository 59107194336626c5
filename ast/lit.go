package ast

type (
	NullLiteral struct {
		NodeBase
	}

	BooleanLiteral struct {
		NodeBase
		Value bool
	}

	NumericLiteral struct {
		NodeBase
		Value float64
		Raw   string
	}

	// StringLiteral. Value has escapes resolved, Raw is the source text
	// including quotes.
	StringLiteral struct {
		NodeBase
		Value string
		Raw   string
	}

	RegExpLiteral struct {
		NodeBase
		Pattern string
		Flags   string
		Raw     string
	}
)
