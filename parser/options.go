package parser

// Option configures a parse.
type Option func(*options)

type options struct {
	locations bool
	source    string
	maxDepth  int

	functionOnlyReturn bool
}

// WithLocations makes the parser attach line/column locations to every
// node. Ranges are always recorded.
func WithLocations() Option {
	return func(o *options) {
		o.locations = true
	}
}

// WithSource sets the source name recorded in node locations. It implies
// WithLocations.
func WithSource(name string) Option {
	return func(o *options) {
		o.locations = true
		o.source = name
	}
}

// WithFunctionOnlyReturn rejects return statements outside a function
// body. By default a script may return at the top level.
func WithFunctionOnlyReturn() Option {
	return func(o *options) {
		o.functionOnlyReturn = true
	}
}

// WithMaxDepth limits how deeply statements and expressions may nest. Zero
// means no limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}
