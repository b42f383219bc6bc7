package parse

// Flags is the leniency bitmask: each bit independently enables one
// non-conforming extension over the RFC 8259 baseline.
type Flags uint32

const (
	// AllowUTF8BOM tolerates a UTF-8 byte order mark before the element.
	AllowUTF8BOM Flags = 1 << iota
	// AllowUnescapedSlash accepts '/' inside strings without a backslash.
	AllowUnescapedSlash
	// AllowComments skips C-style block and line comments as whitespace.
	AllowComments
	// AllowTrailingComma accepts a comma before ']' or '}'.
	AllowTrailingComma
	// AllowUnquotedKeys accepts bare object keys read up to ':' or
	// whitespace.
	AllowUnquotedKeys
	// AllowPlusSign accepts a leading '+' on numbers.
	AllowPlusSign
)

const (
	// DefaultFlags is the default leniency preset.
	DefaultFlags = AllowUTF8BOM | AllowUnescapedSlash
	// AllFlags enables every extension.
	AllFlags = AllowUTF8BOM | AllowUnescapedSlash | AllowComments |
		AllowTrailingComma | AllowUnquotedKeys | AllowPlusSign
)

// DefaultMaxDepth bounds input nesting. The recursion of the parser mirrors
// the nesting of its input, so the guard turns stack exhaustion on hostile
// documents into ErrTooDeep.
const DefaultMaxDepth = 1000

type parseOpts struct {
	flags    Flags
	maxDepth int
}

type Option func(*parseOpts)

// WithFlags replaces the leniency bitmask.
func WithFlags(f Flags) Option {
	return func(o *parseOpts) { o.flags = f }
}

// Strict disables every extension.
func Strict() Option {
	return WithFlags(0)
}

// Loose enables every extension.
func Loose() Option {
	return WithFlags(AllFlags)
}

// MaxDepth overrides DefaultMaxDepth. Non-positive values disable the
// guard.
func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
