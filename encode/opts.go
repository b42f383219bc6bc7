package encode

import "errors"

// ErrBadValue is returned when a node cannot be legally serialized: an
// undefined node or a NaN float.
var ErrBadValue = errors.New("bad value")

// EncState carries the serializer configuration and indentation state.
type EncState struct {
	pretty bool
	dump   bool
	depth  int

	floatFmt  byte
	floatPrec int

	colors *Colors
}

type Option func(*EncState)

// Pretty enables two-space indented output with one element per line.
func Pretty(v bool) Option {
	return func(es *EncState) { es.pretty = v }
}

// Dump enables the diagnostic dump mode: every element is prefixed with a
// type annotation and the non-representable values (undefined, NaN) are
// emitted as annotated placeholders instead of failing. The output is not
// conforming JSON.
func Dump(v bool) Option {
	return func(es *EncState) { es.dump = v }
}

// FloatFormat selects the finite-float rendering: 'g' (general, default),
// 'f' (fixed) or 'e' (scientific).
func FloatFormat(verb byte) Option {
	return func(es *EncState) {
		switch verb {
		case 'g', 'f', 'e':
			es.floatFmt = verb
		}
	}
}

// FloatPrecision selects the float digit count, clamped to [0, 64]. A
// negative precision selects the shortest representation that round-trips,
// which is the default.
func FloatPrecision(prec int) Option {
	return func(es *EncState) {
		if prec > 64 {
			prec = 64
		}
		if prec < 0 {
			prec = -1
		}
		es.floatPrec = prec
	}
}

// WithColors colorizes pretty/dump output for terminals. Ignored for
// compact output, which stays machine-clean.
func WithColors(c *Colors) Option {
	return func(es *EncState) { es.colors = c }
}
