package parse

import (
	"errors"
	"math"
	"strconv"

	"github.com/nanofmt/nanojson/ir"
)

// Mantissa buffer limits. Digits beyond the limit are dropped, not stored;
// the running exponent offset preserves their magnitude.
const (
	integerLimit  = 48
	fractionLimit = 64
	decimalLimit  = 128
	exponentLimit = 32
)

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func addSat(a, b int64) int64 {
	if a > 0 && b > math.MaxInt64-a {
		return math.MaxInt64
	}
	if a < 0 && b < math.MinInt64-a {
		return math.MinInt64
	}
	return a + b
}

// readNumber copies digits into a bounded buffer while tracking a
// power-of-ten exponent offset for every digit dropped from an oversized
// mantissa. A value with no fraction, no exponent and no offset that fits
// int64 becomes an integer node; everything else becomes a float, with
// out-of-range magnitudes mapped to ±Inf (overflow) or signed zero
// (underflow) rather than rejected.
func (r *reader) readNumber() (*ir.Node, error) {
	buf := make([]byte, 0, decimalLimit)
	var expOffset int64
	intType := true

	// integer part
	if r.src.Accept('-') {
		buf = append(buf, '-')
	}
	if r.has(AllowPlusSign) {
		r.src.Accept('+')
	}
	if r.src.Accept('0') {
		// leading zeros are not allowed in JSON
		buf = append(buf, '0')
	} else if isDigit(r.src.Peek()) {
		for isDigit(r.src.Peek()) {
			if len(buf) < integerLimit {
				buf = append(buf, byte(r.src.Next()))
			} else if expOffset < math.MaxInt64 {
				expOffset++
				r.src.Next()
			} else {
				return nil, r.errf("invalid number format: too long integer sequence", noChar)
			}
		}
	} else {
		return nil, r.errf("invalid number format: expected a digit", r.src.Peek())
	}

	// fraction part
	if r.src.Accept('.') {
		buf = append(buf, '.')
		intType = false

		if !isDigit(r.src.Peek()) {
			return nil, r.errf("invalid number format: expected a digit", r.src.Peek())
		}
		// a zero integer part ('0.0000ddd') sheds its leading fraction
		// zeros into the offset instead of the buffer
		if buf[0] == '0' || (buf[0] == '-' && buf[1] == '0') {
			for r.src.Peek() == '0' {
				if expOffset > math.MinInt64 {
					expOffset--
					r.src.Next()
				} else {
					return nil, r.errf("invalid number format: too long integer sequence", noChar)
				}
			}
		}
		for isDigit(r.src.Peek()) {
			if len(buf) < fractionLimit {
				buf = append(buf, byte(r.src.Next()))
			} else {
				r.src.Next() // drop digit
			}
		}
	}

	// exponent part
	if c := r.src.Peek(); c == 'e' || c == 'E' {
		r.src.Next()
		intType = false

		exp := make([]byte, 0, exponentLimit)
		if r.src.Accept('-') {
			exp = append(exp, '-')
		} else {
			r.src.Accept('+')
		}
		if !isDigit(r.src.Peek()) {
			return nil, r.errf("invalid number format: expected a digit", r.src.Peek())
		}
		for isDigit(r.src.Peek()) {
			if len(exp) < exponentLimit {
				exp = append(exp, byte(r.src.Next()))
			} else {
				r.src.Next() // overflow, handled below
			}
		}

		expValue, err := strconv.ParseInt(string(exp), 10, 64)
		switch {
		case err == nil:
			expOffset = addSat(expOffset, expValue)
		case errors.Is(err, strconv.ErrRange):
			if exp[0] == '-' {
				expOffset = math.MinInt64
			} else {
				expOffset = math.MaxInt64
			}
		default:
			return nil, r.errf("invalid number format: unexpected parse error", noChar)
		}
	}

	if expOffset != 0 {
		intType = false
		buf = append(buf, 'e')
		buf = strconv.AppendInt(buf, expOffset, 10)
	}

	if intType {
		if v, err := strconv.ParseInt(string(buf), 10, 64); err == nil {
			return ir.FromInt(v), nil
		}
		// does not fit int64: fall through to float
	}

	f, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return nil, r.errf("invalid number format: failed to parse", noChar)
		}
		neg := buf[0] == '-'
		if expOffset >= 0 { // overflow
			if neg {
				return ir.FromFloat(math.Inf(-1)), nil
			}
			return ir.FromFloat(math.Inf(+1)), nil
		}
		// underflow
		if neg {
			return ir.FromFloat(math.Copysign(0, -1)), nil
		}
		return ir.FromFloat(0), nil
	}
	return ir.FromFloat(f), nil
}
