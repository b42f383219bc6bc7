package parse

import (
	"unicode/utf8"

	"github.com/nanofmt/nanojson/token"
)

// readString parses a quoted string. Control characters (<0x20 and 0x7F)
// must be escaped; \uXXXX escapes are decoded to UTF-8, reconstructing
// UTF-16 surrogate pairs into a single code point first.
func (r *reader) readString() (string, error) {
	quote := byte(r.src.Next()) // '"'

	ret := make([]byte, 0, 16)
	for {
		if r.src.Accept('\\') {
			c := r.src.Next()
			switch c {
			case 'n':
				ret = append(ret, '\n')
			case 't':
				ret = append(ret, '\t')
			case 'b':
				ret = append(ret, '\b')
			case 'f':
				ret = append(ret, '\f')
			case 'r':
				ret = append(ret, '\r')
			case '\\':
				ret = append(ret, '\\')
			case '/':
				ret = append(ret, '/')
			case '"':
				ret = append(ret, '"')
			case '\'':
				ret = append(ret, '\'')
			case 'u':
				cp, err := r.readUnicodeEscape()
				if err != nil {
					return "", err
				}
				ret = utf8.AppendRune(ret, cp)
			default:
				return "", r.errf("invalid string format: invalid escape sequence", c)
			}
			continue
		}
		if r.src.Accept(quote) {
			break
		}
		c := r.src.Peek()
		switch {
		case c == token.EOF:
			return "", r.errf("invalid string format: unexpected eof", noChar)
		case c < 0x20 || c == 0x7F:
			return "", r.errf("invalid string format: control character is not allowed", c)
		case c == '/' && !r.has(AllowUnescapedSlash):
			return "", r.errf("invalid string format: unescaped '/' is not allowed", noChar)
		default:
			ret = append(ret, byte(c))
			r.src.Next()
		}
	}
	return string(ret), nil
}

// readUnicodeEscape decodes the XXXX of a \uXXXX escape, consuming a
// second \uXXXX when the first is half of a surrogate pair. A reversed
// pair (low before high) is tolerated and swapped.
func (r *reader) readUnicodeEscape() (rune, error) {
	code, err := r.readHex4()
	if err != nil {
		return 0, err
	}
	if code&0xF800 != 0xD800 {
		return rune(code), nil
	}

	// surrogate half: assume the partner escape follows
	if !r.src.Accept('\\') {
		return 0, r.errf("invalid string format: expected surrogate pair", r.src.Peek())
	}
	if !r.src.Accept('u') {
		return 0, r.errf("invalid string format: expected surrogate pair", r.src.Peek())
	}
	code2, err := r.readHex4()
	if err != nil {
		return 0, err
	}

	if code&0xFC00 == 0xDC00 && code2&0xFC00 == 0xD800 {
		code, code2 = code2, code
	}
	if code&0xFC00 == 0xD800 && code2&0xFC00 == 0xDC00 {
		return rune((code&0x3FF)<<10|(code2&0x3FF)) + 0x10000, nil
	}
	return 0, r.errf("invalid string format: invalid surrogate pair sequence", noChar)
}

func (r *reader) readHex4() (int, error) {
	code := 0
	for i := 0; i < 4; i++ {
		c := r.src.Next()
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		default:
			return 0, r.errf(`invalid string format: expected hexadecimal digit for \u????`, c)
		}
		code = code<<4 | v
	}
	return code, nil
}

// readUnquotedKey reads a bare object key up to the next whitespace or
// ':'. Only reachable with AllowUnquotedKeys.
func (r *reader) readUnquotedKey() string {
	ret := make([]byte, 0, 16)
	for {
		c := r.src.Peek()
		if c <= ' ' || c == ':' {
			break
		}
		ret = append(ret, byte(c))
		r.src.Next()
	}
	return string(ret)
}
