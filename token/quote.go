package token

import "fmt"

// escTable maps each byte to its escape sequence, or "" for bytes emitted
// verbatim. Control codes get short escapes where JSON defines one and
// \u00XX otherwise; quote, backslash and forward slash are always escaped;
// so are 0x7F and 0xFF. Bytes 0x80..0xFE pass through untouched — string
// storage is assumed to already be valid UTF-8 and is not re-validated.
var escTable [256]string

func init() {
	for c := 0; c < 0x20; c++ {
		escTable[c] = fmt.Sprintf(`\u%04X`, c)
	}
	escTable['\b'] = `\b`
	escTable['\t'] = `\t`
	escTable['\n'] = `\n`
	escTable['\f'] = `\f`
	escTable['\r'] = `\r`
	escTable['"'] = `\"`
	escTable['/'] = `\/`
	escTable['\\'] = `\\`
	escTable[0x7F] = `\u007F`
	escTable[0xFF] = `\u00FF`
}

// AppendQuote appends the JSON-quoted form of s to dst.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc := escTable[c]; esc != "" {
			dst = append(dst, esc...)
		} else {
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

// Quote returns the JSON-quoted form of s.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s))
}
