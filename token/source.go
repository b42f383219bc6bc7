// Package token provides the character-level plumbing shared by the parser
// and the serializer: a single-character lookahead cursor with position
// tracking, and JSON string quoting.
package token

import (
	"fmt"
	"strconv"
)

// EOF is the lookahead value past the end of input.
const EOF = -1

// Source is a single-character lookahead cursor over a byte buffer. It
// tracks line and column as it advances and never moves backwards.
type Source struct {
	d    []byte
	off  int
	line int // 0-based
	col  int // 0-based
}

func NewSource(d []byte) *Source {
	return &Source{d: d}
}

// Peek returns the current byte without consuming it, or EOF.
func (s *Source) Peek() int {
	if s.off >= len(s.d) {
		return EOF
	}
	return int(s.d[s.off])
}

// Next consumes and returns the current byte, or EOF.
func (s *Source) Next() int {
	c := s.Peek()
	if c == EOF {
		return EOF
	}
	s.off++
	s.col++
	if c == '\n' {
		s.line++
		s.col = 0
	}
	return c
}

// Accept consumes the current byte if it equals c.
func (s *Source) Accept(c byte) bool {
	if s.Peek() == int(c) {
		s.Next()
		return true
	}
	return false
}

// Pos is the cursor's current position, 1-based.
func (s *Source) Pos() Pos {
	return Pos{Off: s.off, Line: s.line + 1, Col: s.col + 1}
}

// Rest returns the unconsumed tail of the input.
func (s *Source) Rest() []byte {
	return s.d[s.off:]
}

// Pos is a 1-based line/column position in an input document.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d column %d", p.Line, p.Col)
}

// Describe renders a lookahead value for error messages: a quoted printable
// character, a hex code, or "EOF".
func Describe(c int) string {
	switch {
	case c == EOF:
		return "EOF"
	case c >= 0x20 && c < 0x7F:
		return strconv.QuoteRune(rune(c))
	default:
		return fmt.Sprintf("(char)%02x", c)
	}
}
