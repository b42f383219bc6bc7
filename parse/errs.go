package parse

import (
	"errors"
	"fmt"

	"github.com/nanofmt/nanojson/token"
)

var (
	// ErrBadFormat is the base of every syntax error.
	ErrBadFormat = errors.New("bad format")

	// ErrTooDeep is returned when input nesting exceeds the configured
	// maximum depth.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// FormatError is a positioned syntax error.
type FormatError struct {
	Reason string
	// Encountered is the offending lookahead character, token.EOF at end
	// of input, or -2 when no character applies.
	Encountered int
	Pos         token.Pos
}

// noChar marks a FormatError without an offending character.
const noChar = -2

func (e *FormatError) Error() string {
	if e.Encountered == noChar {
		return fmt.Sprintf("bad format: %s at %s", e.Reason, e.Pos)
	}
	return fmt.Sprintf("bad format: %s but encountered %s at %s",
		e.Reason, token.Describe(e.Encountered), e.Pos)
}

func (e *FormatError) Unwrap() error {
	return ErrBadFormat
}
