package parse

import (
	"fmt"
	"io"

	"github.com/nanofmt/nanojson/debug"
	"github.com/nanofmt/nanojson/ir"
	"github.com/nanofmt/nanojson/token"
)

// Parse parses one JSON element from d. Trailing bytes after the element
// are not consumed.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{flags: DefaultFlags, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes, flags=%#x\n", len(d), pOpts.flags)
	}
	r := &reader{
		src:      token.NewSource(d),
		flags:    pOpts.flags,
		maxDepth: pOpts.maxDepth,
	}
	return r.run()
}

func ParseString(s string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Read reads all of src and parses one JSON element from it. The whole
// document is materialized; there is no streaming mode.
func Read(src io.Reader, opts ...Option) (*ir.Node, error) {
	d, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

type reader struct {
	src      *token.Source
	flags    Flags
	maxDepth int
	depth    int
}

func (r *reader) has(f Flags) bool {
	return r.flags&f != 0
}

func (r *reader) errf(reason string, encountered int) error {
	return &FormatError{Reason: reason, Encountered: encountered, Pos: r.src.Pos()}
}

func (r *reader) run() (*ir.Node, error) {
	if err := r.eatBOM(); err != nil {
		return nil, err
	}
	r.skipSpace()
	return r.readElement()
}

// readElement dispatches on the lookahead character. Callers have already
// skipped whitespace.
func (r *reader) readElement() (*ir.Node, error) {
	if r.maxDepth > 0 {
		r.depth++
		defer func() { r.depth-- }()
		if r.depth > r.maxDepth {
			return nil, fmt.Errorf("%w (%d) at %s", ErrTooDeep, r.maxDepth, r.src.Pos())
		}
	}

	switch r.src.Peek() {
	case 'n':
		if err := r.readLiteral("null"); err != nil {
			return nil, err
		}
		return ir.Null(), nil

	case 't':
		if err := r.readLiteral("true"); err != nil {
			return nil, err
		}
		return ir.FromBool(true), nil

	case 'f':
		if err := r.readLiteral("false"); err != nil {
			return nil, err
		}
		return ir.FromBool(false), nil

	case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return r.readNumber()

	case '"':
		s, err := r.readString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil

	case '[':
		return r.readArray()

	case '{':
		return r.readObject()
	}

	return nil, r.errf("invalid json format: expected an element", r.src.Peek())
}

// readLiteral matches lit character by character. Any deviation is a hard
// error; no partial literal is tolerated.
func (r *reader) readLiteral(lit string) error {
	for i := 0; i < len(lit); i++ {
		if !r.src.Accept(lit[i]) {
			return r.errf(fmt.Sprintf("invalid '%s' literal: expected '%c'", lit, lit[i]), r.src.Peek())
		}
	}
	return nil
}

func (r *reader) readArray() (*ir.Node, error) {
	r.src.Next() // '['
	res := ir.FromSlice(nil)

	r.skipSpace()
	if r.src.Accept(']') {
		return res, nil
	}
	for {
		elt, err := r.readElement()
		if err != nil {
			return nil, err
		}
		if err := res.Append(elt); err != nil {
			return nil, err
		}
		r.skipSpace()
		if r.src.Accept(',') {
			r.skipSpace()
			if r.has(AllowTrailingComma) && r.src.Accept(']') {
				break
			}
			if r.src.Peek() == ']' {
				return nil, r.errf("invalid array format: expected an element (trailing comma not allowed)", r.src.Peek())
			}
		} else if r.src.Accept(']') {
			break
		} else {
			return nil, r.errf("invalid array format: ',' or ']' expected", r.src.Peek())
		}
	}
	return res, nil
}

func (r *reader) readObject() (*ir.Node, error) {
	r.src.Next() // '{'
	res := ir.FromObject(nil)
	obj, _ := res.AsObject()

	r.skipSpace()
	if r.src.Accept('}') {
		return res, nil
	}
	for {
		var key string
		if r.src.Peek() == '"' {
			k, err := r.readString()
			if err != nil {
				return nil, err
			}
			key = k
		} else if r.has(AllowUnquotedKeys) {
			key = r.readUnquotedKey()
		} else {
			return nil, r.errf("invalid object format: expected object key", r.src.Peek())
		}

		r.skipSpace()
		if !r.src.Accept(':') {
			return nil, r.errf("invalid object format: expected a ':'", r.src.Peek())
		}
		r.skipSpace()

		val, err := r.readElement()
		if err != nil {
			return nil, err
		}
		// insert-or-assign: a duplicate key overwrites in place, keeping
		// the first occurrence's position.
		obj.Set(key, val)

		r.skipSpace()
		if r.src.Accept(',') {
			r.skipSpace()
			if r.has(AllowTrailingComma) && r.src.Accept('}') {
				break
			}
			if r.src.Peek() == '}' {
				return nil, r.errf("invalid object format: expected an element (trailing comma not allowed)", r.src.Peek())
			}
		} else if r.src.Accept('}') {
			break
		} else {
			return nil, r.errf("invalid object format: expected ',' or '}'", r.src.Peek())
		}
	}
	return res, nil
}

func (r *reader) eatBOM() error {
	if r.has(AllowUTF8BOM) && r.src.Accept(0xEF) {
		if !r.src.Accept(0xBB) {
			return r.errf("invalid json format: UTF-8 BOM sequence expected... 0xBB", r.src.Peek())
		}
		if !r.src.Accept(0xBF) {
			return r.errf("invalid json format: UTF-8 BOM sequence expected... 0xBF", r.src.Peek())
		}
		return nil
	}
	if r.src.Peek() == 0xEF {
		return r.errf("invalid json format: expected an element. (UTF-8 BOM not allowed)", 0xEF)
	}
	return nil
}

func (r *reader) skipSpace() {
	for {
		for {
			c := r.src.Peek()
			if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
				r.src.Next()
				continue
			}
			break
		}
		if r.has(AllowComments) && r.src.Accept('/') {
			if r.src.Accept('*') { // block comment
				for {
					c := r.src.Next()
					if c == token.EOF {
						break
					}
					if c == '*' && r.src.Accept('/') {
						break
					}
				}
			} else if r.src.Accept('/') { // line comment
				for {
					c := r.src.Next()
					if c == token.EOF || c == '\n' {
						break
					}
				}
			}
			continue
		}
		break
	}
}
