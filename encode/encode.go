package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nanofmt/nanojson/debug"
	"github.com/nanofmt/nanojson/ir"
	"github.com/nanofmt/nanojson/token"
)

// Encode writes node as JSON text to w. Compact by default; see Pretty,
// Dump, FloatFormat, FloatPrecision and WithColors for the knobs.
func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &EncState{floatFmt: 'g', floatPrec: -1}
	for _, opt := range opts {
		opt(es)
	}
	if !es.pretty && !es.dump {
		// compact output is wire output; never colorize it
		es.colors = nil
	}
	if debug.Encode() {
		debug.Logf("encode: %s node, pretty=%v dump=%v\n", node.Type(), es.pretty, es.dump)
	}
	return encode(node, w, es)
}

// String encodes node to a string.
func String(node *ir.Node, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Bytes encodes node to a byte slice.
func Bytes(node *ir.Node, opts ...Option) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(t, attr, s)
}

func (es *EncState) indent() string {
	return strings.Repeat("  ", es.depth)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type() {
	case ir.UndefinedType:
		return encodeUndefined(w, es)
	case ir.NullType:
		return encodeNull(w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.IntegerType:
		return encodeInteger(node, w, es)
	case ir.FloatType:
		return encodeFloat(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		panic("type")
	}
}

func writeDump(w io.Writer, es *EncState, annotation string) error {
	if !es.dump {
		return nil
	}
	return writeString(w, es.color(ir.UndefinedType, CommentColor, annotation))
}

func encodeUndefined(w io.Writer, es *EncState) error {
	if es.dump {
		return writeString(w, "/***  UNDEFINED  ***/ undefined /* not allowed */")
	}
	return fmt.Errorf("%w: undefined is not allowed", ErrBadValue)
}

func encodeNull(w io.Writer, es *EncState) error {
	if err := writeDump(w, es, "/***  NULL  ***/ "); err != nil {
		return err
	}
	return writeString(w, es.color(ir.NullType, ValueColor, "null"))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeDump(w, es, "/***  BOOLEAN  ***/ "); err != nil {
		return err
	}
	v, _ := node.AsBool()
	s := "false"
	if v {
		s = "true"
	}
	return writeString(w, es.color(ir.BoolType, ValueColor, s))
}

func encodeInteger(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeDump(w, es, "/***  INTEGER  ***/ "); err != nil {
		return err
	}
	v, _ := node.AsInt()
	return writeString(w, es.color(ir.IntegerType, ValueColor, strconv.FormatInt(v, 10)))
}

func encodeFloat(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeDump(w, es, "/***  FLOATING  ***/ "); err != nil {
		return err
	}
	v, _ := node.AsFloat()
	if math.IsNaN(v) {
		if es.dump {
			return writeString(w, "NaN /* not allowed */")
		}
		return fmt.Errorf("%w: NaN is not allowed", ErrBadValue)
	}
	if math.IsInf(v, 0) {
		// a sentinel no conforming parser can represent finitely: generic
		// consumers clamp it back to an infinity-sized value instead of
		// failing on a bare Infinity literal
		s := "1.0e999999999"
		if v < 0 {
			s = "-1.0e999999999"
		}
		return writeString(w, es.color(ir.FloatType, ValueColor, s))
	}
	return writeString(w, es.color(ir.FloatType, ValueColor, formatFloat(v, es.floatFmt, es.floatPrec)))
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v, _ := node.AsString()
	if es.dump {
		annotation := fmt.Sprintf("/***  STRING[%d]  ***/ ", len(v))
		if err := writeString(w, es.color(ir.UndefinedType, CommentColor, annotation)); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.StringType, ValueColor, token.Quote(v)))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	elems, _ := node.AsArray()
	if es.dump {
		annotation := fmt.Sprintf("/***  ARRAY[%d]  ***/ ", len(elems))
		if err := writeString(w, es.color(ir.UndefinedType, CommentColor, annotation)); err != nil {
			return err
		}
	}
	if len(elems) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elem := range elems {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if es.pretty {
			if err := writeString(w, "\n"+es.indent()); err != nil {
				return err
			}
		}
		if err := encode(elem, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.pretty {
		if err := writeString(w, "\n"+es.indent()); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	obj, _ := node.AsObject()
	if es.dump {
		annotation := fmt.Sprintf("/***  OBJECT[%d]  ***/ ", obj.Len())
		if err := writeString(w, es.color(ir.UndefinedType, CommentColor, annotation)); err != nil {
			return err
		}
	}
	if obj.Len() == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < obj.Len(); i++ {
		kv := obj.At(i)
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if es.pretty {
			if err := writeString(w, "\n"+es.indent()); err != nil {
				return err
			}
		}
		if err := writeString(w, es.color(ir.ObjectType, FieldColor, token.Quote(kv.Key))); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.ObjectType, SepColor, ":")); err != nil {
			return err
		}
		if es.pretty {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(kv.Val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.pretty {
		if err := writeString(w, "\n"+es.indent()); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}
