// Package nanojson is a small JSON codec around an ordered, mutable value
// tree.
//
// # Usage
//
//	doc, err := nanojson.ParseString(`{"user": {"name": "alice"}}`)
//	name, _ := doc.Field("user").Field("name").AsString()
//
//	// lazy writes materialize intermediate containers
//	doc.Key("tags").At(2).Set(ir.FromString("admin"))
//
//	out, err := nanojson.Format(doc)
//
// Parsing, encoding and the value model live in the parse, encode and ir
// subpackages; this package re-exports the common entry points and adds
// document-level operations (patch, merge patch, diff, YAML interop).
package nanojson

import (
	"io"

	"github.com/nanofmt/nanojson/encode"
	"github.com/nanofmt/nanojson/ir"
	"github.com/nanofmt/nanojson/parse"
)

// Parse parses JSON text into an IR node.
func Parse(d []byte, opts ...parse.Option) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses JSON text into an IR node.
func ParseString(s string, opts ...parse.Option) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Read consumes one JSON element from rd.
func Read(rd io.Reader, opts ...parse.Option) (*ir.Node, error) {
	return parse.Read(rd, opts...)
}

// Format serializes node to a string.
func Format(node *ir.Node, opts ...encode.Option) (string, error) {
	return encode.String(node, opts...)
}

// Write serializes node to w.
func Write(w io.Writer, node *ir.Node, opts ...encode.Option) error {
	return encode.Encode(node, w, opts...)
}
