// Package encode serializes IR nodes to JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	out, err := encode.String(node)
//
//	// Pretty-printed, to a writer
//	err = encode.Encode(node, w, encode.Pretty(true))
//
// Undefined nodes and NaN floats are not representable in JSON and fail
// with ErrBadValue, unless Dump(true) requests the annotated non-conforming
// placeholders for diagnostics.
//
// # Related Packages
//
//   - github.com/nanofmt/nanojson/ir - IR representation
//   - github.com/nanofmt/nanojson/parse - Parse text to IR
package encode
