// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with leniency extensions
//	node, err = parse.Parse(data, parse.Loose())
//
//	// Parse from a string, or from a reader
//	node, err = parse.ParseString(`[1, 2, 3]`)
//	node, err = parse.Read(r)
//
// The strict baseline is RFC 8259. Leniency is a bitmask of independent
// extensions (see Flags); the default enables only UTF-8 BOM tolerance and
// unescaped forward slashes.
//
// Errors carry a reason, the offending character and a 1-based position;
// they unwrap to ErrBadFormat (or ErrTooDeep for the nesting guard).
//
// # Related Packages
//
//   - github.com/nanofmt/nanojson/ir - IR representation
//   - github.com/nanofmt/nanojson/encode - Encode IR to text
//   - github.com/nanofmt/nanojson/token - Input cursor
package parse
