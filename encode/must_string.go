package encode

import (
	"bytes"

	"github.com/nanofmt/nanojson/ir"
)

// MustString is String for values known to be representable, such as
// freshly parsed trees. It panics on undefined or NaN.
func MustString(node *ir.Node, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
