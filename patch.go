package nanojson

import (
	"github.com/nanofmt/nanojson/encode"
	"github.com/nanofmt/nanojson/ir"
	"github.com/nanofmt/nanojson/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyPatch applies an RFC 6902 JSON patch to doc and returns the patched
// tree. Both arguments are round-tripped through the codec, so neither may
// contain undefined or NaN nodes. doc is not modified.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	pd, err := encode.Bytes(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	d, err := encode.Bytes(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// ApplyMergePatch applies an RFC 7386 merge patch to doc and returns the
// patched tree. doc is not modified.
func ApplyMergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := encode.Bytes(doc)
	if err != nil {
		return nil, err
	}
	pd, err := encode.Bytes(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, pd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
