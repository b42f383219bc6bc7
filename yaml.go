package nanojson

import (
	"fmt"
	"math"

	"github.com/nanofmt/nanojson/encode"
	"github.com/nanofmt/nanojson/ir"

	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document into an IR node. Mapping order is
// preserved.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return yamlToNode(v)
}

// ToYAML serializes node as a YAML document. Undefined and NaN nodes are
// rejected as in JSON encoding.
func ToYAML(node *ir.Node) ([]byte, error) {
	v, err := nodeToYAML(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func yamlToNode(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(v), nil
	case int:
		return ir.FromInt(int64(v)), nil
	case int64:
		return ir.FromInt(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return ir.FromFloat(float64(v)), nil
		}
		return ir.FromInt(int64(v)), nil
	case float64:
		return ir.FromFloat(v), nil
	case string:
		return ir.FromString(v), nil
	case []any:
		elems := make([]*ir.Node, 0, len(v))
		for _, e := range v {
			n, err := yamlToNode(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, n)
		}
		return ir.FromSlice(elems), nil
	case yaml.MapSlice:
		obj := ir.NewObject()
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v (%T)", item.Key, item.Key)
			}
			val, err := yamlToNode(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return ir.FromObject(obj), nil
	default:
		return nil, fmt.Errorf("unsupported yaml value of type %T", v)
	}
}

func nodeToYAML(node *ir.Node) (any, error) {
	switch node.Type() {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		v, _ := node.AsBool()
		return v, nil
	case ir.IntegerType:
		v, _ := node.AsInt()
		return v, nil
	case ir.FloatType:
		v, _ := node.AsFloat()
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: NaN is not allowed", encode.ErrBadValue)
		}
		return v, nil
	case ir.StringType:
		v, _ := node.AsString()
		return v, nil
	case ir.ArrayType:
		elems, _ := node.AsArray()
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			v, err := nodeToYAML(e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case ir.ObjectType:
		obj, _ := node.AsObject()
		out := make(yaml.MapSlice, 0, obj.Len())
		for i := 0; i < obj.Len(); i++ {
			kv := obj.At(i)
			v, err := nodeToYAML(kv.Val)
			if err != nil {
				return nil, err
			}
			out = append(out, yaml.MapItem{Key: kv.Key, Value: v})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is not representable", encode.ErrBadValue, node.Type())
	}
}
