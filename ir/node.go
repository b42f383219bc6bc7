package ir

import "fmt"

// Node is a JSON tree node. The discriminant and the per-variant payloads
// are unexported so that exactly one variant is active at a time; all access
// goes through the typed accessors.
type Node struct {
	typ Type

	b   bool
	i   int64
	f   float64
	s   string
	arr []*Node
	obj *Object
}

// undefined is the shared sentinel returned by failed lookups. It is never
// placed inside a tree (see adopt) and no Ref can target it, so it stays
// immutable.
var undefined = &Node{}

// adopt prepares v for insertion into a tree. The sentinel and nil are
// replaced by a fresh undefined node.
func adopt(v *Node) *Node {
	if v == nil || v == undefined {
		return &Node{}
	}
	return v
}

func Undefined() *Node {
	return &Node{}
}

func Null() *Node {
	return &Node{typ: NullType}
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, b: v}
}

func FromInt(v int64) *Node {
	return &Node{typ: IntegerType, i: v}
}

func FromFloat(v float64) *Node {
	return &Node{typ: FloatType, f: v}
}

func FromString(v string) *Node {
	return &Node{typ: StringType, s: v}
}

// FromSlice makes an array node owning the given elements.
func FromSlice(elems []*Node) *Node {
	n := &Node{typ: ArrayType, arr: make([]*Node, len(elems))}
	for i, e := range elems {
		n.arr[i] = adopt(e)
	}
	return n
}

// FromObject makes an object node owning the given container. A nil obj
// yields an empty object.
func FromObject(obj *Object) *Node {
	if obj == nil {
		obj = NewObject()
	}
	return &Node{typ: ObjectType, obj: obj}
}

// FromKeyVals makes an object node from pairs, with insert-or-assign
// semantics for duplicate keys.
func FromKeyVals(kvs []KeyVal) *Node {
	obj := NewObject()
	for _, kv := range kvs {
		obj.Set(kv.Key, adopt(kv.Val))
	}
	return FromObject(obj)
}

func (n *Node) Type() Type {
	return n.typ
}

func (n *Node) IsDefined() bool   { return n.typ != UndefinedType }
func (n *Node) IsUndefined() bool { return n.typ == UndefinedType }
func (n *Node) IsNull() bool      { return n.typ == NullType }
func (n *Node) IsBool() bool      { return n.typ == BoolType }
func (n *Node) IsInteger() bool   { return n.typ == IntegerType }
func (n *Node) IsFloat() bool     { return n.typ == FloatType }
func (n *Node) IsNumber() bool    { return n.typ.IsNumber() }
func (n *Node) IsString() bool    { return n.typ == StringType }
func (n *Node) IsArray() bool     { return n.typ == ArrayType }
func (n *Node) IsObject() bool    { return n.typ == ObjectType }

// As* accessors never fail; the second result reports whether the variant
// matched.

func (n *Node) AsBool() (bool, bool) {
	return n.b, n.typ == BoolType
}

func (n *Node) AsInt() (int64, bool) {
	return n.i, n.typ == IntegerType
}

func (n *Node) AsFloat() (float64, bool) {
	return n.f, n.typ == FloatType
}

// AsNumber unifies the integer and float variants as float64.
func (n *Node) AsNumber() (float64, bool) {
	switch n.typ {
	case IntegerType:
		return float64(n.i), true
	case FloatType:
		return n.f, true
	}
	return 0, false
}

func (n *Node) AsString() (string, bool) {
	return n.s, n.typ == StringType
}

// AsArray returns the element slice of an array node. The slice aliases the
// node's storage.
func (n *Node) AsArray() ([]*Node, bool) {
	return n.arr, n.typ == ArrayType
}

// AsObject returns the ordered member container of an object node.
func (n *Node) AsObject() (*Object, bool) {
	return n.obj, n.typ == ObjectType
}

func (n *Node) badAccess(want Type) error {
	return fmt.Errorf("%w: %s node is not %s", ErrBadAccess, n.typ, want)
}

// Get* accessors require the concrete variant and fail with ErrBadAccess
// otherwise.

func (n *Node) GetBool() (bool, error) {
	if n.typ != BoolType {
		return false, n.badAccess(BoolType)
	}
	return n.b, nil
}

func (n *Node) GetInt() (int64, error) {
	if n.typ != IntegerType {
		return 0, n.badAccess(IntegerType)
	}
	return n.i, nil
}

func (n *Node) GetFloat() (float64, error) {
	if n.typ != FloatType {
		return 0, n.badAccess(FloatType)
	}
	return n.f, nil
}

func (n *Node) GetNumber() (float64, error) {
	if v, ok := n.AsNumber(); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s node is not a number", ErrBadAccess, n.typ)
}

func (n *Node) GetString() (string, error) {
	if n.typ != StringType {
		return "", n.badAccess(StringType)
	}
	return n.s, nil
}

func (n *Node) GetArray() ([]*Node, error) {
	if n.typ != ArrayType {
		return nil, n.badAccess(ArrayType)
	}
	return n.arr, nil
}

func (n *Node) GetObject() (*Object, error) {
	if n.typ != ObjectType {
		return nil, n.badAccess(ObjectType)
	}
	return n.obj, nil
}

// *Or accessors substitute the default on a variant mismatch.

func (n *Node) BoolOr(def bool) bool {
	if n.typ == BoolType {
		return n.b
	}
	return def
}

func (n *Node) IntOr(def int64) int64 {
	if n.typ == IntegerType {
		return n.i
	}
	return def
}

func (n *Node) FloatOr(def float64) float64 {
	if n.typ == FloatType {
		return n.f
	}
	return def
}

func (n *Node) NumberOr(def float64) float64 {
	if v, ok := n.AsNumber(); ok {
		return v
	}
	return def
}

func (n *Node) StringOr(def string) string {
	if n.typ == StringType {
		return n.s
	}
	return def
}

// Field reads the member named key. It returns the undefined sentinel when
// n is not an object or the key is absent, so lookups chain without error
// handling.
func (n *Node) Field(key string) *Node {
	if n.typ == ObjectType {
		if v, ok := n.obj.Get(key); ok {
			return v
		}
	}
	return undefined
}

// Elem reads the element at index i, with the same miss behavior as Field.
func (n *Node) Elem(i int) *Node {
	if n.typ == ArrayType && i >= 0 && i < len(n.arr) {
		return n.arr[i]
	}
	return undefined
}

// Len is the element count of an array or member count of an object, zero
// for every other variant.
func (n *Node) Len() int {
	switch n.typ {
	case ArrayType:
		return len(n.arr)
	case ObjectType:
		return n.obj.Len()
	}
	return 0
}

// Append appends v to an array node.
func (n *Node) Append(v *Node) error {
	if n.typ != ArrayType {
		return n.badAccess(ArrayType)
	}
	n.arr = append(n.arr, adopt(v))
	return nil
}

// Clone deep-copies the subtree rooted at n.
func (n *Node) Clone() *Node {
	res := &Node{typ: n.typ, b: n.b, i: n.i, f: n.f, s: n.s}
	if n.arr != nil {
		res.arr = make([]*Node, len(n.arr))
		for i, e := range n.arr {
			res.arr[i] = e.Clone()
		}
	}
	if n.obj != nil {
		res.obj = n.obj.Clone()
	}
	return res
}
