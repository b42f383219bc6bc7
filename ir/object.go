package ir

// KeyVal is one object member.
type KeyVal struct {
	Key string
	Val *Node
}

// Object is the insertion-ordered member container of the object variant.
// It is a plain sequence of pairs: every operation is a linear scan through
// a pluggable key-equality comparer. The trade is deliberate — preserved
// order and zero index overhead for the small objects JSON documents
// typically hold. Keys are unique; Set on an existing key assigns in place
// without moving it.
type Object struct {
	kvs []KeyVal
	eq  func(a, b string) bool
}

func NewObject() *Object {
	return &Object{}
}

// NewObjectFunc makes an Object using eq as the key comparer.
func NewObjectFunc(eq func(a, b string) bool) *Object {
	return &Object{eq: eq}
}

func (o *Object) Len() int {
	return len(o.kvs)
}

func (o *Object) find(key string) int {
	if o.eq == nil {
		for i := range o.kvs {
			if o.kvs[i].Key == key {
				return i
			}
		}
		return -1
	}
	for i := range o.kvs {
		if o.eq(key, o.kvs[i].Key) {
			return i
		}
	}
	return -1
}

func (o *Object) Has(key string) bool {
	return o.find(key) >= 0
}

func (o *Object) Get(key string) (*Node, bool) {
	if i := o.find(key); i >= 0 {
		return o.kvs[i].Val, true
	}
	return nil, false
}

// Set inserts or assigns. An existing key keeps its position and its value
// node is overwritten in place; a new key is appended. Reports whether the
// key was inserted.
func (o *Object) Set(key string, v *Node) bool {
	v = adopt(v)
	if i := o.find(key); i >= 0 {
		*o.kvs[i].Val = *v
		return false
	}
	o.kvs = append(o.kvs, KeyVal{Key: key, Val: v})
	return true
}

func (o *Object) Delete(key string) bool {
	i := o.find(key)
	if i < 0 {
		return false
	}
	o.kvs = append(o.kvs[:i], o.kvs[i+1:]...)
	return true
}

// At returns the i-th member in insertion order.
func (o *Object) At(i int) KeyVal {
	return o.kvs[i]
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.kvs))
	for i := range o.kvs {
		keys[i] = o.kvs[i].Key
	}
	return keys
}

// Pairs returns the members in insertion order. The value nodes are shared
// with the container; the slice is not.
func (o *Object) Pairs() []KeyVal {
	res := make([]KeyVal, len(o.kvs))
	copy(res, o.kvs)
	return res
}

func (o *Object) Clone() *Object {
	res := &Object{eq: o.eq}
	res.kvs = make([]KeyVal, len(o.kvs))
	for i := range o.kvs {
		res.kvs[i] = KeyVal{Key: o.kvs[i].Key, Val: o.kvs[i].Val.Clone()}
	}
	return res
}

func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.kvs) != len(other.kvs) {
		return false
	}
	for i := range o.kvs {
		if o.kvs[i].Key != other.kvs[i].Key {
			return false
		}
		if !o.kvs[i].Val.Equal(other.kvs[i].Val) {
			return false
		}
	}
	return true
}
