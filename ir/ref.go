package ir

import (
	"fmt"

	"github.com/nanofmt/nanojson/debug"
)

type refKind int

const (
	// refNil points nowhere: the reference was derived by indexing a
	// scalar, or from another nil reference. Writes through it fail.
	refNil refKind = iota
	// refNode points at a real node in a tree.
	refNode
	// refArraySlot and refObjectSlot are write-only virtual slots: the
	// target storage does not exist yet. Reading through them yields
	// undefined; the first Set materializes them.
	refArraySlot
	refObjectSlot
)

// Ref is a short-lived write-through cursor over a node slot. Indexing past
// the end of an array or past a missing object key yields a virtual slot
// instead of failing, so chains like
//
//	doc.Key("a").At(2).Set(v)
//
// work without pre-building the intermediate containers. Assignment
// materializes storage bottom-up and then repoints the cursor at the
// now-real slot, so a second Set through the same Ref replaces in place.
type Ref struct {
	kind refKind
	node *Node // refNode target
	base *Ref  // pending slots: reference to the container-to-be
	idx  int   // refArraySlot
	key  string
}

// At derives a write-capable reference to element i of an array node.
func (n *Node) At(i int) *Ref {
	return (&Ref{kind: refNode, node: n}).At(i)
}

// Key derives a write-capable reference to the member named key of an
// object node.
func (n *Node) Key(key string) *Ref {
	return (&Ref{kind: refNode, node: n}).Key(key)
}

// At indexes the referenced slot as an array. On a real array node it
// resolves existing elements directly; past-the-end indices and pending
// slots yield a further pending slot.
func (r *Ref) At(i int) *Ref {
	if i < 0 {
		return &Ref{}
	}
	switch r.kind {
	case refNode:
		if r.node.typ != ArrayType {
			return &Ref{}
		}
		if i < len(r.node.arr) {
			return &Ref{kind: refNode, node: r.node.arr[i]}
		}
		return &Ref{kind: refArraySlot, base: r, idx: i}
	case refArraySlot, refObjectSlot:
		return &Ref{kind: refArraySlot, base: r, idx: i}
	}
	return &Ref{}
}

// Key indexes the referenced slot as an object.
func (r *Ref) Key(key string) *Ref {
	switch r.kind {
	case refNode:
		if r.node.typ != ObjectType {
			return &Ref{}
		}
		if v, ok := r.node.obj.Get(key); ok {
			return &Ref{kind: refNode, node: v}
		}
		return &Ref{kind: refObjectSlot, base: r, key: key}
	case refArraySlot, refObjectSlot:
		return &Ref{kind: refObjectSlot, base: r, key: key}
	}
	return &Ref{}
}

// IsVirtual reports whether the reference is a not-yet-materialized slot.
func (r *Ref) IsVirtual() bool {
	return r.kind == refArraySlot || r.kind == refObjectSlot
}

// Resolved reports whether the reference points at a real node.
func (r *Ref) Resolved() bool {
	return r.kind == refNode
}

// Value reads through the reference. Virtual and nil references read as the
// undefined sentinel.
func (r *Ref) Value() *Node {
	if r.kind == refNode {
		return r.node
	}
	return undefined
}

// Set assigns v to the referenced slot and returns the in-tree node.
//
// A real slot is replaced in place. A virtual slot materializes: the parent
// container is grown or inserted into first (arrays fill intervening
// indices with null), the child reference is re-derived from the grown
// container, and the cursor repoints at it. The re-derivation is mandatory:
// a child address computed before the growth may not survive it.
func (r *Ref) Set(v *Node) (*Node, error) {
	v = adopt(v)
	switch r.kind {
	case refNode:
		*r.node = *v
		return r.node, nil

	case refArraySlot:
		parent, err := r.base.container(ArrayType)
		if err != nil {
			return nil, err
		}
		for len(parent.arr) <= r.idx {
			parent.arr = append(parent.arr, Null())
		}
		child := parent.arr[r.idx]
		*child = *v
		if debug.Ref() {
			debug.Logf("ref: materialized array slot %d (len now %d)\n", r.idx, len(parent.arr))
		}
		r.kind, r.node, r.base = refNode, child, nil
		return child, nil

	case refObjectSlot:
		parent, err := r.base.container(ObjectType)
		if err != nil {
			return nil, err
		}
		var child *Node
		if existing, ok := parent.obj.Get(r.key); ok {
			*existing = *v
			child = existing
		} else {
			parent.obj.Set(r.key, v)
			child = v
		}
		if debug.Ref() {
			debug.Logf("ref: materialized object slot %q\n", r.key)
		}
		r.kind, r.node, r.base = refNode, child, nil
		return child, nil
	}
	return nil, fmt.Errorf("%w: write through nil reference", ErrBadAccess)
}

// container resolves r to a node of the wanted container type,
// materializing pending slots with a fresh empty container.
func (r *Ref) container(want Type) (*Node, error) {
	switch r.kind {
	case refNode:
		if r.node.typ == want {
			return r.node, nil
		}
		return nil, fmt.Errorf("%w: cannot write through %s node as %s", ErrBadAccess, r.node.typ, want)
	case refArraySlot, refObjectSlot:
		if want == ArrayType {
			return r.Set(FromSlice(nil))
		}
		return r.Set(FromObject(nil))
	}
	return nil, fmt.Errorf("%w: write through nil reference", ErrBadAccess)
}
