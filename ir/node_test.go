package ir

import (
	"errors"
	"testing"
)

func TestNodeAccess(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("alice")},
		{Key: "age", Val: FromInt(30)},
		{Key: "score", Val: FromFloat(1.5)},
		{Key: "admin", Val: FromBool(true)},
		{Key: "tags", Val: FromSlice([]*Node{FromString("a"), FromString("b")})},
		{Key: "nothing", Val: Null()},
	})

	if got, err := n.Field("name").GetString(); err != nil || got != "alice" {
		t.Errorf("name: got %q, %v", got, err)
	}
	if got, err := n.Field("age").GetInt(); err != nil || got != 30 {
		t.Errorf("age: got %d, %v", got, err)
	}
	if got, err := n.Field("score").GetFloat(); err != nil || got != 1.5 {
		t.Errorf("score: got %v, %v", got, err)
	}
	if got, err := n.Field("admin").GetBool(); err != nil || !got {
		t.Errorf("admin: got %v, %v", got, err)
	}
	if !n.Field("nothing").IsNull() {
		t.Errorf("nothing: expected null")
	}
	if got := n.Field("tags").Len(); got != 2 {
		t.Errorf("tags len: got %d", got)
	}
	if got, err := n.Field("tags").Elem(1).GetString(); err != nil || got != "b" {
		t.Errorf("tags[1]: got %q, %v", got, err)
	}
}

func TestNodeNumberBridging(t *testing.T) {
	i := FromInt(30)
	f := FromFloat(1.5)

	if v, err := i.GetNumber(); err != nil || v != 30.0 {
		t.Errorf("integer as number: got %v, %v", v, err)
	}
	if v, err := f.GetNumber(); err != nil || v != 1.5 {
		t.Errorf("float as number: got %v, %v", v, err)
	}
	// the variants stay distinct
	if _, err := i.GetFloat(); !errors.Is(err, ErrBadAccess) {
		t.Errorf("integer as float: expected ErrBadAccess, got %v", err)
	}
	if _, err := f.GetInt(); !errors.Is(err, ErrBadAccess) {
		t.Errorf("float as integer: expected ErrBadAccess, got %v", err)
	}
}

func TestNodeMissingReads(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
	})

	// deep chains through missing members never panic and never allocate
	// into the tree
	got := n.Field("missing").Field("deeper").Elem(4)
	if !got.IsUndefined() {
		t.Errorf("missing chain: got %s", got.Type())
	}
	if n.Len() != 1 {
		t.Errorf("read-only traversal grew the tree: len %d", n.Len())
	}

	if got := n.Field("missing").IntOr(42); got != 42 {
		t.Errorf("IntOr: got %d", got)
	}
	if got := n.Field("a").IntOr(42); got != 1 {
		t.Errorf("IntOr present: got %d", got)
	}
	if got := n.Field("missing").StringOr("def"); got != "def" {
		t.Errorf("StringOr: got %q", got)
	}
	if got := n.Field("missing").BoolOr(true); !got {
		t.Errorf("BoolOr: got %v", got)
	}

	_, err := n.Field("missing").GetString()
	if !errors.Is(err, ErrBadAccess) {
		t.Errorf("GetString on undefined: expected ErrBadAccess, got %v", err)
	}
}

func TestNodeFieldOnNonObject(t *testing.T) {
	for _, n := range []*Node{Null(), FromInt(1), FromString("x"), FromSlice(nil)} {
		if got := n.Field("k"); !got.IsUndefined() {
			t.Errorf("%s: Field got %s", n.Type(), got.Type())
		}
	}
	for _, n := range []*Node{Null(), FromInt(1), FromString("x"), FromObject(nil)} {
		if got := n.Elem(0); !got.IsUndefined() {
			t.Errorf("%s: Elem got %s", n.Type(), got.Type())
		}
	}
}

func TestNodeAppend(t *testing.T) {
	n := FromSlice(nil)
	if err := n.Append(FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if err := n.Append(FromInt(2)); err != nil {
		t.Fatal(err)
	}
	if n.Len() != 2 {
		t.Errorf("len: got %d", n.Len())
	}
	if err := FromInt(1).Append(Null()); !errors.Is(err, ErrBadAccess) {
		t.Errorf("append to integer: expected ErrBadAccess, got %v", err)
	}
}

func TestNodeClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
		{Key: "b", Val: FromString("x")},
	})
	clone := orig.Clone()
	if !orig.Equal(clone) {
		t.Fatal("clone not equal")
	}

	if _, err := clone.Field("a").At(0).Set(FromInt(9)); err != nil {
		t.Fatal(err)
	}
	if got, _ := orig.Field("a").Elem(0).AsInt(); got != 1 {
		t.Errorf("clone mutation leaked into original: got %d", got)
	}
}

func TestNodeEqual(t *testing.T) {
	mk := func() *Node {
		return FromKeyVals([]KeyVal{
			{Key: "a", Val: FromInt(1)},
			{Key: "b", Val: FromSlice([]*Node{Null(), FromBool(true)})},
		})
	}
	if !mk().Equal(mk()) {
		t.Error("identical trees not equal")
	}
	if FromInt(1).Equal(FromFloat(1)) {
		t.Error("integer 1 equal to float 1")
	}
	if Undefined().Equal(Null()) {
		t.Error("undefined equal to null")
	}
	if !Undefined().Equal(Undefined()) {
		t.Error("undefined not equal to undefined")
	}

	// key order matters
	a := FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}, {Key: "y", Val: FromInt(2)}})
	b := FromKeyVals([]KeyVal{{Key: "y", Val: FromInt(2)}, {Key: "x", Val: FromInt(1)}})
	if a.Equal(b) {
		t.Error("reordered objects compare equal")
	}
}
