package ir

// Equal reports structural value equality. Arrays compare element by
// element in order; objects compare member by member in insertion order.
// The integer and float variants are distinct: FromInt(1) does not equal
// FromFloat(1).
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.typ != other.typ {
		return false
	}
	switch n.typ {
	case UndefinedType, NullType:
		return true
	case BoolType:
		return n.b == other.b
	case IntegerType:
		return n.i == other.i
	case FloatType:
		return n.f == other.f
	case StringType:
		return n.s == other.s
	case ArrayType:
		if len(n.arr) != len(other.arr) {
			return false
		}
		for i := range n.arr {
			if !n.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		return n.obj.Equal(other.obj)
	}
	return false
}
