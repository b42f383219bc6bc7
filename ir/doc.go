// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of [Node] values. Node is a closed tagged union over
// eight variants: undefined, null, boolean, integer, float, string, array
// and object. Exactly one variant is active at a time; the active variant
// determines the behavior of every accessor. Undefined is distinct from
// null: undefined means "no such node" (the result of a failed lookup),
// null is the JSON literal.
//
// Numbers are split into two variants. An integer is an exact signed 64-bit
// value, a float is a binary floating value. The derived notion "number"
// unifies the two for reading (see [Node.AsNumber]) but is never stored.
//
// A node owns its children outright: the tree has no shared subtrees and no
// back references, [Node.Clone] deep-copies, and value equality
// ([Node.Equal]) is structural and order-sensitive for both arrays and
// objects.
//
// # Reading
//
// Reads never fail. [Node.Field] and [Node.Elem] return the undefined
// sentinel on any miss and chain safely:
//
//	port := doc.Field("server").Field("port").IntOr(8080)
//
// Requiring a concrete variant is the only read that can fail:
//
//	s, err := node.GetString() // ErrBadAccess if node is not a string
//
// # Writing
//
// Mutation goes through [Ref], a short-lived cursor supporting lazy
// materialization of intermediate containers:
//
//	doc.Key("a").At(2).Set(ir.FromInt(5)) // doc was {}; now {"a":[null,null,5]}
//
// # Objects
//
// The object variant stores its members in an insertion-ordered [Object]
// container. Key order reflects first insertion and is never re-sorted;
// assigning an existing key keeps its position.
package ir
