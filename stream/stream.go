// Package stream converts node containers to lazy sequences and back.
//
// Sequences are finite and freshly created per call; nothing is
// produced until the caller ranges over them. Collection always builds
// a new container and never touches the source nodes.
package stream

import (
	"iter"

	"github.com/signadot/nodeops/ir"
)

// Values yields the elements of an array node in container order.
// A non-array node yields nothing.
func Values(y *ir.Node) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		if y == nil || y.Type != ir.ArrayType {
			return
		}
		for _, v := range y.Values {
			if !yield(v) {
				return
			}
		}
	}
}

// Of treats any node as a sequence: an array yields its elements,
// null and missing yield nothing, and any other node yields itself
// once.
func Of(y *ir.Node) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		if y == nil {
			return
		}
		switch y.Type {
		case ir.ArrayType:
			for _, v := range y.Values {
				if !yield(v) {
					return
				}
			}
		case ir.NullType, ir.MissingType:
		default:
			yield(y)
		}
	}
}

// Fields yields the entries of an object node in its native iteration
// order. Callers must not depend on a specific order.
func Fields(y *ir.Node) iter.Seq2[string, *ir.Node] {
	return func(yield func(string, *ir.Node) bool) {
		if y == nil || y.Type != ir.ObjectType {
			return
		}
		for _, f := range y.Fields {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

// Collect drains seq into a new array node, preserving order and
// duplicates.
func Collect(seq iter.Seq[*ir.Node]) *ir.Node {
	c := NewArrayCollector()
	for v := range seq {
		c.Add(v)
	}
	return c.Finish()
}

// CollectFields drains seq into a new object node; when two entries
// share a key the later one wins.
func CollectFields(seq iter.Seq2[string, *ir.Node]) *ir.Node {
	c := NewObjectCollector()
	for k, v := range seq {
		c.Put(k, v)
	}
	return c.Finish()
}
