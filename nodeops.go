// Package nodeops provides collection-style operations over JSON node
// trees: filter, map, reduce, pick, omit, merge, stream conversion and
// friends, all phrased as sequence rewrites over ir containers.
//
// Every operation returns a new container and leaves its inputs alone;
// the one mutating exception is (*ir.Node).Pop.
package nodeops

import (
	"iter"

	"github.com/signadot/nodeops/ir"
	"github.com/signadot/nodeops/stream"
)

// Transform rewrites an array node through a sequence transformer and
// collects the result into a new array node.
func Transform(y *ir.Node, f func(iter.Seq[*ir.Node]) iter.Seq[*ir.Node]) *ir.Node {
	return stream.Collect(f(stream.Values(y)))
}

// Filter keeps the elements satisfying pred, order preserved.
func Filter(y *ir.Node, pred func(*ir.Node) bool) *ir.Node {
	return Transform(y, func(s iter.Seq[*ir.Node]) iter.Seq[*ir.Node] {
		return filterSeq(s, pred)
	})
}

// Reject keeps the elements not satisfying pred.
func Reject(y *ir.Node, pred func(*ir.Node) bool) *ir.Node {
	return Filter(y, func(v *ir.Node) bool { return !pred(v) })
}

// Map replaces every element with f's result, order preserved.
func Map(y *ir.Node, f func(*ir.Node) *ir.Node) *ir.Node {
	return Transform(y, func(s iter.Seq[*ir.Node]) iter.Seq[*ir.Node] {
		return mapSeq(s, f)
	})
}

// Reduce folds the elements left to right starting from initial. The
// fold is strictly sequential; were partial results ever combined, the
// rightmost would win, so this is only correct unsplit and in order.
func Reduce[T any](y *ir.Node, initial T, f func(T, *ir.Node) T) T {
	acc := initial
	for v := range stream.Values(y) {
		acc = f(acc, v)
	}
	return acc
}

// Find returns the first element satisfying pred in container order.
func Find(y *ir.Node, pred func(*ir.Node) bool) (*ir.Node, bool) {
	for v := range stream.Values(y) {
		if pred(v) {
			return v, true
		}
	}
	return nil, false
}

// Every reports whether all elements satisfy pred.
func Every(y *ir.Node, pred func(*ir.Node) bool) bool {
	for v := range stream.Values(y) {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether any element satisfies pred.
func Some(y *ir.Node, pred func(*ir.Node) bool) bool {
	for v := range stream.Values(y) {
		if pred(v) {
			return true
		}
	}
	return false
}

// None reports whether no element satisfies pred.
func None(y *ir.Node, pred func(*ir.Node) bool) bool {
	return !Some(y, pred)
}

// Contains reports whether value occurs in y by structural equality:
// among the elements of an array, or among the values of an object
// (keys ignored).
func Contains(y, value *ir.Node) bool {
	switch {
	case y == nil:
		return false
	case y.Type == ir.ObjectType:
		return SomeField(y, func(_ string, v *ir.Node) bool {
			return ir.Equal(v, value)
		})
	default:
		return Some(y, func(v *ir.Node) bool {
			return ir.Equal(v, value)
		})
	}
}

// Concat concatenates array nodes left to right into a new array,
// preserving order and duplicates.
func Concat(ys ...*ir.Node) *ir.Node {
	c := stream.NewArrayCollector()
	for _, y := range ys {
		for v := range stream.Values(y) {
			c.Add(v)
		}
	}
	return c.Finish()
}

// Take returns the first count elements, or all of them when the
// array is shorter.
func Take(y *ir.Node, count int) *ir.Node {
	return Transform(y, func(s iter.Seq[*ir.Node]) iter.Seq[*ir.Node] {
		return func(yield func(*ir.Node) bool) {
			n := 0
			for v := range s {
				if n >= count {
					return
				}
				if !yield(v) {
					return
				}
				n++
			}
		}
	})
}

// Drop returns all but the first count elements; dropping past the
// end yields an empty array.
func Drop(y *ir.Node, count int) *ir.Node {
	return Transform(y, func(s iter.Seq[*ir.Node]) iter.Seq[*ir.Node] {
		return func(yield func(*ir.Node) bool) {
			n := 0
			for v := range s {
				if n >= count {
					if !yield(v) {
						return
					}
				}
				n++
			}
		}
	})
}

// Uniq removes duplicate elements by structural equality, keeping
// first occurrences in order.
func Uniq(y *ir.Node) *ir.Node {
	var seen []*ir.Node
	return Filter(y, func(v *ir.Node) bool {
		for _, s := range seen {
			if ir.Equal(s, v) {
				return false
			}
		}
		seen = append(seen, v)
		return true
	})
}

// Last returns the last element of an array, or the missing sentinel
// when it is empty.
func Last(y *ir.Node) *ir.Node {
	return y.At(y.Len() - 1)
}

func filterSeq(s iter.Seq[*ir.Node], pred func(*ir.Node) bool) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		for v := range s {
			if !pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func mapSeq(s iter.Seq[*ir.Node], f func(*ir.Node) *ir.Node) iter.Seq[*ir.Node] {
	return func(yield func(*ir.Node) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}
