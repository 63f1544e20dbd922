package nodeops

import (
	"iter"

	"github.com/signadot/nodeops/ir"
	"github.com/signadot/nodeops/stream"
)

// TransformFields rewrites an object node through an entry sequence
// transformer and collects the result into a new object node.
func TransformFields(y *ir.Node, f func(iter.Seq2[string, *ir.Node]) iter.Seq2[string, *ir.Node]) *ir.Node {
	return stream.CollectFields(f(stream.Fields(y)))
}

// FilterFields keeps the entries satisfying pred.
func FilterFields(y *ir.Node, pred func(string, *ir.Node) bool) *ir.Node {
	return TransformFields(y, func(s iter.Seq2[string, *ir.Node]) iter.Seq2[string, *ir.Node] {
		return func(yield func(string, *ir.Node) bool) {
			for k, v := range s {
				if !pred(k, v) {
					continue
				}
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// RejectFields keeps the entries not satisfying pred.
func RejectFields(y *ir.Node, pred func(string, *ir.Node) bool) *ir.Node {
	return FilterFields(y, func(k string, v *ir.Node) bool { return !pred(k, v) })
}

// MapFields replaces every entry with f's result; a colliding mapped
// key overwrites the earlier entry.
func MapFields(y *ir.Node, f func(string, *ir.Node) (string, *ir.Node)) *ir.Node {
	return TransformFields(y, func(s iter.Seq2[string, *ir.Node]) iter.Seq2[string, *ir.Node] {
		return func(yield func(string, *ir.Node) bool) {
			for k, v := range s {
				if !yield(f(k, v)) {
					return
				}
			}
		}
	})
}

// ReduceFields folds the entries in iteration order starting from
// initial, with the same sequential-only contract as Reduce.
func ReduceFields[T any](y *ir.Node, initial T, f func(T, string, *ir.Node) T) T {
	acc := initial
	for k, v := range stream.Fields(y) {
		acc = f(acc, k, v)
	}
	return acc
}

// FindField returns the first entry satisfying pred.
func FindField(y *ir.Node, pred func(string, *ir.Node) bool) (string, *ir.Node, bool) {
	for k, v := range stream.Fields(y) {
		if pred(k, v) {
			return k, v, true
		}
	}
	return "", nil, false
}

// EveryField reports whether all entries satisfy pred.
func EveryField(y *ir.Node, pred func(string, *ir.Node) bool) bool {
	for k, v := range stream.Fields(y) {
		if !pred(k, v) {
			return false
		}
	}
	return true
}

// SomeField reports whether any entry satisfies pred.
func SomeField(y *ir.Node, pred func(string, *ir.Node) bool) bool {
	for k, v := range stream.Fields(y) {
		if pred(k, v) {
			return true
		}
	}
	return false
}

// NoneField reports whether no entry satisfies pred.
func NoneField(y *ir.Node, pred func(string, *ir.Node) bool) bool {
	return !SomeField(y, pred)
}

// Keys returns the object's keys; unique by container invariant, in
// the object's iteration order.
func Keys(y *ir.Node) []string {
	res := make([]string, 0, y.Len())
	for k := range stream.Fields(y) {
		res = append(res, k)
	}
	return res
}

// Values returns a new array node of the object's values in its
// iteration order.
func Values(y *ir.Node) *ir.Node {
	c := stream.NewArrayCollector()
	for _, v := range stream.Fields(y) {
		c.Add(v)
	}
	return c.Finish()
}

// Pick keeps only the entries whose key is among keys.
func Pick(y *ir.Node, keys ...string) *ir.Node {
	set := keySet(keys)
	return FilterFields(y, func(k string, _ *ir.Node) bool {
		return set[k]
	})
}

// Omit keeps only the entries whose key is not among keys.
func Omit(y *ir.Node, keys ...string) *ir.Node {
	set := keySet(keys)
	return RejectFields(y, func(k string, _ *ir.Node) bool {
		return set[k]
	})
}

// Merge shallow-merges object nodes left to right into a new object;
// later arguments' keys win on collision. It is not recursive; see
// MergePatch for deep merging.
func Merge(ys ...*ir.Node) *ir.Node {
	c := stream.NewObjectCollector()
	for _, y := range ys {
		for k, v := range stream.Fields(y) {
			c.Put(k, v)
		}
	}
	return c.Finish()
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
