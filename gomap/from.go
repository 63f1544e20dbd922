// Package gomap converts between native Go values and node trees.
package gomap

import (
	"encoding/json"
	"sort"

	"github.com/signadot/nodeops/ir"
)

// FromAny builds a node tree from a native Go value. Maps become
// objects (sorted keys, for deterministic construction), slices become
// arrays, scalars dispatch through ir.From, and nil becomes null.
func FromAny(v any) *ir.Node {
	switch t := v.(type) {
	case nil:
		return ir.Null()
	case json.Number:
		return ir.FromNumber(string(t))
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := ir.FromFields()
		for _, k := range keys {
			res.Set(k, FromAny(t[k]))
		}
		return res
	case []any:
		res := ir.FromSlice()
		for _, e := range t {
			res.Append(FromAny(e))
		}
		return res
	default:
		return ir.From(v)
	}
}
