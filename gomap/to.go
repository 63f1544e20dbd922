package gomap

import (
	"encoding/json"

	"github.com/signadot/nodeops/ir"
)

// ToAny converts a node tree to native Go values: objects become
// map[string]any, arrays []any, numbers int64 or float64 (textual
// numbers stay json.Number), missing and null both become nil.
func ToAny(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.MissingType, ir.NullType:
		return nil
	case ir.BoolType:
		return y.Bool
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return json.Number(y.Number)
	case ir.StringType:
		return y.String
	case ir.BinaryType:
		return y.Bytes
	case ir.OpaqueType:
		return y.Opaque
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(y.Fields))
		for _, f := range y.Fields {
			res[f.Key] = ToAny(f.Value)
		}
		return res
	default:
		return nil
	}
}
