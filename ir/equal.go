package ir

import (
	"bytes"
	"reflect"
	"strconv"
)

// Equal reports full structural value equality of a and b. Numbers
// compare by value across their integral, floating and textual forms;
// objects compare as key sets, ignoring entry order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case MissingType, NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return numEqual(a, b)
	case StringType:
		return a.String == b.String
	case BinaryType:
		return bytes.Equal(a.Bytes, b.Bytes)
	case OpaqueType:
		return reflect.DeepEqual(a.Opaque, b.Opaque)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for _, f := range a.Fields {
			bv := b.Get(f.Key)
			if bv == nil || !Equal(f.Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numEqual(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	af, aok := numFloat(a)
	bf, bok := numFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	return a.Number == b.Number
}

func numFloat(y *Node) (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
