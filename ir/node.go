package ir

import (
	"math"
	"strconv"
)

// Node is a JSON value: a tagged union over scalars, binary data,
// arrays, objects and opaque Go values. Exactly the representation
// selected by Type is meaningful; the rest is zero.
type Node struct {
	Type Type

	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
	String  string
	Bytes   []byte
	Opaque  any

	Values []*Node
	Fields []Field
}

// Field is one object entry, a (key, value) pair.
type Field struct {
	Key   string
	Value *Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Missing is the sentinel returned for absent or out of range access.
func Missing() *Node {
	return &Node{Type: MissingType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber holds a number as text, for widths and precisions beyond
// int64/float64.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromBytes(v []byte) *Node {
	if v == nil {
		return Null()
	}
	return &Node{
		Type:  BinaryType,
		Bytes: v,
	}
}

func FromOpaque(v any) *Node {
	if v == nil {
		return Null()
	}
	return &Node{
		Type:   OpaqueType,
		Opaque: v,
	}
}

// From builds a leaf node from any supported scalar value, dispatching
// on the dynamic type. A nil input yields the null node rather than
// failing; unrecognized types are wrapped opaque.
func From(v any) *Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case *Node:
		if t == nil {
			return Null()
		}
		return t
	case bool:
		return FromBool(t)
	case int:
		return FromInt(int64(t))
	case int8:
		return FromInt(int64(t))
	case int16:
		return FromInt(int64(t))
	case int32:
		return FromInt(int64(t))
	case int64:
		return FromInt(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return FromInt(int64(t))
	case uint16:
		return FromInt(int64(t))
	case uint32:
		return FromInt(int64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return FromFloat(float64(t))
	case float64:
		return FromFloat(t)
	case string:
		return FromString(t)
	case []byte:
		return FromBytes(t)
	default:
		return FromOpaque(t)
	}
}

// fromUint keeps values past the int64 range in textual form instead
// of letting the conversion wrap.
func fromUint(v uint64) *Node {
	if v > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(v, 10))
	}
	return FromInt(int64(v))
}

// F builds one object entry, converting the value with From.
func F(key string, v any) Field {
	return Field{Key: key, Value: From(v)}
}

// FromSlice builds an array container holding vs in argument order.
func FromSlice(vs ...*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		res.Values[i] = v
	}
	return res
}

// FromFields builds an object container from fs; later entries
// overwrite earlier ones with the same key.
func FromFields(fs ...Field) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]Field, 0, len(fs)),
	}
	for _, f := range fs {
		res.Set(f.Key, f.Value)
	}
	return res
}

func (y *Node) Len() int {
	switch y.Type {
	case ArrayType:
		return len(y.Values)
	case ObjectType:
		return len(y.Fields)
	default:
		return 0
	}
}

// At returns the i'th array element, or the missing sentinel when i is
// out of range or y is not an array.
func (y *Node) At(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return Missing()
	}
	return y.Values[i]
}

// Get returns the value for field, or nil when absent.
func (y *Node) Get(field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].Key == field {
			return y.Fields[i].Value
		}
	}
	return nil
}

// Set writes field to v, overwriting in place when the key exists so
// first-insertion position is kept. A nil v becomes the null node.
func (y *Node) Set(field string, v *Node) {
	if v == nil {
		v = Null()
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].Key == field {
			y.Fields[i].Value = v
			return
		}
	}
	y.Fields = append(y.Fields, Field{Key: field, Value: v})
}

func (y *Node) Append(vs ...*Node) {
	for _, v := range vs {
		if v == nil {
			v = Null()
		}
		y.Values = append(y.Values, v)
	}
}

// Pop removes and returns the last array element. This is the one
// mutating operation; an empty or non-array node yields the missing
// sentinel and is left untouched.
func (y *Node) Pop() *Node {
	if y.Type != ArrayType || len(y.Values) == 0 {
		return Missing()
	}
	last := y.Values[len(y.Values)-1]
	y.Values = y.Values[:len(y.Values)-1]
	return last
}
