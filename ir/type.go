package ir

import "fmt"

type Type int

const (
	MissingType Type = iota
	NullType
	BoolType
	NumberType
	StringType
	BinaryType
	ArrayType
	ObjectType
	OpaqueType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		MissingType: "Missing",
		NullType:    "Null",
		BoolType:    "Bool",
		NumberType:  "Number",
		StringType:  "String",
		BinaryType:  "Binary",
		ArrayType:   "Array",
		ObjectType:  "Object",
		OpaqueType:  "Opaque",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Missing": MissingType,
		"Null":    NullType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"String":  StringType,
		"Binary":  BinaryType,
		"Array":   ArrayType,
		"Object":  ObjectType,
		"Opaque":  OpaqueType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		MissingType,
		NullType,
		BoolType,
		NumberType,
		StringType,
		BinaryType,
		ArrayType,
		ObjectType,
		OpaqueType,
	}
}

func (t Type) IsContainer() bool {
	switch t {
	case ArrayType, ObjectType:
		return true
	default:
		return false
	}
}
