package ir

import (
	"math"
	"testing"
)

type fromTest struct {
	in   any
	want *Node
}

var fromTests = []fromTest{
	{in: nil, want: Null()},
	{in: true, want: FromBool(true)},
	{in: false, want: FromBool(false)},
	{in: 3, want: FromInt(3)},
	{in: int8(3), want: FromInt(3)},
	{in: int16(3), want: FromInt(3)},
	{in: int32(3), want: FromInt(3)},
	{in: int64(3), want: FromInt(3)},
	{in: uint(3), want: FromInt(3)},
	{in: uint8(3), want: FromInt(3)},
	{in: uint16(3), want: FromInt(3)},
	{in: uint32(3), want: FromInt(3)},
	{in: uint64(3), want: FromInt(3)},
	{in: uint64(math.MaxInt64), want: FromInt(math.MaxInt64)},
	// past the int64 range unsigned values carry over as number text
	{in: uint64(math.MaxUint64), want: FromNumber("18446744073709551615")},
	{in: uint(math.MaxUint), want: FromNumber("18446744073709551615")},
	{in: float32(0.5), want: FromFloat(0.5)},
	{in: 2.5, want: FromFloat(2.5)},
	{in: "hello", want: FromString("hello")},
	{in: []byte{1, 2}, want: FromBytes([]byte{1, 2})},
	{in: FromString("pass"), want: FromString("pass")},
	{in: (*Node)(nil), want: Null()},
	{in: struct{ X int }{X: 1}, want: FromOpaque(struct{ X int }{X: 1})},
}

func TestFrom(t *testing.T) {
	for i, tst := range fromTests {
		got := From(tst.in)
		if !Equal(got, tst.want) {
			t.Errorf("test %d: From(%v) = %s, want %s", i, tst.in, got.Type, tst.want.Type)
		}
	}
}

func TestFromBytesNil(t *testing.T) {
	if got := FromBytes(nil); got.Type != NullType {
		t.Errorf("FromBytes(nil) = %s, want Null", got.Type)
	}
	if got := FromOpaque(nil); got.Type != NullType {
		t.Errorf("FromOpaque(nil) = %s, want Null", got.Type)
	}
}

func TestFromSlice(t *testing.T) {
	y := FromSlice(FromInt(1), nil, FromInt(3))
	if y.Type != ArrayType || y.Len() != 3 {
		t.Fatalf("got %s len %d", y.Type, y.Len())
	}
	if y.At(1).Type != NullType {
		t.Errorf("nil element = %s, want Null", y.At(1).Type)
	}
	if !Equal(y.At(2), FromInt(3)) {
		t.Errorf("order not preserved")
	}
}

func TestFromFieldsOverwrite(t *testing.T) {
	y := FromFields(F("a", 1), F("b", 2), F("a", 3))
	if y.Len() != 2 {
		t.Fatalf("len = %d, want 2", y.Len())
	}
	if !Equal(y.Get("a"), FromInt(3)) {
		t.Errorf("later entry did not win")
	}
	// first-insertion position is kept
	if y.Fields[0].Key != "a" || y.Fields[1].Key != "b" {
		t.Errorf("field order = %q, %q", y.Fields[0].Key, y.Fields[1].Key)
	}
}

func TestAt(t *testing.T) {
	y := FromSlice(FromInt(1), FromInt(2))
	if y.At(-1).Type != MissingType {
		t.Errorf("At(-1) not missing")
	}
	if y.At(2).Type != MissingType {
		t.Errorf("At(len) not missing")
	}
	if FromString("x").At(0).Type != MissingType {
		t.Errorf("At on scalar not missing")
	}
}

func TestGetAbsent(t *testing.T) {
	y := FromFields(F("a", 1))
	if y.Get("b") != nil {
		t.Errorf("Get absent key != nil")
	}
}

func TestSetNil(t *testing.T) {
	y := FromFields()
	y.Set("a", nil)
	if y.Get("a").Type != NullType {
		t.Errorf("Set nil value, got %s", y.Get("a").Type)
	}
}

func TestPop(t *testing.T) {
	y := FromSlice(FromInt(1), FromInt(2))
	got := y.Pop()
	if !Equal(got, FromInt(2)) {
		t.Errorf("Pop = %v", got)
	}
	if y.Len() != 1 {
		t.Errorf("Pop did not mutate, len = %d", y.Len())
	}
	y.Pop()
	if got := y.Pop(); got.Type != MissingType {
		t.Errorf("Pop on empty = %s, want Missing", got.Type)
	}
}
