package codec

import (
	"errors"
	"testing"

	"github.com/signadot/nodeops/ir"
)

func TestJSONRoundTrip(t *testing.T) {
	m := NewMapper()
	y := ir.FromFields(
		ir.F("a", 1),
		ir.F("b", ir.FromSlice(ir.FromString("x"), ir.Null())),
	)
	d, err := m.MarshalNode(y)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := m.UnmarshalNode(d)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ir.Equal(got, y) {
		t.Errorf("round trip mismatch: %s", d)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	m := NewMapper(WithFormat(YAMLFormat))
	y, err := m.UnmarshalNode([]byte("a: 1\nb:\n  - x\n  - null\n"))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if y.Type != ir.ObjectType {
		t.Fatalf("type = %s", y.Type)
	}
	if !ir.Equal(y.Get("a"), ir.FromInt(1)) {
		t.Errorf("a = %v", y.Get("a"))
	}
	b := y.Get("b")
	if b == nil || b.Len() != 2 || b.At(1).Type != ir.NullType {
		t.Errorf("b = %v", b)
	}
}

func TestUnmarshalErrorKind(t *testing.T) {
	m := NewMapper()
	var v any
	err := m.Unmarshal([]byte(`{"a":`), &v)
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *codec.Error", err)
	}
	if ce.Op != "unmarshal" {
		t.Errorf("op = %q", ce.Op)
	}
	if ce.Unwrap() == nil {
		t.Errorf("no wrapped cause")
	}
}

func TestParseFormat(t *testing.T) {
	for _, v := range []string{"json", "j"} {
		if f, err := ParseFormat(v); err != nil || f != JSONFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", v, f, err)
		}
	}
	for _, v := range []string{"yaml", "y"} {
		if f, err := ParseFormat(v); err != nil || f != YAMLFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", v, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("ParseFormat accepted xml")
	}
}
