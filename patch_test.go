package nodeops

import (
	"errors"
	"testing"

	"github.com/signadot/nodeops/gomap"
	"github.com/signadot/nodeops/ir"
)

func TestMergePatch(t *testing.T) {
	doc := ir.FromFields(
		ir.F("a", 1),
		ir.F("b", ir.FromFields(ir.F("x", 1), ir.F("y", 2))),
	)
	patch := ir.FromFields(
		ir.F("a", nil),
		ir.F("b", ir.FromFields(ir.F("y", 9))),
		ir.F("c", 3),
	)
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatalf("MergePatch: %v", err)
	}
	if got.Get("a") != nil {
		t.Errorf("null patch value did not delete key a")
	}
	b := got.Get("b")
	if b == nil || !ir.Equal(b.Get("x"), ir.FromInt(1)) || !ir.Equal(b.Get("y"), ir.FromInt(9)) {
		t.Errorf("nested merge wrong: %v", b)
	}
	if !ir.Equal(got.Get("c"), ir.FromInt(3)) {
		t.Errorf("new key missing")
	}
}

func TestApplyPatch(t *testing.T) {
	doc := ir.FromFields(ir.F("a", 1), ir.F("b", 2))
	patch := gomap.FromAny([]any{
		map[string]any{"op": "replace", "path": "/a", "value": 5},
		map[string]any{"op": "remove", "path": "/b"},
	})
	got, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if !ir.Equal(got.Get("a"), ir.FromInt(5)) {
		t.Errorf("replace failed: %v", got.Get("a"))
	}
	if got.Get("b") != nil {
		t.Errorf("remove failed")
	}
}

func TestApplyPatchWrongKind(t *testing.T) {
	_, err := ApplyPatch(ir.FromFields(), ir.FromFields())
	if !errors.Is(err, ir.ErrType) {
		t.Errorf("err = %v, want ErrType", err)
	}
}
