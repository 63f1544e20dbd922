package nodeops

import (
	"testing"

	"github.com/signadot/nodeops/ir"
)

func TestFilterFields(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2), ir.F("c", 3))
	got := FilterFields(in, func(_ string, v *ir.Node) bool {
		return *v.Int64 > 1
	})
	want := ir.FromFields(ir.F("b", 2), ir.F("c", 3))
	if !ir.Equal(got, want) {
		t.Errorf("FilterFields = %v", got.Fields)
	}
	if in.Len() != 3 {
		t.Errorf("input mutated")
	}
}

func TestMapFields(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2))
	got := MapFields(in, func(k string, v *ir.Node) (string, *ir.Node) {
		return k + k, ir.FromInt(*v.Int64 * 10)
	})
	want := ir.FromFields(ir.F("aa", 10), ir.F("bb", 20))
	if !ir.Equal(got, want) {
		t.Errorf("MapFields = %v", got.Fields)
	}
}

func TestReduceFields(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2), ir.F("c", 3))
	got := ReduceFields(in, int64(0), func(acc int64, _ string, v *ir.Node) int64 {
		return acc + *v.Int64
	})
	if got != 6 {
		t.Errorf("ReduceFields = %d, want 6", got)
	}
}

func TestFindField(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2))
	k, v, ok := FindField(in, func(_ string, v *ir.Node) bool {
		return *v.Int64 == 2
	})
	if !ok || k != "b" || !ir.Equal(v, ir.FromInt(2)) {
		t.Errorf("FindField = %q, %v, %v", k, v, ok)
	}
	if _, _, ok := FindField(in, func(string, *ir.Node) bool { return false }); ok {
		t.Errorf("FindField matched nothing but reported ok")
	}
}

func TestFieldQuantifiers(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2))
	pos := func(_ string, v *ir.Node) bool { return *v.Int64 > 0 }
	big := func(_ string, v *ir.Node) bool { return *v.Int64 > 10 }
	if !EveryField(in, pos) || EveryField(in, big) {
		t.Errorf("EveryField wrong")
	}
	if !SomeField(in, pos) || SomeField(in, big) {
		t.Errorf("SomeField wrong")
	}
	if !NoneField(in, big) || NoneField(in, pos) {
		t.Errorf("NoneField wrong")
	}
}

func TestKeysValues(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2))
	keys := Keys(in)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys = %v", keys)
	}
	if got := Values(in); !ir.Equal(got, ints(1, 2)) {
		t.Errorf("Values = %v", got.Values)
	}
}

func TestPickOmitPartition(t *testing.T) {
	in := ir.FromFields(ir.F("a", 1), ir.F("b", 2), ir.F("c", 3))
	picked := Pick(in, "a", "c", "zz")
	omitted := Omit(in, "a", "c", "zz")
	if !ir.Equal(picked, ir.FromFields(ir.F("a", 1), ir.F("c", 3))) {
		t.Errorf("Pick = %v", picked.Fields)
	}
	if !ir.Equal(omitted, ir.FromFields(ir.F("b", 2))) {
		t.Errorf("Omit = %v", omitted.Fields)
	}
	if !ir.Equal(Merge(picked, omitted), in) {
		t.Errorf("pick/omit do not partition the object")
	}
	for _, f := range picked.Fields {
		if omitted.Get(f.Key) != nil {
			t.Errorf("key %q in both halves", f.Key)
		}
	}
}

func TestMerge(t *testing.T) {
	o1 := ir.FromFields(ir.F("a", 1), ir.F("k", 1))
	o2 := ir.FromFields(ir.F("b", 2), ir.F("k", 2))
	o3 := ir.FromFields(ir.F("k", 3))
	got := Merge(o1, o2, o3)
	if !ir.Equal(got.Get("k"), ir.FromInt(3)) {
		t.Errorf("rightmost key did not win: %v", got.Get("k"))
	}
	if got.Len() != 3 {
		t.Errorf("len = %d", got.Len())
	}
	if !ir.Equal(o1.Get("k"), ir.FromInt(1)) {
		t.Errorf("input mutated")
	}
}
