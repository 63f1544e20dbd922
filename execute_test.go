package nodeops

import (
	"errors"
	"testing"

	"github.com/signadot/nodeops/codec"
	"github.com/signadot/nodeops/ir"
)

func TestExecuteSuccess(t *testing.T) {
	m := codec.NewMapper()
	got, ok, err := Execute(m, func(m *codec.Mapper) (*ir.Node, error) {
		return m.UnmarshalNode([]byte(`[1, 2, 3]`))
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("result absent")
	}
	if got.Len() != 3 {
		t.Errorf("len = %d", got.Len())
	}
}

func TestExecuteCodecError(t *testing.T) {
	m := codec.NewMapper()
	_, ok, err := Execute(m, func(m *codec.Mapper) (*ir.Node, error) {
		return m.UnmarshalNode([]byte(`{invalid`))
	})
	if err != nil {
		t.Fatalf("codec failure should be swallowed, got %v", err)
	}
	if ok {
		t.Errorf("result present after codec failure")
	}
}

func TestExecuteOtherErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	_, ok, err := Execute(codec.NewMapper(), func(*codec.Mapper) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if ok {
		t.Errorf("result present with error")
	}
}

func TestExecuteNilResult(t *testing.T) {
	_, ok, err := Execute(codec.NewMapper(), func(*codec.Mapper) (*ir.Node, error) {
		return nil, nil
	})
	if err != nil || ok {
		t.Errorf("nil result: ok=%v err=%v, want absent", ok, err)
	}
}

func TestAttempt(t *testing.T) {
	v, ok := Attempt(func() (int, error) { return 7, nil })
	if !ok || v != 7 {
		t.Errorf("Attempt = %d, %v", v, ok)
	}
	_, ok = Attempt(func() (int, error) { return 0, errors.New("any") })
	if ok {
		t.Errorf("Attempt did not swallow the error")
	}
	_, ok = Attempt(func() (*ir.Node, error) { return nil, nil })
	if ok {
		t.Errorf("Attempt wrapped a nil result")
	}
}
