package nodeops

import (
	"errors"
	"reflect"

	"github.com/signadot/nodeops/codec"
)

// SafeExecution is a block run against a codec mapper which may fail
// with the mapper's checked error kind.
type SafeExecution[T any] func(*codec.Mapper) (T, error)

// Execute runs fn with m and wraps its result. A *codec.Error, or a
// nil-like result, yields an absent value with no error; any other
// failure kind is not swallowed and is returned to the caller.
func Execute[T any](m *codec.Mapper, fn SafeExecution[T]) (T, bool, error) {
	var zero T
	v, err := fn(m)
	if err != nil {
		var ce *codec.Error
		if errors.As(err, &ce) {
			return zero, false, nil
		}
		return zero, false, err
	}
	if isNil(v) {
		return zero, false, nil
	}
	return v, true, nil
}

// Attempt runs an arbitrary block and swallows every failure kind:
// any error, and any nil-like result, yield an absent value.
func Attempt[T any](fn func() (T, error)) (T, bool) {
	var zero T
	v, err := fn()
	if err != nil || isNil(v) {
		return zero, false
	}
	return v, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
