package binding

import (
	"reflect"
	"sync"
)

// singleton builds its value on the first get; concurrent callers block until
// construction has finished and then all observe the same value. A panicking
// constructor panics again on every later get instead of yielding a zero value.
type singleton[T any] struct {
	get func() T
}

func newSingleton[T any](newFn func() T) *singleton[T] {
	return &singleton[T]{get: sync.OnceValue(newFn)}
}

// typeName renders the fully qualified name of v's concrete type, pointers stripped.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
