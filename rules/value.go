package rules

import (
	"fmt"
	"reflect"

	vouch "github.com/vouch-dev/vouch"
)

// NotNull fails when the value is its type's canonical "empty": nil, a nil
// pointer, an empty string, an empty collection, or the type's zero value
// (the all-zero UUID under this rule reads as empty, like the empty string).
func NotNull[V any]() vouch.Rule[V] {
	return func(v V, name string) string {
		if !isCanonicalZero(v) {
			return ""
		}
		return fmt.Sprintf("%s must not be empty", name)
	}
}

// Null is the inverse of NotNull.
func Null[V any]() vouch.Rule[V] {
	return func(v V, name string) string {
		if isCanonicalZero(v) {
			return ""
		}
		return fmt.Sprintf("%s must be empty", name)
	}
}

// isCanonicalZero treats empty string, empty collection and a type's zero
// value uniformly as "empty".
func isCanonicalZero(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}
