package vouch

import (
	"reflect"
	"strings"
)

// NameOf resolves the display name of a top-level field of S addressed by
// selector. The selector must return the address of a field, e.g.:
//
//	NameOf(func(u *User) *string { return &u.Name }) // "Name"
//
// A `vouch:"..."` struct tag overrides the field name. Selecting anything that
// is not an exported top-level field is a usage fault and panics; an
// unresolvable selector is never silently recorded in an error map.
func NameOf[S any, F any](selector func(*S) *F) string {
	if selector == nil {
		panic("vouch.NameOf: selector must not be nil")
	}
	var zero S
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		panic("vouch.NameOf: S must be a struct type")
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == fp {
			name := resolveDisplayName(sf)
			if name == "" || name == "-" {
				panic("vouch.NameOf: selected field is disabled for validation")
			}
			return name
		}
	}
	panic("vouch.NameOf: selector must return the address of a top-level field")
}

// resolveDisplayName applies the repository-wide rule for a field's display
// name: the `vouch` tag when present, otherwise the Go field name.
func resolveDisplayName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("vouch"); tag != "" {
		if i := strings.IndexByte(tag, ','); i >= 0 {
			return tag[:i]
		}
		return tag
	}
	return sf.Name
}
