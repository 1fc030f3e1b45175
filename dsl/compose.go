package dsl

import (
	"strings"

	vouch "github.com/vouch-dev/vouch"
)

// ComposeFor merges a nested validation Outcome into the Builder under the
// selected property and returns the value to bind:
//
//   - nil outcome: nothing to validate; the zero value is returned.
//   - success: the carried value is returned and no error is added.
//   - message, security or cancellation failure: one message is recorded under
//     the property's display name.
//   - validation failure: every nested entry is re-keyed under the display
//     name (see CombineKey) and appended onto any existing messages for that
//     key; lists merge, they are never overwritten.
//
// On any failure the zero value of T is returned.
func ComposeFor[S, F, T any](b *Builder[S], sel func(*S) *F, outcome *vouch.Outcome[T], name ...string) T {
	var zero T
	if outcome == nil {
		return zero
	}
	key := displayName(sel, name)
	switch outcome.Kind() {
	case vouch.KindSuccess:
		return outcome.Value()
	case vouch.KindValidation:
		outcome.Errors().Range(func(nested string, messages []string) bool {
			b.errs.Add(CombineKey(key, nested), messages...)
			return true
		})
	default:
		b.errs.Add(key, outcome.FailureMessage())
	}
	return zero
}

// CombineKey prefixes a nested error key with the enclosing property's display
// name: an empty nested key maps the error onto the property itself, an
// index-led key ("[0].Name") concatenates without a separator, and anything
// else attaches with a dot.
func CombineKey(display, nested string) string {
	switch {
	case nested == "":
		return display
	case strings.HasPrefix(nested, "["):
		return display + nested
	default:
		return display + "." + nested
	}
}
