package dsl

import (
	vouch "github.com/vouch-dev/vouch"
	"github.com/vouch-dev/vouch/rules"
)

// StringValidator is the fluent surface for string properties. Every chain
// call evaluates its rule immediately; failures are additive unless gated by
// When/Unless.
type StringValidator[S any] struct {
	chain[S]
	value string
}

// StringFor starts a rule chain for a string property. The display name
// resolves from the selector unless an override is supplied.
func StringFor[S any](b *Builder[S], sel func(*S) *string, value string, name ...string) *StringValidator[S] {
	return &StringValidator[S]{chain: newChain(b, displayName(sel, name)), value: value}
}

// Apply evaluates an arbitrary rule against the held value.
func (v *StringValidator[S]) Apply(r vouch.Rule[string]) *StringValidator[S] {
	v.applyMessage(r(v.value, v.name))
	return v
}

// NotEmpty fails for the empty string.
func (v *StringValidator[S]) NotEmpty() *StringValidator[S] { return v.Apply(rules.NotEmpty()) }

// Empty fails for anything but the empty string.
func (v *StringValidator[S]) Empty() *StringValidator[S] { return v.Apply(rules.Empty()) }

// NotBlank fails for strings that are empty after trimming whitespace.
func (v *StringValidator[S]) NotBlank() *StringValidator[S] { return v.Apply(rules.NotBlank()) }

// MinLen fails when the value is shorter than min bytes.
func (v *StringValidator[S]) MinLen(min int) *StringValidator[S] { return v.Apply(rules.MinLen(min)) }

// MaxLen fails when the value is longer than max bytes.
func (v *StringValidator[S]) MaxLen(max int) *StringValidator[S] { return v.Apply(rules.MaxLen(max)) }

// Length fails unless the value is exactly n bytes long.
func (v *StringValidator[S]) Length(n int) *StringValidator[S] { return v.Apply(rules.Length(n)) }

// Matches fails when the value does not match pattern.
func (v *StringValidator[S]) Matches(pattern string) *StringValidator[S] {
	return v.Apply(rules.Matches(pattern))
}

// HasPrefix fails when the value does not start with prefix.
func (v *StringValidator[S]) HasPrefix(prefix string) *StringValidator[S] {
	return v.Apply(rules.HasPrefix(prefix))
}

// HasSuffix fails when the value does not end with suffix.
func (v *StringValidator[S]) HasSuffix(suffix string) *StringValidator[S] {
	return v.Apply(rules.HasSuffix(suffix))
}

// Contains fails when the value does not contain sub.
func (v *StringValidator[S]) Contains(sub string) *StringValidator[S] {
	return v.Apply(rules.Contains(sub))
}

// WellFormedID fails unless the value parses as a canonical UUID.
func (v *StringValidator[S]) WellFormedID() *StringValidator[S] {
	return v.Apply(rules.WellFormedID())
}

// Must applies an arbitrary predicate with a fixed message.
func (v *StringValidator[S]) Must(pred func(string) bool, message string) *StringValidator[S] {
	return v.Apply(vouch.Must(pred, message))
}

// When keeps the error the preceding rule just added only if pred(value) is
// true; otherwise that single error is retracted. A passed rule is untouched.
func (v *StringValidator[S]) When(pred func(string) bool) *StringValidator[S] {
	if pred == nil {
		panic("dsl: When requires a predicate")
	}
	v.keepWhen(pred(v.value))
	return v
}

// Unless is the negation of When: the preceding error survives only if
// pred(value) is false.
func (v *StringValidator[S]) Unless(pred func(string) bool) *StringValidator[S] {
	if pred == nil {
		panic("dsl: Unless requires a predicate")
	}
	v.keepWhen(!pred(v.value))
	return v
}

// WithMessage replaces the message the preceding rule just added. A passed
// rule leaves nothing to replace and the call is a no-op.
func (v *StringValidator[S]) WithMessage(message string) *StringValidator[S] {
	v.rewriteLast(message)
	return v
}
