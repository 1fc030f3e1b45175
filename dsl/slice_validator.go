package dsl

import (
	vouch "github.com/vouch-dev/vouch"
	"github.com/vouch-dev/vouch/rules"
)

// SliceValidator is the fluent surface for slice properties.
type SliceValidator[S any, E any] struct {
	chain[S]
	value []E
}

// SliceFor starts a rule chain for a slice property.
func SliceFor[S any, E any](b *Builder[S], sel func(*S) *[]E, value []E, name ...string) *SliceValidator[S, E] {
	return &SliceValidator[S, E]{chain: newChain(b, displayName(sel, name)), value: value}
}

// Apply evaluates an arbitrary rule against the held slice.
func (v *SliceValidator[S, E]) Apply(r vouch.Rule[[]E]) *SliceValidator[S, E] {
	v.applyMessage(r(v.value, v.name))
	return v
}

// NotEmpty fails for a nil or empty slice.
func (v *SliceValidator[S, E]) NotEmpty() *SliceValidator[S, E] {
	return v.Apply(rules.NotEmptySlice[E]())
}

// Empty fails for a slice holding any element.
func (v *SliceValidator[S, E]) Empty() *SliceValidator[S, E] {
	return v.Apply(rules.EmptySlice[E]())
}

// MinCount fails when the slice holds fewer than min elements.
func (v *SliceValidator[S, E]) MinCount(min int) *SliceValidator[S, E] {
	return v.Apply(rules.MinCount[E](min))
}

// MaxCount fails when the slice holds more than max elements.
func (v *SliceValidator[S, E]) MaxCount(max int) *SliceValidator[S, E] {
	return v.Apply(rules.MaxCount[E](max))
}

// CountBetween fails when the element count falls outside [min, max].
func (v *SliceValidator[S, E]) CountBetween(min, max int) *SliceValidator[S, E] {
	return v.Apply(rules.CountBetween[E](min, max))
}

// Must applies an arbitrary predicate with a fixed message.
func (v *SliceValidator[S, E]) Must(pred func([]E) bool, message string) *SliceValidator[S, E] {
	return v.Apply(vouch.Must(pred, message))
}

// When keeps the error the preceding rule just added only if pred(value) is
// true; otherwise that single error is retracted.
func (v *SliceValidator[S, E]) When(pred func([]E) bool) *SliceValidator[S, E] {
	if pred == nil {
		panic("dsl: When requires a predicate")
	}
	v.keepWhen(pred(v.value))
	return v
}

// Unless is the negation of When.
func (v *SliceValidator[S, E]) Unless(pred func([]E) bool) *SliceValidator[S, E] {
	if pred == nil {
		panic("dsl: Unless requires a predicate")
	}
	v.keepWhen(!pred(v.value))
	return v
}

// WithMessage replaces the message the preceding rule just added; a no-op when
// that rule passed.
func (v *SliceValidator[S, E]) WithMessage(message string) *SliceValidator[S, E] {
	v.rewriteLast(message)
	return v
}
