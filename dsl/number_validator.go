package dsl

import (
	vouch "github.com/vouch-dev/vouch"
	"github.com/vouch-dev/vouch/rules"
)

// NumberValidator is the fluent surface for numeric properties. It is generic
// over a single ordered-arithmetic constraint, so every numeric width shares
// one implementation and bounds always match the value's exact type.
type NumberValidator[S any, N vouch.Numeric] struct {
	chain[S]
	value N
}

// NumberFor starts a rule chain for a numeric property.
func NumberFor[S any, N vouch.Numeric](b *Builder[S], sel func(*S) *N, value N, name ...string) *NumberValidator[S, N] {
	return &NumberValidator[S, N]{chain: newChain(b, displayName(sel, name)), value: value}
}

// Apply evaluates an arbitrary rule against the held value.
func (v *NumberValidator[S, N]) Apply(r vouch.Rule[N]) *NumberValidator[S, N] {
	v.applyMessage(r(v.value, v.name))
	return v
}

// GreaterThan fails unless value > bound.
func (v *NumberValidator[S, N]) GreaterThan(bound N) *NumberValidator[S, N] {
	return v.Apply(rules.GreaterThan(bound))
}

// GreaterThanOrEqual fails unless value >= bound.
func (v *NumberValidator[S, N]) GreaterThanOrEqual(bound N) *NumberValidator[S, N] {
	return v.Apply(rules.GreaterThanOrEqual(bound))
}

// LessThan fails unless value < bound.
func (v *NumberValidator[S, N]) LessThan(bound N) *NumberValidator[S, N] {
	return v.Apply(rules.LessThan(bound))
}

// LessThanOrEqual fails unless value <= bound.
func (v *NumberValidator[S, N]) LessThanOrEqual(bound N) *NumberValidator[S, N] {
	return v.Apply(rules.LessThanOrEqual(bound))
}

// NotZero fails for the numeric zero value.
func (v *NumberValidator[S, N]) NotZero() *NumberValidator[S, N] {
	return v.Apply(rules.NotZero[N]())
}

// InclusiveBetween fails unless from <= value <= to.
func (v *NumberValidator[S, N]) InclusiveBetween(from, to N) *NumberValidator[S, N] {
	return v.Apply(rules.InclusiveBetween(from, to))
}

// ExclusiveBetween fails unless from < value < to.
func (v *NumberValidator[S, N]) ExclusiveBetween(from, to N) *NumberValidator[S, N] {
	return v.Apply(rules.ExclusiveBetween(from, to))
}

// Must applies an arbitrary predicate with a fixed message.
func (v *NumberValidator[S, N]) Must(pred func(N) bool, message string) *NumberValidator[S, N] {
	return v.Apply(vouch.Must(pred, message))
}

// When keeps the error the preceding rule just added only if pred(value) is
// true; otherwise that single error is retracted.
func (v *NumberValidator[S, N]) When(pred func(N) bool) *NumberValidator[S, N] {
	if pred == nil {
		panic("dsl: When requires a predicate")
	}
	v.keepWhen(pred(v.value))
	return v
}

// Unless is the negation of When.
func (v *NumberValidator[S, N]) Unless(pred func(N) bool) *NumberValidator[S, N] {
	if pred == nil {
		panic("dsl: Unless requires a predicate")
	}
	v.keepWhen(!pred(v.value))
	return v
}

// WithMessage replaces the message the preceding rule just added; a no-op when
// that rule passed.
func (v *NumberValidator[S, N]) WithMessage(message string) *NumberValidator[S, N] {
	v.rewriteLast(message)
	return v
}
