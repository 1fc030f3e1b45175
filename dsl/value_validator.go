package dsl

import (
	vouch "github.com/vouch-dev/vouch"
	"github.com/vouch-dev/vouch/rules"
)

// ValueValidator is the generic fallback for property types without a
// specialized validator family.
type ValueValidator[S any, V any] struct {
	chain[S]
	value V
}

// ValueFor starts a rule chain for an arbitrarily typed property.
func ValueFor[S any, V any](b *Builder[S], sel func(*S) *V, value V, name ...string) *ValueValidator[S, V] {
	return &ValueValidator[S, V]{chain: newChain(b, displayName(sel, name)), value: value}
}

// Apply evaluates an arbitrary rule against the held value.
func (v *ValueValidator[S, V]) Apply(r vouch.Rule[V]) *ValueValidator[S, V] {
	v.applyMessage(r(v.value, v.name))
	return v
}

// NotNull fails for the type's canonical "empty" value (nil, empty string,
// empty collection, zero value).
func (v *ValueValidator[S, V]) NotNull() *ValueValidator[S, V] {
	return v.Apply(rules.NotNull[V]())
}

// Null is the inverse of NotNull.
func (v *ValueValidator[S, V]) Null() *ValueValidator[S, V] {
	return v.Apply(rules.Null[V]())
}

// Must applies an arbitrary predicate with a fixed message.
func (v *ValueValidator[S, V]) Must(pred func(V) bool, message string) *ValueValidator[S, V] {
	return v.Apply(vouch.Must(pred, message))
}

// CheckWith evaluates a context-aware rule against the held value inside vctx
// and records any resulting message under this property. Cancellation and
// usage faults returned by the rule's condition propagate to the caller
// instead of entering the map.
func (v *ValueValidator[S, V]) CheckWith(rule *vouch.ContextRule[V], vctx *vouch.Context) (*ValueValidator[S, V], error) {
	if rule == nil {
		panic("dsl: CheckWith requires a rule")
	}
	msg, err := rule.Validate(v.value, v.name, vctx)
	if err != nil {
		v.last = false
		return v, err
	}
	v.applyMessage(msg)
	return v, nil
}

// When keeps the error the preceding rule just added only if pred(value) is
// true; otherwise that single error is retracted.
func (v *ValueValidator[S, V]) When(pred func(V) bool) *ValueValidator[S, V] {
	if pred == nil {
		panic("dsl: When requires a predicate")
	}
	v.keepWhen(pred(v.value))
	return v
}

// Unless is the negation of When.
func (v *ValueValidator[S, V]) Unless(pred func(V) bool) *ValueValidator[S, V] {
	if pred == nil {
		panic("dsl: Unless requires a predicate")
	}
	v.keepWhen(!pred(v.value))
	return v
}

// WithMessage replaces the message the preceding rule just added; a no-op when
// that rule passed.
func (v *ValueValidator[S, V]) WithMessage(message string) *ValueValidator[S, V] {
	v.rewriteLast(message)
	return v
}
