package dsl

import (
	"github.com/google/uuid"

	vouch "github.com/vouch-dev/vouch"
	"github.com/vouch-dev/vouch/rules"
)

// IDValidator is the fluent surface for UUID identifier properties. The
// all-zero UUID is the identifier type's canonical "empty".
type IDValidator[S any] struct {
	chain[S]
	value uuid.UUID
}

// IDFor starts a rule chain for an identifier property.
func IDFor[S any](b *Builder[S], sel func(*S) *uuid.UUID, value uuid.UUID, name ...string) *IDValidator[S] {
	return &IDValidator[S]{chain: newChain(b, displayName(sel, name)), value: value}
}

// Apply evaluates an arbitrary rule against the held identifier.
func (v *IDValidator[S]) Apply(r vouch.Rule[uuid.UUID]) *IDValidator[S] {
	v.applyMessage(r(v.value, v.name))
	return v
}

// NotNil fails for the all-zero UUID.
func (v *IDValidator[S]) NotNil() *IDValidator[S] { return v.Apply(rules.NonNilID()) }

// Nil fails for any identifier other than the all-zero UUID.
func (v *IDValidator[S]) Nil() *IDValidator[S] { return v.Apply(rules.NilID()) }

// Must applies an arbitrary predicate with a fixed message.
func (v *IDValidator[S]) Must(pred func(uuid.UUID) bool, message string) *IDValidator[S] {
	return v.Apply(vouch.Must(pred, message))
}

// When keeps the error the preceding rule just added only if pred(value) is
// true; otherwise that single error is retracted.
func (v *IDValidator[S]) When(pred func(uuid.UUID) bool) *IDValidator[S] {
	if pred == nil {
		panic("dsl: When requires a predicate")
	}
	v.keepWhen(pred(v.value))
	return v
}

// Unless is the negation of When.
func (v *IDValidator[S]) Unless(pred func(uuid.UUID) bool) *IDValidator[S] {
	if pred == nil {
		panic("dsl: Unless requires a predicate")
	}
	v.keepWhen(!pred(v.value))
	return v
}

// WithMessage replaces the message the preceding rule just added; a no-op when
// that rule passed.
func (v *IDValidator[S]) WithMessage(message string) *IDValidator[S] {
	v.rewriteLast(message)
	return v
}
