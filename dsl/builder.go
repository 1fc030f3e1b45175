package dsl

import (
	vouch "github.com/vouch-dev/vouch"
)

// Builder owns the error accumulator for one validation pass over a subject of
// type S. Create one per pass with New and discard it after Build; property
// validators hold a back-reference into it and are equally short-lived.
type Builder[S any] struct {
	errs *vouch.ErrorMap
}

// New returns a Builder with an empty error map.
func New[S any]() *Builder[S] {
	return &Builder[S]{errs: vouch.NewErrorMap()}
}

// HasErrors reports whether any failure has been accumulated.
func (b *Builder[S]) HasErrors() bool { return !b.errs.Empty() }

// Errors returns a copy of the accumulated map. The copy is stable across
// subsequent chain calls and across Build.
func (b *Builder[S]) Errors() *vouch.ErrorMap { return b.errs.Clone() }

// AddError records a message under an explicit property path, bypassing the
// typed validators. Useful for cross-property failures and for surfacing
// context-rule results.
func (b *Builder[S]) AddError(path, message string) {
	b.errs.Add(path, message)
}

// Build converts the accumulated state into an Outcome: a validation failure
// carrying the exact map when any error exists, otherwise Success(factory()).
// A nil factory is a usage fault. Build reads without clearing, so repeated
// calls over unchanged state yield equivalent Outcomes.
func Build[S, T any](b *Builder[S], factory func() T) vouch.Outcome[T] {
	if factory == nil {
		panic("dsl: Build requires a factory")
	}
	if b.HasErrors() {
		return vouch.FailValidation[T](b.errs)
	}
	return vouch.Success(factory())
}

// displayName picks the explicit override when given, otherwise resolves the
// property name from the selector. An unresolvable selector panics in NameOf.
func displayName[S, F any](sel func(*S) *F, override []string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return vouch.NameOf(sel)
}
