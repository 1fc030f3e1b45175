package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vouch "github.com/vouch-dev/vouch"
	"github.com/vouch-dev/vouch/dsl"
)

func TestWhen(t *testing.T) {
	t.Run("false predicate retracts exactly the preceding error", func(t *testing.T) {
		b := dsl.New[signupInput]()
		dsl.StringFor(b, selName, "").
			MinLen(5). // stays
			NotEmpty().
			When(func(v string) bool { return false })
		dsl.NumberFor(b, selAge, -1).GreaterThan(0)

		assert.Equal(t, []string{"Name must be at least 5 characters long"}, b.Errors().Get("Name"))
		assert.Equal(t, []string{"Age must be greater than 0"}, b.Errors().Get("Age"), "other properties untouched")
	})

	t.Run("true predicate keeps the error", func(t *testing.T) {
		b := dsl.New[signupInput]()
		dsl.StringFor(b, selName, "").
			NotEmpty().
			When(func(v string) bool { return true })
		assert.Equal(t, []string{"Name must not be empty"}, b.Errors().Get("Name"))
	})

	t.Run("gating a passed rule never fabricates an error", func(t *testing.T) {
		b := dsl.New[signupInput]()
		dsl.StringFor(b, selName, "ok").
			NotEmpty().
			When(func(v string) bool { return false }).
			Unless(func(v string) bool { return true })
		assert.False(t, b.HasErrors())
	})

	t.Run("nil predicate is a usage fault", func(t *testing.T) {
		b := dsl.New[signupInput]()
		assert.Panics(t, func() { dsl.StringFor(b, selName, "").NotEmpty().When(nil) })
	})
}

func TestUnless(t *testing.T) {
	b := dsl.New[signupInput]()
	dsl.StringFor(b, selName, "").
		NotEmpty().
		Unless(func(v string) bool { return true }) // condition holds, retract
	assert.False(t, b.HasErrors())

	dsl.StringFor(b, selName, "").
		NotEmpty().
		Unless(func(v string) bool { return false }) // condition fails, keep
	assert.Equal(t, []string{"Name must not be empty"}, b.Errors().Get("Name"))
}

func TestWhenUnlessLastAppliedWins(t *testing.T) {
	// When keeps the error, the chained Unless then retracts it: the
	// last-applied gate wins.
	b := dsl.New[signupInput]()
	dsl.StringFor(b, selName, "").
		NotEmpty().
		When(func(v string) bool { return true }).
		Unless(func(v string) bool { return true })
	assert.False(t, b.HasErrors())
}

func TestWithMessage(t *testing.T) {
	t.Run("replaces only the most recent message", func(t *testing.T) {
		b := dsl.New[signupInput]()
		dsl.StringFor(b, selName, "").
			MinLen(5).
			NotEmpty().
			WithMessage("Name is required")
		assert.Equal(t, []string{
			"Name must be at least 5 characters long",
			"Name is required",
		}, b.Errors().Get("Name"))
	})

	t.Run("no-op after a passed rule", func(t *testing.T) {
		b := dsl.New[signupInput]()
		dsl.StringFor(b, selName, "fine").
			NotEmpty().
			WithMessage("never recorded")
		assert.False(t, b.HasErrors())
	})

	t.Run("no-op after a retracted rule", func(t *testing.T) {
		b := dsl.New[signupInput]()
		dsl.StringFor(b, selName, "").
			NotEmpty().
			When(func(v string) bool { return false }).
			WithMessage("never recorded")
		assert.False(t, b.HasErrors())
	})
}

func TestMustOnValidators(t *testing.T) {
	b := dsl.New[signupInput]()
	dsl.NumberFor(b, selAge, 13).
		Must(func(v int) bool { return v%2 == 0 }, "Age must be even")
	assert.Equal(t, []string{"Age must be even"}, b.Errors().Get("Age"))
}

func TestCheckWith(t *testing.T) {
	type holder struct{ Code string }
	sel := func(h *holder) *string { return &h.Code }

	t.Run("failing context rule records its message", func(t *testing.T) {
		b := dsl.New[holder]()
		rule := vouch.NewContextRule(func(v string, _ *vouch.Context) (bool, error) {
			return v != "", nil
		}, "code is not known")
		_, err := dsl.ValueFor(b, sel, "").CheckWith(rule, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"code is not known"}, b.Errors().Get("Code"))
	})

	t.Run("business fault downgrades into the map", func(t *testing.T) {
		b := dsl.New[holder]()
		rule := vouch.NewContextRule(func(string, *vouch.Context) (bool, error) {
			return false, errors.New("registry offline")
		}, "unused")
		_, err := dsl.ValueFor(b, sel, "x").CheckWith(rule, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Validation error: registry offline"}, b.Errors().Get("Code"))
	})

	t.Run("cancellation propagates and records nothing", func(t *testing.T) {
		b := dsl.New[holder]()
		rule := vouch.NewContextRule(func(string, *vouch.Context) (bool, error) {
			return false, context.Canceled
		}, "unused")
		_, err := dsl.ValueFor(b, sel, "x").CheckWith(rule, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, b.HasErrors())
	})
}
