package vouch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vouch "github.com/vouch-dev/vouch"
)

func TestOutcome_Success(t *testing.T) {
	o := vouch.Success(42)
	assert.True(t, o.IsSuccess())
	assert.Equal(t, vouch.KindSuccess, o.Kind())
	assert.Equal(t, 42, o.Value())
	assert.Empty(t, o.FailureMessage())
	assert.True(t, o.Errors().Empty())
}

func TestOutcome_FailureVariants(t *testing.T) {
	cases := []struct {
		name string
		o    vouch.Outcome[int]
		kind vouch.Kind
		msg  string
	}{
		{"message", vouch.FailMessage[int]("boom"), vouch.KindMessage, "boom"},
		{"security", vouch.FailSecurity[int]("denied"), vouch.KindSecurity, "denied"},
		{"cancelled", vouch.FailCancelled[int]("stopped"), vouch.KindCancelled, "stopped"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.o.IsSuccess())
			assert.Equal(t, tc.kind, tc.o.Kind())
			assert.Equal(t, tc.msg, tc.o.FailureMessage())
			assert.Zero(t, tc.o.Value())
		})
	}
}

func TestOutcome_DefaultMessages(t *testing.T) {
	assert.Equal(t, "validation failed", vouch.FailMessage[int]("").FailureMessage())
	assert.Equal(t, "security check failed", vouch.FailSecurity[int]("").FailureMessage())
	assert.Equal(t, "operation cancelled", vouch.FailCancelled[int]("").FailureMessage())
}

func TestOutcome_ValidationFailureIsImmutable(t *testing.T) {
	em := vouch.NewErrorMap()
	em.Add("Name", "required")
	o := vouch.FailValidation[int](em)

	// Mutating the source map after construction must not reach the Outcome.
	em.Add("Name", "late")
	assert.Equal(t, []string{"required"}, o.Errors().Get("Name"))

	// Mutating a read copy must not reach the Outcome either.
	got := o.Errors()
	got.Add("Age", "bad")
	assert.False(t, o.Errors().Has("Age"))
}

func TestOutcome_FailValidationNilMap(t *testing.T) {
	o := vouch.FailValidation[int](nil)
	assert.Equal(t, vouch.KindValidation, o.Kind())
	assert.True(t, o.Errors().Empty())
}

func TestMatch(t *testing.T) {
	t.Run("folds success", func(t *testing.T) {
		got := vouch.Match(vouch.Success(2),
			func(v int) string { return "ok" },
			func(f vouch.Failure) string { return "fail" },
		)
		assert.Equal(t, "ok", got)
	})

	t.Run("folds failure with shape", func(t *testing.T) {
		em := vouch.NewErrorMap()
		em.Add("Name", "required")
		got := vouch.Match(vouch.FailValidation[int](em),
			func(v int) vouch.Failure { panic("unreachable") },
			func(f vouch.Failure) vouch.Failure { return f },
		)
		require.Equal(t, vouch.KindValidation, got.Kind)
		assert.Equal(t, []string{"required"}, got.Errors.Get("Name"))
	})

	t.Run("nil fold function is a usage fault", func(t *testing.T) {
		assert.Panics(t, func() {
			vouch.Match(vouch.Success(1), nil, func(vouch.Failure) int { return 0 })
		})
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "success", vouch.KindSuccess.String())
	assert.Equal(t, "validation", vouch.KindValidation.String())
	assert.Equal(t, "cancelled", vouch.KindCancelled.String())
}
