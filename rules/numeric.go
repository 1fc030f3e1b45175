package rules

import (
	"fmt"

	vouch "github.com/vouch-dev/vouch"
)

// Numeric rules are generic over a single ordered-arithmetic constraint so one
// implementation serves every width; the bound and value types always match
// exactly, there is no implicit widening.

// GreaterThan fails unless value > bound.
func GreaterThan[N vouch.Numeric](bound N) vouch.Rule[N] {
	return func(v N, name string) string {
		if v > bound {
			return ""
		}
		return fmt.Sprintf("%s must be greater than %v", name, bound)
	}
}

// GreaterThanOrEqual fails unless value >= bound.
func GreaterThanOrEqual[N vouch.Numeric](bound N) vouch.Rule[N] {
	return func(v N, name string) string {
		if v >= bound {
			return ""
		}
		return fmt.Sprintf("%s must be greater than or equal to %v", name, bound)
	}
}

// LessThan fails unless value < bound.
func LessThan[N vouch.Numeric](bound N) vouch.Rule[N] {
	return func(v N, name string) string {
		if v < bound {
			return ""
		}
		return fmt.Sprintf("%s must be less than %v", name, bound)
	}
}

// LessThanOrEqual fails unless value <= bound.
func LessThanOrEqual[N vouch.Numeric](bound N) vouch.Rule[N] {
	return func(v N, name string) string {
		if v <= bound {
			return ""
		}
		return fmt.Sprintf("%s must be less than or equal to %v", name, bound)
	}
}

// NotZero fails for the numeric zero value.
func NotZero[N vouch.Numeric]() vouch.Rule[N] {
	return func(v N, name string) string {
		var zero N
		if v != zero {
			return ""
		}
		return fmt.Sprintf("%s must not be zero", name)
	}
}

// InclusiveBetween fails unless from <= value <= to.
func InclusiveBetween[N vouch.Numeric](from, to N) vouch.Rule[N] {
	return func(v N, name string) string {
		if v >= from && v <= to {
			return ""
		}
		return fmt.Sprintf("%s must be between %v and %v (inclusive)", name, from, to)
	}
}

// ExclusiveBetween fails unless from < value < to.
func ExclusiveBetween[N vouch.Numeric](from, to N) vouch.Rule[N] {
	return func(v N, name string) string {
		if v > from && v < to {
			return ""
		}
		return fmt.Sprintf("%s must be between %v and %v (exclusive)", name, from, to)
	}
}
