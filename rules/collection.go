package rules

import (
	"fmt"
	"iter"

	vouch "github.com/vouch-dev/vouch"
)

// NotEmptySlice fails for a nil or empty slice.
func NotEmptySlice[E any]() vouch.Rule[[]E] {
	return func(v []E, name string) string {
		if len(v) > 0 {
			return ""
		}
		return fmt.Sprintf("%s must not be empty", name)
	}
}

// EmptySlice fails for a slice holding any element.
func EmptySlice[E any]() vouch.Rule[[]E] {
	return func(v []E, name string) string {
		if len(v) == 0 {
			return ""
		}
		return fmt.Sprintf("%s must be empty, but found %d items", name, len(v))
	}
}

// MinCount fails when the slice holds fewer than min elements. The message
// reports both the expected and the actual count.
func MinCount[E any](min int) vouch.Rule[[]E] {
	return func(v []E, name string) string {
		if len(v) >= min {
			return ""
		}
		return fmt.Sprintf("%s must contain at least %d items, but found %d", name, min, len(v))
	}
}

// MaxCount fails when the slice holds more than max elements.
func MaxCount[E any](max int) vouch.Rule[[]E] {
	return func(v []E, name string) string {
		if len(v) <= max {
			return ""
		}
		return fmt.Sprintf("%s must contain at most %d items, but found %d", name, max, len(v))
	}
}

// CountBetween fails when the element count falls outside [min, max].
func CountBetween[E any](min, max int) vouch.Rule[[]E] {
	return func(v []E, name string) string {
		if len(v) >= min && len(v) <= max {
			return ""
		}
		return fmt.Sprintf("%s must contain between %d and %d items, but found %d", name, min, max, len(v))
	}
}

// MinCountSeq is MinCount over a sequence. The sequence is enumerated exactly
// once; enumeration stops as soon as min elements have been seen.
func MinCountSeq[E any](min int) vouch.Rule[iter.Seq[E]] {
	return func(seq iter.Seq[E], name string) string {
		n := 0
		if seq != nil {
			for range seq {
				n++
				if n >= min {
					return ""
				}
			}
		}
		return fmt.Sprintf("%s must contain at least %d items, but found %d", name, min, n)
	}
}

// MaxCountSeq is MaxCount over a sequence, enumerating it exactly once and
// stopping at the first element past max.
func MaxCountSeq[E any](max int) vouch.Rule[iter.Seq[E]] {
	return func(seq iter.Seq[E], name string) string {
		n := 0
		if seq != nil {
			for range seq {
				n++
				if n > max {
					return fmt.Sprintf("%s must contain at most %d items, but found more", name, max)
				}
			}
		}
		return ""
	}
}
