package vouch

import "errors"

// ErrUsage marks caller-usage faults: arguments a correct caller never passes.
// Errors wrapping ErrUsage are never downgraded to validation messages; they
// propagate out of context-aware rules untouched.
var ErrUsage = errors.New("vouch: invalid usage")

// Numeric covers every built-in numeric width. Rules parameterized over
// Numeric require the bound and value types to match exactly; there is no
// implicit widening.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a pure validation check: it receives the value and the property's
// display name and returns a failure message, or "" when the value passes.
// Rules carry no state and are safe to share across goroutines.
type Rule[V any] func(value V, displayName string) string

// Must wraps an arbitrary predicate and a fixed message into a Rule. It is the
// escape hatch for one-off checks that have no catalog rule. A nil predicate
// or empty message is a usage fault.
func Must[V any](pred func(V) bool, message string) Rule[V] {
	if pred == nil {
		panic("vouch: Must requires a predicate")
	}
	if message == "" {
		panic("vouch: Must requires a message")
	}
	return func(v V, _ string) string {
		if pred(v) {
			return ""
		}
		return message
	}
}
