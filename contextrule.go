package vouch

import (
	"context"
	"errors"
)

const (
	faultPrefix      = "Validation error: "
	asyncFaultPrefix = "Async validation error: "
)

// ContextRule pairs a context-aware predicate with a fixed failure message.
// The condition may consult the validation context (root object, services,
// custom data). A ContextRule is immutable after construction and safe to
// invoke concurrently.
type ContextRule[V any] struct {
	condition func(V, *Context) (bool, error)
	message   string
}

// NewContextRule builds a synchronous context-aware rule. A nil condition or
// empty message is a usage fault.
func NewContextRule[V any](condition func(V, *Context) (bool, error), message string) *ContextRule[V] {
	if condition == nil {
		panic("vouch: NewContextRule requires a condition")
	}
	if message == "" {
		panic("vouch: NewContextRule requires a message")
	}
	return &ContextRule[V]{condition: condition, message: message}
}

// Message returns the rule's fixed failure message.
func (r *ContextRule[V]) Message() string { return r.message }

// Validate runs the condition against value. A false condition yields the
// rule's message. An error from the condition is downgraded to a
// "Validation error: ..." message, except cancellation and usage faults which
// propagate untouched. A nil vctx degrades to a minimal context so predicates
// that consult the context see "not available" rather than failing.
func (r *ContextRule[V]) Validate(value V, displayName string, vctx *Context) (string, error) {
	_ = displayName // the message is fixed; the name exists for call-site symmetry
	if vctx == nil {
		vctx = NewContext(nil, nil)
	}
	ok, err := r.condition(value, vctx)
	if err != nil {
		if passesThrough(err) {
			return "", err
		}
		return faultPrefix + err.Error(), nil
	}
	if !ok {
		return r.message, nil
	}
	return "", nil
}

// AsyncContextRule is the context.Context-aware variant of ContextRule for
// conditions that block (service calls, I/O). The awaited condition is the
// rule's only blocking point; cancellation raised by the condition propagates
// instead of being downgraded.
type AsyncContextRule[V any] struct {
	condition func(context.Context, V, *Context) (bool, error)
	message   string
}

// NewAsyncContextRule builds the blocking variant. A nil condition or empty
// message is a usage fault.
func NewAsyncContextRule[V any](condition func(context.Context, V, *Context) (bool, error), message string) *AsyncContextRule[V] {
	if condition == nil {
		panic("vouch: NewAsyncContextRule requires a condition")
	}
	if message == "" {
		panic("vouch: NewAsyncContextRule requires a message")
	}
	return &AsyncContextRule[V]{condition: condition, message: message}
}

// Message returns the rule's fixed failure message.
func (r *AsyncContextRule[V]) Message() string { return r.message }

// Validate runs the condition. Unlike the synchronous variant there is no
// minimal-context fallback: a nil vctx is a usage fault. Errors downgrade to
// "Async validation error: ..." messages, except cancellation and usage
// faults which propagate.
func (r *AsyncContextRule[V]) Validate(ctx context.Context, value V, displayName string, vctx *Context) (string, error) {
	_ = displayName
	if vctx == nil {
		panic("vouch: AsyncContextRule.Validate requires a validation context")
	}
	ok, err := r.condition(ctx, value, vctx)
	if err != nil {
		if passesThrough(err) {
			return "", err
		}
		return asyncFaultPrefix + err.Error(), nil
	}
	if !ok {
		return r.message, nil
	}
	return "", nil
}

// passesThrough reports whether err must propagate instead of being rewritten
// into a validation message: cancellation signals and usage faults.
func passesThrough(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrUsage)
}
