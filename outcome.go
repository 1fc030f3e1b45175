package vouch

// Kind discriminates the five Outcome variants.
type Kind int

const (
	KindSuccess Kind = iota
	KindMessage
	KindValidation
	KindSecurity
	KindCancelled
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindMessage:
		return "message"
	case KindValidation:
		return "validation"
	case KindSecurity:
		return "security"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the immutable result of a validation pass: a constructed value or
// one of four failure shapes. The zero value is Success with the zero value of
// T. Construct failures with the Fail* constructors.
type Outcome[T any] struct {
	kind    Kind
	value   T
	message string
	errs    *ErrorMap
}

// Failure carries the failure side of an Outcome for Match.
type Failure struct {
	Kind    Kind
	Message string
	Errors  *ErrorMap
}

// Success returns a successful Outcome carrying v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{kind: KindSuccess, value: v}
}

// FailMessage returns a simple message failure.
func FailMessage[T any](message string) Outcome[T] {
	if message == "" {
		message = "validation failed"
	}
	return Outcome[T]{kind: KindMessage, message: message}
}

// FailValidation returns a structured validation failure. The map is cloned so
// later mutation by the caller cannot reach into the Outcome.
func FailValidation[T any](errs *ErrorMap) Outcome[T] {
	if errs == nil {
		errs = NewErrorMap()
	}
	return Outcome[T]{kind: KindValidation, errs: errs.Clone()}
}

// FailSecurity returns a security failure.
func FailSecurity[T any](message string) Outcome[T] {
	if message == "" {
		message = "security check failed"
	}
	return Outcome[T]{kind: KindSecurity, message: message}
}

// FailCancelled returns a cancellation failure.
func FailCancelled[T any](message string) Outcome[T] {
	if message == "" {
		message = "operation cancelled"
	}
	return Outcome[T]{kind: KindCancelled, message: message}
}

// Kind returns the variant tag.
func (o Outcome[T]) Kind() Kind { return o.kind }

// IsSuccess reports whether the Outcome carries a value.
func (o Outcome[T]) IsSuccess() bool { return o.kind == KindSuccess }

// Value returns the carried value, or the zero value of T for failures.
func (o Outcome[T]) Value() T { return o.value }

// FailureMessage returns the message of a message, security or cancellation
// failure. It is empty for success and validation failures.
func (o Outcome[T]) FailureMessage() string { return o.message }

// Errors returns a copy of the validation map of a validation failure, or an
// empty map for every other variant. The copy keeps the Outcome immutable.
func (o Outcome[T]) Errors() *ErrorMap {
	if o.errs == nil {
		return NewErrorMap()
	}
	return o.errs.Clone()
}

// Match folds the Outcome into R: onSuccess for the success variant, onFailure
// with the failure shape otherwise.
func Match[T, R any](o Outcome[T], onSuccess func(T) R, onFailure func(Failure) R) R {
	if onSuccess == nil || onFailure == nil {
		panic("vouch: Match requires both fold functions")
	}
	if o.kind == KindSuccess {
		return onSuccess(o.value)
	}
	return onFailure(Failure{Kind: o.kind, Message: o.message, Errors: o.Errors()})
}
