package vouch

// Package vouch provides:
//
// - A fluent validation-composition builder that accumulates per-property
//   failures into a single ordered ErrorMap (see the dsl subpackage)
// - A stable result model via Outcome (success, message failure, validation
//   failure, security failure, cancellation)
// - Hierarchical validation contexts carrying the root object, a service
//   lookup, shared custom data, and a rule-execution log
// - Context-aware rules (synchronous and context.Context-aware) that downgrade
//   business faults to validation messages while letting cancellation through
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the fluent builder under dsl/, the leaf rule catalog under rules/,
//   and transport rendering under report/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	b := dsl.New[SignupInput]()
//	dsl.StringFor(b, func(s *SignupInput) *string { return &s.Name }, in.Name).NotEmpty().MaxLen(64)
//	dsl.NumberFor(b, func(s *SignupInput) *int { return &s.Age }, in.Age).InclusiveBetween(0, 120)
//	out := dsl.Build(b, func() User { return User{Name: in.Name, Age: in.Age} })
