// Package dsl is the fluent validation surface. A Builder accumulates
// per-property failures into one ordered error map; typed entry points
// (StringFor, NumberFor, SliceFor, IDFor, ValueFor) apply catalog rules
// immediately as the chain is written; ComposeFor merges a nested Outcome into
// the enclosing map with property-path prefixing; Build converts the
// accumulated state into an Outcome.
//
// A Builder and its validators are meant for one validation pass on one
// goroutine: chain calls push and conditionally pop against shared accumulator
// state, so concurrent use of a single Builder is unsafe. Rules themselves are
// shareable.
package dsl
