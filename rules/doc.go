// Package rules is the leaf rule catalog: small, independent checks returned
// as vouch.Rule values. Every constructor is pure; the returned rule carries
// no state, interpolates the display name at evaluation time, and is safe to
// share across goroutines and builders.
package rules
