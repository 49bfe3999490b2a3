// Package strutil contains small, stateless string drills: run-length
// compression, permutation checks and a hand-written decimal parser.
//
// Every function is pure and safe for concurrent use. Usage errors are
// returned as values wrapping errors.ErrInvalidArgument; nothing panics on
// malformed input.
package strutil
