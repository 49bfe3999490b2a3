// Package assert provides runtime invariant checks that panic when violated.
//
// The checks compile to no-ops when the assertions_disabled build tag is set,
// so hot paths can keep them in development builds without paying for them
// in production:
//
//	go build -tags assertions_disabled ./...
package assert
