//go:build !assertions_disabled

package assert

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True panics unless value is true. When the first arg is a string it is
// used as a format string for the remaining args.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args))
}

// False panics unless value is false. Args follow the rules of True.
func False(value bool, args ...any) {
	True(!value, args...)
}

func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
