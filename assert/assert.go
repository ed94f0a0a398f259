package assert

import (
	"strings"

	"github.com/oomph-ac/ocmd/oerror"
)

// IsTrue panics with an oerror if ok is false. It is used for conditions
// that can only fail due to a programming mistake.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// NotEmpty panics with an oerror if the string passed is empty or contains
// only whitespace.
func NotEmpty(s string, message string, args ...interface{}) {
	IsTrue(strings.TrimSpace(s) != "", message, args...)
}
