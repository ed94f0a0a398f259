package oerror

import "fmt"

// OcmdError is an error raised for configuration defects, such as a
// subcommand registered without the metadata it needs.
type OcmdError struct {
	Err string
}

// New returns an OcmdError with the formatted message passed.
func New(format string, args ...interface{}) *OcmdError {
	return &OcmdError{Err: fmt.Sprintf(format, args...)}
}

func (e *OcmdError) Error() string {
	return e.Err
}
