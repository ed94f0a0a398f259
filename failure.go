package ocmd

import "fmt"

// Failure aborts a dispatch. It is returned by the precondition checks on
// Context and may be returned from a Subcommand's Run callback to stop
// execution with a message to the source. A Failure with an empty message
// stops execution silently, which is used when a reply has already been
// sent.
type Failure struct {
	msg    string
	prefix bool
}

// Failf returns a Failure with the formatted message passed. The message is
// sent to the source with the handler's messaging prefix prepended.
func Failf(format string, args ...interface{}) *Failure {
	return &Failure{msg: fmt.Sprintf(format, args...), prefix: true}
}

// Bare returns a Failure like Failf, but its message is sent without the
// handler's messaging prefix.
func Bare(format string, args ...interface{}) *Failure {
	return &Failure{msg: fmt.Sprintf(format, args...)}
}

// Silent returns a Failure without a message. Dispatch stops and nothing is
// sent to the source.
func Silent() *Failure {
	return &Failure{}
}

func (f *Failure) Error() string {
	if f.msg == "" {
		return "ocmd: dispatch aborted"
	}
	return f.msg
}

// Message returns the user-facing message of the Failure. It is empty for
// silent failures.
func (f *Failure) Message() string {
	return f.msg
}

// Prefixed reports whether the handler's messaging prefix should be
// prepended to the Failure's message.
func (f *Failure) Prefixed() bool {
	return f.prefix
}
