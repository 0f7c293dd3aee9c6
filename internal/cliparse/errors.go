package cliparse

import "errors"

// ErrHelp is returned by Parse after help output has been rendered.
// The caller should exit cleanly without invoking any handler.
var ErrHelp = errors.New("help requested")

// ExitError carries a process exit code alongside its message, so the
// binary's entry point can print and exit without re-deriving status
// codes.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// MissingArgumentError reports a required argument that the command
// line did not supply.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return "missing required value"
}

// ParseError is a user-facing parse failure: an unknown flag, a missing
// or malformed value, an invalid choice. Arg names the offending
// argument when one is known.
type ParseError struct {
	Arg    string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	if e.Arg == "" {
		return reason
	}
	return "argument " + e.Arg + ": " + reason
}

func (e *ParseError) Unwrap() error { return e.Err }
