package bargeparse

import (
	"time"

	"github.com/vk/bargeparse/internal/cliparse"
	"github.com/vk/bargeparse/internal/model"
)

// The schema and runtime error types live in internal/model so every
// stage of the pipeline can produce them; these aliases are the public
// spellings callers match with errors.As.
type (
	// SignatureError reports a handler whose Go signature cannot be
	// expressed as a command-line interface.
	SignatureError = model.SignatureError

	// SchemaError reports an argument schema that cannot be compiled,
	// such as an unsupported parameter type or a malformed default.
	SchemaError = model.SchemaError

	// CastError reports a token that could not be converted to its
	// parameter's type.
	CastError = model.CastError

	// InvalidChoiceError reports a token outside an enum parameter's
	// choice set.
	InvalidChoiceError = model.InvalidChoiceError

	// BindingError reports a failure to populate the handler's argument
	// struct from parsed values.
	BindingError = model.BindingError

	// ExitError carries the process exit status for a failed run.
	ExitError = cliparse.ExitError
)

// ErrHelp is returned by the parsing layer after rendering help. Run
// swallows it; it is exported for callers driving cliparse directly.
var ErrHelp = cliparse.ErrHelp

// Date is a calendar day without a time of day. Handler fields of this
// type parse date tokens like "2000-01-01" with any single-rune
// delimiter; time.Time fields parse full datetime tokens instead.
type Date = model.Date

// NewDate constructs the calendar day y-m-d.
func NewDate(year int, month time.Month, day int) Date {
	return model.NewDate(year, month, day)
}
