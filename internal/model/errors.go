// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the error taxonomy shared by the pipeline stages.
// Schema-time failures (SignatureError, SchemaError) abort command
// registration; cast-time failures (CastError, InvalidChoiceError) are
// surfaced to the user through the parser's diagnostic channel; a
// BindingError is an internal invariant violation and never user-facing.

package model

import (
	"fmt"
	"strings"
)

// SignatureError reports a handler whose shape or argument-struct tags
// cannot be introspected into a consistent Parameter sequence.
type SignatureError struct {
	Detail string
}

func (e *SignatureError) Error() string {
	return "invalid handler signature: " + e.Detail
}

// SchemaError reports a parameter and type combination that cannot be
// mapped to a valid argument schema, such as a nested list type or two
// positional list parameters on one command. It is raised at
// registration time, before any command line can be parsed.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "invalid argument schema: " + e.Detail
}

// CastError reports a raw token that the resolved caster could not
// convert. It is rendered through the parser's diagnostic channel and
// never reaches a handler.
type CastError struct {
	// Value is the offending raw token.
	Value string

	// Target is the human-readable name of the expected value shape,
	// e.g. "integer" or "date".
	Target string

	// Err is the underlying conversion error, if any.
	Err error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("invalid %s value: '%s'", e.Target, e.Value)
}

func (e *CastError) Unwrap() error { return e.Err }

// InvalidChoiceError is the enumerated-type specialization of
// CastError: the raw token is not a member of the declared choice set.
// The membership check runs before any conversion, so the message can
// list the permitted literals instead of a generic cast failure.
type InvalidChoiceError struct {
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	quoted := make([]string, len(e.Choices))
	for i, c := range e.Choices {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("invalid choice: '%s' (choose from %s)",
		e.Value, strings.Join(quoted, ", "))
}

// Unwrap exposes the failure as a CastError so callers checking for
// cast failures with errors.As see choice misses too.
func (e *InvalidChoiceError) Unwrap() error {
	return &CastError{Value: e.Value, Target: "choice"}
}

// BindingError reports an invariant violation while rebinding parsed
// values onto the handler. A correctly built schema makes these
// unreachable; they exist to fail loudly instead of invoking a handler
// with a half-bound argument struct.
type BindingError struct {
	Detail string
}

func (e *BindingError) Error() string {
	return "argument binding failed: " + e.Detail
}
