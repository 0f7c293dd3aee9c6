// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Parameter structure, the inspected form of one
// field of a handler's argument struct.

package model

import "reflect"

// ParameterKind classifies how a parameter may be supplied on the
// command line, mirroring the declaration on the argument struct field.
type ParameterKind int

const (
	// PositionalOrKeyword is the kind of a field with no `kind` tag. It
	// surfaces as a positional argument when it has no default and as an
	// optional flag when it does.
	PositionalOrKeyword ParameterKind = iota

	// PositionalOnly parameters (`kind:"positional"`) always surface as
	// positional arguments, even when a default makes them optional.
	PositionalOnly

	// KeywordOnly parameters (`kind:"keyword"`) always surface as flags.
	KeywordOnly

	// CatchAll marks the pass-through parameter of a subcommand. It
	// never surfaces on the command line; at invocation time it receives
	// the parent command's parsed values, keyed by name.
	CatchAll
)

// String returns the tag spelling of the kind, for error messages.
func (k ParameterKind) String() string {
	switch k {
	case PositionalOrKeyword:
		return "positional-or-keyword"
	case PositionalOnly:
		return "positional"
	case KeywordOnly:
		return "keyword"
	case CatchAll:
		return "catchall"
	default:
		return "unknown"
	}
}

// Parameter is the inspected form of a single argument-struct field.
// Parameters are created once per inspected handler and are never
// mutated after the command is built.
type Parameter struct {
	// Name is the canonical CLI name: the kebab-cased field name, or the
	// `cli:` tag override. It is unique within a command and is the key
	// used in parse results and pass-through maps.
	Name string

	// GoName is the declared struct field name.
	GoName string

	// Kind is the declared parameter kind.
	Kind ParameterKind

	// HasDefault reports whether the field carried a `default:` tag.
	// The zero value of the field type is deliberately not treated as a
	// default; absence of the tag makes the parameter required.
	HasDefault bool

	// DefaultRaw is the literal from the `default:` tag, uncast. List
	// defaults are comma-separated element literals.
	DefaultRaw string

	// Type is the field's declared Go type.
	Type reflect.Type

	// Help is the help text supplied by the documentation collaborator.
	// Empty when the field carries none.
	Help string

	// FieldIndex is the field's index within the argument struct.
	FieldIndex int
}
