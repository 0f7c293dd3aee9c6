// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the ArgumentDescriptor, the compiled command-line
// shape of a parameter. The schema builder emits an ordered descriptor
// sequence per command; the parser and invoker consume it unchanged.

package model

import "reflect"

// Role says whether an argument is matched by position or by flag name.
type Role int

const (
	// Positional arguments are matched left to right against bare
	// tokens.
	Positional Role = iota

	// OptionalFlag arguments are matched by their long flag name. The
	// name is historical argparse vocabulary; a flag can still be
	// required.
	OptionalFlag
)

// String returns a lower-case spelling for error messages.
func (r Role) String() string {
	if r == Positional {
		return "positional"
	}
	return "flag"
}

// Arity says how many tokens an argument consumes.
type Arity int

const (
	// Single arguments consume exactly one token.
	Single Arity = iota

	// List arguments consume a variable-length run of tokens up to the
	// next flag. Tuple-typed arguments also use List arity; their exact
	// length is enforced at cast time.
	List
)

// ArgumentDescriptor is the fully compiled form of one parameter.
//
// Two invariants hold for every emitted sequence: boolean parameters
// always have Role OptionalFlag, and every Positional descriptor
// precedes every OptionalFlag descriptor, which keeps the parser's
// token-boundary rules unambiguous.
type ArgumentDescriptor struct {
	// Param is a back-reference to the source parameter. The descriptor
	// does not own it.
	Param *Parameter

	Role     Role
	Required bool
	Arity    Arity

	// Flag is the long flag name including the leading dashes, e.g.
	// "--output-file". Empty for positional descriptors.
	Flag string

	// NegatedFlag is the "--no-x" companion, set only for boolean
	// toggles.
	NegatedFlag string

	Caster *Caster

	// Default is the default literal cast once at build time. Only
	// meaningful when Param.HasDefault is true.
	Default reflect.Value
}

// DisplayName is the name diagnostics refer to the argument by: the
// flag spelling for flags, the parameter name for positionals.
func (d *ArgumentDescriptor) DisplayName() string {
	if d.Role == OptionalFlag {
		return d.Flag
	}
	return d.Param.Name
}
