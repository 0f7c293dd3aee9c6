// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Caster variant type: the resolved strategy for
// turning one raw command-line token into a typed Go value.

package model

import "reflect"

// CasterKind enumerates the closed set of casting strategies. The type
// resolver picks exactly one kind per parameter via an ordered rule
// table; nothing downstream ever re-inspects the parameter's type.
type CasterKind int

const (
	// CastScalar converts a single token into a string, integer, float,
	// or byte-slice value.
	CastScalar CasterKind = iota

	// CastBoolean marks a boolean parameter. Booleans parse from flag
	// presence rather than a value token, so Convert only ever sees the
	// literals "true" and "false".
	CastBoolean

	// CastDate parses YEAR-MONTH-DAY with any single non-digit rune
	// accepted as the delimiter.
	CastDate

	// CastDateTime parses YEAR-MONTH-DAY-HOUR-MINUTE-SECOND with the
	// same delimiter tolerance as CastDate.
	CastDateTime

	// CastEnumChoice converts a token whose membership in the Choices
	// sequence has already been validated against the raw string.
	CastEnumChoice

	// CastList converts a variable-length run of tokens element-wise
	// through Elem into a slice.
	CastList

	// CastTuple converts a fixed-length run of TupleLen tokens
	// element-wise through Elem into an array.
	CastTuple

	// CastFactory delegates to an arbitrary string-to-value function: a
	// registered factory or the type's own TextUnmarshaler.
	CastFactory
)

// Caster is the conversion strategy resolved for one parameter type: a
// pure token-to-value function plus the metadata the schema builder and
// parser need (arity, choice set, boolean-ness).
type Caster struct {
	Kind CasterKind

	// Elem is the element caster for CastList and CastTuple. It is
	// never itself a list or tuple; the resolver rejects nested list
	// types at schema-construction time.
	Elem *Caster

	// Choices is the ordered sequence of permitted literal values for
	// CastEnumChoice, validated against raw tokens before conversion.
	Choices []string

	// TupleLen is the required token count for CastTuple.
	TupleLen int

	// Convert turns a single raw token into a value of the parameter's
	// type. For list and tuple casters, Convert belongs to Elem and the
	// run is assembled by caster.Apply.
	Convert func(raw string) (reflect.Value, error)
}

// IsList reports whether the caster consumes a run of tokens rather
// than a single one.
func (c *Caster) IsList() bool {
	return c.Kind == CastList || c.Kind == CastTuple
}
