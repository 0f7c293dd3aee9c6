// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the data structures shared by every stage of the
// signature-to-CLI pipeline. Its core purpose is to give the pipeline a
// strongly-typed, immutable vocabulary: what a parameter is, how a raw
// token becomes a typed value, and how a parameter surfaces on the
// command line.
//
// # Core Concepts
//
// The model is built around three structures:
//
//   - Parameter: one field of a handler's argument struct, as declared.
//     It records the canonical CLI name, the parameter kind
//     (positional-only, positional-or-keyword, keyword-only, catch-all),
//     the declared Go type, and the default literal, if any.
//
//   - Caster: the value-conversion strategy resolved for a parameter's
//     type. Casters form a closed set of variants (scalar, boolean,
//     date, datetime, enum choice, list, tuple, factory) resolved once
//     at build time, so no stage ever dispatches on raw reflect.Kind
//     values at parse time.
//
//   - ArgumentDescriptor: the compiled command-line shape of a
//     parameter (positional or optional flag, required or not, single
//     token or a run of tokens) plus its Caster and pre-cast default.
//
// Why a separate model package?
//
// The inspector, resolver, builder, parser, and invoker each own one
// transformation over these structures. Keeping the structures in a leaf
// package lets every stage share them without import cycles and makes
// the whole schema a plain value that can be built once, compared in
// tests, and never mutated after registration.
package model
