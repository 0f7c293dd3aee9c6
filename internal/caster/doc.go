// Package caster resolves a parameter's declared Go type into its
// casting strategy.
//
// Resolution is a single ordered rule table checked once per parameter
// at registration time: date and datetime wrappers, booleans,
// registered factories, enumerated choice types, lists and tuples,
// TextUnmarshaler implementations, and finally the scalar kinds. The
// result is a closed model.Caster variant, so raw-token conversion at
// parse time is a plain function call with no type dispatch left in it.
package caster
