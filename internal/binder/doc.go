// Package binder is the last hop between parsed values and user code.
//
// It materialises the handler's argument struct, sets each field from
// the cast value map, fills the catch-all map for subcommand handlers,
// and performs the reflective call with whatever calling convention the
// inspected signature recorded. Failures here are BindingErrors; by
// this point the schema and the parse have both been validated, so a
// binding failure indicates a bug in the schema pipeline rather than
// bad user input.
package binder
