// Package schema compiles an inspected parameter sequence into the
// ordered ArgumentDescriptor set a command parses against.
//
// The builder applies one decision table: a parameter with no default
// is positional when its kind allows position and a required flag when
// it is keyword-only; a parameter with a default stays positional only
// when it is positional-only, otherwise it becomes an optional flag.
// Booleans override the table and are always flags. The emitted
// sequence lists every positional before every flag, and construction
// fails rather than guess when two positional list parameters would
// make token assignment ambiguous.
package schema
