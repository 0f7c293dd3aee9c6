package bargeparse

import "reflect"

// buildState is the mutable target options act on during compilation.
type buildState struct {
	cmd *Command
	doc *string
}

// Option adjusts a command during New or Subcommand.
type Option func(*buildState)

// WithName overrides the command's CLI name. Required for anonymous
// functions and method values, whose declared name the runtime cannot
// recover.
func WithName(name string) Option {
	return func(s *buildState) { s.cmd.name = name }
}

// WithDoc attaches the command's documentation text. The first
// paragraph becomes the one-line summary shown in subcommand listings;
// the full text appears in --help output. Indented raw string literals
// are dedented.
func WithDoc(text string) Option {
	return func(s *buildState) { *s.doc = text }
}

// WithFactory registers a conversion from a raw token to T, taking
// precedence over the built-in casting rules for T and for elements of
// []T. Subcommands inherit the parent's factories.
func WithFactory[T any](fn func(string) (T, error)) Option {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return func(s *buildState) {
		s.cmd.factories[t] = func(raw string) (any, error) {
			return fn(raw)
		}
	}
}
