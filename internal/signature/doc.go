// Package signature extracts the Parameter sequence from a handler
// function and its argument struct.
//
// Go reflection exposes a function's parameter types but not their
// names, kinds, or defaults, so the handler's argument struct is the
// signature: exported fields are parameters in declaration order, and
// struct tags carry the metadata a Go signature cannot express
// (`cli:"name"`, `kind:"positional"`, `default:"literal"`). This
// package is the single reflective boundary of the pipeline; everything
// after it works with plain model values.
package signature
