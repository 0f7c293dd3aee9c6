// Package bargeparse compiles ordinary Go functions into command-line
// interfaces.
//
// A handler is any func of shape func(), func(Args), or
// func(ctx, Args), optionally returning an error, where Args is a
// struct (or pointer to struct) describing the command's parameters.
// Each exported field becomes one argument; struct tags refine the
// mapping:
//
//	type Args struct {
//		Source  string   `help:"path to read"`
//		Verbose bool     `default:"false" help:"chatty output"`
//		Tags    []string `kind:"keyword" help:"labels to attach"`
//	}
//
// Fields without a default become required arguments; fields with one
// become optional. Whether an argument surfaces as a positional or as
// a --flag follows from the field's kind tag and default, with one
// exception: booleans are always flags, paired with a --no- negation.
//
// Register the handler with New, attach subcommands with Subcommand,
// and hand control to Execute:
//
//	cmd, err := bargeparse.New(sync, bargeparse.WithDoc(`Synchronise two trees.`))
//	...
//	cmd.Execute(context.Background())
//
// Parse failures print an argparse-style diagnostic and exit with
// status 2; -h and --help render generated help and exit cleanly.
package bargeparse
