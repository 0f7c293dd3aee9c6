// Package cliparse is the token-parsing engine behind a compiled
// command schema.
//
// It consumes the ArgumentDescriptor sequence and raw argv and produces
// a name-to-raw-token mapping, selecting a subcommand when one is
// named. Long flags may take inline (`--x=v`) or following-token
// values; boolean flags take none and accept a `--no-x` companion;
// list-arity flags greedily consume the run of tokens up to the next
// flag. Bare tokens are matched against positional descriptors left to
// right, reserving tokens for required positionals that follow.
//
// The package also renders `--help` output and the
// "<prog>: error: argument <name>: <reason>" diagnostics, and carries
// exit codes to the process edge through ExitError. Choice-set
// membership is validated here, on raw tokens, before any casting, so
// an invalid choice reports the permitted values rather than a
// conversion failure.
package cliparse
