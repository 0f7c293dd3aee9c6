package bargeparse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/vk/bargeparse/internal/binder"
	"github.com/vk/bargeparse/internal/caster"
	"github.com/vk/bargeparse/internal/cliparse"
	"github.com/vk/bargeparse/internal/ctxlog"
	"github.com/vk/bargeparse/internal/model"
)

// Run parses argv (without the program name) and invokes the resolved
// handler. Help requests render to stdout and return nil. Parse and
// cast failures render a diagnostic to stderr and return an *ExitError
// with code 2; handler errors are returned as-is.
func (c *Command) Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	return c.run(ctx, argv, c.name, nil, stdout, stderr)
}

// Execute runs against os.Args and terminates the process: status 0 on
// success, an ExitError's own code, or 1 for handler errors.
func (c *Command) Execute(ctx context.Context) {
	err := c.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}
	var exitErr *cliparse.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "%s: error: %v\n", c.name, err)
	os.Exit(1)
}

func (c *Command) run(ctx context.Context, argv []string, prog string, inherited map[string]any, stdout, stderr io.Writer) error {
	spec := c.parseSpec(prog)

	res, err := cliparse.Parse(spec, argv, stdout)
	if errors.Is(err, cliparse.ErrHelp) {
		return nil
	}
	if err != nil {
		return exitWithDiagnostic(spec, err, stderr)
	}

	values, err := c.castValues(res.Raw)
	if err != nil {
		return exitWithDiagnostic(spec, err, stderr)
	}

	if res.Sub != "" {
		child := c.subByName[res.Sub]
		pass := c.passthroughFor(child, values, res.Raw, inherited)
		ctxlog.FromContext(ctx).Debug("dispatching subcommand",
			"parent", c.name, "subcommand", child.name, "passthrough", len(pass))
		return child.run(ctx, res.SubArgv, prog+" "+res.Sub, pass, stdout, stderr)
	}

	slog.Debug("invoking handler", "command", c.name)
	return binder.Invoke(ctx, c.handler, c.sig, values, inherited)
}

// castValues converts the raw token runs into typed values, applying
// build-time defaults for absent optional arguments. Absent list
// arguments without a default yield an empty slice.
func (c *Command) castValues(raw map[string][]string) (map[string]reflect.Value, error) {
	values := make(map[string]reflect.Value, len(c.descriptors))
	for _, d := range c.descriptors {
		raws, ok := raw[d.Param.Name]
		if !ok {
			switch {
			case d.Param.HasDefault:
				values[d.Param.Name] = d.Default
			case d.Arity == model.List:
				values[d.Param.Name] = reflect.MakeSlice(d.Param.Type, 0, 0)
			}
			continue
		}
		v, err := caster.Apply(d, raws)
		if err != nil {
			return nil, &cliparse.ParseError{Arg: d.DisplayName(), Reason: err.Error(), Err: err}
		}
		values[d.Param.Name] = v
	}
	return values, nil
}

// passthroughFor assembles the map delivered to a child's catch-all
// field: inherited values merged with the values this command's own
// argv actually supplied, minus every name the child's schema binds.
// Arguments that fell back to their build-time default are not
// supplied and do not pass through.
func (c *Command) passthroughFor(child *Command, values map[string]reflect.Value, raw map[string][]string, inherited map[string]any) map[string]any {
	out := make(map[string]any, len(inherited)+len(values))
	for name, v := range inherited {
		out[name] = v
	}
	for _, d := range c.descriptors {
		if _, supplied := raw[d.Param.Name]; !supplied {
			continue
		}
		if v, ok := values[d.Param.Name]; ok {
			out[d.Param.Name] = v.Interface()
		}
	}
	for name := range out {
		if child.declares(name) {
			delete(out, name)
		}
	}
	return out
}

// exitWithDiagnostic renders a parse-stage failure to stderr and wraps
// it in the status-2 ExitError contract.
func exitWithDiagnostic(spec *cliparse.CommandSpec, err error, stderr io.Writer) error {
	var perr *cliparse.ParseError
	if !errors.As(err, &perr) {
		perr = &cliparse.ParseError{Reason: err.Error(), Err: err}
	}
	fmt.Fprintln(stderr, cliparse.FormatError(spec, perr))
	return &cliparse.ExitError{Code: 2, Message: perr.Error()}
}
