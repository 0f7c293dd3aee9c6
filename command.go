package bargeparse

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/vk/bargeparse/internal/caster"
	"github.com/vk/bargeparse/internal/cliparse"
	"github.com/vk/bargeparse/internal/docs"
	"github.com/vk/bargeparse/internal/model"
	"github.com/vk/bargeparse/internal/schema"
	"github.com/vk/bargeparse/internal/signature"
)

// Command is a compiled command: a handler plus the argument schema
// derived from its signature, and any registered subcommands.
type Command struct {
	name        string
	summary     string
	description string

	handler     any
	sig         *signature.Signature
	descriptors []*model.ArgumentDescriptor

	factories map[reflect.Type]caster.FactoryFunc

	parent    *Command
	subOrder  []*Command
	subByName map[string]*Command
}

// New compiles handler into a root command. The command name defaults
// to the handler's kebab-cased function name; anonymous functions and
// method values need WithName. The schema is validated eagerly, so a
// handler whose signature cannot be expressed as a CLI fails here, not
// on some future invocation.
func New(handler any, opts ...Option) (*Command, error) {
	return build(handler, nil, opts)
}

// Subcommand compiles handler into a child command of c. The first
// bare token matching a child's name, once c's required positionals
// are satisfied, dispatches the remaining argv to the child. Child
// handlers may declare a `kind:"catchall"` map[string]any field to
// receive the parent's parsed values.
func (c *Command) Subcommand(handler any, opts ...Option) (*Command, error) {
	child, err := build(handler, c, opts)
	if err != nil {
		return nil, err
	}
	if _, dup := c.subByName[child.name]; dup {
		return nil, &model.SchemaError{
			Detail: fmt.Sprintf("subcommand %q registered twice on %q", child.name, c.name),
		}
	}
	c.subOrder = append(c.subOrder, child)
	c.subByName[child.name] = child
	return child, nil
}

// Name reports the command's resolved CLI name.
func (c *Command) Name() string { return c.name }

func build(handler any, parent *Command, opts []Option) (*Command, error) {
	c := &Command{
		handler:   handler,
		parent:    parent,
		factories: make(map[reflect.Type]caster.FactoryFunc),
		subByName: make(map[string]*Command),
	}
	if parent != nil {
		for t, fn := range parent.factories {
			c.factories[t] = fn
		}
	}

	var doc string
	for _, opt := range opts {
		opt(&buildState{cmd: c, doc: &doc})
	}
	c.summary, c.description = docs.Split(doc)

	sig, err := signature.Inspect(handler)
	if err != nil {
		return nil, err
	}
	c.sig = sig

	if sig.CatchAll != nil && parent == nil {
		return nil, &model.SignatureError{
			Detail: fmt.Sprintf("catch-all field %s is only valid on a subcommand handler", sig.CatchAll.GoName),
		}
	}

	help := docs.ParamHelp(sig.ArgsType)
	for _, p := range sig.Params {
		p.Help = help[p.GoName]
	}

	if c.name == "" {
		c.name = signature.FuncName(handler)
	}
	if c.name == "" {
		return nil, &model.SignatureError{
			Detail: "command name cannot be derived from the handler; use WithName",
		}
	}

	c.descriptors, err = schema.Build(sig.Params, c.factories)
	if err != nil {
		return nil, err
	}

	slog.Debug("compiled command",
		"name", c.name,
		"parameters", len(sig.Params),
		"subcommand", parent != nil,
	)
	return c, nil
}

// parseSpec is the cliparse-facing projection of the command under a
// concrete program name.
func (c *Command) parseSpec(prog string) *cliparse.CommandSpec {
	spec := &cliparse.CommandSpec{
		Prog:        prog,
		Summary:     c.summary,
		Description: c.description,
		Descriptors: c.descriptors,
	}
	for _, sub := range c.subOrder {
		spec.Subcommands = append(spec.Subcommands, cliparse.SubcommandInfo{
			Name:    sub.name,
			Summary: sub.summary,
		})
	}
	return spec
}

// declares reports whether the command's own schema binds the given
// canonical parameter name.
func (c *Command) declares(name string) bool {
	for _, d := range c.descriptors {
		if d.Param.Name == name {
			return true
		}
	}
	return false
}
