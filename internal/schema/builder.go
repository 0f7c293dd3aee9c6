package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/bargeparse/internal/caster"
	"github.com/vk/bargeparse/internal/model"
)

// Build compiles the parameter sequence into argument descriptors,
// ordered with every positional descriptor (in declaration order)
// before every flag descriptor (in declaration order). It fails with a
// SchemaError when a parameter's type cannot be resolved, a default
// literal does not cast, or more than one positional list parameter is
// declared.
func Build(params []*model.Parameter, factories map[reflect.Type]caster.FactoryFunc) ([]*model.ArgumentDescriptor, error) {
	var positionals, flags []*model.ArgumentDescriptor
	var positionalList *model.ArgumentDescriptor

	for _, p := range params {
		c, err := caster.Resolve(p.Type, factories)
		if err != nil {
			return nil, paramErr(p, err)
		}

		d := &model.ArgumentDescriptor{Param: p, Caster: c}
		if c.IsList() {
			d.Arity = model.List
		}

		if c.Kind == model.CastBoolean {
			// Booleans are always flags, whatever their kind says.
			d.Role = model.OptionalFlag
			d.Required = !p.HasDefault
			d.NegatedFlag = "--no-" + p.Name
		} else {
			switch {
			case !p.HasDefault && p.Kind != model.KeywordOnly:
				d.Role = model.Positional
				d.Required = true
			case !p.HasDefault:
				d.Role = model.OptionalFlag
				d.Required = true
			case p.Kind == model.PositionalOnly:
				d.Role = model.Positional
				d.Required = false
			default:
				d.Role = model.OptionalFlag
				d.Required = false
			}
		}
		if d.Role == model.OptionalFlag {
			d.Flag = "--" + p.Name
		}

		if p.HasDefault {
			def, err := castDefault(d)
			if err != nil {
				return nil, err
			}
			d.Default = def
		}

		if d.Role == model.Positional && d.Arity == model.List {
			if positionalList != nil {
				return nil, &model.SchemaError{
					Detail: fmt.Sprintf("positional list parameters %q and %q make the token boundary ambiguous; declare at most one",
						positionalList.Param.Name, p.Name),
				}
			}
			positionalList = d
		}

		if d.Role == model.Positional {
			positionals = append(positionals, d)
		} else {
			flags = append(flags, d)
		}
	}

	return append(positionals, flags...), nil
}

// castDefault casts the `default:` literal through the descriptor's
// caster once, at build time, so a malformed default aborts
// registration instead of surfacing on some future invocation.
func castDefault(d *model.ArgumentDescriptor) (reflect.Value, error) {
	raws := []string{d.Param.DefaultRaw}
	if d.Arity == model.List {
		if d.Param.DefaultRaw == "" {
			raws = nil
		} else {
			raws = strings.Split(d.Param.DefaultRaw, ",")
		}
	}
	def, err := caster.Apply(d, raws)
	if err != nil {
		return reflect.Value{}, &model.SchemaError{
			Detail: fmt.Sprintf("parameter %q: invalid default %q: %v", d.Param.Name, d.Param.DefaultRaw, err),
		}
	}
	return def, nil
}

// paramErr prefixes a resolution failure with the parameter name,
// keeping the SchemaError type intact.
func paramErr(p *model.Parameter, err error) error {
	if schemaErr, ok := err.(*model.SchemaError); ok {
		return &model.SchemaError{
			Detail: fmt.Sprintf("parameter %q: %s", p.Name, schemaErr.Detail),
		}
	}
	return &model.SchemaError{
		Detail: fmt.Sprintf("parameter %q: %v", p.Name, err),
	}
}
