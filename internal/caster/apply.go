package caster

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/bargeparse/internal/model"
)

// Apply converts the raw tokens parsed for one descriptor into the
// parameter's Go value. Single-arity descriptors expect exactly one
// token; list descriptors assemble a slice element-wise; tuple
// descriptors additionally enforce their exact length.
func Apply(d *model.ArgumentDescriptor, raws []string) (reflect.Value, error) {
	c := d.Caster
	switch c.Kind {
	case model.CastList:
		out := reflect.MakeSlice(d.Param.Type, 0, len(raws))
		for _, raw := range raws {
			v, err := c.Elem.Convert(raw)
			if err != nil {
				return reflect.Value{}, err
			}
			out = reflect.Append(out, v)
		}
		return out, nil

	case model.CastTuple:
		if len(raws) != c.TupleLen {
			return reflect.Value{}, &model.CastError{
				Value:  strings.Join(raws, " "),
				Target: fmt.Sprintf("sequence of %d values", c.TupleLen),
				Err:    fmt.Errorf("got %d values", len(raws)),
			}
		}
		out := reflect.New(d.Param.Type).Elem()
		for i, raw := range raws {
			v, err := c.Elem.Convert(raw)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(v)
		}
		return out, nil

	default:
		if len(raws) != 1 {
			return reflect.Value{}, &model.BindingError{
				Detail: fmt.Sprintf("parameter %q: %d tokens for a single-arity argument", d.Param.Name, len(raws)),
			}
		}
		return c.Convert(raws[0])
	}
}
