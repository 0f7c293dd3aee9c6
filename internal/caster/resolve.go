package caster

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/vk/bargeparse/internal/model"
)

// FactoryFunc converts a raw token into a value. Factories registered
// for a type take precedence over the type's own conversion behavior,
// mirroring how an explicit strategy should beat a derived one.
type FactoryFunc func(raw string) (any, error)

// enumer is the contract of an enumerated choice type: a named string
// type that declares its permitted literal values in order.
type enumer interface {
	Choices() []string
}

var (
	dateType            = reflect.TypeOf(model.Date{})
	timeType            = reflect.TypeOf(time.Time{})
	enumerType          = reflect.TypeOf((*enumer)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Resolve maps a declared parameter type to its Caster. The rules are
// checked in order; the first match wins. A type that no rule covers,
// or a list type nested inside another list type, is a SchemaError.
func Resolve(t reflect.Type, factories map[reflect.Type]FactoryFunc) (*model.Caster, error) {
	return resolve(t, factories, false)
}

func resolve(t reflect.Type, factories map[reflect.Type]FactoryFunc, inList bool) (*model.Caster, error) {
	switch {
	case t == dateType:
		return dateCaster(), nil

	case t == timeType:
		return dateTimeCaster(), nil

	case t.Kind() == reflect.Bool:
		return boolCaster(t), nil

	case factories[t] != nil:
		return factoryCaster(t, factories[t]), nil

	case isEnum(t):
		if t.Kind() != reflect.String {
			return nil, &model.SchemaError{
				Detail: fmt.Sprintf("choice type %s must have a string kind", t),
			}
		}
		return enumCaster(t), nil

	case isListType(t):
		if inList {
			return nil, &model.SchemaError{
				Detail: fmt.Sprintf("nested list type %s is not supported", t),
			}
		}
		elem, err := resolve(t.Elem(), factories, true)
		if err != nil {
			return nil, err
		}
		if t.Kind() == reflect.Array {
			return &model.Caster{Kind: model.CastTuple, Elem: elem, TupleLen: t.Len()}, nil
		}
		return &model.Caster{Kind: model.CastList, Elem: elem}, nil

	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		return textCaster(t), nil

	default:
		return scalarCaster(t)
	}
}

// isListType reports slice and array types, excluding byte slices,
// which cast as a single scalar token.
func isListType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}

func isEnum(t reflect.Type) bool {
	return t.Implements(enumerType) || reflect.PointerTo(t).Implements(enumerType)
}

// choicesOf returns the declared value sequence of an enumerated type,
// honoring both value and pointer receivers.
func choicesOf(t reflect.Type) []string {
	v := reflect.New(t)
	if e, ok := v.Elem().Interface().(enumer); ok {
		return e.Choices()
	}
	return v.Interface().(enumer).Choices()
}

func boolCaster(t reflect.Type) *model.Caster {
	return &model.Caster{
		Kind: model.CastBoolean,
		Convert: func(raw string) (reflect.Value, error) {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: "boolean", Err: err}
			}
			return reflect.ValueOf(b).Convert(t), nil
		},
	}
}

func enumCaster(t reflect.Type) *model.Caster {
	choices := choicesOf(t)
	return &model.Caster{
		Kind:    model.CastEnumChoice,
		Choices: choices,
		Convert: func(raw string) (reflect.Value, error) {
			for _, c := range choices {
				if raw == c {
					return reflect.ValueOf(raw).Convert(t), nil
				}
			}
			return reflect.Value{}, &model.InvalidChoiceError{Value: raw, Choices: choices}
		},
	}
}

func factoryCaster(t reflect.Type, factory FactoryFunc) *model.Caster {
	return &model.Caster{
		Kind: model.CastFactory,
		Convert: func(raw string) (reflect.Value, error) {
			out, err := factory(raw)
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: t.String(), Err: err}
			}
			v := reflect.ValueOf(out)
			if !v.IsValid() || !v.Type().AssignableTo(t) {
				return reflect.Value{}, &model.CastError{
					Value:  raw,
					Target: t.String(),
					Err:    fmt.Errorf("factory returned %T, want %s", out, t),
				}
			}
			return v, nil
		},
	}
}

func textCaster(t reflect.Type) *model.Caster {
	return &model.Caster{
		Kind: model.CastFactory,
		Convert: func(raw string) (reflect.Value, error) {
			v := reflect.New(t)
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: t.String(), Err: err}
			}
			return v.Elem(), nil
		},
	}
}

func scalarCaster(t reflect.Type) (*model.Caster, error) {
	convert, target := scalarConvert(t)
	if convert == nil {
		return nil, &model.SchemaError{
			Detail: fmt.Sprintf("unsupported parameter type %s", t),
		}
	}
	return &model.Caster{
		Kind: model.CastScalar,
		Convert: func(raw string) (reflect.Value, error) {
			v, err := convert(raw)
			if err != nil {
				return reflect.Value{}, &model.CastError{Value: raw, Target: target, Err: err}
			}
			return v, nil
		},
	}, nil
}

// scalarConvert returns the conversion function and diagnostic name for
// a scalar kind, or nil when the kind is not castable from one token.
func scalarConvert(t reflect.Type) (func(string) (reflect.Value, error), string) {
	switch t.Kind() {
	case reflect.String:
		return func(raw string) (reflect.Value, error) {
			return reflect.ValueOf(raw).Convert(t), nil
		}, "string"

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := t.Bits()
		return func(raw string) (reflect.Value, error) {
			n, err := strconv.ParseInt(raw, 10, bits)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(n).Convert(t), nil
		}, "integer"

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := t.Bits()
		return func(raw string) (reflect.Value, error) {
			n, err := strconv.ParseUint(raw, 10, bits)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(n).Convert(t), nil
		}, "integer"

	case reflect.Float32, reflect.Float64:
		bits := t.Bits()
		return func(raw string) (reflect.Value, error) {
			f, err := strconv.ParseFloat(raw, bits)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(f).Convert(t), nil
		}, "number"

	case reflect.Slice:
		// Only byte slices reach here; see isListType.
		return func(raw string) (reflect.Value, error) {
			return reflect.ValueOf([]byte(raw)).Convert(t), nil
		}, "bytes"

	default:
		return nil, ""
	}
}
