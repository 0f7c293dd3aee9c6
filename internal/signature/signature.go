package signature

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/bargeparse/internal/model"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	anyMapType  = reflect.TypeOf(map[string]any(nil))
)

// Signature is the inspected shape of a handler: its calling convention
// plus the ordered Parameter sequence extracted from the argument
// struct.
type Signature struct {
	// Params are the command-line parameters in field declaration
	// order. The catch-all parameter, if any, is not included.
	Params []*model.Parameter

	// CatchAll is the pass-through parameter declared with
	// `kind:"catchall"`, or nil.
	CatchAll *model.Parameter

	// ArgsType is the argument struct type, nil for handlers that take
	// no arguments.
	ArgsType reflect.Type

	// ArgsPointer reports whether the handler wants *ArgsType rather
	// than ArgsType.
	ArgsPointer bool

	// TakesContext reports whether the handler's first parameter is a
	// context.Context.
	TakesContext bool

	// ReturnsError reports whether the handler returns an error.
	ReturnsError bool
}

// Inspect extracts the Signature of a handler. Accepted handler shapes
// are func(), func(A), and func(ctx, A), each optionally returning an
// error, where A is a struct or pointer to struct. Anything else fails
// with a SignatureError.
func Inspect(handler any) (*Signature, error) {
	if handler == nil {
		return nil, &model.SignatureError{Detail: "handler must not be nil"}
	}
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func {
		return nil, &model.SignatureError{
			Detail: fmt.Sprintf("handler must be a function, got %s", t),
		}
	}
	if t.IsVariadic() {
		return nil, &model.SignatureError{Detail: "handler must not be variadic"}
	}

	sig := &Signature{}

	in := 0
	if t.NumIn() > 0 && t.In(0) == contextType {
		sig.TakesContext = true
		in = 1
	}
	switch t.NumIn() - in {
	case 0:
		// Zero-argument handler; nothing to inspect.
	case 1:
		argsType := t.In(in)
		if argsType.Kind() == reflect.Pointer {
			sig.ArgsPointer = true
			argsType = argsType.Elem()
		}
		if argsType.Kind() != reflect.Struct {
			return nil, &model.SignatureError{
				Detail: fmt.Sprintf("argument parameter must be a struct, got %s", t.In(in)),
			}
		}
		sig.ArgsType = argsType
	default:
		return nil, &model.SignatureError{
			Detail: fmt.Sprintf("handler takes %d parameters, want at most a context and an argument struct", t.NumIn()),
		}
	}

	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			return nil, &model.SignatureError{
				Detail: fmt.Sprintf("handler result must be error, got %s", t.Out(0)),
			}
		}
		sig.ReturnsError = true
	default:
		return nil, &model.SignatureError{
			Detail: fmt.Sprintf("handler returns %d values, want at most an error", t.NumOut()),
		}
	}

	if sig.ArgsType != nil {
		if err := sig.inspectFields(); err != nil {
			return nil, err
		}
	}
	return sig, nil
}

// inspectFields walks the argument struct's exported fields in
// declaration order, producing one Parameter per field.
func (sig *Signature) inspectFields() error {
	seen := make(map[string]string) // canonical name -> field name
	t := sig.ArgsType

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			return &model.SignatureError{
				Detail: fmt.Sprintf("embedded field %s is not supported", field.Name),
			}
		}

		name := field.Tag.Get("cli")
		if name == "-" {
			continue
		}
		if name == "" {
			name = Kebab(field.Name)
		}
		if strings.HasPrefix(name, "-") || strings.ContainsAny(name, " =") {
			return &model.SignatureError{
				Detail: fmt.Sprintf("field %s: invalid parameter name %q", field.Name, name),
			}
		}

		kind, err := parseKind(field)
		if err != nil {
			return err
		}

		defaultRaw, hasDefault := field.Tag.Lookup("default")

		if kind == model.CatchAll {
			if field.Type != anyMapType {
				return &model.SignatureError{
					Detail: fmt.Sprintf("catch-all field %s must be map[string]any, got %s", field.Name, field.Type),
				}
			}
			if hasDefault {
				return &model.SignatureError{
					Detail: fmt.Sprintf("catch-all field %s must not declare a default", field.Name),
				}
			}
			if sig.CatchAll != nil {
				return &model.SignatureError{
					Detail: fmt.Sprintf("fields %s and %s both declare kind catchall", sig.CatchAll.GoName, field.Name),
				}
			}
			sig.CatchAll = &model.Parameter{
				Name:       name,
				GoName:     field.Name,
				Kind:       kind,
				Type:       field.Type,
				FieldIndex: i,
			}
			continue
		}

		if prev, dup := seen[name]; dup {
			return &model.SignatureError{
				Detail: fmt.Sprintf("fields %s and %s both map to parameter %q", prev, field.Name, name),
			}
		}
		seen[name] = field.Name

		sig.Params = append(sig.Params, &model.Parameter{
			Name:       name,
			GoName:     field.Name,
			Kind:       kind,
			HasDefault: hasDefault,
			DefaultRaw: defaultRaw,
			Type:       field.Type,
			FieldIndex: i,
		})
	}
	return nil
}

// parseKind maps the `kind` tag to a ParameterKind.
func parseKind(field reflect.StructField) (model.ParameterKind, error) {
	switch tag := field.Tag.Get("kind"); tag {
	case "":
		return model.PositionalOrKeyword, nil
	case "positional":
		return model.PositionalOnly, nil
	case "keyword":
		return model.KeywordOnly, nil
	case "catchall":
		return model.CatchAll, nil
	default:
		return 0, &model.SignatureError{
			Detail: fmt.Sprintf("field %s: unknown parameter kind %q", field.Name, tag),
		}
	}
}
