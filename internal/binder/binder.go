package binder

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/bargeparse/internal/model"
	"github.com/vk/bargeparse/internal/signature"
)

// Invoke calls the handler with an argument struct populated from the
// cast value map, keyed by canonical parameter name. passthrough, when
// non-nil, is stored into the signature's catch-all field; handlers
// that declare one always observe a non-nil map.
func Invoke(ctx context.Context, handler any, sig *signature.Signature, values map[string]reflect.Value, passthrough map[string]any) error {
	var callArgs []reflect.Value
	if sig.TakesContext {
		callArgs = append(callArgs, reflect.ValueOf(ctx))
	}

	if sig.ArgsType != nil {
		argsPtr := reflect.New(sig.ArgsType)
		args := argsPtr.Elem()

		for _, p := range sig.Params {
			v, ok := values[p.Name]
			if !ok {
				continue
			}
			field := args.Field(p.FieldIndex)
			if !v.Type().AssignableTo(field.Type()) {
				return &model.BindingError{
					Detail: fmt.Sprintf("parameter %q: cannot assign %s to field %s %s",
						p.Name, v.Type(), p.GoName, field.Type()),
				}
			}
			field.Set(v)
		}

		if sig.CatchAll != nil {
			if passthrough == nil {
				passthrough = map[string]any{}
			}
			args.Field(sig.CatchAll.FieldIndex).Set(reflect.ValueOf(passthrough))
		}

		if sig.ArgsPointer {
			callArgs = append(callArgs, argsPtr)
		} else {
			callArgs = append(callArgs, args)
		}
	}

	out := reflect.ValueOf(handler).Call(callArgs)
	if sig.ReturnsError && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}
