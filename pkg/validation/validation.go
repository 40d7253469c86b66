// Package validation envuelve go-playground/validator con mensajes en español
// y nombres de campo tomados del tag json.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldErrors mapa campo -> mensaje.
type FieldErrors map[string]string

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator devuelve la instancia compartida (es segura para uso concurrente).
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(f.Name)
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct valida s y devuelve los errores por campo (nil si es válido).
func Struct(s any) FieldErrors {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	return FromError(err)
}

// FromError convierte un error del validador en FieldErrors.
func FromError(err error) FieldErrors {
	out := FieldErrors{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}
	out["_"] = "datos inválidos"
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required", "required_if":
		return "campo requerido"
	case "min":
		return "debe ser como mínimo " + param
	case "max":
		return "debe ser como máximo " + param
	default:
		return "valor inválido"
	}
}
