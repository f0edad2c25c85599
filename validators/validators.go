package validators

import (
	"errors"
	"reflect"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so the errors array matches the API
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Check validates a request struct and maps each failing field to its
// API-facing message. A nil result means the struct is valid.
func Check(s interface{}, messages map[string]string) []middleware.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []middleware.FieldError

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msg, ok := messages[fe.Field()]
			if !ok {
				msg = "Campo inválido"
			}
			fieldErrors = append(fieldErrors, middleware.FieldError{
				Field:   fe.Field(),
				Message: msg,
			})
		}
		return fieldErrors
	}

	return []middleware.FieldError{{Field: "", Message: "Erro de validação"}}
}
