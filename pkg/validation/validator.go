package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding to report
// fields by their JSON tag names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Message flattens a binding/validation error into a single human-readable
// string suitable for the error field of a response envelope.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return "invalid json payload"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fe.Field()+" "+describe(fe))
		}
		return strings.Join(parts, "; ")
	}

	return err.Error()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "len":
		return "must be exactly " + fe.Param() + " characters long"
	case "uuid":
		return "must be a valid UUID"
	default:
		if fe.Param() != "" {
			return "failed validation '" + fe.Tag() + "=" + fe.Param() + "'"
		}
		return "failed validation '" + fe.Tag() + "'"
	}
}
