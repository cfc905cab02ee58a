package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom rules on gin's validator and reports field names by
// their json tag. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			name = fld.Tag.Get("form")
		}
		name, _, _ = strings.Cut(name, ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v.RegisterValidation("tagname", func(fl validator.FieldLevel) bool {
		return ValidTagName(NormalizeTagName(fl.Field().String()))
	})
}

// BindingErrorMessage turns a ShouldBind error into one readable sentence.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, e.Field()+" "+friendlyMessage(e))
	}
	return strings.Join(parts, "; ")
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "tagname":
		return "must be a single word of at most 25 letters, digits, '-' or '_'"
	default:
		return "is invalid"
	}
}
