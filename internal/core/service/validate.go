package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/userhub/account-api/internal/core/domain"
)

// validate is shared across requests; the Validate instance caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Error bags are keyed by the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the declared rules over in and collects one message per
// violated rule into a domain.ValidationError. The returned error bag may be
// empty; callers check Empty() so they can fold further failures (e.g. email
// uniqueness) into the same bag before deciding.
func validateStruct(in any) *domain.ValidationError {
	verr := domain.NewValidationError()

	err := validate.Struct(in)
	if err == nil {
		return verr
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// InvalidValidationError only happens on non-struct input, which
		// would be a programming error here.
		panic(err)
	}

	for _, fe := range ve {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

// fieldMessage converts a single rule failure into a human-readable message.
// Each rule keeps a distinct message so clients can tell "missing" from
// "malformed" from "too long".
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid (%s).", field, fe.Tag())
	}
}
