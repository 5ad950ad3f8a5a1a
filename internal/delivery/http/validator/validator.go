// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"dealfinder/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request structs.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their json names and knows the httpurl tag.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	_ = v.RegisterValidation("httpurl", func(fl playground.FieldLevel) bool {
		return entity.IsHTTPURL(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Field failures come back as entity.ValidationErrors.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	var out entity.ValidationErrors
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), "%s", reason(fe))
	}

	return out
}

func reason(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "httpurl":
		return "must be a valid URL with HTTP or HTTPS"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "cannot be more than " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed the " + fe.Tag() + " check"
	}
}
