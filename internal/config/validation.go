package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/conneroisu/bsui/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("url_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			return strings.HasPrefix(path, "/") && !strings.ContainsAny(path, " \t\n")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration and reports the first failure as a
// validation error.
func Validate(config *Config) error {
	return convertValidationError(validatorInstance().Struct(config))
}

// convertValidationError normalizes validator errors into bsui validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return &errors.Error{
			Type:    errors.ErrorTypeValidation,
			Code:    errors.ErrCodeConfigInvalid,
			Message: msg,
			Cause:   err,
		}
	}

	return errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid configuration", err)
}

// yamlishFieldName turns Config.Search.DefaultLimit into search.default_limit.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, snake(part))
	}
	return strings.Join(out, ".")
}

func snake(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
				b.WriteByte('_')
			}
			prev = r
			r += 'a' - 'A'
		} else {
			prev = r
		}
		b.WriteRune(r)
	}
	return b.String()
}
