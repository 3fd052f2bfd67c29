package env

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// keyPrefixes maps a validation tag to the prefixes a key may start with.
var keyPrefixes = map[string][]string{ //nolint:gochecknoglobals
	"supabase_anon":      {"sb_publishable_", "eyJ"},
	"supabase_secret":    {"sb_secret_", "eyJ"},
	"stripe_publishable": {"pk_test_", "pk_live_"},
	"stripe_secret":      {"sk_test_", "sk_live_"},
}

var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New()

	// report variable names instead of struct field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("env")
	})

	for tag, prefixes := range keyPrefixes {
		if err := v.RegisterValidation(tag, hasAnyPrefix(prefixes)); err != nil {
			panic(err)
		}
	}

	return v
}

func hasAnyPrefix(prefixes []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()

		for _, p := range prefixes {
			if strings.HasPrefix(value, p) {
				return true
			}
		}

		return false
	}
}

// validateStruct returns one FieldError per failing variable.
func validateStruct(target any) []FieldError {
	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice type directly
	if !ok {
		return []FieldError{{Key: "-", Rule: "invalid", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Key:     fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe.Tag(), fe.Param()),
		})
	}

	return fields
}

func message(tag, param string) string {
	if prefixes, ok := keyPrefixes[tag]; ok {
		return "must start with " + strings.Join(prefixes, " or ")
	}

	switch tag {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "startswith":
		return "must start with " + param
	default:
		return "failed rule " + tag
	}
}
