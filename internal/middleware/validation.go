package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingErrorDetails turns a binding error into response details. Validation
// errors become one readable message per failed field; anything else (malformed
// JSON, wrong types) falls back to the raw error string.
func BindingErrorDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, formatValidationError(e))
	}
	return messages
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "datetime":
		return e.Field() + " must be a date in " + e.Param() + " format"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
