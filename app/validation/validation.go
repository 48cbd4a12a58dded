package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"taskboard/app/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the validate tags on a DTO and converts failures into a
// VALIDATION_ERROR with one message per offending field.
func Struct(v any) *apperr.Error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.BadRequest("Invalid request payload")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return apperr.WithDetails(apperr.TypeValidation, "Validation failed", map[string]any{"fields": fields})
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return "must be positive"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
