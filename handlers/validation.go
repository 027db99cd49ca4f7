package handlers

import (
	"errors"
	"fmt"

	"careindex/models"

	"github.com/go-playground/validator/v10"
)

// fieldErrors converts binding failures into per-field messages. Returns
// nil for errors that are not field-level validation failures (e.g.
// malformed JSON), which callers report generically instead.
func fieldErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}
