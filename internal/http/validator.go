package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings that are empty or whitespace-only,
// which "required" alone lets through.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required", "notblank":
			message = fmt.Sprintf("%s is required", field)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}

func validationMessage(errs []ValidationError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, ", ")
}
