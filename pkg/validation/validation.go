// Package validation holds the pieces shared by the request validators: a configured
// go-playground validator, the field-level error type returned to clients, and the
// translation from validator tags to messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details is the "details" object of a 422 response.
func (v ValidationErrors) Details() map[string]any {
	fields := make([]ValidationError, len(v))
	copy(fields, v)
	return map[string]any{"fields": fields}
}

// ToAppError turns err into a 422 when it carries field errors. Other errors are
// returned as they are.
func ToAppError(message string, err error) error {
	var fieldErrs ValidationErrors
	if errors.As(err, &fieldErrs) {
		return apperrors.Validation(message, fieldErrs.Details())
	}
	var fieldErr ValidationError
	if errors.As(err, &fieldErr) {
		return apperrors.Validation(message, ValidationErrors{fieldErr}.Details())
	}
	return err
}

// New returns a validator that reports fields by their JSON name and knows the
// "timestamp" and "notblank" rules.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("timestamp", validateTimestamp); err != nil {
		return nil, fmt.Errorf("register 'timestamp' validator: %w", err)
	}
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		return nil, fmt.Errorf("register 'notblank' validator: %w", err)
	}

	return v, nil
}

func validateTimestamp(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := model.ParseDate(s)
	return err == nil
}

// validateNotBlank rejects strings made only of white space. The value itself is
// stored as sent.
func validateNotBlank(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

// Translate converts the result of validator.Struct into ValidationErrors.
func Translate(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "timestamp":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD) or an ISO 8601 timestamp", fe.Field())
	default:
		return fe.Error()
	}
}
