package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// BodyField names the request body itself when it cannot be parsed at all.
const BodyField = "body"

// FromDecodeError reports a JSON decoding failure as a field error. Type mismatches name
// the offending field; anything else is attributed to the body.
func FromDecodeError(err error) ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = BodyField
		}
		return ValidationErrors{{
			Field:   field,
			Message: fmt.Sprintf("%s must be of type %s", field, jsonKind(typeErr.Type.Kind().String())),
		}}
	}

	if errors.Is(err, io.EOF) {
		return ValidationErrors{{Field: BodyField, Message: "request body is required"}}
	}

	return ValidationErrors{{
		Field:   BodyField,
		Message: fmt.Sprintf("request body is not valid JSON: %s", strings.TrimPrefix(err.Error(), "json: ")),
	}}
}

func jsonKind(goKind string) string {
	switch goKind {
	case "float32", "float64", "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return "number"
	case "string":
		return "string"
	case "bool":
		return "boolean"
	case "slice", "array":
		return "array"
	case "map", "struct":
		return "object"
	default:
		return goKind
	}
}
