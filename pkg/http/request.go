package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/validation"
)

// DecodeJSON decodes the request body into dst. Failures come back as
// validation.ValidationErrors naming the offending field, or "body" when the payload is
// not a single JSON value. A body cut off by http.MaxBytesReader is reported as 413.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return validation.ValidationErrors{{Field: validation.BodyField, Message: "request body is required"}}
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if tooLarge(err) {
			return decodeError(err)
		}
		return validation.ValidationErrors{{
			Field:   validation.BodyField,
			Message: "request body must contain a single JSON value",
		}}
	}
	return nil
}

func decodeError(err error) error {
	if tooLarge(err) {
		return apperrors.New(apperrors.CodeTooLarge, "Request body too large", http.StatusRequestEntityTooLarge)
	}
	return validation.FromDecodeError(err)
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
