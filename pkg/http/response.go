package http

import (
	"encoding/json"
	"net/http"

	apperrors "assetbook/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps err to a status and an ErrorResponse. Internal failures carry the
// underlying message under details.cause.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	statusCode := appErr.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	details := appErr.Details
	if statusCode >= http.StatusInternalServerError && appErr.Err != nil {
		details = causeDetails(appErr.Details, appErr.Err)
	}

	return WriteJSON(w, statusCode, ErrorResponse{
		Error:   appErr.Message,
		Details: details,
	})
}

func causeDetails(details map[string]any, cause error) map[string]any {
	out := make(map[string]any, len(details)+1)
	for k, v := range details {
		out[k] = v
	}
	out["cause"] = cause.Error()
	return out
}

// WriteSuccess writes data as the bare 200 body.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}
