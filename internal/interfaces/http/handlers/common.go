// Package handlers implements the HTTP handlers of the clustering API.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// DefaultMaxBodySize bounds request bodies when the handler has no limit.
const DefaultMaxBodySize = 32 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, statusCode int, code errors.ErrorCode, message, detail string) {
	writeJSON(w, statusCode, ErrorResponse{
		Code:    string(code),
		Message: message,
		Detail:  detail,
	})
}

// writeAppError maps application-level errors to HTTP status codes through
// the error code table.  Server-side failures are masked.
func writeAppError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	if status >= http.StatusInternalServerError {
		writeError(w, status, errors.ErrCodeInternal, "internal server error", "")
		return
	}

	message, detail := err.Error(), ""
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		message, detail = appErr.Message, appErr.Detail
		if appErr.Cause != nil {
			message += ": " + appErr.Cause.Error()
		}
	}
	writeError(w, status, code, message, detail)
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst interface{}) error {
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	body := http.MaxBytesReader(w, r.Body, limit)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return errors.InvalidParam("request body is empty")
		}
		return errors.Wrap(err, errors.CodeInvalidParam, "invalid request body")
	}
	return nil
}

//Personal.AI order the ending
