package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/actuallystonmai/nutrisathi-service/internal/logging"
	"github.com/actuallystonmai/nutrisathi-service/internal/service"
	"github.com/actuallystonmai/nutrisathi-service/internal/validation"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

var statusByCode = map[string]int{
	"invalid_mood":        http.StatusBadRequest,
	"missing_parameter":   http.StatusBadRequest,
	"profile_incomplete":  http.StatusBadRequest,
	"invalid_credentials": http.StatusUnauthorized,
	"unauthenticated":     http.StatusUnauthorized,
	"forbidden":           http.StatusForbidden,
	"user_not_found":      http.StatusNotFound,
	"meal_not_found":      http.StatusNotFound,
	"email_taken":         http.StatusConflict,
	"request_timeout":     http.StatusServiceUnavailable,
}

// writeServiceError maps err to a status and the error envelope. Unknown
// errors are logged and hidden behind internal_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
		return
	}

	code, msg := service.ErrorCode(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, status, code, msg)
}

// readBody returns the request body, empty when none was sent.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}
	return bytes.TrimSpace(body), nil
}

// decode reads a JSON body into dst and validates it. It writes the
// error response itself and reports whether the handler may go on.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return false
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body is required")
		return false
	}
	return unmarshalValid(w, r, body, dst)
}

func unmarshalValid(w http.ResponseWriter, r *http.Request, body []byte, dst any) bool {
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "malformed JSON body")
		return false
	}
	if err := validation.Struct(dst); err != nil {
		writeServiceError(w, r, err)
		return false
	}
	return true
}
