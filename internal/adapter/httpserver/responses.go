// Package httpserver contains the HTTP handlers and middleware for the tool
// endpoints. It keeps transport concerns (envelopes, headers, status codes)
// out of the business logic.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool     `json:"success"`
	Error   apiError `json:"error"`
}

type apiError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

// classify maps domain sentinels onto the error taxonomy. Model failures of
// every flavor collapse to AI_UNAVAILABLE so raw model output or provider
// detail never reaches the caller.
func classify(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body is too large."
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later."
	case errors.Is(err, domain.ErrUpstreamTimeout),
		errors.Is(err, domain.ErrAIUnavailable),
		errors.Is(err, domain.ErrMalformedOutput),
		errors.Is(err, domain.ErrSchemaInvalid):
		return http.StatusServiceUnavailable, "AI_UNAVAILABLE", "Our AI service is temporarily unavailable. Please try again in a few minutes."
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong. Please try again."
}

func writeError(w http.ResponseWriter, err error) {
	status, code, message := classify(err)
	writeJSON(w, status, errorEnvelope{Error: apiError{Code: code, Message: message}})
}

func writeRateLimited(w http.ResponseWriter, retryAfterSeconds int) {
	status, code, message := classify(domain.ErrRateLimited)
	writeJSON(w, status, errorEnvelope{
		Error: apiError{
			Code:       code,
			Message:    message,
			RetryAfter: retryAfterSeconds,
		},
	})
}
