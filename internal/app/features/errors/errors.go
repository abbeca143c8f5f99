// Package errors provides the JSON error envelope used by every feature
// handler, plus an ErrorLogger that pairs the client-visible message with
// a structured zap record of the underlying cause.
//
// The envelope deliberately carries only a human-readable message; internal
// error strings never leave the service.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// envelope is the JSON body written for every error response.
type envelope struct {
	Error string `json:"error"`
}

// Render writes a JSON error with the given status and message.
func Render(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Error: msg})
}

// RenderUnauthorized writes a 401 "sign in required" error.
func RenderUnauthorized(w http.ResponseWriter) {
	Render(w, http.StatusUnauthorized, "Please sign in to continue.")
}

// RenderForbidden writes a 403 with the given message.
func RenderForbidden(w http.ResponseWriter, msg string) {
	Render(w, http.StatusForbidden, msg)
}

// ErrorLogger logs handler failures and renders their client-facing
// envelope in one call, so handlers never leak internal error text.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs err at error level and renders a 500 with msg.
func (e *ErrorLogger) Internal(w http.ResponseWriter, msg string, err error, fields ...zap.Field) {
	e.log.Error(msg, append(fields, zap.Error(err))...)
	Render(w, http.StatusInternalServerError, msg)
}

// BadRequest logs err at warn level and renders a 400 with msg.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, msg string, err error, fields ...zap.Field) {
	e.log.Warn(msg, append(fields, zap.Error(err))...)
	Render(w, http.StatusBadRequest, msg)
}

// NotFound renders a 404 with msg. Missing documents are expected, so
// nothing is logged.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, msg string) {
	Render(w, http.StatusNotFound, msg)
}
