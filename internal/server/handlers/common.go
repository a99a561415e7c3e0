package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"leadbook/pkg/api"
)

// contextKey is the type for request context keys
type contextKey string

const (
	// UserIDKey is the context key holding the authenticated user id
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key holding the authenticated email
	EmailKey contextKey = "email"
)

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetEmail extracts the authenticated email from the request context
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// sendJSON writes a JSON response
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response. The message is what the
// client surfaces to the operator, so it must be human-readable.
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}
