package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"leadbook/internal/server/storage"
	"leadbook/pkg/api"
)

// CountriesHandler records country selections forwarded by the client.
// The client treats this write as fire-and-forget; the rows are an
// audit trail and never flow back into lead records.
type CountriesHandler struct {
	logger  *slog.Logger
	storage storage.CountrySelectionStorage
}

// NewCountriesHandler creates a new countries handler
func NewCountriesHandler(logger *slog.Logger, storage storage.CountrySelectionStorage) *CountriesHandler {
	return &CountriesHandler{
		logger:  logger,
		storage: storage,
	}
}

// Save handles POST /api/v1/countries
func (h *CountriesHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var sel api.CountrySelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode country selection", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if sel.Code == "" || sel.Name == "" {
		sendError(h.logger, w, "code and name are required", http.StatusBadRequest)
		return
	}

	if err := h.storage.SaveCountrySelection(ctx, userID, &sel); err != nil {
		h.logger.ErrorContext(ctx, "failed to save country selection", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "country selection saved",
		slog.String("user_id", userID),
		slog.String("code", sel.Code))

	sendJSON(h.logger, w, map[string]string{"message": "selection saved"}, http.StatusCreated)
}
