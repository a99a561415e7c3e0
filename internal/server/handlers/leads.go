package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"leadbook/internal/server/storage"
	"leadbook/internal/validation"
	"leadbook/pkg/api"
)

// LeadsHandler handles the lead collection endpoints.
// Every mutation is whole-record: PUT replaces all fields, there is no
// partial patch.
type LeadsHandler struct {
	logger  *slog.Logger
	storage storage.LeadStorage
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(logger *slog.Logger, storage storage.LeadStorage) *LeadsHandler {
	return &LeadsHandler{
		logger:  logger,
		storage: storage,
	}
}

// List handles GET /api/v1/leads
// Returns the full collection in server order.
func (h *LeadsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	leads, err := h.storage.ListLeads(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list leads", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.LeadListResponse{Items: leads}, http.StatusOK)
}

// Create handles POST /api/v1/leads
// Assigns the record id and returns the created record.
func (h *LeadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var lead api.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode lead", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateStruct(lead); err != nil {
		h.logger.WarnContext(ctx, "invalid lead payload", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	lead.ID = uuid.New().String()

	if err := h.storage.CreateLead(ctx, &lead); err != nil {
		h.logger.ErrorContext(ctx, "failed to create lead", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "lead created",
		slog.String("lead_id", lead.ID),
		slog.String("name", lead.Name))

	sendJSON(h.logger, w, lead, http.StatusCreated)
}

// Update handles PUT /api/v1/leads/{id}
// Replaces the whole record and returns it.
func (h *LeadsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "lead id is required", http.StatusBadRequest)
		return
	}

	var lead api.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode lead", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateStruct(lead); err != nil {
		h.logger.WarnContext(ctx, "invalid lead payload", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// The path owns the identity, not the body
	lead.ID = id

	if err := h.storage.UpdateLead(ctx, &lead); err != nil {
		if errors.Is(err, storage.ErrLeadNotFound) {
			h.logger.WarnContext(ctx, "lead not found", slog.String("lead_id", id))
			sendError(h.logger, w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update lead", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "lead updated", slog.String("lead_id", id))

	sendJSON(h.logger, w, lead, http.StatusOK)
}

// Delete handles DELETE /api/v1/leads/{id}
func (h *LeadsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "lead id is required", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteLead(ctx, id); err != nil {
		if errors.Is(err, storage.ErrLeadNotFound) {
			h.logger.WarnContext(ctx, "lead not found", slog.String("lead_id", id))
			sendError(h.logger, w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete lead", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "lead deleted", slog.String("lead_id", id))

	sendJSON(h.logger, w, map[string]string{"message": "lead deleted"}, http.StatusOK)
}
