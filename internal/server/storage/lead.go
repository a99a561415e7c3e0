package storage

import (
	"context"

	"leadbook/pkg/api"
)

// LeadStorage defines interface for lead record persistence.
// List order is insertion order; the client mirrors it as-is.
type LeadStorage interface {
	// ListLeads returns the full collection in insertion order
	ListLeads(ctx context.Context) ([]api.Lead, error)

	// CreateLead inserts a new record. lead.ID must already be set.
	CreateLead(ctx context.Context, lead *api.Lead) error

	// UpdateLead replaces the whole record with the given ID.
	// Returns ErrLeadNotFound if no such record exists.
	UpdateLead(ctx context.Context, lead *api.Lead) error

	// DeleteLead removes the record with the given ID.
	// Returns ErrLeadNotFound if no such record exists.
	DeleteLead(ctx context.Context, id string) error
}
