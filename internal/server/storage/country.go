package storage

import (
	"context"

	"leadbook/pkg/api"
)

// CountrySelectionStorage records country picks forwarded by the
// client. Rows are append-only and never reconciled back into leads.
type CountrySelectionStorage interface {
	SaveCountrySelection(ctx context.Context, userID string, sel *api.CountrySelection) error
}
