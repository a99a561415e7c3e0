package sqlite

import (
	"context"
	"fmt"
	"time"

	"leadbook/pkg/api"
)

// SaveCountrySelection appends one country pick. Selections are kept
// as an audit trail only and are never read back into lead records.
func (s *Storage) SaveCountrySelection(ctx context.Context, userID string, sel *api.CountrySelection) error {
	query := `
		INSERT INTO country_selections (user_id, code, name, flag_url, selected_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, userID, sel.Code, sel.Name, sel.FlagURL, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert country selection: %w", err)
	}

	return nil
}
