package sqlite

import (
	"context"
	"fmt"
	"time"

	"leadbook/internal/server/storage"
	"leadbook/pkg/api"
)

// ListLeads returns the full collection in insertion order
func (s *Storage) ListLeads(ctx context.Context) ([]api.Lead, error) {
	query := `
		SELECT id, name, discount_rate, supply_price, premium, base_price, sales_profit, country, flag
		FROM leads
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	leads := make([]api.Lead, 0)
	for rows.Next() {
		var lead api.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.DiscountRate,
			&lead.SupplyPrice,
			&lead.Premium,
			&lead.BasePrice,
			&lead.SalesProfit,
			&lead.Country,
			&lead.Flag,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, nil
}

// CreateLead inserts a new record at the end of the collection
func (s *Storage) CreateLead(ctx context.Context, lead *api.Lead) error {
	now := time.Now()
	query := `
		INSERT INTO leads (id, name, discount_rate, supply_price, premium, base_price, sales_profit,
			country, flag, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM leads), ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.DiscountRate,
		lead.SupplyPrice,
		lead.Premium,
		lead.BasePrice,
		lead.SalesProfit,
		lead.Country,
		lead.Flag,
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

// UpdateLead replaces the whole record with the given ID.
// No partial-field patch semantics: every column is overwritten.
func (s *Storage) UpdateLead(ctx context.Context, lead *api.Lead) error {
	query := `
		UPDATE leads
		SET name = ?, discount_rate = ?, supply_price = ?, premium = ?, base_price = ?,
			sales_profit = ?, country = ?, flag = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		lead.Name,
		lead.DiscountRate,
		lead.SupplyPrice,
		lead.Premium,
		lead.BasePrice,
		lead.SalesProfit,
		lead.Country,
		lead.Flag,
		time.Now(),
		lead.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrLeadNotFound
	}

	return nil
}

// DeleteLead removes the record with the given ID
func (s *Storage) DeleteLead(ctx context.Context, id string) error {
	query := `DELETE FROM leads WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrLeadNotFound
	}

	return nil
}
