package cli

import (
	"context"
	"errors"
	"fmt"

	"leadbook/internal/client/storage"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	cached := len(args) > 0 && args[0] == "cached"

	if cached {
		if err := c.cache.LoadSnapshot(ctx); err != nil {
			if errors.Is(err, storage.ErrNoSnapshot) {
				return fmt.Errorf("no cached leads. Run 'leadbook list' online first")
			}
			return fmt.Errorf("failed to load cached leads: %w", err)
		}
	} else {
		if err := c.requireAuth(ctx); err != nil {
			return err
		}
		if err := c.cache.Load(ctx); err != nil {
			return err
		}
	}

	return c.render("lead list", leadListTemplate, c.cache.Records())
}
