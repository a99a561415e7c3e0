package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing lead ID. Usage: leadbook get <id>")
	}
	id := args[0]

	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if err := c.cache.Load(ctx); err != nil {
		return err
	}

	lead, ok := c.cache.Get(id)
	if !ok {
		return fmt.Errorf("lead %s not found", id)
	}

	return c.render("lead", leadDetailTemplate, lead)
}
