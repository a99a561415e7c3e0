package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing lead ID. Usage: leadbook delete <id>")
	}
	id := args[0]

	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if err := c.cache.Load(ctx); err != nil {
		return err
	}

	if _, ok := c.cache.Get(id); !ok {
		return fmt.Errorf("lead %s not found", id)
	}

	before := len(c.cache.Records())
	if err := c.controller.DeleteRecord(ctx, id); err != nil {
		return err
	}

	if len(c.cache.Records()) == before {
		c.io.Println("Delete cancelled.")
		return nil
	}

	c.io.Println("✓ Lead deleted.")
	return nil
}
