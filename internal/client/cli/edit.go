package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing lead ID. Usage: leadbook edit <id>")
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

	c.io.Printf("=== Edit Lead %s ===\n", id)
	c.io.Println()

	c.controller.LoadCountries(ctx)
	c.form.OpenForEdit(lead)

	if err := c.promptDraft(true); err != nil {
		return err
	}
	if err := c.promptCountry(ctx); err != nil {
		return err
	}

	if err := c.controller.Submit(ctx); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Lead updated.")
	return nil
}
