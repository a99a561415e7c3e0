package cli

import (
	"context"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== New Lead ===")
	c.io.Println()

	c.controller.LoadCountries(ctx)
	c.form.OpenForCreate()

	if err := c.promptDraft(false); err != nil {
		return err
	}
	if err := c.promptCountry(ctx); err != nil {
		return err
	}

	if err := c.controller.Submit(ctx); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Lead created.")
	return nil
}
