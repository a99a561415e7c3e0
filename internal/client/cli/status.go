package cli

import (
	"context"
	"errors"
	"time"

	"leadbook/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	auth, err := c.session.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'leadbook login' to authenticate.")
			return nil
		}
		return err
	}

	expiresAt := time.Unix(auth.ExpiresAt, 0)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email: %s\n", auth.Email)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", time.Until(expiresAt).Round(time.Second))

	return nil
}
