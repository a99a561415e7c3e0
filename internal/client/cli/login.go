package cli

import (
	"context"
	"fmt"

	"leadbook/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Signin(ctx, api.SigninRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	if err := c.session.Set(ctx, email, resp.AccessToken, resp.ExpiresIn); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", email)
	c.io.Printf("Token expires in: %d seconds\n", resp.ExpiresIn)

	return nil
}
