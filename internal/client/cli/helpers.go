package cli

import (
	"context"
	"fmt"

	"leadbook/internal/client/form"
)

// draftFields lists the form fields in prompt order
var draftFields = []struct {
	field  string
	prompt string
}{
	{"name", "Name"},
	{"discountRate", "Discount rate"},
	{"supplyPrice", "Supply price"},
	{"premium", "Premium"},
	{"basePrice", "Base price"},
	{"salesProfit", "Sales profit"},
}

// promptDraft fills the open form from interactive input. With
// keepCurrent, the current value is shown and an empty answer keeps it.
func (c *Cli) promptDraft(keepCurrent bool) error {
	for _, f := range draftFields {
		prompt := f.prompt + ": "
		if keepCurrent {
			prompt = fmt.Sprintf("%s [%s]: ", f.prompt, draftValue(c.form.Draft(), f.field))
		}

		value, err := c.io.ReadInput(prompt)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.field, err)
		}
		if keepCurrent && value == "" {
			continue
		}

		if err := c.form.SetField(f.field, value); err != nil {
			return err
		}
	}
	return nil
}

// promptCountry offers a country pick when the directory is loaded.
// An empty answer skips the pick and keeps whatever the draft holds.
func (c *Cli) promptCountry(ctx context.Context) error {
	if len(c.controller.Countries()) == 0 {
		return nil
	}

	answer, err := c.io.ReadInput("Country (name or code, empty to keep current): ")
	if err != nil {
		return fmt.Errorf("failed to read country: %w", err)
	}
	if answer == "" {
		return nil
	}

	return c.controller.SelectCountry(answer)
}

func draftValue(d form.Draft, field string) string {
	switch field {
	case "name":
		return d.Name
	case "discountRate":
		return d.DiscountRate
	case "supplyPrice":
		return d.SupplyPrice
	case "premium":
		return d.Premium
	case "basePrice":
		return d.BasePrice
	case "salesProfit":
		return d.SalesProfit
	default:
		return ""
	}
}
