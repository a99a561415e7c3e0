package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runCountries(ctx context.Context) error {
	c.controller.LoadCountries(ctx)

	countries := c.controller.Countries()
	if len(countries) == 0 {
		return fmt.Errorf("country directory is unavailable")
	}

	return c.render("country list", countryListTemplate, countries)
}
