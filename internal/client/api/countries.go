package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leadbook/pkg/api"
)

// CountryClient fetches the country directory from an external service.
// The directory is a separate deployment with its own base URL, so it
// gets its own client rather than a path on the main one.
type CountryClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCountryClient creates a client for the country directory service
func NewCountryClient(baseURL string) *CountryClient {
	return &CountryClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchCountries returns the full country directory
func (c *CountryClient) FetchCountries(ctx context.Context) ([]api.CountrySelection, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/countries", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country directory request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country directory returned status %d", resp.StatusCode)
	}

	var countries []api.CountrySelection
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("failed to decode country list: %w", err)
	}

	return countries, nil
}
