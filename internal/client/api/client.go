package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leadbook/pkg/api"
)

// Client is the HTTP client for the leadbook server
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAuthToken sets the bearer token attached to subsequent requests
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Signin authenticates the user and returns an access token
func (c *Client) Signin(ctx context.Context, req api.SigninRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/signin", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("signin request failed: %w", err)
	}
	return &resp, nil
}

// ListLeads returns all lead records in server order
func (c *Client) ListLeads(ctx context.Context) ([]api.Lead, error) {
	var resp api.LeadListResponse
	err := c.doRequest(ctx, "GET", "/api/v1/leads", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list leads request failed: %w", err)
	}
	return resp.Items, nil
}

// CreateLead creates a new lead record and returns it with its server-assigned ID
func (c *Client) CreateLead(ctx context.Context, lead api.Lead) (*api.Lead, error) {
	var resp api.Lead
	err := c.doRequest(ctx, "POST", "/api/v1/leads", lead, &resp)
	if err != nil {
		return nil, fmt.Errorf("create lead request failed: %w", err)
	}
	return &resp, nil
}

// UpdateLead replaces the lead record with the given ID
func (c *Client) UpdateLead(ctx context.Context, id string, lead api.Lead) (*api.Lead, error) {
	var resp api.Lead
	err := c.doRequest(ctx, "PUT", "/api/v1/leads/"+id, lead, &resp)
	if err != nil {
		return nil, fmt.Errorf("update lead request failed: %w", err)
	}
	return &resp, nil
}

// DeleteLead removes the lead record with the given ID
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	err := c.doRequest(ctx, "DELETE", "/api/v1/leads/"+id, nil, nil)
	if err != nil {
		return fmt.Errorf("delete lead request failed: %w", err)
	}
	return nil
}

// SaveCountrySelection records the operator's country pick on the server
func (c *Client) SaveCountrySelection(ctx context.Context, sel api.CountrySelection) error {
	err := c.doRequest(ctx, "POST", "/api/v1/countries", sel, nil)
	if err != nil {
		return fmt.Errorf("save country selection request failed: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request against the server
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
