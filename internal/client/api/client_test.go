package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadbook/pkg/api"
)

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "operator@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{
			UserID:  "user-1",
			Message: "user registered",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Email:    "operator@example.com",
		Password: "password123",
		FullName: "Test Operator",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestClient_Signin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/signin", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "token-abc",
			ExpiresIn:   3600,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Signin(context.Background(), api.SigninRequest{
		Email:    "operator@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestClient_Signin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "unauthorized",
			Message: "invalid credentials",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Signin(context.Background(), api.SigninRequest{
		Email:    "operator@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Contains(t, err.Error(), "401")
}

func TestClient_ListLeads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/leads", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.LeadListResponse{
			Items: []api.Lead{
				{ID: "1", Name: "Acme", BasePrice: 120},
				{ID: "2", Name: "Globex", BasePrice: 90},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAuthToken("token-abc")

	leads, err := client.ListLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Acme", leads[0].Name)
	assert.Equal(t, "Globex", leads[1].Name)
}

func TestClient_CreateLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/leads", r.URL.Path)

		var lead api.Lead
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lead))
		lead.ID = "lead-1"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(lead)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	created, err := client.CreateLead(context.Background(), api.Lead{Name: "Acme", BasePrice: 120})
	require.NoError(t, err)
	assert.Equal(t, "lead-1", created.ID)
	assert.Equal(t, "Acme", created.Name)
}

func TestClient_UpdateLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/leads/lead-1", r.URL.Path)

		var lead api.Lead
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lead))
		lead.ID = "lead-1"

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(lead)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	updated, err := client.UpdateLead(context.Background(), "lead-1", api.Lead{Name: "Acme Updated"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Updated", updated.Name)
}

func TestClient_DeleteLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v1/leads/lead-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"lead deleted"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteLead(context.Background(), "lead-1")
	assert.NoError(t, err)
}

func TestClient_DeleteLead_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "not found",
			Message: "lead not found",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteLead(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead not found")
}

func TestClient_SaveCountrySelection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/countries", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var sel api.CountrySelection
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sel))
		assert.Equal(t, "JP", sel.Code)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"selection saved"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAuthToken("token-abc")

	err := client.SaveCountrySelection(context.Background(), api.CountrySelection{
		Code:    "JP",
		Name:    "Japan",
		FlagURL: "https://flags.example.com/jp.png",
	})
	assert.NoError(t, err)
}

func TestCountryClient_FetchCountries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/countries", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.CountrySelection{
			{Code: "DE", Name: "Germany", FlagURL: "https://flags.example.com/de.png"},
			{Code: "JP", Name: "Japan", FlagURL: "https://flags.example.com/jp.png"},
		})
	}))
	defer server.Close()

	client := NewCountryClient(server.URL)
	countries, err := client.FetchCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Germany", countries[0].Name)
}

func TestCountryClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCountryClient(server.URL)
	_, err := client.FetchCountries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
