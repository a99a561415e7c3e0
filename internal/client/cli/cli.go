package cli

import (
	"context"
	"fmt"
	"text/template"

	"leadbook/internal/client/form"
	"leadbook/internal/client/iocli"
	"leadbook/internal/client/leads"
	"leadbook/internal/client/session"
	"leadbook/pkg/api"
)

// authAPI is the slice of the API client the commands need for
// authentication
type authAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Signin(ctx context.Context, req api.SigninRequest) (*api.TokenResponse, error)
	SetAuthToken(token string)
}

type Cli struct {
	io         iocli.IO
	apiClient  authAPI
	session    session.Session
	cache      *leads.Cache
	controller *leads.Controller
	form       *form.Form
}

func New(
	io iocli.IO,
	apiClient authAPI,
	sess session.Session,
	cache *leads.Cache,
	controller *leads.Controller,
	formSession *form.Form,
) *Cli {
	return &Cli{
		io:         io,
		apiClient:  apiClient,
		session:    sess,
		cache:      cache,
		controller: controller,
		form:       formSession,
	}
}

// requireAuth loads the stored session and attaches its token to the
// API client
func (c *Cli) requireAuth(ctx context.Context) error {
	auth, err := c.session.Get(ctx)
	if err != nil {
		return err
	}
	c.apiClient.SetAuthToken(auth.AccessToken)
	return nil
}

// render executes a template into the command output
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageText)
}
