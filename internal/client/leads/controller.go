package leads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"leadbook/internal/client/form"
	"leadbook/pkg/api"
)

// RecordStore is what the controller needs from the server API
type RecordStore interface {
	Lister
	CreateLead(ctx context.Context, lead api.Lead) (*api.Lead, error)
	UpdateLead(ctx context.Context, id string, lead api.Lead) (*api.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// CountryDirectory is the external country lookup service
type CountryDirectory interface {
	FetchCountries(ctx context.Context) ([]api.CountrySelection, error)
}

// SelectionNotifier records country picks server-side, best effort
type SelectionNotifier interface {
	SaveCountrySelection(ctx context.Context, sel api.CountrySelection) error
}

// Confirmer asks the operator a yes/no question before destructive
// operations
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ErrSubmitInFlight indicates that a submit was rejected because a
// previous one has not resolved yet
var ErrSubmitInFlight = errors.New("a submit is already in progress")

const sideWriteTimeout = 5 * time.Second

// Config controls controller behavior
type Config struct {
	// ReloadAfterMutation refreshes the whole cache from the server
	// after every create or update. When false, the mutation result is
	// patched into the cache locally instead.
	ReloadAfterMutation bool
}

// DefaultConfig returns the standard controller configuration
func DefaultConfig() Config {
	return Config{ReloadAfterMutation: true}
}

// Controller orchestrates lead mutations: it submits form drafts to the
// record store, reconciles results into the cache, and runs the delete
// confirmation flow.
type Controller struct {
	logger    *slog.Logger
	store     RecordStore
	cache     *Cache
	form      *form.Form
	confirmer Confirmer
	notifier  SelectionNotifier
	directory CountryDirectory
	config    Config

	countries []api.CountrySelection
	selection *api.CountrySelection

	submitting atomic.Bool
	sideWrites sync.WaitGroup
}

// NewController wires the controller to its collaborators
func NewController(
	logger *slog.Logger,
	store RecordStore,
	cache *Cache,
	formSession *form.Form,
	confirmer Confirmer,
	notifier SelectionNotifier,
	directory CountryDirectory,
	config Config,
) *Controller {
	return &Controller{
		logger:    logger,
		store:     store,
		cache:     cache,
		form:      formSession,
		confirmer: confirmer,
		notifier:  notifier,
		directory: directory,
		config:    config,
	}
}

// Submit sends the current form draft to the record store: an update
// when the form is editing an existing record, a create otherwise. On
// success the cache is refreshed and the form closed. On failure the
// form stays open with the draft untouched so the operator can correct
// and retry.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer c.submitting.Store(false)

	lead, err := c.form.Lead()
	if err != nil {
		return err
	}

	// A fresh country pick wins over whatever the draft carried; the
	// draft value covers the edit path where the country came from the
	// stored record.
	if c.selection != nil {
		lead.Country = c.selection.Name
		lead.Flag = c.selection.FlagURL
	}

	var saved *api.Lead
	if id, editing := c.form.EditingID(); editing {
		saved, err = c.store.UpdateLead(ctx, id, lead)
	} else {
		saved, err = c.store.CreateLead(ctx, lead)
	}
	if err != nil {
		return err
	}

	c.form.Close()

	if c.config.ReloadAfterMutation {
		if err := c.cache.Load(ctx); err != nil {
			return fmt.Errorf("lead saved, but reloading the list failed: %w", err)
		}
	} else {
		c.cache.Upsert(ctx, *saved)
	}

	return nil
}

// DeleteRecord asks for confirmation and, if granted, deletes the
// record from the store and drops it from the cache. A declined
// confirmation is a no-op.
func (c *Controller) DeleteRecord(ctx context.Context, id string) error {
	confirmed, err := c.confirmer.Confirm(fmt.Sprintf("Delete lead %s? This cannot be undone", id))
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !confirmed {
		return nil
	}

	if err := c.store.DeleteLead(ctx, id); err != nil {
		return err
	}

	c.cache.RemoveByID(ctx, id)
	return nil
}

// LoadCountries fetches the country directory once at startup. A fetch
// failure is logged and leaves the list empty: country selection
// becomes unavailable but lead CRUD keeps working.
func (c *Controller) LoadCountries(ctx context.Context) {
	countries, err := c.directory.FetchCountries(ctx)
	if err != nil {
		c.logger.Warn("failed to load country directory", "error", err)
		return
	}
	c.countries = countries
}

// Countries returns the loaded country directory
func (c *Controller) Countries() []api.CountrySelection {
	return c.countries
}

// SelectCountry picks a country by code or name from the loaded
// directory, merges it into the open form draft, and notifies the
// server in the background. The notification is best effort: its
// failure is logged and never blocks the selection.
func (c *Controller) SelectCountry(nameOrCode string) error {
	sel, ok := c.findCountry(nameOrCode)
	if !ok {
		return fmt.Errorf("unknown country: %s", nameOrCode)
	}
	c.selection = &sel

	if c.form.IsOpen() {
		if err := c.form.SetField("country", sel.Name); err != nil {
			return err
		}
		if err := c.form.SetField("flag", sel.FlagURL); err != nil {
			return err
		}
	}

	c.sideWrites.Add(1)
	go func() {
		defer c.sideWrites.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sideWriteTimeout)
		defer cancel()
		if err := c.notifier.SaveCountrySelection(ctx, sel); err != nil {
			c.logger.Warn("country selection side write failed",
				"country", sel.Code, "error", err)
		}
	}()

	return nil
}

// Selection returns the currently selected country, if any
func (c *Controller) Selection() *api.CountrySelection {
	return c.selection
}

// Wait blocks until background side writes finish. Called on shutdown.
func (c *Controller) Wait() {
	c.sideWrites.Wait()
}

func (c *Controller) findCountry(nameOrCode string) (api.CountrySelection, bool) {
	for _, country := range c.countries {
		if strings.EqualFold(country.Code, nameOrCode) || strings.EqualFold(country.Name, nameOrCode) {
			return country, true
		}
	}
	return api.CountrySelection{}, false
}
