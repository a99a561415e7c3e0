package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"leadbook/pkg/api"
)

// Form tracks a single in-progress lead edit. It is either closed, open
// for creating a new record, or open for editing an existing one. Field
// values are kept as entered, as strings, and only parsed on Lead().
type Form struct {
	draft     Draft
	editingID string
	open      bool
}

// Draft holds the raw field values as the operator typed them.
// Numbers stay strings until submit so a half-typed value never
// corrupts the draft.
type Draft struct {
	Name         string
	DiscountRate string
	SupplyPrice  string
	Premium      string
	BasePrice    string
	SalesProfit  string
	Country      string
	Flag         string
}

// ErrClosed indicates an operation on a form that is not open
var ErrClosed = errors.New("form is not open")

// New creates a closed form
func New() *Form {
	return &Form{}
}

// IsOpen reports whether the form is open
func (f *Form) IsOpen() bool {
	return f.open
}

// EditingID returns the ID of the record being edited.
// ok is false when the form is open for creation or closed.
func (f *Form) EditingID() (id string, ok bool) {
	return f.editingID, f.editingID != ""
}

// Draft returns a copy of the current field values
func (f *Form) Draft() Draft {
	return f.draft
}

// OpenForCreate opens the form with empty fields and no editing target
func (f *Form) OpenForCreate() {
	f.draft = Draft{}
	f.editingID = ""
	f.open = true
}

// OpenForEdit opens the form pre-filled from an existing record.
// Numeric values are rendered back to strings so the operator edits
// exactly what the record holds.
func (f *Form) OpenForEdit(lead api.Lead) {
	f.draft = Draft{
		Name:         lead.Name,
		DiscountRate: formatFloat(lead.DiscountRate),
		SupplyPrice:  formatFloat(lead.SupplyPrice),
		Premium:      formatFloat(lead.Premium),
		BasePrice:    formatFloat(lead.BasePrice),
		SalesProfit:  formatFloat(lead.SalesProfit),
		Country:      lead.Country,
		Flag:         lead.Flag,
	}
	f.editingID = lead.ID
	f.open = true
}

// SetField updates one draft field by name
func (f *Form) SetField(name, value string) error {
	if !f.open {
		return ErrClosed
	}

	switch strings.ToLower(name) {
	case "name":
		f.draft.Name = value
	case "discountrate":
		f.draft.DiscountRate = value
	case "supplyprice":
		f.draft.SupplyPrice = value
	case "premium":
		f.draft.Premium = value
	case "baseprice":
		f.draft.BasePrice = value
	case "salesprofit":
		f.draft.SalesProfit = value
	case "country":
		f.draft.Country = value
	case "flag":
		f.draft.Flag = value
	default:
		return fmt.Errorf("unknown field: %s", name)
	}
	return nil
}

// Reset clears all field values but keeps the form open and keeps the
// editing target
func (f *Form) Reset() {
	f.draft = Draft{}
}

// Close discards the draft and the editing target
func (f *Form) Close() {
	f.draft = Draft{}
	f.editingID = ""
	f.open = false
}

// Lead parses the draft into a record. Every field is required; a
// parse failure or missing field returns an error and leaves the draft
// untouched.
func (f *Form) Lead() (api.Lead, error) {
	if !f.open {
		return api.Lead{}, ErrClosed
	}

	if strings.TrimSpace(f.draft.Name) == "" {
		return api.Lead{}, fmt.Errorf("name is required")
	}

	discountRate, err := parseAmount("discountRate", f.draft.DiscountRate)
	if err != nil {
		return api.Lead{}, err
	}
	supplyPrice, err := parseAmount("supplyPrice", f.draft.SupplyPrice)
	if err != nil {
		return api.Lead{}, err
	}
	premium, err := parseAmount("premium", f.draft.Premium)
	if err != nil {
		return api.Lead{}, err
	}
	basePrice, err := parseAmount("basePrice", f.draft.BasePrice)
	if err != nil {
		return api.Lead{}, err
	}
	salesProfit, err := parseAmount("salesProfit", f.draft.SalesProfit)
	if err != nil {
		return api.Lead{}, err
	}

	return api.Lead{
		ID:           f.editingID,
		Name:         strings.TrimSpace(f.draft.Name),
		DiscountRate: discountRate,
		SupplyPrice:  supplyPrice,
		Premium:      premium,
		BasePrice:    basePrice,
		SalesProfit:  salesProfit,
		Country:      f.draft.Country,
		Flag:         f.draft.Flag,
	}, nil
}

func parseAmount(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", field, value)
	}
	return n, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
