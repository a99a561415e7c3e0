package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadbook/pkg/api"
)

func fillValidDraft(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.SetField("name", "Acme"))
	require.NoError(t, f.SetField("discountRate", "5"))
	require.NoError(t, f.SetField("supplyPrice", "100"))
	require.NoError(t, f.SetField("premium", "10"))
	require.NoError(t, f.SetField("basePrice", "120"))
	require.NoError(t, f.SetField("salesProfit", "15"))
}

func TestForm_OpenForCreate(t *testing.T) {
	f := New()
	assert.False(t, f.IsOpen())

	f.OpenForCreate()
	assert.True(t, f.IsOpen())

	_, editing := f.EditingID()
	assert.False(t, editing)
	assert.Equal(t, Draft{}, f.Draft())
}

func TestForm_OpenForEdit_CopiesFields(t *testing.T) {
	f := New()
	f.OpenForEdit(api.Lead{
		ID:           "lead-1",
		Name:         "Acme",
		DiscountRate: 5.5,
		SupplyPrice:  100,
		Premium:      10,
		BasePrice:    120.25,
		SalesProfit:  15,
		Country:      "Japan",
		Flag:         "https://flags.example.com/jp.png",
	})

	id, editing := f.EditingID()
	assert.True(t, editing)
	assert.Equal(t, "lead-1", id)

	draft := f.Draft()
	assert.Equal(t, "Acme", draft.Name)
	assert.Equal(t, "5.5", draft.DiscountRate)
	assert.Equal(t, "120.25", draft.BasePrice)
	assert.Equal(t, "Japan", draft.Country)
}

func TestForm_SetField(t *testing.T) {
	f := New()
	f.OpenForCreate()

	require.NoError(t, f.SetField("name", "Acme"))
	require.NoError(t, f.SetField("basePrice", "120"))

	draft := f.Draft()
	assert.Equal(t, "Acme", draft.Name)
	assert.Equal(t, "120", draft.BasePrice)
}

func TestForm_SetField_Unknown(t *testing.T) {
	f := New()
	f.OpenForCreate()

	err := f.SetField("nonsense", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestForm_SetField_Closed(t *testing.T) {
	f := New()

	err := f.SetField("name", "Acme")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestForm_Lead(t *testing.T) {
	f := New()
	f.OpenForCreate()
	fillValidDraft(t, f)

	lead, err := f.Lead()
	require.NoError(t, err)
	assert.Empty(t, lead.ID)
	assert.Equal(t, "Acme", lead.Name)
	assert.Equal(t, 5.0, lead.DiscountRate)
	assert.Equal(t, 120.0, lead.BasePrice)
}

func TestForm_Lead_CarriesEditingID(t *testing.T) {
	f := New()
	f.OpenForEdit(api.Lead{
		ID: "lead-42", Name: "Acme",
		DiscountRate: 1, SupplyPrice: 1, Premium: 1, BasePrice: 1, SalesProfit: 1,
	})

	lead, err := f.Lead()
	require.NoError(t, err)
	assert.Equal(t, "lead-42", lead.ID)
}

func TestForm_Lead_MissingName(t *testing.T) {
	f := New()
	f.OpenForCreate()
	fillValidDraft(t, f)
	require.NoError(t, f.SetField("name", "  "))

	_, err := f.Lead()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestForm_Lead_MissingNumber(t *testing.T) {
	f := New()
	f.OpenForCreate()
	fillValidDraft(t, f)
	require.NoError(t, f.SetField("premium", ""))

	_, err := f.Lead()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "premium is required")
}

func TestForm_Lead_BadNumber(t *testing.T) {
	f := New()
	f.OpenForCreate()
	fillValidDraft(t, f)
	require.NoError(t, f.SetField("basePrice", "twelve"))

	_, err := f.Lead()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basePrice must be a number")

	// A failed parse leaves the draft exactly as entered
	assert.Equal(t, "twelve", f.Draft().BasePrice)
}

func TestForm_Lead_Closed(t *testing.T) {
	f := New()

	_, err := f.Lead()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestForm_Reset_KeepsEditingTarget(t *testing.T) {
	f := New()
	f.OpenForEdit(api.Lead{ID: "lead-1", Name: "Acme"})

	f.Reset()

	assert.True(t, f.IsOpen())
	assert.Equal(t, Draft{}, f.Draft())

	id, editing := f.EditingID()
	assert.True(t, editing)
	assert.Equal(t, "lead-1", id)
}

func TestForm_Close(t *testing.T) {
	f := New()
	f.OpenForEdit(api.Lead{ID: "lead-1", Name: "Acme"})

	f.Close()

	assert.False(t, f.IsOpen())
	_, editing := f.EditingID()
	assert.False(t, editing)
	assert.Equal(t, Draft{}, f.Draft())
}
