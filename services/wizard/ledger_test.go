package wizard

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAddon_RejectsMalformedEntries(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")

	assert.Error(t, appendAddon(s, models.SelectedAddon{Kind: "something_else", RefID: "x"}))
	assert.Error(t, appendAddon(s, models.SelectedAddon{Kind: models.AddonKindPackage}))
	assert.Empty(t, s.SelectedAddons)
}

func TestAppendAddon_SameKeyReplacesLine(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	require.NoError(t, appendAddon(s, models.SelectedAddon{
		Kind: models.AddonKindPackage, RefID: "addon-1", Name: "City tour", UnitPrice: 50,
	}))
	require.NoError(t, appendAddon(s, models.SelectedAddon{
		Kind: models.AddonKindPackage, RefID: "addon-1", Name: "City tour", UnitPrice: 60,
	}))

	require.Len(t, s.SelectedAddons, 1)
	assert.Equal(t, 60.0, s.SelectedAddons[0].UnitPrice)
}

func TestRemoveAddon_KeyedByKindAndID(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	// Same raw id in both id-spaces; the entries are distinct.
	require.NoError(t, appendAddon(s, models.SelectedAddon{
		Kind: models.AddonKindPackage, RefID: "17", Name: "Spa pass", UnitPrice: 40,
	}))
	require.NoError(t, appendAddon(s, models.SelectedAddon{
		Kind: models.AddonKindItinerary, RefID: "17", Name: "Night market walk", UnitPrice: 15,
	}))

	require.NoError(t, removeAddon(s, models.AddonKey{Kind: models.AddonKindPackage, ID: "17"}))

	require.Len(t, s.SelectedAddons, 1)
	assert.Equal(t, models.AddonKindItinerary, s.SelectedAddons[0].Kind)
}

func TestRemoveAddon_MissingKeyIsAValidationError(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")

	err := removeAddon(s, models.AddonKey{Kind: models.AddonKindPackage, ID: "nope"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestClearAddons(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	require.NoError(t, appendAddon(s, models.SelectedAddon{
		Kind: models.AddonKindPackage, RefID: "a", UnitPrice: 10,
	}))
	require.NoError(t, appendAddon(s, models.SelectedAddon{
		Kind: models.AddonKindItinerary, RefID: "b", UnitPrice: 20,
	}))

	clearAddons(s)

	assert.Empty(t, s.SelectedAddons)
	assert.Zero(t, Recompute(s).AddonsTotal)
}
