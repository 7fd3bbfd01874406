package wizard

import (
	"fmt"

	"voyago/models"
)

// appendAddon adds one line to the add-on ledger. Entries are keyed by
// kind+id so the catalog and itinerary id-spaces cannot collide; re-adding
// an existing key replaces that line rather than duplicating it.
func appendAddon(s *models.BookingState, entry models.SelectedAddon) error {
	if entry.Kind != models.AddonKindPackage && entry.Kind != models.AddonKindItinerary {
		return NewValidationError(fmt.Sprintf("unknown add-on kind %q", entry.Kind))
	}
	if entry.RefID == "" {
		return NewValidationError("add-on entry is missing its reference id")
	}
	for i, existing := range s.SelectedAddons {
		if existing.Key() == entry.Key() {
			s.SelectedAddons[i] = entry
			return nil
		}
	}
	s.SelectedAddons = append(s.SelectedAddons, entry)
	return nil
}

// removeAddon drops the ledger line matching key. Matching is by kind+id, so
// a catalog add-on and an itinerary activity sharing a raw id value are
// distinct entries.
func removeAddon(s *models.BookingState, key models.AddonKey) error {
	for i, existing := range s.SelectedAddons {
		if existing.Key() == key {
			s.SelectedAddons = append(s.SelectedAddons[:i], s.SelectedAddons[i+1:]...)
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("no selected add-on for %s/%s", key.Kind, key.ID))
}

// clearAddons empties the ledger unconditionally.
func clearAddons(s *models.BookingState) {
	s.SelectedAddons = s.SelectedAddons[:0]
}
