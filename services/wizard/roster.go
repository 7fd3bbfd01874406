package wizard

import (
	"fmt"

	"voyago/models"
)

// resizeRoster grows or shrinks the traveler list to count entries. Growth
// appends fresh blank records; shrinking truncates from the end and discards
// the trailing travelers' data irrecoverably. Regrowing never resurrects
// previously entered data.
func resizeRoster(s *models.BookingState, count int) {
	wasEmpty := len(s.Travelers) == 0
	if count < len(s.Travelers) {
		s.Travelers = s.Travelers[:count]
	}
	for len(s.Travelers) < count {
		traveler := models.TravelerInfo{ParticipantNumber: len(s.Travelers) + 1}
		if wasEmpty && len(s.Travelers) == 0 {
			traveler.IsLeadTraveler = true
		}
		s.Travelers = append(s.Travelers, traveler)
	}
	s.Participants = count
}

// mergeTraveler applies a partial update to the traveler at index.
func mergeTraveler(s *models.BookingState, index int, upd models.TravelerUpdate) error {
	if index < 0 || index >= len(s.Travelers) {
		return NewValidationError(fmt.Sprintf("traveler index %d is out of range", index))
	}
	t := &s.Travelers[index]
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&t.FullName, upd.FullName)
	apply(&t.Email, upd.Email)
	apply(&t.Phone, upd.Phone)
	apply(&t.GovernmentID, upd.GovernmentID)
	apply(&t.Nationality, upd.Nationality)
	apply(&t.DateOfBirth, upd.DateOfBirth)
	apply(&t.Gender, upd.Gender)
	apply(&t.PassportExpiry, upd.PassportExpiry)
	apply(&t.Dietary, upd.Dietary)
	apply(&t.Medical, upd.Medical)
	apply(&t.SpecialNeeds, upd.SpecialNeeds)
	return nil
}

// copyTraveler duplicates all fields from one roster slot to another. The
// copy keeps its own participant number and is never marked lead, regardless
// of the source.
func copyTraveler(s *models.BookingState, fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(s.Travelers) {
		return NewValidationError(fmt.Sprintf("source traveler index %d is out of range", fromIndex))
	}
	if toIndex < 0 || toIndex >= len(s.Travelers) {
		return NewValidationError(fmt.Sprintf("target traveler index %d is out of range", toIndex))
	}
	copied := s.Travelers[fromIndex]
	copied.ParticipantNumber = toIndex + 1
	copied.IsLeadTraveler = false
	s.Travelers[toIndex] = copied
	return nil
}

// setLeadTraveler marks exactly one traveler as lead, clearing all others.
func setLeadTraveler(s *models.BookingState, index int) error {
	if index < 0 || index >= len(s.Travelers) {
		return NewValidationError(fmt.Sprintf("traveler index %d is out of range", index))
	}
	for i := range s.Travelers {
		s.Travelers[i].IsLeadTraveler = i == index
	}
	return nil
}
