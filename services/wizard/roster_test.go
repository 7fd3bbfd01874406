package wizard

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResizeRoster_LengthAlwaysMatchesCount(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")

	for _, count := range []int{1, 3, 7, 2, 5} {
		resizeRoster(s, count)
		assert.Len(t, s.Travelers, count)
		assert.Equal(t, count, s.Participants)
		for i, traveler := range s.Travelers {
			assert.Equal(t, i+1, traveler.ParticipantNumber)
		}
	}
}

func TestResizeRoster_ShrinkThenRegrowYieldsBlankSlots(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 3)
	require.NoError(t, mergeTraveler(s, 2, models.TravelerUpdate{
		FullName: strPtr("Charlie"),
		Email:    strPtr("charlie@example.com"),
	}))

	resizeRoster(s, 1)
	resizeRoster(s, 3)

	// The regrown slot is fresh; nothing is resurrected.
	assert.Empty(t, s.Travelers[2].FullName)
	assert.Empty(t, s.Travelers[2].Email)
	assert.Equal(t, 3, s.Travelers[2].ParticipantNumber)
}

func TestResizeRoster_FirstTravelerLeadsWhenRosterWasEmpty(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	s.Travelers = nil
	resizeRoster(s, 2)

	assert.True(t, s.Travelers[0].IsLeadTraveler)
	assert.False(t, s.Travelers[1].IsLeadTraveler)
}

func TestResizeRoster_GrowthDoesNotTouchLeadFlag(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 2)
	require.NoError(t, setLeadTraveler(s, 1))

	resizeRoster(s, 4)

	assert.False(t, s.Travelers[0].IsLeadTraveler)
	assert.True(t, s.Travelers[1].IsLeadTraveler)
	assert.False(t, s.Travelers[2].IsLeadTraveler)
	assert.False(t, s.Travelers[3].IsLeadTraveler)
}

func TestMergeTraveler_PartialUpdateLeavesOtherFields(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 1)
	require.NoError(t, mergeTraveler(s, 0, models.TravelerUpdate{
		FullName:    strPtr("Alice"),
		Nationality: strPtr("NZ"),
	}))
	require.NoError(t, mergeTraveler(s, 0, models.TravelerUpdate{
		Email: strPtr("alice@example.com"),
	}))

	assert.Equal(t, "Alice", s.Travelers[0].FullName)
	assert.Equal(t, "NZ", s.Travelers[0].Nationality)
	assert.Equal(t, "alice@example.com", s.Travelers[0].Email)
}

func TestMergeTraveler_OutOfRangeIsAValidationError(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 2)

	err := mergeTraveler(s, 5, models.TravelerUpdate{FullName: strPtr("Nobody")})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCopyTraveler_NeverCopiesLeadAndRenumbers(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 3)
	require.NoError(t, setLeadTraveler(s, 0))
	require.NoError(t, mergeTraveler(s, 0, models.TravelerUpdate{
		FullName:    strPtr("Alice"),
		Dietary:     strPtr("vegetarian"),
		Nationality: strPtr("NZ"),
	}))

	require.NoError(t, copyTraveler(s, 0, 2))

	copied := s.Travelers[2]
	assert.Equal(t, "Alice", copied.FullName)
	assert.Equal(t, "vegetarian", copied.Dietary)
	assert.Equal(t, 3, copied.ParticipantNumber)
	assert.False(t, copied.IsLeadTraveler)
	// The source keeps its lead flag.
	assert.True(t, s.Travelers[0].IsLeadTraveler)
}

func TestCopyTraveler_OutOfRangeIndices(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 2)

	assert.Error(t, copyTraveler(s, -1, 1))
	assert.Error(t, copyTraveler(s, 0, 2))
}

func TestSetLeadTraveler_ExactlyOneLead(t *testing.T) {
	s := models.NewBookingState("test-session", "USD")
	resizeRoster(s, 3)

	require.NoError(t, setLeadTraveler(s, 2))
	require.NoError(t, setLeadTraveler(s, 1))

	leads := 0
	for i, traveler := range s.Travelers {
		if traveler.IsLeadTraveler {
			leads++
			assert.Equal(t, 1, i)
		}
	}
	assert.Equal(t, 1, leads)
}
