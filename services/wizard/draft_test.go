package wizard

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnvelope(sessionID string) *draftEnvelope {
	state := models.NewBookingState(sessionID, "USD")
	return &draftEnvelope{
		SchemaVersion: DraftSchemaVersion,
		SavedAt:       time.Now(),
		State:         state,
	}
}

func TestValidateDraft_AcceptsCurrentSchema(t *testing.T) {
	envelope := validEnvelope("s-1")

	require.NoError(t, validateDraft(envelope, "s-1"))
}

func TestValidateDraft_RejectsOtherSchemaVersions(t *testing.T) {
	envelope := validEnvelope("s-1")
	envelope.SchemaVersion = DraftSchemaVersion + 1

	assert.Error(t, validateDraft(envelope, "s-1"))

	// A pre-versioning blob unmarshals with version zero.
	envelope.SchemaVersion = 0
	assert.Error(t, validateDraft(envelope, "s-1"))
}

func TestValidateDraft_RejectsMissingState(t *testing.T) {
	envelope := validEnvelope("s-1")
	envelope.State = nil

	assert.Error(t, validateDraft(envelope, "s-1"))
}

func TestValidateDraft_RejectsSessionMismatch(t *testing.T) {
	envelope := validEnvelope("s-1")

	assert.Error(t, validateDraft(envelope, "s-2"))
}

func TestValidateDraft_RejectsBrokenInvariants(t *testing.T) {
	envelope := validEnvelope("s-1")
	envelope.State.CurrentStep = 9
	assert.Error(t, validateDraft(envelope, "s-1"))

	envelope = validEnvelope("s-1")
	envelope.State.Participants = 0
	assert.Error(t, validateDraft(envelope, "s-1"))

	envelope = validEnvelope("s-1")
	envelope.State.Travelers = nil
	assert.Error(t, validateDraft(envelope, "s-1"))

	envelope = validEnvelope("s-1")
	envelope.State.CompletedSteps = []int{1, 8}
	assert.Error(t, validateDraft(envelope, "s-1"))
}
