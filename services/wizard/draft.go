package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voyago/models"

	"github.com/go-redis/redis/v8"
)

// DraftSchemaVersion tags every persisted draft. Bump it whenever the
// BookingState shape changes incompatibly; restore discards drafts carrying
// any other version instead of trusting them.
const DraftSchemaVersion = 1

const draftKeyPrefix = "wizard:draft:"

var (
	// ErrNoDraft is returned when no draft exists for the session.
	ErrNoDraft = errors.New("no draft found")
	// ErrIncompatibleDraft is returned when a stored draft carries an
	// unrecognized schema version or shape. The blob is deleted on sight.
	ErrIncompatibleDraft = errors.New("incompatible draft discarded")
)

// draftEnvelope wraps the persisted state with its schema version.
type draftEnvelope struct {
	SchemaVersion int                  `json:"schemaVersion"`
	SavedAt       time.Time            `json:"savedAt"`
	State         *models.BookingState `json:"state"`
}

// DraftStore persists whole-state snapshots of in-progress bookings.
type DraftStore interface {
	Save(ctx context.Context, state *models.BookingState) error
	Load(ctx context.Context, sessionID string) (*models.BookingState, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisDraftStore keeps each draft as one JSON blob under a fixed per-session
// key with a TTL.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{Client: client, TTL: ttl}
}

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

func (r *RedisDraftStore) Save(ctx context.Context, state *models.BookingState) error {
	envelope := draftEnvelope{
		SchemaVersion: DraftSchemaVersion,
		SavedAt:       time.Now(),
		State:         state,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := r.Client.Set(ctx, draftKey(state.SessionID), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (r *RedisDraftStore) Load(ctx context.Context, sessionID string) (*models.BookingState, error) {
	data, err := r.Client.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var envelope draftEnvelope
	if err := json.Unmarshal([]byte(data), &envelope); err != nil {
		r.Client.Del(ctx, draftKey(sessionID))
		return nil, ErrIncompatibleDraft
	}
	if err := validateDraft(&envelope, sessionID); err != nil {
		r.Client.Del(ctx, draftKey(sessionID))
		return nil, ErrIncompatibleDraft
	}
	return envelope.State, nil
}

func (r *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, draftKey(sessionID)).Err()
}

// validateDraft rejects drafts from incompatible releases or with shapes the
// engine's invariants rule out.
func validateDraft(envelope *draftEnvelope, sessionID string) error {
	if envelope.SchemaVersion != DraftSchemaVersion {
		return fmt.Errorf("schema version %d is not supported", envelope.SchemaVersion)
	}
	s := envelope.State
	if s == nil {
		return errors.New("draft has no state")
	}
	if s.SessionID != sessionID {
		return errors.New("draft session id mismatch")
	}
	if s.CurrentStep < models.StepDateParticipants || s.CurrentStep > models.StepConfirmation {
		return fmt.Errorf("current step %d is out of range", s.CurrentStep)
	}
	if s.Participants < 1 {
		return fmt.Errorf("participant count %d is invalid", s.Participants)
	}
	if len(s.Travelers) != s.Participants {
		return fmt.Errorf("roster length %d does not match %d participants", len(s.Travelers), s.Participants)
	}
	for _, step := range s.CompletedSteps {
		if step < models.StepDateParticipants || step > models.StepConfirmation {
			return fmt.Errorf("completed step %d is out of range", step)
		}
	}
	return nil
}
