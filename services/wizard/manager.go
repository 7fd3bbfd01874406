package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when neither a live session nor a draft
// exists for an id.
var ErrSessionNotFound = errors.New("wizard session not found")

// Manager owns the live wizard sessions of this process. Sessions are
// explicitly constructed and passed by reference; there is no process-global
// wizard state, so multiple sessions and tests can coexist.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	drafts   DraftStore
	logger   *zap.Logger
	currency string
	interval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager wires a session manager around a draft store. interval governs
// the periodic autosave; zero disables it.
func NewManager(drafts DraftStore, logger *zap.Logger, currency string, interval time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		drafts:   drafts,
		logger:   logger,
		currency: currency,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start creates a fresh session with an empty aggregate at step 1.
func (m *Manager) Start(ctx context.Context) *Session {
	sessionID := uuid.New().String()
	session := NewSession(models.NewBookingState(sessionID, m.currency), m.drafts, m.logger)

	m.mu.Lock()
	m.sessions[sessionID] = session
	m.mu.Unlock()

	m.logger.Info("wizard session started", zap.String("sessionID", sessionID))
	return session
}

// Resume returns the live session for id, or restores one from its persisted
// draft. An incompatible draft is discarded and reported rather than loaded
// into the live state.
func (m *Manager) Resume(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	if session, ok := m.sessions[sessionID]; ok {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	state, err := m.drafts.Load(ctx, sessionID)
	if errors.Is(err, ErrNoDraft) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	session := NewSession(state, m.drafts, m.logger)
	m.mu.Lock()
	// Another caller may have restored it concurrently; keep the first.
	if existing, ok := m.sessions[sessionID]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.sessions[sessionID] = session
	m.mu.Unlock()

	m.logger.Info("wizard session restored from draft", zap.String("sessionID", sessionID))
	return session, nil
}

// Get returns the live session for id.
func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// End detaches a session from the manager after writing one final
// checkpoint. The draft stays behind so the session can be resumed later.
// The checkpoint runs synchronously; by the time End returns the draft
// reflects the final state.
func (m *Manager) End(ctx context.Context, sessionID string) {
	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if !ok {
		return
	}
	if err := m.drafts.Save(ctx, session.Snapshot()); err != nil {
		m.logger.Warn("final draft checkpoint failed",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

// Discard destroys a session and erases its draft, used for explicit
// cancel/clear and after the confirmation step completes.
func (m *Manager) Discard(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if err := m.drafts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to erase draft for session %s: %w", sessionID, err)
	}
	m.logger.Info("wizard session discarded", zap.String("sessionID", sessionID))
	return nil
}

// RunAutosave starts the periodic checkpoint loop in the background. Each
// tick snapshots every live session at fire time, so the checkpoint always
// reflects the current state rather than one captured when the timer was
// armed. Save failures are logged and swallowed.
func (m *Manager) RunAutosave() {
	if m.interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.checkpointAll()
			case <-m.stop:
				return
			}
		}
	}()
}

// StopAutosave halts the autosave loop.
func (m *Manager) StopAutosave() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Shutdown stops the autosave loop and writes one final synchronous
// checkpoint for every live session. It must complete before the process
// discards its session objects.
func (m *Manager) Shutdown(ctx context.Context) {
	m.StopAutosave()
	m.checkpointAll()
}

func (m *Manager) checkpointAll() {
	m.mu.Lock()
	live := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		live = append(live, session)
	}
	m.mu.Unlock()

	ctx := context.Background()
	for _, session := range live {
		snapshot := session.Snapshot()
		if err := m.drafts.Save(ctx, snapshot); err != nil {
			m.logger.Warn("autosave checkpoint failed",
				zap.String("sessionID", snapshot.SessionID), zap.Error(err))
		}
	}
}
