package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// ManagerConfig configures a SessionManager.
type ManagerConfig struct {
	// AttachTimeout is how long a rendered page may take to open its
	// socket before its session is evicted. 0 disables eviction.
	AttachTimeout time.Duration

	// MaxSessions caps live sessions. 0 means unlimited.
	MaxSessions int

	// CleanupInterval is how often unattached sessions are swept.
	// Defaults to AttachTimeout.
	CleanupInterval time.Duration

	// Session tunes the sessions the manager creates.
	Session SessionConfig
}

// DefaultManagerConfig returns the default manager configuration.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		AttachTimeout: 30 * time.Second,
		Session:       DefaultSessionConfig(),
	}
}

// SessionManager tracks the live sessions of a server.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	config  ManagerConfig
	metrics *Metrics
	logger  *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewSessionManager creates a manager and starts its cleanup loop when an
// attach timeout is configured. metrics may be nil.
func NewSessionManager(config ManagerConfig, metrics *Metrics, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Session == (SessionConfig{}) {
		config.Session = DefaultSessionConfig()
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = config.AttachTimeout
	}

	m := &SessionManager{
		sessions: make(map[string]*Session),
		config:   config,
		metrics:  metrics,
		logger:   logger.With("component", "sessions"),
		done:     make(chan struct{}),
	}

	if config.AttachTimeout > 0 {
		m.wg.Add(1)
		go m.cleanupLoop()
	}
	return m
}

// Create mounts root in a new session.
func (m *SessionManager) Create(root func() *vdom.VNode) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config.MaxSessions > 0 && len(m.sessions) >= m.config.MaxSessions {
		return nil, errors.New(errors.CodeSessionLimit).WithDetailf("limit is %d", m.config.MaxSessions)
	}

	s := NewSession(root, m.logger)
	s.config = m.config.Session
	s.metrics = m.metrics
	s.onClose = m.forget
	m.sessions[s.ID] = s

	if m.metrics != nil {
		m.metrics.ActiveSessions.Inc()
	}
	return s, nil
}

// Get returns the session with the given ID.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.New(errors.CodeSessionNotFound).WithDetailf("session %q", id)
	}
	return s, nil
}

// Attach binds conn to the session with the given ID.
func (m *SessionManager) Attach(id string, conn *websocket.Conn) (*Session, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.attach(conn); err != nil {
		return nil, err
	}
	m.logger.Debug("session attached", "session_id", id)
	return s, nil
}

// Remove closes and forgets the session with the given ID.
func (m *SessionManager) Remove(id string) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if ok {
		s.Close()
	}
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// forget drops a closed session from the table.
func (m *SessionManager) forget(s *Session) {
	m.mu.Lock()
	_, ok := m.sessions[s.ID]
	delete(m.sessions, s.ID)
	m.mu.Unlock()

	if ok && m.metrics != nil {
		m.metrics.ActiveSessions.Dec()
	}
}

func (m *SessionManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if n := m.EvictUnattached(now); n > 0 {
				m.logger.Info("evicted unattached sessions", "count", n)
			}
		case <-m.done:
			return
		}
	}
}

// EvictUnattached closes sessions that were created more than AttachTimeout
// before now and never received a socket. It returns the number evicted.
func (m *SessionManager) EvictUnattached(now time.Time) int {
	if m.config.AttachTimeout <= 0 {
		return 0
	}

	var stale []*Session
	m.mu.RLock()
	for _, s := range m.sessions {
		if !s.IsAttached() && now.Sub(s.CreatedAt) > m.config.AttachTimeout {
			stale = append(stale, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range stale {
		s.Close()
		if m.metrics != nil {
			m.metrics.SessionsEvicted.Inc()
		}
	}
	return len(stale)
}

// Close stops the cleanup loop and closes every session.
func (m *SessionManager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()

		m.mu.RLock()
		all := make([]*Session, 0, len(m.sessions))
		for _, s := range m.sessions {
			all = append(all, s)
		}
		m.mu.RUnlock()

		for _, s := range all {
			s.Close()
		}
	})
}
