package server

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

func emptyRoot() *vdom.VNode { return vdom.Div() }

func TestManagerCreateAndGet(t *testing.T) {
	m := NewSessionManager(ManagerConfig{}, nil, nil)
	defer m.Close()

	s, err := m.Create(emptyRoot)
	require.NoError(t, err)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Count())

	_, err = m.Get("missing")
	assert.True(t, errors.HasCode(err, errors.CodeSessionNotFound))
}

func TestManagerSessionLimit(t *testing.T) {
	m := NewSessionManager(ManagerConfig{MaxSessions: 1}, nil, nil)
	defer m.Close()

	_, err := m.Create(emptyRoot)
	require.NoError(t, err)

	_, err = m.Create(emptyRoot)
	assert.True(t, errors.HasCode(err, errors.CodeSessionLimit))
}

func TestManagerClosedSessionIsForgotten(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	m := NewSessionManager(ManagerConfig{}, metrics, nil)
	defer m.Close()

	s, err := m.Create(emptyRoot)
	require.NoError(t, err)
	assert.Equal(t, float64(1), gaugeValue(t, metrics.ActiveSessions))

	m.Remove(s.ID)
	assert.Equal(t, 0, m.Count())
	assert.True(t, s.IsClosed())
	assert.Equal(t, float64(0), gaugeValue(t, metrics.ActiveSessions))
}

func TestManagerEvictsUnattached(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	m := NewSessionManager(ManagerConfig{
		AttachTimeout:   time.Minute,
		CleanupInterval: time.Hour,
	}, metrics, nil)
	defer m.Close()

	stale, err := m.Create(emptyRoot)
	require.NoError(t, err)
	attached, err := m.Create(emptyRoot)
	require.NoError(t, err)
	attached.attached.Store(true)

	assert.Equal(t, 0, m.EvictUnattached(time.Now()))
	assert.Equal(t, 1, m.EvictUnattached(time.Now().Add(2*time.Minute)))

	assert.True(t, stale.IsClosed())
	assert.False(t, attached.IsClosed())
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, float64(1), counterValue(t, metrics.SessionsEvicted))
}

func TestManagerAttachOnce(t *testing.T) {
	m := NewSessionManager(ManagerConfig{}, nil, nil)
	defer m.Close()

	s, err := m.Create(emptyRoot)
	require.NoError(t, err)
	s.attached.Store(true)

	_, err = m.Attach(s.ID, nil)
	assert.True(t, errors.HasCode(err, errors.CodeSessionClosed))
}

func TestManagerCloseClosesSessions(t *testing.T) {
	m := NewSessionManager(ManagerConfig{AttachTimeout: time.Hour}, nil, nil)

	a, _ := m.Create(emptyRoot)
	b, _ := m.Create(emptyRoot)

	m.Close()
	m.Close()

	assert.True(t, a.IsClosed())
	assert.True(t, b.IsClosed())
	assert.Equal(t, 0, m.Count())
}
