package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/render"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// SessionConfig tunes the WebSocket side of a session.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a client message or pong.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between heartbeat pings.
	HeartbeatInterval time.Duration
}

// DefaultSessionConfig returns the default session timeouts.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
	}
}

// Session is one rendered page together with its live component state.
type Session struct {
	// ID is the unguessable session identifier embedded in the page.
	ID string

	// CreatedAt is when the page was rendered.
	CreatedAt time.Time

	mu       sync.Mutex
	mount    *Mount
	tree     *vdom.VNode
	hids     *vdom.HIDGenerator
	renderer *render.Renderer

	writeMu  sync.Mutex
	conn     *websocket.Conn
	attached atomic.Bool
	closed   atomic.Bool
	done     chan struct{}
	onClose  func(*Session)

	config  SessionConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewSession mounts root and renders it once, assigning hydration IDs.
func NewSession(root func() *vdom.VNode, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := generateSessionID()
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		mount:     NewMount(root),
		hids:      vdom.NewHIDGenerator(),
		renderer:  render.NewRenderer(render.RendererConfig{}),
		done:      make(chan struct{}),
		config:    DefaultSessionConfig(),
		logger:    logger.With("session_id", id),
	}
	s.tree = s.mount.Render()
	vdom.AssignHIDs(s.tree, s.hids)
	return s
}

func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

// Tree returns the resolved tree as last sent to the client.
func (s *Session) Tree() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Mount returns the session's component reconciler.
func (s *Session) Mount() *Mount {
	return s.mount
}

// IsAttached reports whether a client socket has been attached.
func (s *Session) IsAttached() bool {
	return s.attached.Load()
}

// IsClosed reports whether the session has been closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// HandleEvent runs the handler bound to event on the element hid and
// returns the patches that bring the client up to date. An event that
// changes no state returns no patches.
func (s *Session) HandleEvent(ctx context.Context, hid, event string) ([]WirePatch, error) {
	_, span := startSpan(ctx, "displaycard.event",
		attribute.String("displaycard.session_id", s.ID),
		attribute.String("displaycard.hid", hid),
		attribute.String("displaycard.event", event),
	)
	start := time.Now()

	patches, err := s.handleEvent(hid, event)

	span.SetAttributes(attribute.Int("displaycard.patch_count", len(patches)))
	endSpan(span, err)
	s.recordEvent(event, len(patches), time.Since(start), err)
	return patches, err
}

func (s *Session) handleEvent(hid, event string) ([]WirePatch, error) {
	if s.closed.Load() {
		return nil, errors.New(errors.CodeSessionClosed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	node := vdom.FindByHID(s.tree, hid)
	if node == nil {
		return nil, errors.New(errors.CodeHandlerNotFound).WithDetailf("no element %q", hid)
	}
	handler := node.Handler(event)
	if handler == nil {
		return nil, errors.New(errors.CodeHandlerNotFound).WithDetailf("element %q has no %s handler", hid, event)
	}
	if err := invokeHandler(handler, event); err != nil {
		return nil, err
	}

	if !s.mount.Dirty() {
		return nil, nil
	}
	return s.renderLocked()
}

// Rerender renders the tree whether or not any state changed, picking up
// new values the root function reads from outside the component tree.
func (s *Session) Rerender() ([]WirePatch, error) {
	if s.closed.Load() {
		return nil, errors.New(errors.CodeSessionClosed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *Session) renderLocked() ([]WirePatch, error) {
	next := s.mount.Render()
	patches := vdom.Diff(s.tree, next)
	vdom.AssignHIDs(next, s.hids)
	s.tree = next

	return EncodePatches(s.renderer, patches)
}

// invokeHandler calls one of the supported handler shapes. A panicking
// handler is reported as an error and leaves the session usable.
func invokeHandler(handler any, event string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	switch h := handler.(type) {
	case func():
		h()
	case func(string):
		h(event)
	default:
		return errors.New(errors.CodeHandlerNotFound).WithDetailf("unsupported handler type %T", handler)
	}
	return nil
}

func (s *Session) recordEvent(event string, patches int, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.EventsTotal.WithLabelValues(event, status).Inc()
	s.metrics.EventDuration.Observe(elapsed.Seconds())
	s.metrics.PatchesSent.Add(float64(patches))
}

// attach binds the client socket. A session accepts a single socket.
func (s *Session) attach(conn *websocket.Conn) error {
	if s.closed.Load() {
		return errors.New(errors.CodeSessionClosed)
	}
	if !s.attached.CompareAndSwap(false, true) {
		return errors.New(errors.CodeSessionClosed).WithDetail("session already has a client")
	}
	s.writeMu.Lock()
	s.conn = conn
	s.writeMu.Unlock()
	return nil
}

// Serve reads client events until the socket fails, ctx is cancelled or
// the session is closed. It closes the session on return.
func (s *Session) Serve(ctx context.Context) {
	defer s.Close()

	if s.conn == nil {
		return
	}

	go s.heartbeat()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()

	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) && !s.closed.Load() {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var in ClientMessage
		if err := json.Unmarshal(msg, &in); err != nil || in.HID == "" || in.Event == "" {
			s.logger.Warn("invalid client message", "size", len(msg))
			s.send(ServerMessage{Error: errors.New(errors.CodeInvalidMessage).Error()})
			continue
		}

		patches, err := s.HandleEvent(ctx, in.HID, in.Event)
		if err != nil {
			s.logger.Warn("event failed", "hid", in.HID, "event", in.Event, "error", err)
			s.send(ServerMessage{Error: err.Error()})
			continue
		}
		if len(patches) == 0 {
			continue
		}
		s.send(ServerMessage{Patches: patches})
	}
}

func (s *Session) heartbeat() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.config.WriteTimeout))
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) send(msg ServerMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed.Load() || s.conn == nil {
		return
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Error("write error", "error", err)
	}
}

// Close closes the socket and disposes every mounted component. It is safe
// to call more than once.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.writeMu.Lock()
	if s.conn != nil {
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = s.conn.Close()
	}
	s.writeMu.Unlock()

	s.mu.Lock()
	s.mount.Dispose()
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose(s)
	}
}
