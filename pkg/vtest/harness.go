package vtest

import (
	"context"
	"testing"

	"github.com/vango-dev/displaycard/pkg/server"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// Harness drives a tree mounted in a live session.
type Harness struct {
	t       testing.TB
	session *server.Session
}

// Mount mounts root in a new session. The session is closed when the test
// ends.
func Mount(t testing.TB, root func() *vdom.VNode) *Harness {
	t.Helper()
	s := server.NewSession(root, nil)
	t.Cleanup(s.Close)
	return &Harness{t: t, session: s}
}

// Session returns the underlying session.
func (h *Harness) Session() *server.Session {
	return h.session
}

// Tree returns the current resolved tree.
func (h *Harness) Tree() *vdom.VNode {
	return h.session.Tree()
}

// HTML renders the current tree.
func (h *Harness) HTML() string {
	return RenderToString(h.Tree())
}

// Find returns the first element matching selector, failing the test when
// nothing matches.
func (h *Harness) Find(selector string) *vdom.VNode {
	h.t.Helper()
	node := Query(h.Tree(), selector)
	if node == nil {
		h.t.Fatalf("no element matches %q in:\n%s", selector, truncate(h.HTML(), 500))
	}
	return node
}

// Fire delivers event to the first element matching selector and returns
// the patches the client would receive.
func (h *Harness) Fire(selector, event string) []server.WirePatch {
	h.t.Helper()
	return h.FireHID(h.Find(selector).HID, event)
}

// FireHID delivers event to the element with the given hydration ID.
func (h *Harness) FireHID(hid, event string) []server.WirePatch {
	h.t.Helper()
	patches, err := h.session.HandleEvent(context.Background(), hid, event)
	if err != nil {
		h.t.Fatalf("FireHID(%q, %q): %v", hid, event, err)
	}
	return patches
}

// Instances returns the number of mounted component instances.
func (h *Harness) Instances() int {
	return h.session.Mount().Instances()
}

// Rerender re-renders the tree unconditionally, as after a props change.
func (h *Harness) Rerender() []server.WirePatch {
	h.t.Helper()
	patches, err := h.session.Rerender()
	if err != nil {
		h.t.Fatalf("Rerender: %v", err)
	}
	return patches
}
