package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

func newBulbSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(func() *vdom.VNode {
		return vdom.Main(bulb{})
	}, nil)
	t.Cleanup(s.Close)
	return s
}

func TestNewSessionAssignsHIDs(t *testing.T) {
	s := newBulbSession(t)

	tree := s.Tree()
	require.NotNil(t, tree)
	assert.Equal(t, "h1", tree.HID)
	assert.NotEmpty(t, findTag(tree, "img").HID)
	assert.Len(t, s.ID, 32)
}

func TestSessionHandleEventPatches(t *testing.T) {
	s := newBulbSession(t)
	img := findTag(s.Tree(), "img")
	div := findTag(s.Tree(), "div")

	patches, err := s.HandleEvent(context.Background(), img.HID, "load")
	require.NoError(t, err)
	require.NotEmpty(t, patches)

	ops := map[string]bool{}
	for _, p := range patches {
		ops[p.Op] = true
	}
	assert.True(t, ops["SetAttr"], "expected attribute updates")
	assert.True(t, ops["RemoveNode"], "expected the placeholder to be removed")

	var litPatch *WirePatch
	for i := range patches {
		if patches[i].Key == "data-lit" {
			litPatch = &patches[i]
		}
	}
	require.NotNil(t, litPatch)
	assert.Equal(t, div.HID, litPatch.HID)
	assert.Equal(t, "true", litPatch.Value)

	// The image keeps its HID so later events still find it.
	assert.Equal(t, img.HID, findTag(s.Tree(), "img").HID)
	assert.Nil(t, vdom.Find(s.Tree(), func(n *vdom.VNode) bool { return n.Tag == "span" }))
}

func TestSessionRepeatedEventIsNoop(t *testing.T) {
	s := newBulbSession(t)
	hid := findTag(s.Tree(), "img").HID

	_, err := s.HandleEvent(context.Background(), hid, "load")
	require.NoError(t, err)

	patches, err := s.HandleEvent(context.Background(), hid, "load")
	require.NoError(t, err)
	assert.Empty(t, patches)
}

func TestSessionHandlerShapes(t *testing.T) {
	s := newBulbSession(t)
	hid := findTag(s.Tree(), "img").HID

	// func(string) handlers receive the event name.
	patches, err := s.HandleEvent(context.Background(), hid, "error")
	require.NoError(t, err)
	assert.Empty(t, patches)
}

func TestSessionUnknownTargets(t *testing.T) {
	s := newBulbSession(t)

	_, err := s.HandleEvent(context.Background(), "h999", "load")
	assert.True(t, errors.HasCode(err, errors.CodeHandlerNotFound))

	_, err = s.HandleEvent(context.Background(), s.Tree().HID, "load")
	assert.True(t, errors.HasCode(err, errors.CodeHandlerNotFound))
}

func TestSessionHandlerPanicIsReported(t *testing.T) {
	s := NewSession(func() *vdom.VNode {
		return vdom.Button(vdom.OnClick(func() { panic("boom") }))
	}, nil)
	defer s.Close()

	_, err := s.HandleEvent(context.Background(), s.Tree().HID, "click")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSessionClosed(t *testing.T) {
	s := newBulbSession(t)
	hid := findTag(s.Tree(), "img").HID

	s.Close()
	s.Close()
	assert.True(t, s.IsClosed())

	select {
	case <-s.Done():
	default:
		t.Fatal("Done should be closed")
	}

	_, err := s.HandleEvent(context.Background(), hid, "load")
	assert.True(t, errors.HasCode(err, errors.CodeSessionClosed))
	assert.Equal(t, 0, s.Mount().Instances())
}

func TestSessionTextPatchTargetsParent(t *testing.T) {
	s := NewSession(func() *vdom.VNode {
		return vdom.Div(&counter{key: "a"})
	}, nil)
	defer s.Close()

	button := findTag(s.Tree(), "button")
	patches, err := s.HandleEvent(context.Background(), button.HID, "click")
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, "SetText", patches[0].Op)
	assert.Equal(t, button.HID, patches[0].HID)
	assert.Equal(t, "1", patches[0].Value)
}
