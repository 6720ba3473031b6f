package vango

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(o *Owner, fn func()) {
	WithOwner(o, func() {
		o.StartRender()
		defer o.EndRender()
		fn()
	})
}

func TestNewSignalStableAcrossRenders(t *testing.T) {
	o := NewOwner(nil)

	var first, second *Signal[int]
	var other *Signal[string]
	render(o, func() {
		first = NewSignal(1)
		other = NewSignal("x")
	})
	first.Set(5)

	render(o, func() {
		second = NewSignal(1)
		assert.Same(t, other, NewSignal("ignored"))
	})

	require.Same(t, first, second)
	assert.Equal(t, 5, second.Peek(), "initial value is ignored on re-render")
	assert.Equal(t, 2, o.RenderCount())
}

func TestNewSignalOutsideRenderIsFresh(t *testing.T) {
	o := NewOwner(nil)
	var a, b *Signal[int]
	WithOwner(o, func() {
		a = NewSignal(0)
		b = NewSignal(0)
	})
	assert.NotSame(t, a, b)
	assert.Nil(t, CurrentOwner())
}

func TestOwnerDisposeOrder(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)

	var order []string
	root.OnCleanup(func() { order = append(order, "root-1") })
	root.OnCleanup(func() { order = append(order, "root-2") })
	child.OnCleanup(func() { order = append(order, "child") })

	root.Dispose()
	root.Dispose()

	assert.Equal(t, []string{"child", "root-2", "root-1"}, order)
	assert.True(t, child.IsDisposed())
	assert.Same(t, root, child.Parent())
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()

	ran := false
	o.OnCleanup(func() { ran = true })
	assert.True(t, ran)
}

func TestChildDisposeDetachesFromParent(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	child.Dispose()

	root.childrenMu.Lock()
	defer root.childrenMu.Unlock()
	assert.Empty(t, root.children)
}

func TestDisposeDropsSlotSignalSubscribers(t *testing.T) {
	o := NewOwner(nil)
	var s *Signal[int]
	render(o, func() {
		s = NewSignal(0)
		WithListener(NewListener(func() {}), func() { s.Get() })
	})
	require.Equal(t, 1, s.base.subscriberCount())

	o.Dispose()
	assert.Equal(t, 0, s.base.subscriberCount())
}

func TestWithOwnerRestores(t *testing.T) {
	a, b := NewOwner(nil), NewOwner(nil)
	WithOwner(a, func() {
		WithOwner(b, func() {
			assert.Same(t, b, CurrentOwner())
		})
		assert.Same(t, a, CurrentOwner())
	})
	assert.Nil(t, CurrentOwner())
}
