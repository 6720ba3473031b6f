package vango

import (
	"sync"
	"sync/atomic"
)

// Owner is the reactive scope of one mounted component instance.
//
// Owners form a hierarchy mirroring the component tree. Disposing an owner
// disposes its children first (last created first) and then runs its own
// cleanups in reverse registration order.
type Owner struct {
	id     uint64
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool

	// Hook slots give values created during render a stable identity
	// across renders. Only touched by the rendering goroutine.
	hookSlots   []any
	hookSlotIdx int
	rendering   bool
	renderCount int
}

// NewOwner creates an owner registered as a child of parent.
// A nil parent creates a root owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

// RenderCount returns how many renders have completed.
func (o *Owner) RenderCount() int {
	return o.renderCount
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers fn to run when the owner is disposed.
// On an already disposed owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	o.cleanups = append(o.cleanups, fn)
	o.cleanupsMu.Unlock()
}

// Dispose disposes this owner and all of its children.
// Calling it more than once is a no-op.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// StartRender begins a render pass and rewinds the hook slot index.
func (o *Owner) StartRender() {
	o.hookSlotIdx = 0
	o.rendering = true
}

// EndRender ends the render pass started by StartRender.
func (o *Owner) EndRender() {
	o.rendering = false
	o.renderCount++
}

// UseHookSlot returns the value stored in the current hook slot and
// advances to the next one. It returns nil on the first render, in which
// case the caller creates the value and stores it with SetHookSlot.
//
//	if slot := owner.UseHookSlot(); slot != nil {
//	    return slot.(*T)
//	}
//	v := &T{}
//	owner.SetHookSlot(v)
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++
	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores value in the slot UseHookSlot just returned nil for.
func (o *Owner) SetHookSlot(value any) {
	idx := o.hookSlotIdx - 1
	if idx >= 0 && idx < len(o.hookSlots) {
		o.hookSlots[idx] = value
		return
	}
	o.hookSlots = append(o.hookSlots, value)
}
