package server

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/vango-dev/displaycard/pkg/vango"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// ComponentInstance is a mounted component together with its reactive scope.
type ComponentInstance struct {
	// InstanceID is the unique instance identifier ("c1", "c2", ...).
	InstanceID string

	// Component holds the props of the latest render.
	Component vdom.Component

	// Owner stores the component's signals across renders.
	Owner *vango.Owner

	// Parent is the enclosing instance, nil for the root.
	Parent *ComponentInstance

	// Children are the nested instances, in render order.
	Children []*ComponentInstance

	typ   reflect.Type
	key   string
	dirty atomic.Bool
	mount *Mount
}

var _ vango.Listener = (*ComponentInstance)(nil)

var componentIDCounter atomic.Uint64

func generateComponentID() string {
	return fmt.Sprintf("c%d", componentIDCounter.Add(1))
}

func newComponentInstance(comp vdom.Component, parent *ComponentInstance, m *Mount) *ComponentInstance {
	var parentOwner *vango.Owner
	if parent != nil {
		parentOwner = parent.Owner
	}
	return &ComponentInstance{
		InstanceID: generateComponentID(),
		Component:  comp,
		Owner:      vango.NewOwner(parentOwner),
		Parent:     parent,
		typ:        reflect.TypeOf(comp),
		key:        componentKey(comp),
		mount:      m,
	}
}

// componentKey returns the identity key a component declares, if any.
func componentKey(comp vdom.Component) string {
	if k, ok := comp.(vdom.Keyed); ok {
		return k.ComponentKey()
	}
	return ""
}

// matches reports whether comp can reuse this instance.
func (c *ComponentInstance) matches(comp vdom.Component) bool {
	return c.typ == reflect.TypeOf(comp) && c.key == componentKey(comp)
}

// Render renders the component with its owner and listener in place, so
// signals it creates land in its hook slots and signals it reads mark it
// dirty.
func (c *ComponentInstance) Render() *vdom.VNode {
	if c.Component == nil {
		return nil
	}

	var tree *vdom.VNode
	vango.WithOwner(c.Owner, func() {
		c.Owner.StartRender()
		defer c.Owner.EndRender()

		vango.WithListener(c, func() {
			tree = c.Component.Render()
		})
	})
	c.dirty.Store(false)
	return tree
}

// MarkDirty implements vango.Listener.
func (c *ComponentInstance) MarkDirty() {
	if c.dirty.CompareAndSwap(false, true) && c.mount != nil {
		c.mount.dirty.Store(true)
	}
}

// ID implements vango.Listener.
func (c *ComponentInstance) ID() uint64 {
	if c.Owner != nil {
		return c.Owner.ID()
	}
	return 0
}

// IsDirty returns whether the component needs re-rendering.
func (c *ComponentInstance) IsDirty() bool {
	return c.dirty.Load()
}

// Dispose disposes the instance and all of its children.
func (c *ComponentInstance) Dispose() {
	for i := len(c.Children) - 1; i >= 0; i-- {
		c.Children[i].Dispose()
	}
	c.Children = nil

	if c.Owner != nil {
		c.Owner.Dispose()
	}
	c.Component = nil
	c.mount = nil
}
