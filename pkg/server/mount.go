package server

import (
	"sync/atomic"

	"github.com/vango-dev/displaycard/pkg/vdom"
)

// Mount keeps the component instances of a tree alive across renders.
//
// Render resolves the tree into plain elements and text: component nodes
// are replaced by their output and fragments are flattened, so child
// indexes match the browser DOM. A component reuses the previous instance
// at the same position among its siblings when the type and ComponentKey
// match; otherwise a new instance is mounted and the old one disposed.
//
// A Mount is not safe for concurrent use; Session serializes access.
type Mount struct {
	root  *ComponentInstance
	dirty atomic.Bool

	mounted   atomic.Int64
	unmounted atomic.Int64
}

// NewMount creates a Mount for the given root render function.
func NewMount(root func() *vdom.VNode) *Mount {
	m := &Mount{}
	m.root = newComponentInstance(vdom.Func(root), nil, m)
	m.mounted.Add(1)
	return m
}

// Render renders the whole tree and returns its resolved form.
func (m *Mount) Render() *vdom.VNode {
	m.dirty.Store(false)
	nodes := m.renderInstance(m.root)
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		return &vdom.VNode{Kind: vdom.KindFragment, Children: nodes}
	}
}

// Dirty reports whether a signal read during the last render has changed.
func (m *Mount) Dirty() bool {
	return m.dirty.Load()
}

// Instances returns the number of live component instances.
func (m *Mount) Instances() int {
	return int(m.mounted.Load() - m.unmounted.Load())
}

// Dispose unmounts every instance.
func (m *Mount) Dispose() {
	if m.root != nil {
		m.dispose(m.root)
		m.root = nil
	}
}

func (m *Mount) renderInstance(inst *ComponentInstance) []*vdom.VNode {
	prev := inst.Children
	r := &resolver{mount: m, parent: inst, prev: prev, used: make([]bool, len(prev))}

	out := r.resolve(inst.Render())

	for i, child := range prev {
		if !r.used[i] {
			m.dispose(child)
		}
	}
	inst.Children = r.next
	return out
}

func (m *Mount) dispose(inst *ComponentInstance) {
	var count func(*ComponentInstance) int64
	count = func(c *ComponentInstance) int64 {
		n := int64(1)
		for _, child := range c.Children {
			n += count(child)
		}
		return n
	}
	m.unmounted.Add(count(inst))
	inst.Dispose()
}

// resolver walks one instance's output, mounting nested components.
type resolver struct {
	mount  *Mount
	parent *ComponentInstance
	prev   []*ComponentInstance
	used   []bool
	next   []*ComponentInstance
}

func (r *resolver) resolve(node *vdom.VNode) []*vdom.VNode {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		out := &vdom.VNode{
			Kind:  vdom.KindElement,
			Tag:   node.Tag,
			Props: node.Props,
			Key:   node.Key,
		}
		for _, child := range node.Children {
			out.Children = append(out.Children, r.resolve(child)...)
		}
		return []*vdom.VNode{out}

	case vdom.KindFragment:
		var out []*vdom.VNode
		for _, child := range node.Children {
			out = append(out, r.resolve(child)...)
		}
		return out

	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.mount.renderInstance(r.instanceFor(node.Comp))

	default:
		return []*vdom.VNode{{Kind: node.Kind, Text: node.Text, Key: node.Key}}
	}
}

// instanceFor returns the instance for the next component in render order.
func (r *resolver) instanceFor(comp vdom.Component) *ComponentInstance {
	pos := len(r.next)
	if pos < len(r.prev) && !r.used[pos] && r.prev[pos].matches(comp) {
		r.used[pos] = true
		inst := r.prev[pos]
		inst.Component = comp
		r.next = append(r.next, inst)
		return inst
	}

	inst := newComponentInstance(comp, r.parent, r.mount)
	r.mount.mounted.Add(1)
	r.next = append(r.next, inst)
	return inst
}
