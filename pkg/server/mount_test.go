package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/displaycard/pkg/vdom"
)

func TestMountResolvesComponents(t *testing.T) {
	m := NewMount(func() *vdom.VNode {
		return vdom.Div(
			vdom.Fragment(vdom.Span("a"), vdom.Span("b")),
			&counter{key: "x"},
		)
	})

	tree := m.Render()
	require.NotNil(t, tree)
	require.Len(t, tree.Children, 3)
	assert.Equal(t, "span", tree.Children[0].Tag)
	assert.Equal(t, "span", tree.Children[1].Tag)
	assert.Equal(t, "button", tree.Children[2].Tag)

	vdom.Find(tree, func(n *vdom.VNode) bool {
		assert.NotEqual(t, vdom.KindComponent, n.Kind)
		assert.NotEqual(t, vdom.KindFragment, n.Kind)
		return false
	})
	assert.Equal(t, 2, m.Instances())
}

func TestMountKeepsStateAcrossRenders(t *testing.T) {
	renders := 0
	m := NewMount(func() *vdom.VNode {
		return vdom.Div(&counter{key: "x", renders: &renders})
	})

	tree := m.Render()
	button := findTag(tree, "button")
	button.Handler("click").(func())()
	require.True(t, m.Dirty())

	tree = m.Render()
	assert.False(t, m.Dirty())
	assert.Equal(t, "1", findTag(tree, "button").Children[0].Text)
	assert.Equal(t, 2, renders)
	assert.Equal(t, 2, m.Instances())
}

func TestMountNewKeyRemounts(t *testing.T) {
	key := "a"
	m := NewMount(func() *vdom.VNode {
		return vdom.Div(&counter{key: key})
	})

	tree := m.Render()
	findTag(tree, "button").Handler("click").(func())()
	tree = m.Render()
	require.Equal(t, "1", findTag(tree, "button").Children[0].Text)

	key = "b"
	tree = m.Render()
	assert.Equal(t, "0", findTag(tree, "button").Children[0].Text)
	assert.Equal(t, 2, m.Instances())
}

func TestMountDisposesRemovedComponents(t *testing.T) {
	show := true
	m := NewMount(func() *vdom.VNode {
		if !show {
			return vdom.Div()
		}
		return vdom.Div(&counter{key: "a"}, &counter{key: "b"})
	})

	m.Render()
	assert.Equal(t, 3, m.Instances())

	show = false
	m.Render()
	assert.Equal(t, 1, m.Instances())

	m.Dispose()
	assert.Equal(t, 0, m.Instances())
}

func TestMountUnchangedSignalStaysClean(t *testing.T) {
	m := NewMount(func() *vdom.VNode { return bulb{}.Render() })
	tree := m.Render()

	// Setting the same value twice only notifies once.
	img := findTag(tree, "img")
	img.Handler("load").(func())()
	require.True(t, m.Dirty())
	tree = m.Render()

	findTag(tree, "img").Handler("load").(func())()
	assert.False(t, m.Dirty())
}
