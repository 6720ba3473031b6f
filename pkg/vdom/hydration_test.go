package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHIDGeneratorSequential(t *testing.T) {
	gen := NewHIDGenerator()
	assert.Equal(t, "h1", gen.Next())
	assert.Equal(t, "h2", gen.Next())
	assert.Equal(t, "h3", gen.Next())
}

func TestAssignHIDsKeepsExisting(t *testing.T) {
	tree := Div(P(Text("x")), Span())
	gen := NewHIDGenerator()
	AssignHIDs(tree, gen)

	assert.Equal(t, "h1", tree.HID)
	assert.Equal(t, "h2", tree.Children[0].HID)
	assert.Equal(t, "", tree.Children[0].Children[0].HID, "text nodes are not numbered")
	assert.Equal(t, "h3", tree.Children[1].HID)

	tree.Children = append(tree.Children, Img())
	AssignHIDs(tree, gen)
	assert.Equal(t, "h1", tree.HID)
	assert.Equal(t, "h4", tree.Children[2].HID)
}

func TestFindByHID(t *testing.T) {
	tree := numbered(Div(Section(Img(Alt("pic")))))

	found := FindByHID(tree, "h3")
	if assert.NotNil(t, found) {
		assert.Equal(t, "img", found.Tag)
	}
	assert.Nil(t, FindByHID(tree, "h9"))
	assert.Nil(t, FindByHID(tree, ""))
	assert.Nil(t, FindByHID(nil, "h1"))
}

func TestFindAndCountInteractive(t *testing.T) {
	tree := Div(Img(OnLoad(func() {})), Img(OnError(func() {})), Img())

	assert.Equal(t, 2, CountInteractive(tree))
	img := Find(tree, func(n *VNode) bool { return n.Tag == "img" })
	assert.Same(t, tree.Children[0], img)
}
