package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(node *VNode) *VNode {
	AssignHIDs(node, NewHIDGenerator())
	return node
}

func opsOf(patches []Patch) []PatchOp {
	ops := make([]PatchOp, len(patches))
	for i, p := range patches {
		ops[i] = p.Op
	}
	return ops
}

func TestDiffBothNil(t *testing.T) {
	assert.Empty(t, Diff(nil, nil))
}

func TestDiffNodeRemoved(t *testing.T) {
	prev := numbered(Div())
	patches := Diff(prev, nil)

	require.Len(t, patches, 1)
	assert.Equal(t, PatchRemoveNode, patches[0].Op)
	assert.Equal(t, "h1", patches[0].HID)
}

func TestDiffIdenticalTrees(t *testing.T) {
	build := func() *VNode {
		return Div(Class("card"), H3(Text("t")), P(Text("d")))
	}
	prev := numbered(build())
	next := build()

	assert.Empty(t, Diff(prev, next))
	assert.Equal(t, prev.HID, next.HID, "HIDs carry over to the new tree")
	assert.Equal(t, prev.Children[1].HID, next.Children[1].HID)
}

func TestDiffTextTargetsParent(t *testing.T) {
	prev := numbered(P(Text("Hello")))
	next := P(Text("World"))

	patches := Diff(prev, next)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchSetText, patches[0].Op)
	assert.Equal(t, "h1", patches[0].HID)
	assert.Equal(t, "World", patches[0].Value)
}

func TestDiffAttributes(t *testing.T) {
	prev := numbered(Img(Class("opacity-0"), Alt("x"), Data("stale", "1")))
	next := Img(Class("opacity-100"), Alt("x"), Src("/a.png"))

	patches := Diff(prev, next)
	byKey := map[string]Patch{}
	for _, p := range patches {
		byKey[p.Key] = p
	}

	require.Len(t, patches, 3)
	assert.Equal(t, PatchSetAttr, byKey["class"].Op)
	assert.Equal(t, "opacity-100", byKey["class"].Value)
	assert.Equal(t, PatchSetAttr, byKey["src"].Op)
	assert.Equal(t, PatchRemoveAttr, byKey["data-stale"].Op)
}

func TestDiffIgnoresHandlers(t *testing.T) {
	prev := numbered(Img(OnLoad(func() {})))
	next := Img(OnLoad(func() {}), OnError(func() {}))
	assert.Empty(t, Diff(prev, next))
}

func TestDiffTagChangeReplaces(t *testing.T) {
	prev := numbered(Div(Span()))
	patches := Diff(prev, Div(P()))

	require.Len(t, patches, 1)
	assert.Equal(t, PatchReplaceNode, patches[0].Op)
	assert.Equal(t, "h2", patches[0].HID)
	assert.Equal(t, "p", patches[0].Node.Tag)
}

func TestDiffUnkeyedAppendAndTruncate(t *testing.T) {
	prev := numbered(Ul(Li("a")))
	patches := Diff(prev, Ul(Li("a"), Li("b")))
	require.Len(t, patches, 1)
	assert.Equal(t, PatchInsertNode, patches[0].Op)
	assert.Equal(t, "h1", patches[0].ParentID)
	assert.Equal(t, 1, patches[0].Index)

	prev = numbered(Ul(Li("a"), Li("b")))
	patches = Diff(prev, Ul(Li("a")))
	require.Len(t, patches, 1)
	assert.Equal(t, PatchRemoveNode, patches[0].Op)
	assert.Equal(t, "h3", patches[0].HID)
}

// Mirrors a pane whose placeholder goes away once the image arrives.
func TestDiffKeyedRemovalShiftsSiblings(t *testing.T) {
	prev := numbered(Div(
		Span(Key("skeleton")),
		Img(Key("image"), Class("opacity-0")),
		Span(Key("badge")),
	))
	next := Div(
		Img(Key("image"), Class("opacity-100")),
		Span(Key("badge")),
	)

	patches := Diff(prev, next)
	assert.Equal(t, []PatchOp{PatchRemoveNode, PatchSetAttr}, opsOf(patches))
	assert.Equal(t, "h2", patches[0].HID)
	assert.Equal(t, "h3", patches[1].HID)
	assert.Equal(t, "h3", next.Children[0].HID)
}

// applyChildPatches replays child patches on a list of sibling keys the way
// the browser client does: inserts and moves go before childNodes[index].
func applyChildPatches(t *testing.T, prev *VNode, patches []Patch) []string {
	t.Helper()
	keyOf := make(map[string]string)
	var order []string
	for _, child := range prev.Children {
		keyOf[child.HID] = child.Key
		order = append(order, child.Key)
	}
	insertBefore := func(key string, index int) {
		if index >= len(order) {
			order = append(order, key)
			return
		}
		order = append(order[:index], append([]string{key}, order[index:]...)...)
	}
	remove := func(key string) int {
		for i, k := range order {
			if k == key {
				order = append(order[:i], order[i+1:]...)
				return i
			}
		}
		t.Fatalf("key %q not among siblings %v", key, order)
		return -1
	}
	for _, p := range patches {
		switch p.Op {
		case PatchInsertNode:
			insertBefore(p.Node.Key, p.Index)
		case PatchRemoveNode:
			remove(keyOf[p.HID])
		case PatchMoveNode:
			key := keyOf[p.HID]
			if p.Index < len(order) && order[p.Index] == key {
				continue
			}
			ref := ""
			if p.Index < len(order) {
				ref = order[p.Index]
			}
			remove(key)
			if ref == "" {
				order = append(order, key)
				continue
			}
			for i, k := range order {
				if k == ref {
					insertBefore(key, i)
					break
				}
			}
		}
	}
	return order
}

func TestDiffKeyedReorder(t *testing.T) {
	keyed := func(keys ...string) *VNode {
		children := make([]any, len(keys))
		for i, k := range keys {
			children[i] = Li(Key(k), k)
		}
		return Ul(children...)
	}

	tests := []struct {
		name string
		prev []string
		next []string
	}{
		{"reverse", []string{"a", "b", "c"}, []string{"c", "b", "a"}},
		{"rotate", []string{"a", "b", "c", "d"}, []string{"b", "c", "d", "a"}},
		{"swap ends", []string{"a", "b", "c", "d"}, []string{"d", "b", "c", "a"}},
		{"insert and remove", []string{"a", "b", "c"}, []string{"d", "c", "a"}},
		{"remove middle", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"same order", []string{"a", "b"}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := numbered(keyed(tt.prev...))
			patches := Diff(prev, keyed(tt.next...))
			assert.Equal(t, tt.next, applyChildPatches(t, prev, patches))
		})
	}
}

func TestDiffKeyedInsert(t *testing.T) {
	prev := numbered(Div(Img(Key("image"))))
	next := Div(Img(Key("image")), Span(Key("badge"), "Featured"))

	patches := Diff(prev, next)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchInsertNode, patches[0].Op)
	assert.Equal(t, 1, patches[0].Index)
	assert.Equal(t, "badge", patches[0].Node.Key)
}

func TestIsEventHandler(t *testing.T) {
	assert.True(t, isEventHandler("onload"))
	assert.True(t, isEventHandler("onError"))
	assert.True(t, isEventHandler("ONCLICK"))
	assert.False(t, isEventHandler("on"))
	assert.False(t, isEventHandler("class"))
}

func TestPatchOpString(t *testing.T) {
	assert.Equal(t, "SetAttr", PatchSetAttr.String())
	assert.Equal(t, "MoveNode", PatchMoveNode.String())
	assert.Equal(t, "Unknown", PatchOp(0).String())
}

func TestDiffKeyedWithUnkeyedSiblings(t *testing.T) {
	prev := numbered(Div(Div(Key("pane"), Class("a")), Div(Class("body"))))
	next := Div(Div(Key("pane"), Class("b")), Div(Class("body")))

	patches := Diff(prev, next)
	require.Len(t, patches, 1)
	assert.Equal(t, PatchSetAttr, patches[0].Op)
	assert.Equal(t, "h2", patches[0].HID)
	assert.Equal(t, "h3", next.Children[1].HID)
}
