package vtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/displaycard/pkg/vango"
	"github.com/vango-dev/displaycard/pkg/vdom"
	"github.com/vango-dev/displaycard/pkg/vtest"
)

func TestRenderToString(t *testing.T) {
	node := vdom.Div(
		vdom.Class("container"),
		vdom.H1(vdom.Text("Hello")),
		vdom.P(vdom.Text("World")),
	)

	assert.Equal(t, `<div class="container"><h1>Hello</h1><p>World</p></div>`, vtest.RenderToString(node))
}

func TestExpectHelpers(t *testing.T) {
	node := vdom.Div(vdom.Text("Hello World"))

	vtest.ExpectContains(t, node, "Hello")
	vtest.ExpectNotContains(t, node, "Goodbye")
	vtest.ExpectElement(t, node, "div")
}

func TestQuery(t *testing.T) {
	node := vdom.Div(
		vdom.Img(vdom.Src("/a.png"), vdom.Alt("a")),
		vdom.Div(vdom.Data("state", "loaded")),
		vdom.Img(vdom.Src("/b.png")),
	)

	assert.Equal(t, "/a.png", vtest.Query(node, "img").Props["src"])
	assert.Equal(t, "/a.png", vtest.Query(node, "img[alt]").Props["src"])
	assert.Equal(t, "/b.png", vtest.Query(node, `img[src="/b.png"]`).Props["src"])
	assert.NotNil(t, vtest.Query(node, "[data-state=loaded]"))
	assert.Nil(t, vtest.Query(node, `[data-state="failed"]`))
	assert.Len(t, vtest.QueryAll(node, "img"), 2)
	vtest.ExpectCount(t, node, "div", 2)
}

type toggle struct{}

func (toggle) Render() *vdom.VNode {
	on := vango.NewSignal(false)
	label := "off"
	if on.Get() {
		label = "on"
	}
	return vdom.Button(vdom.Data("label", label), vdom.OnClick(func() { on.Set(!on.Peek()) }), label)
}

func TestHarnessFire(t *testing.T) {
	h := vtest.Mount(t, func() *vdom.VNode { return vdom.Div(toggle{}) })
	assert.Equal(t, 2, h.Instances())

	patches := h.Fire("button", "click")
	require.NotEmpty(t, patches)
	vtest.ExpectAttribute(t, h.Tree(), "data-label", "on")

	patches = h.FireHID(h.Find("button").HID, "click")
	require.NotEmpty(t, patches)
	vtest.ExpectAttribute(t, h.Tree(), "data-label", "off")
}

func TestHTMLDiff(t *testing.T) {
	assert.Empty(t, vtest.HTMLDiff("<p>a</p>", "<p>a</p>"))

	diff := vtest.HTMLDiff(`<p class="x">apple</p>`, `<p class="y">apple</p>`)
	assert.Contains(t, diff, "[-x-]")
	assert.Contains(t, diff, "{+y+}")
	assert.Contains(t, diff, "apple")
}

func TestExpectHTML(t *testing.T) {
	vtest.ExpectHTML(t, vdom.P(vdom.Class("x"), vdom.Text("apple")), `<p class="x">apple</p>`)
}
