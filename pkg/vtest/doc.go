// Package vtest provides testing helpers for components.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, DisplayCard(props), "Featured")
//	vtest.ExpectNotContains(t, node, "Image unavailable")
//	vtest.ExpectAttribute(t, node, "data-state", "not-loaded")
//
// # Live Harness
//
// A Harness mounts a tree in a real server session so tests can fire the
// events the browser would report and inspect the patches and the
// re-rendered tree:
//
//	h := vtest.Mount(t, func() *vdom.VNode { return DisplayCard(props) })
//	patches := h.Fire("img", "load")
//	vtest.ExpectAttribute(t, h.Tree(), "data-state", "loaded")
//
// Fire takes a simple selector: a tag name, an attribute test
// ("[data-state]", `[data-state="failed"]`) or both ("img[alt]").
// FireHID addresses an element by hydration ID instead.
package vtest
