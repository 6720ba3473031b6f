// Package render provides server-side rendering for displaycard components.
//
// The render package converts VNode trees into HTML, handling:
//
//   - Text and attribute escaping
//   - Void elements (img, meta, link) and boolean attributes
//   - data-hid attributes for nodes numbered by a live session
//   - data-on-<event> markers telling the client which events to report
//   - Full pages with DOCTYPE, head, body and the live client bootstrap
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:      bodyNode,
//	    Title:     "Display card",
//	    SessionID: session.ID,
//	}
//	err := renderer.RenderPage(w, page)
//
// Pages rendered without a SessionID carry no live bootstrap; components
// still produce their initial (not yet loaded) markup.
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted using KindRaw
// nodes and must only carry trusted content.
package render
