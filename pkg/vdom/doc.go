// Package vdom provides the virtual DOM used by displaycard components.
//
// A VNode tree is an in-memory description of markup. Components build trees
// with variadic element factories, the render package turns them into HTML,
// and Diff compares two trees to produce the patches a live session pushes to
// the browser.
//
// # Element API
//
//	Article(Class("card"),
//	    H3(Text("Title")),
//	    P(Text("Description")),
//	    Img(Src(url), Alt("Title"), OnLoad(handler)),
//	)
//
// Arguments may be attributes, event handlers, child nodes, components,
// strings (text shorthand) or []any slots. nil arguments are skipped so
// conditional content can be passed inline.
//
// # Components
//
// A Component renders to a VNode. Components that also implement Keyed are
// reconciled by key: a different key means a different instance.
//
// # Diffing
//
// Diff walks two trees and returns the Patch operations that turn the first
// into the second. Children carrying Key attributes are matched by key, the
// rest by position.
package vdom
