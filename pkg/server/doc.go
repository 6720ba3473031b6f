// Package server provides the live runtime for server-driven pages.
//
// A page request renders the root component through a Mount, numbers its
// elements with hydration IDs and registers a Session. The browser's thin
// client then opens a WebSocket and reports DOM events by HID; the session
// runs the bound handler, re-renders when a signal changed, diffs the
// resolved trees and sends the patches back as JSON.
//
// # Components
//
//   - Mount: reconciles component instances across renders
//   - Session: the mounted tree, its hydration IDs and the socket
//   - SessionManager: creation, attach deadline and eviction
//   - Server: chi router with page, live, client, health and metrics routes
//
// # Wire format
//
// Client to server:
//
//	{"hid":"h7","event":"load"}
//
// Server to client:
//
//	{"patches":[{"op":"SetAttr","hid":"h7","key":"class","value":"..."}]}
//
// InsertNode and ReplaceNode patches carry the rendered node in "html".
package server
