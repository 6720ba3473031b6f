package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "load" becomes "onload").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnLoad handles load events (images, iframes).
func OnLoad(handler any) EventHandler { return event("load", handler) }

// OnError handles error events (a resource failed to load).
func OnError(handler any) EventHandler { return event("error", handler) }

// On binds a handler to an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }
