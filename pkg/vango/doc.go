// Package vango provides the reactive core used by displaycard components.
//
// A Signal holds a value. Reading it with Get while a Listener is being
// tracked subscribes that listener; Set notifies subscribers when the value
// actually changes.
//
// An Owner is the scope of one mounted component instance. It stores the
// component's signals in hook slots, so a component that calls NewSignal
// during render receives the same signal on every re-render:
//
//	func (p *pane) Render() *vdom.VNode {
//	    state := vango.NewSignal(NotLoaded) // stable across renders
//	    ...
//	}
//
// Outside of a render (no current owner) NewSignal returns a fresh signal,
// which is what one-shot server-side rendering wants.
package vango
