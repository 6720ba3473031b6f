// Package displaycard implements the DisplayCard component: an image pane
// with its own load state, and a body holding the title, the description
// and caller supplied content.
//
// DisplayCard is stateless. Its only mutable state lives in ImagePane,
// which starts NotLoaded, shows a pulsing skeleton, and reveals the image
// once the browser reports the load. A reported error moves the pane to
// Failed and swaps the skeleton for a fallback. Both end states are final
// for the lifetime of the mounted pane; remounting with a different source
// starts over.
package displaycard
