package displaycard

import . "github.com/vango-dev/displaycard/pkg/vdom"

// CardBody wraps children in the padded body container. Children are
// rendered verbatim, in the order given.
func CardBody(class string, children ...any) *VNode {
	return Div(Class("p-4", class), children)
}
