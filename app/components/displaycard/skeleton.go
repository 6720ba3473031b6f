package displaycard

import . "github.com/vango-dev/displaycard/pkg/vdom"

// SkeletonClass is the class list of the loading placeholder.
const SkeletonClass = "absolute inset-0 bg-slate-300 animate-[pulse_2s_ease-in-out_infinite]"

// LoadingSkeleton renders a full-bounds pulsing placeholder.
func LoadingSkeleton() *VNode {
	return Div(
		Key("skeleton"),
		Class(SkeletonClass),
		Data("skeleton", "true"),
		AriaHidden(true),
	)
}
