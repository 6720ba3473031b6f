package displaycard

import . "github.com/vango-dev/displaycard/pkg/vdom"

// AccentClass is the class list of the featured gradient accent bar.
const AccentClass = "absolute inset-y-0 left-0 w-1 origin-left rounded-l-2xl bg-gradient-to-b from-indigo-500 via-fuchsia-500 to-rose-500 transform-gpu transition-transform duration-300 group-hover:scale-x-125"

// CardProps configures a DisplayCard.
type CardProps struct {
	Title       string
	Description string
	ImageURL    string
	Featured    bool
	// Children are rendered after the description, unmodified.
	Children []any
}

// DisplayCard renders a card with an image pane and a body holding the
// title, the description and Children, in that order. Empty strings render
// as empty text.
func DisplayCard(p CardProps) *VNode {
	style := VariantOf(p.Featured).Style()

	return Article(
		Class(style.Card),
		Data("variant", VariantOf(p.Featured).String()),
		If(style.Accent, Span(AriaHidden(true), Class(AccentClass))),
		Div(
			Class(style.Inner),
			ImagePane(ImagePaneProps{
				Src:      p.ImageURL,
				Alt:      p.Title,
				Featured: style.Badge,
				Class:    "md:w-1/2 shrink-0",
			}),
			CardBody("flex-1",
				H3(Class(style.Title), Text(p.Title)),
				P(Class(style.Description), Text(p.Description)),
				p.Children,
			),
		),
	)
}
