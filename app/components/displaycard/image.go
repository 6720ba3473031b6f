package displaycard

import (
	"github.com/vango-dev/displaycard/pkg/vango"
	. "github.com/vango-dev/displaycard/pkg/vdom"
)

const (
	paneClass     = "relative w-full overflow-hidden bg-slate-100"
	imageClass    = "absolute inset-0 h-full w-full transition duration-300 object-contain md:object-cover"
	imageHidden   = "opacity-0"
	imageShown    = "opacity-100 hover:scale-[1.03]"
	imageSizes    = "(min-width: 768px) 100vw, 50vw"
	badgeClass    = "absolute left-3 top-3 rounded-full bg-black/80 px-2.5 py-1 text-xs font-mono font-medium text-white"
	fallbackClass = "absolute inset-0 flex items-center justify-center bg-slate-200 text-xs font-mono text-slate-500"
	fallbackText  = "Image unavailable"
	featuredBadge = "Featured"
)

// ImagePaneProps configures an ImagePane.
type ImagePaneProps struct {
	Src      string
	Alt      string
	Featured bool
	// Class is appended to the container, typically a size hint.
	Class string
}

// ImagePane returns the image pane component. Its identity is its Src: a
// pane re-rendered with a new Src is a new instance whose state starts at
// NotLoaded.
func ImagePane(props ImagePaneProps) Component {
	return &imagePane{props: props}
}

type imagePane struct {
	props ImagePaneProps
}

// ComponentKey implements vdom.Keyed.
func (p *imagePane) ComponentKey() string {
	return p.props.Src
}

func (p *imagePane) Render() *VNode {
	state := vango.NewSignal(NotLoaded)
	current := state.Get()

	onLoad := func() { state.Update(LoadState.OnLoad) }
	onError := func() { state.Update(LoadState.OnError) }

	return Div(
		Class(VariantOf(p.props.Featured).Style().PaneHeight, paneClass, p.props.Class),
		Data("state", current.String()),
		AttrIf(current == NotLoaded, AriaBusy(true)),
		If(current == NotLoaded, LoadingSkeleton()),
		If(current != Failed, p.image(current, onLoad, onError)),
		If(current == Failed, p.fallback()),
		If(p.props.Featured, Span(Key("badge"), Class(badgeClass), featuredBadge)),
	)
}

func (p *imagePane) image(state LoadState, onLoad, onError func()) *VNode {
	return Img(
		Key("image"),
		Src(p.props.Src),
		Alt(p.props.Alt),
		SizesAttr(imageSizes),
		Decoding("async"),
		Class(imageClass),
		ClassIf(state == Loaded, imageShown),
		ClassIf(state != Loaded, imageHidden),
		Data("loaded-class", CN(imageClass, imageShown)),
		Data("fallback-class", fallbackClass),
		Data("fallback-text", fallbackText),
		OnLoad(onLoad),
		OnError(onError),
	)
}

func (p *imagePane) fallback() *VNode {
	return Div(
		Key("fallback"),
		Class(fallbackClass),
		Role("img"),
		AriaLabel(p.props.Alt),
		fallbackText,
	)
}
