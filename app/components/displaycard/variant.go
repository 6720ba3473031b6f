package displaycard

// Variant selects one of the card's discrete visual treatments.
type Variant uint8

const (
	// VariantDefault is the plain card.
	VariantDefault Variant = iota
	// VariantFeatured adds the gradient frame and the Featured badge.
	VariantFeatured
)

// VariantOf maps the featured flag to a Variant.
func VariantOf(featured bool) Variant {
	if featured {
		return VariantFeatured
	}
	return VariantDefault
}

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantFeatured {
		return "featured"
	}
	return "default"
}

// VariantStyle is the set of class lists a variant contributes to a card.
type VariantStyle struct {
	Card        string
	Inner       string
	Title       string
	Description string
	PaneHeight  string
	Accent      bool
	Badge       bool
}

const (
	cardBase  = "group relative overflow-hidden rounded-2xl max-w-[475px] md:flex md:flex-row-reverse md:items-stretch"
	innerBase = "flex flex-col md:flex-row-reverse md:items-stretch"
)

var styles = map[Variant]VariantStyle{
	VariantDefault: {
		Card:        cardBase + " border border-slate-200 bg-white shadow-sm hover:shadow-md",
		Inner:       innerBase,
		Title:       "text-base font-sans font-semibold text-slate-900",
		Description: "mt-1 text-sm text-slate-600 font-sans",
		PaneHeight:  "h-48 md:h-full",
	},
	VariantFeatured: {
		Card:        cardBase + " shadow-md",
		Inner:       innerBase + " rounded-r-2xl bg-white",
		Title:       "text-lg font-sans font-bold text-slate-900",
		Description: "mt-2 text-sm text-slate-700 font-sans",
		PaneHeight:  "h-56 md:h-full",
		Accent:      true,
		Badge:       true,
	},
}

// Style returns the class record of the variant. Unknown variants fall
// back to the default treatment.
func (v Variant) Style() VariantStyle {
	if s, ok := styles[v]; ok {
		return s
	}
	return styles[VariantDefault]
}
