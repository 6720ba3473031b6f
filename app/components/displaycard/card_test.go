package displaycard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/vango-dev/displaycard/pkg/vdom"
	"github.com/vango-dev/displaycard/pkg/vtest"
)

const (
	mascaraTitle       = "Essence Mascara Lash Princess"
	mascaraDescription = "The Essence Mascara Lash Princess is a popular mascara known for its volumizing and lengthening effects."
	mascaraImage       = "https://example.com/img.png"
)

func mascara(featured bool, children ...any) CardProps {
	return CardProps{
		Title:       mascaraTitle,
		Description: mascaraDescription,
		ImageURL:    mascaraImage,
		Featured:    featured,
		Children:    children,
	}
}

func TestDisplayCardBodyOrder(t *testing.T) {
	for _, featured := range []bool{false, true} {
		html := vtest.RenderToString(DisplayCard(mascara(featured,
			A(Href("/p/1"), "View product"),
			Span("after"),
		)))

		title := strings.Index(html, mascaraTitle+"</h3>")
		desc := strings.Index(html, mascaraDescription+"</p>")
		cta := strings.Index(html, "View product")
		after := strings.Index(html, "after</span>")

		require.True(t, title >= 0 && desc >= 0 && cta >= 0 && after >= 0, html)
		assert.Less(t, title, desc)
		assert.Less(t, desc, cta)
		assert.Less(t, cta, after)
	}
}

func TestDisplayCardDefault(t *testing.T) {
	card := DisplayCard(mascara(false))

	vtest.ExpectContains(t, card, "border border-slate-200 bg-white shadow-sm hover:shadow-md")
	vtest.ExpectContains(t, card, `<h3 class="text-base font-sans font-semibold text-slate-900">`+mascaraTitle+`</h3>`)
	vtest.ExpectContains(t, card, mascaraDescription)
	vtest.ExpectAttribute(t, card, "data-variant", "default")
	vtest.ExpectNotContains(t, card, AccentClass)
	vtest.ExpectNotContains(t, card, featuredBadge)
	vtest.ExpectContains(t, card, "h-48 md:h-full")
}

func TestDisplayCardFeatured(t *testing.T) {
	card := DisplayCard(mascara(true))

	vtest.ExpectContains(t, card, AccentClass)
	vtest.ExpectContains(t, card, ">"+featuredBadge+"</span>")
	vtest.ExpectContains(t, card, `<h3 class="text-lg font-sans font-bold text-slate-900">`+mascaraTitle+`</h3>`)
	vtest.ExpectAttribute(t, card, "data-variant", "featured")
	vtest.ExpectContains(t, card, "h-56 md:h-full")
	vtest.ExpectNotContains(t, card, "border-slate-200")
}

func TestDisplayCardLayout(t *testing.T) {
	card := DisplayCard(mascara(false))
	require.Equal(t, "article", card.Tag)

	inner := vtest.Query(card, "div")
	require.NotNil(t, inner)
	assert.Contains(t, inner.Props["class"], "flex flex-col md:flex-row-reverse md:items-stretch")

	// Image pane first, body second; row-reverse puts the image trailing.
	require.Len(t, inner.Children, 2)
	assert.Equal(t, KindComponent, inner.Children[0].Kind)
	assert.Equal(t, "div", inner.Children[1].Tag)
}

func TestDisplayCardEmptyStrings(t *testing.T) {
	card := DisplayCard(CardProps{})

	html := vtest.RenderToString(card)
	assert.Contains(t, html, `text-slate-900"></h3>`)
	assert.Contains(t, html, `font-sans"></p>`)
	assert.Contains(t, html, `alt=""`)
}

func TestDisplayCardEscapesText(t *testing.T) {
	card := DisplayCard(CardProps{Title: "Salt & <Pepper>", Description: `"quoted"`})

	vtest.ExpectContains(t, card, "Salt &amp; &lt;Pepper&gt;</h3>")
	vtest.ExpectNotContains(t, card, "<Pepper>")
}

func TestCardBody(t *testing.T) {
	body := CardBody("flex-1", Text("one"), Span("two"), []any{"three"})

	assert.Equal(t, `<div class="p-4 flex-1">one<span>two</span>three</div>`, vtest.RenderToString(body))
}

func TestLoadingSkeleton(t *testing.T) {
	skeleton := LoadingSkeleton()

	vtest.ExpectHTML(t, skeleton, `<div aria-hidden="true" class="`+SkeletonClass+`" data-skeleton="true"></div>`)
	assert.Equal(t, "skeleton", skeleton.Key)
}
