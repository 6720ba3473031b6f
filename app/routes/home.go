package routes

import (
	"github.com/vango-dev/displaycard/app/components/displaycard"
	"github.com/vango-dev/displaycard/pkg/catalog"
	. "github.com/vango-dev/displaycard/pkg/vdom"
)

const (
	ctaClass       = "mt-4 inline-block w-full sm:w-auto text-center rounded-md bg-indigo-600 px-4 py-1.5 text-sm font-mono font-medium text-white transition-colors hover:bg-indigo-500 focus-visible:ring-2 focus-visible:ring-indigo-600 focus-visible:ring-offset-2"
	stepClass      = "bg-blue-100 text-blue-800 rounded-full w-6 h-6 flex items-center justify-center text-sm font-medium flex-shrink-0"
	sectionTitle   = "text-xl font-semibold mb-3"
	demoFrameClass = "bg-white p-4 border rounded border-dashed flex justify-center"
	noticeClass    = "rounded border border-amber-200 bg-amber-50 p-4 text-sm text-amber-800"

	// NoticeText is shown in place of the demo when there are not enough
	// products to fill both cards.
	NoticeText = "Product previews are unavailable right now, so the demo cards cannot be shown."
)

// DemoSize is the number of previews the demo section needs.
const DemoSize = 2

// InlineCode renders a short code span.
func InlineCode(class string, children ...any) *VNode {
	return Code(Class("bg-gray-100 px-2 py-1 rounded text-sm font-mono", class), children)
}

// Home renders the assignment brief followed by the demo: the first
// preview as a default card and the second as a featured card, each with a
// CTA to link.
func Home(previews []catalog.Preview, link string) *VNode {
	return Div(Class("max-w-4xl mx-auto p-4"),
		brief(),
		demo(previews, link),
	)
}

func brief() *VNode {
	return Div(Class("border rounded-lg px-6 py-8 mt-10 bg-white shadow-sm"),
		H1(Class("text-3xl font-bold mb-6"), "Take Home Assignment"),
		Div(Class("space-y-6"),
			Div(
				H2(Class(sectionTitle), "Objective"),
				P(Class("text-gray-700 mb-4"),
					"Create a reusable ", InlineCode("", "DisplayCard"),
					" component that demonstrates your TypeScript, React, and design skills.",
				),
			),
			Div(
				H2(Class(sectionTitle), "Requirements"),
				Ol(Class("space-y-3 text-gray-700"),
					step(1, "Build a ", InlineCode("", "DisplayCard"), " component with three props:",
						InlineCode("", "title"), " (string), ", InlineCode("", "description"),
						" (string), and ", InlineCode("", "imageUrl"), " (string)."),
					step(2, "Style the component using Tailwind CSS. The design is entirely up to you—showcase your aesthetic sense."),
					step(3, "Ensure the component is fully responsive and looks great on both desktop and mobile viewports."),
					step(4, "Implement two visual variants: ", InlineCode("", "default"), " and ",
						InlineCode("", "featured"), ". The ", InlineCode("", "featured"),
						" variant should be visually distinct (larger, different colors, etc.)."),
					step(5, "Create a demo section on this page showing both variants with sample content."),
				),
			),
			Div(
				H2(Class(sectionTitle), "Technical Expectations"),
				Ul(Class("space-y-2 text-gray-700 list-disc list-inside marker:text-green-500"),
					Li("Properly typed TypeScript interfaces for all props"),
					Li("Clean, readable component structure"),
					Li("Proper image handling (alt text, loading states)"),
					Li("Consistent code formatting and naming conventions"),
				),
			),
			Div(
				H2(Class(sectionTitle), "Evaluation Criteria"),
				Div(Class("grid md:grid-cols-2 gap-4"),
					criteria("Code Quality (50%)", "TypeScript implementation", "Component clarity & composition", "Code organization"),
					criteria("Design & UX (50%)", "Visual design quality", "Responsive behavior", "Variant differentiation"),
				),
			),
			Div(Class("bg-blue-50 border border-blue-200 rounded-lg p-4"),
				H3(Class("font-medium text-blue-900 mb-2"), "\U0001F4A1 Bonus Points"),
				P(Class("text-blue-800 text-sm"),
					"Add hover effects, smooth transitions, or accessibility features like keyboard navigation."),
			),
			Div(Class("border-t pt-4"),
				P(Class("text-sm text-gray-600"),
					Strong("Time Estimate:"), " 45-60 minutes • ",
					Strong("Deliverable:"), " Working component with demo examples below",
				),
			),
		),
	)
}

func step(n int, content ...any) *VNode {
	return Li(Class("flex gap-3"),
		Span(Class(stepClass), Textf("%d", n)),
		Span(content),
	)
}

func criteria(title string, items ...string) *VNode {
	return Div(Class("bg-gray-50 p-4 rounded-lg"),
		H3(Class("font-medium text-gray-900 mb-2"), title),
		Ul(Class("text-sm text-gray-600 space-y-1 list-disc list-inside"),
			Range(items, func(item string, _ int) *VNode { return Li(item) }),
		),
	)
}

func demo(previews []catalog.Preview, link string) *VNode {
	return Div(Class("border rounded-lg px-6 py-8 mt-8 bg-gray-50"),
		Data("section", "demo"),
		H2(Class("text-2xl font-bold mb-4"), "Your Component Demo"),
		P(Class("text-gray-600 mb-6"), "Replace this section with examples of your DisplayCard component:"),
		When(len(previews) < DemoSize, func() *VNode {
			return Div(Role("status"), Class(noticeClass), NoticeText)
		}),
		When(len(previews) >= DemoSize, func() *VNode {
			return Div(Class("space-y-6"),
				variant("Default Variant", previews[0], false, link),
				variant("Featured Variant", previews[1], true, link),
			)
		}),
	)
}

func variant(heading string, p catalog.Preview, featured bool, link string) *VNode {
	return Div(
		H3(Class("text-lg font-medium mb-3"), heading),
		Div(Class(demoFrameClass),
			displaycard.DisplayCard(displaycard.CardProps{
				Title:       p.Title,
				Description: p.Description,
				ImageURL:    p.ImageURL,
				Featured:    featured,
				Children:    []any{A(Href(link), Class(ctaClass), "View product")},
			}),
		),
	)
}
