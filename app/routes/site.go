package routes

import (
	"context"
	"log/slog"

	"github.com/vango-dev/displaycard/internal/errors"
	"github.com/vango-dev/displaycard/pkg/catalog"
	"github.com/vango-dev/displaycard/pkg/render"
	"github.com/vango-dev/displaycard/pkg/server"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// TailwindCDN styles the page without a CSS build step.
const TailwindCDN = "https://cdn.tailwindcss.com"

// Previewer supplies card previews; *catalog.Client implements it.
type Previewer interface {
	Previews(ctx context.Context, limit int) ([]catalog.Preview, error)
}

// Site renders the showcase page.
type Site struct {
	Catalog Previewer
	Limit   int
	Title   string
	CTAURL  string
	Logger  *slog.Logger
}

func (s *Site) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Previews fetches the demo previews. Catalog failures and short listings
// are logged and leave the demo to render its notice; they never fail the
// page.
func (s *Site) Previews(ctx context.Context) []catalog.Preview {
	if s.Catalog == nil {
		return nil
	}
	limit := s.Limit
	if limit < DemoSize {
		limit = DemoSize
	}

	previews, err := s.Catalog.Previews(ctx, limit)
	if err != nil {
		s.logger().Error("catalog unavailable", "error", err)
		return nil
	}
	if len(previews) < DemoSize {
		err := errors.New(errors.CodeCatalogShort).WithDetailf("got %d, need %d", len(previews), DemoSize)
		s.logger().Warn("catalog listing too short", "error", err)
	}
	return previews
}

// Document returns the document head of the page.
func (s *Site) Document() render.PageData {
	return render.PageData{
		Title: s.Title,
		Lang:  "en",
		Meta: []render.MetaTag{
			{Name: "description", Content: "DisplayCard component demo"},
		},
		Scripts: []render.ScriptTag{
			{Src: TailwindCDN},
		},
	}
}

// Root returns the render function of the page body.
func (s *Site) Root(previews []catalog.Preview) func() *vdom.VNode {
	return func() *vdom.VNode {
		return Home(previews, s.CTAURL)
	}
}

// Page implements server.PageFunc.
func (s *Site) Page(ctx context.Context) (server.Page, error) {
	previews := s.Previews(ctx)
	return server.Page{
		Data: s.Document(),
		Root: s.Root(previews),
	}, nil
}

// Static returns the complete page for rendering without a live session.
func (s *Site) Static(ctx context.Context) render.PageData {
	data := s.Document()
	data.Body = Home(s.Previews(ctx), s.CTAURL)
	return data
}
