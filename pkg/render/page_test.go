package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/displaycard/pkg/vdom"
)

func renderPage(t *testing.T, page PageData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestRenderPage(t *testing.T) {
	html := renderPage(t, PageData{
		Body:        vdom.Main(vdom.Text("Hello")),
		Title:       "Cards & more",
		Meta:        []MetaTag{{Name: "description", Content: "demo"}},
		Links:       []LinkTag{{Rel: "preconnect", Href: "https://cdn.dummyjson.com"}},
		StyleSheets: []string{"/app.css"},
	})

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Cards &amp; more</title>",
		`<meta name="description" content="demo">`,
		`<link rel="preconnect" href="https://cdn.dummyjson.com">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<body>\n<main>Hello</main>",
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q, got %q", want, html)
		}
	}
}

func TestRenderPageStaticHasNoBootstrap(t *testing.T) {
	html := renderPage(t, PageData{Body: vdom.Div()})
	if strings.Contains(html, "__DISPLAYCARD_SESSION__") {
		t.Errorf("static page should not bootstrap a session, got %q", html)
	}
	if strings.Contains(html, DefaultClientScript) {
		t.Errorf("static page should not load the live client, got %q", html)
	}
}

func TestRenderPageLiveBootstrap(t *testing.T) {
	html := renderPage(t, PageData{
		Body:      vdom.Div(),
		SessionID: `abc"123`,
		LivePath:  "/_live",
	})

	if !strings.Contains(html, `window.__DISPLAYCARD_SESSION__="abc&quot;123";`) {
		t.Errorf("session id should be escaped, got %q", html)
	}
	if !strings.Contains(html, `window.__DISPLAYCARD_LIVE__="/_live";`) {
		t.Errorf("live path missing, got %q", html)
	}
	if !strings.Contains(html, `<script src="/_displaycard/client.js" defer></script>`) {
		t.Errorf("client script missing, got %q", html)
	}
}

func TestRenderPageScriptPlacement(t *testing.T) {
	html := renderPage(t, PageData{
		Body: vdom.Div(),
		Scripts: []ScriptTag{
			{Src: "/head.js", Defer: true},
			{Inline: `console.log("</script>")`},
		},
	})

	headEnd := strings.Index(html, "</head>")
	deferred := strings.Index(html, `src="/head.js"`)
	inline := strings.Index(html, `console.log("<\/script>")`)
	if deferred == -1 || deferred > headEnd {
		t.Errorf("deferred script should be in head, got %q", html)
	}
	if inline == -1 || inline < headEnd {
		t.Errorf("inline script should be in body, got %q", html)
	}
}
