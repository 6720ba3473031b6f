package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/displaycard/pkg/vdom"
)

// DefaultClientScript is the path the live client is served from.
const DefaultClientScript = "/_displaycard/client.js"

// PageData contains everything needed to render a complete HTML document.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (favicon, preconnect).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Scripts are rendered in the head when deferred or async, otherwise
	// at the end of the body.
	Scripts []ScriptTag

	// SessionID identifies the live session. When empty the page is static
	// and no client bootstrap is written.
	SessionID string

	// ClientScript is the path to the live client. Defaults to
	// DefaultClientScript.
	ClientScript string

	// LivePath is the WebSocket endpoint the client connects to.
	LivePath string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string
	Href        string
	Type        string
	CrossOrigin string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Inline string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	for _, script := range page.Scripts {
		if !script.Defer && !script.Async {
			if err := renderScriptTag(w, script); err != nil {
				return err
			}
		}
	}
	if err := renderClientBootstrap(w, page); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	head := "<head>\n" +
		`  <meta charset="utf-8">` + "\n" +
		`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n"
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}
	for _, link := range page.Links {
		if err := renderLinkTag(w, link); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}
	for _, script := range page.Scripts {
		if script.Defer || script.Async {
			if err := renderScriptTag(w, script); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

func renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := io.WriteString(w, "  <meta"); err != nil {
		return err
	}
	if err := writeAttr(w, "name", meta.Name); err != nil {
		return err
	}
	if err := writeAttr(w, "property", meta.Property); err != nil {
		return err
	}
	if err := writeAttr(w, "content", meta.Content); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

func renderLinkTag(w io.Writer, link LinkTag) error {
	if _, err := io.WriteString(w, "  <link"); err != nil {
		return err
	}
	for _, a := range [][2]string{
		{"rel", link.Rel},
		{"href", link.Href},
		{"type", link.Type},
		{"crossorigin", link.CrossOrigin},
	} {
		if err := writeAttr(w, a[0], a[1]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

func renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "  <script"); err != nil {
		return err
	}
	if err := writeAttr(w, "src", script.Src); err != nil {
		return err
	}
	if err := writeAttr(w, "type", script.Type); err != nil {
		return err
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	if script.Async {
		if _, err := io.WriteString(w, " async"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, ">%s</script>\n", escapeScript(script.Inline)); err != nil {
		return err
	}
	return nil
}

// renderClientBootstrap writes the session id and the live client script.
func renderClientBootstrap(w io.Writer, page PageData) error {
	if page.SessionID == "" {
		return nil
	}

	clientPath := page.ClientScript
	if clientPath == "" {
		clientPath = DefaultClientScript
	}

	if _, err := fmt.Fprintf(w, `  <script>window.__DISPLAYCARD_SESSION__="%s";`, escapeAttr(page.SessionID)); err != nil {
		return err
	}
	if page.LivePath != "" {
		if _, err := fmt.Fprintf(w, `window.__DISPLAYCARD_LIVE__="%s";`, escapeAttr(page.LivePath)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</script>\n  <script src=\"%s\" defer></script>\n", escapeAttr(clientPath))
	return err
}

func writeAttr(w io.Writer, key, value string) error {
	if value == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value))
	return err
}
