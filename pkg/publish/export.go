package publish

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/vango-dev/displaycard/pkg/render"
)

//go:embed static.js
var staticScript string

// ContentType is the media type of an exported page.
const ContentType = "text/html; charset=utf-8"

// StaticScript returns the inline script that drives image panes in an
// exported page.
func StaticScript() string {
	return staticScript
}

// Export writes page as a static document. Any session bootstrap is
// dropped and the static script is appended to the body.
func Export(w io.Writer, page render.PageData) error {
	page.SessionID = ""
	page.LivePath = ""
	page.Scripts = append(append([]render.ScriptTag(nil), page.Scripts...), render.ScriptTag{
		Inline: staticScript,
	})
	return render.NewRenderer(render.RendererConfig{}).RenderPage(w, page)
}

// ExportBytes is Export into a buffer.
func ExportBytes(page render.PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
