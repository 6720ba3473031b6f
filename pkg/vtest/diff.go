package vtest

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/vango-dev/displaycard/pkg/vdom"
)

// ExpectHTML asserts that node renders exactly to want. On mismatch the
// error shows an inline character diff.
func ExpectHTML(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	got := RenderToString(node)
	if got != want {
		t.Errorf("rendered HTML mismatch ([-want-] {+got+}):\n%s", HTMLDiff(want, got))
	}
}

// HTMLDiff returns want and got merged into one string, with text only in
// want as [-…-] and text only in got as {+…+}. Equal inputs yield "".
func HTMLDiff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
