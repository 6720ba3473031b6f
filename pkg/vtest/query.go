package vtest

import (
	"fmt"
	"strings"

	"github.com/vango-dev/displaycard/pkg/vdom"
)

// selector is a parsed tag[attr="value"] expression.
type selector struct {
	tag      string
	attr     string
	value    string
	hasValue bool
}

func parseSelector(s string) selector {
	var sel selector
	open := strings.IndexByte(s, '[')
	if open < 0 {
		sel.tag = s
		return sel
	}
	sel.tag = s[:open]
	inner := strings.TrimSuffix(s[open+1:], "]")
	if eq := strings.IndexByte(inner, '='); eq >= 0 {
		sel.attr = inner[:eq]
		sel.value = strings.Trim(inner[eq+1:], `"'`)
		sel.hasValue = true
	} else {
		sel.attr = inner
	}
	return sel
}

func (s selector) match(n *vdom.VNode) bool {
	if n == nil || n.Kind != vdom.KindElement {
		return false
	}
	if s.tag != "" && n.Tag != s.tag {
		return false
	}
	if s.attr == "" {
		return true
	}
	v, ok := n.Props[s.attr]
	if !ok || v == nil {
		return false
	}
	return !s.hasValue || fmt.Sprint(v) == s.value
}

// Query returns the first element matching selector in document order.
func Query(root *vdom.VNode, selector string) *vdom.VNode {
	sel := parseSelector(selector)
	return vdom.Find(root, sel.match)
}

// QueryAll returns every element matching selector in document order.
func QueryAll(root *vdom.VNode, selector string) []*vdom.VNode {
	sel := parseSelector(selector)
	var out []*vdom.VNode
	var walk func(*vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if sel.match(n) {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}
