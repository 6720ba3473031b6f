package vdom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Diff compares two VNode trees and returns the patches needed to transform
// prev into next. HIDs are carried over from prev to the matching nodes of
// next, so next can be diffed against the following render.
//
// Component nodes are rendered and their output compared; callers that keep
// component state should resolve components before diffing.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches.
// parentHID is the HID of the enclosing element, used as the target for text
// patches since text nodes have no HID of their own.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Additions are emitted by the parent as InsertNode.
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  replaceTarget(prev, parentHID),
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.HID = prev.HID
		diffChildren(prev, next, parentHID, patches)
	case KindComponent:
		next.HID = prev.HID
		if prev.Comp != nil && next.Comp != nil {
			diff(prev.Comp.Render(), next.Comp.Render(), parentHID, patches)
		}
	case KindRaw:
		diffRaw(prev, next, parentHID, patches)
	}
}

func replaceTarget(prev *VNode, parentHID string) string {
	if prev.HID != "" {
		return prev.HID
	}
	return parentHID
}

func diffText(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID
	if prev.Text == next.Text {
		return
	}
	target := replaceTarget(prev, parentHID)
	if target == "" {
		return
	}
	*patches = append(*patches, Patch{
		Op:    PatchSetText,
		HID:   target,
		Value: next.Text,
	})
}

func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID
	diffProps(prev, next, patches)
	diffChildren(prev, next, prev.HID, patches)
}

func diffRaw(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID
	if prev.Text == next.Text {
		return
	}
	if target := replaceTarget(prev, parentHID); target != "" {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  target,
			Node: next,
		})
	}
}

// diffProps compares attributes. Event handlers are bound by the runtime and
// never patched.
func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, prevVal := range prev.Props {
		if isEventHandler(key) {
			continue
		}
		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		} else if !propsEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if isEventHandler(key) {
			continue
		}
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}
}

func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev.Children, next.Children, parentHID, patches)
		return
	}
	diffUnkeyedChildren(prev.Children, next.Children, parentHID, patches)
}

// diffUnkeyedChildren matches children by position.
func diffUnkeyedChildren(prev, next []*VNode, parentHID string, patches *[]Patch) {
	n := len(prev)
	if len(next) > n {
		n = len(next)
	}

	for i := 0; i < n; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parentHID,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{
				Op:  PatchRemoveNode,
				HID: prevChild.HID,
			})
		default:
			diff(prevChild, nextChild, parentHID, patches)
		}
	}
}

// diffKeyedChildren matches children by key. Removals of unmatched prev
// children come first, then moves and inserts in next order, so applying the
// patches sequentially yields next's order.
func diffKeyedChildren(prev, next []*VNode, parentHID string, patches *[]Patch) {
	prevKeys := make(map[string]int, len(prev))
	for i, child := range prev {
		if key := getKey(child); key != "" {
			prevKeys[key] = i
		}
	}

	// sources[i] is the prev index matched to next[i], or -1 for an insert.
	sources := make([]int, len(next))
	matched := make(map[int]bool)
	for nextIdx, nextChild := range next {
		sources[nextIdx] = -1
		key := getKey(nextChild)
		if key == "" {
			// Unkeyed siblings of keyed nodes are matched by position.
			if nextIdx < len(prev) && getKey(prev[nextIdx]) == "" && !matched[nextIdx] {
				sources[nextIdx] = nextIdx
				matched[nextIdx] = true
			}
			continue
		}
		if prevIdx, ok := prevKeys[key]; ok && !matched[prevIdx] {
			sources[nextIdx] = prevIdx
			matched[prevIdx] = true
		}
	}

	// live tracks the sibling order the client holds after each patch.
	live := make([]*VNode, 0, len(prev)+len(next))
	for i, prevChild := range prev {
		if matched[i] {
			live = append(live, prevChild)
			continue
		}
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prevChild.HID,
		})
	}

	for nextIdx, nextChild := range next {
		if sources[nextIdx] < 0 {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parentHID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			live = insertAt(live, nextIdx, nextChild)
			continue
		}

		prevChild := prev[sources[nextIdx]]
		if pos := indexOf(live, prevChild); pos != nextIdx {
			*patches = append(*patches, Patch{
				Op:       PatchMoveNode,
				HID:      prevChild.HID,
				ParentID: parentHID,
				Index:    nextIdx,
			})
			live = insertAt(append(live[:pos], live[pos+1:]...), nextIdx, prevChild)
		}
		// Overwrite the slot so later lookups see the node at its final place.
		live[nextIdx] = nextChild
		diff(prevChild, nextChild, parentHID, patches)
	}
}

func indexOf(nodes []*VNode, node *VNode) int {
	for i, n := range nodes {
		if n == node {
			return i
		}
	}
	return -1
}

func insertAt(nodes []*VNode, i int, node *VNode) []*VNode {
	if i >= len(nodes) {
		return append(nodes, node)
	}
	nodes = append(nodes, nil)
	copy(nodes[i+1:], nodes[i:])
	nodes[i] = node
	return nodes
}

func getKey(node *VNode) string {
	if node == nil {
		return ""
	}
	return node.Key
}

func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}

// isEventHandler reports whether a prop key names an event handler.
// Case-insensitive so onload, ONLOAD and onLoad are all treated alike.
func isEventHandler(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
