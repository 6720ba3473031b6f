package server

import (
	"github.com/vango-dev/displaycard/pkg/render"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// ClientMessage is an event reported by the thin client.
type ClientMessage struct {
	HID   string `json:"hid"`
	Event string `json:"event"`
}

// ServerMessage is sent to the thin client after an event.
type ServerMessage struct {
	Patches []WirePatch `json:"patches,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WirePatch is the JSON form of a vdom.Patch.
type WirePatch struct {
	Op     string `json:"op"`
	HID    string `json:"hid,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	HTML   string `json:"html,omitempty"`
	Index  int    `json:"index"`
	Parent string `json:"parent,omitempty"`
}

// EncodePatches converts patches to their wire form. Nodes carried by
// InsertNode and ReplaceNode are rendered with r, so they must already have
// their HIDs assigned.
func EncodePatches(r *render.Renderer, patches []vdom.Patch) ([]WirePatch, error) {
	out := make([]WirePatch, 0, len(patches))
	for _, p := range patches {
		wp := WirePatch{
			Op:     p.Op.String(),
			HID:    p.HID,
			Key:    p.Key,
			Value:  p.Value,
			Index:  p.Index,
			Parent: p.ParentID,
		}
		if p.Node != nil {
			html, err := r.RenderToString(p.Node)
			if err != nil {
				return nil, err
			}
			wp.HTML = html
		}
		out = append(out, wp)
	}
	return out, nil
}
