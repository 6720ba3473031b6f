package server

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/displaycard/pkg/vango"
	"github.com/vango-dev/displaycard/pkg/vdom"
)

// counter is a keyed component with one signal.
type counter struct {
	key     string
	renders *int
}

func (c *counter) ComponentKey() string { return c.key }

func (c *counter) Render() *vdom.VNode {
	count := vango.NewSignal(0)
	if c.renders != nil {
		*c.renders++
	}
	return vdom.Button(
		vdom.Data("name", c.key),
		vdom.OnClick(func() { count.Update(func(n int) int { return n + 1 }) }),
		vdom.Textf("%d", count.Get()),
	)
}

// bulb swaps a keyed placeholder for its image once the image loads.
type bulb struct{}

func (bulb) Render() *vdom.VNode {
	lit := vango.NewSignal(false)
	on := lit.Get()
	return vdom.Div(
		vdom.Data("lit", fmt.Sprint(on)),
		vdom.If(!on, vdom.Span(vdom.Key("placeholder"), "...")),
		vdom.Img(
			vdom.Key("img"),
			vdom.Src("/bulb.png"),
			vdom.ClassIf(on, "shown"),
			vdom.OnLoad(func() { lit.Set(true) }),
			vdom.OnError(func(string) {}),
		),
	)
}

func findTag(root *vdom.VNode, tag string) *vdom.VNode {
	return vdom.Find(root, func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Tag == tag
	})
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}
