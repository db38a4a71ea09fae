// Package viz renders a diffusion solution vector as an HTML bar chart
// (component 4.L), purely presentational and never consulted by the
// relaxation engine. Grounded on the pack's go-echarts usage
// (JonasLazardGIT-SPRUCE/cmd/analysis), which builds a charts.Bar from
// a slice of opts.BarData and renders it to a writer via
// components.Page.Render.
package viz

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderTopK writes a self-contained HTML page to w showing the k
// largest entries of y (ties broken by ascending node index).
func RenderTopK(y map[int]float64, k int, w io.Writer) error {
	nodes := make([]int, 0, len(y))
	for v := range y {
		nodes = append(nodes, v)
	}
	sort.Slice(nodes, func(a, b int) bool {
		if y[nodes[a]] != y[nodes[b]] {
			return y[nodes[a]] > y[nodes[b]]
		}
		return nodes[a] < nodes[b]
	})
	if k < len(nodes) {
		nodes = nodes[:k]
	}

	labels := make([]string, len(nodes))
	data := make([]opts.BarData, len(nodes))
	for i, v := range nodes {
		labels[i] = fmt.Sprintf("%d", v)
		data[i] = opts.BarData{Value: y[v]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Heat kernel diffusion", Subtitle: fmt.Sprintf("top %d of %d nonzero nodes", len(nodes), len(y))}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "gexpm diffusion", Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("y", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}
