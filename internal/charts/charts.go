// Package charts renders temperature charts as embeddable markup
// fragments. The fragments reference a shared echarts asset loaded once by
// the page shell instead of embedding the library, which keeps the page
// payload small.
package charts

import (
	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
)

// LineSpec describes a single-series line chart.
type LineSpec struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Name   string
	Values []float64
}

// BarSeries is one named value row of a grouped bar chart.
type BarSeries struct {
	Name   string
	Values []float64
}

// BarSpec describes a grouped bar chart. Colors are applied to the series
// in order.
type BarSpec struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Series []BarSeries
	Colors []string
}

// Renderer produces opaque chart fragments. The concrete charting library
// sits behind this interface so it stays replaceable.
type Renderer interface {
	LineChart(spec LineSpec) (string, error)
	GroupedBarChart(spec BarSpec) (string, error)
}

// ECharts renders fragments with go-echarts. Charts are not zoomable and
// show time/temperature values on hover.
type ECharts struct{}

var _ Renderer = ECharts{}

func (ECharts) LineChart(spec LineSpec) (string, error) {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: spec.Title}),
		echarts.WithXAxisOpts(opts.XAxis{Name: spec.XLabel}),
		echarts.WithYAxisOpts(opts.YAxis{Name: spec.YLabel}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	data := make([]opts.LineData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(spec.Labels).AddSeries(spec.Name, data)

	return renderFragment(line, line.Validate)
}

func (ECharts) GroupedBarChart(spec BarSpec) (string, error) {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: spec.Title}),
		echarts.WithXAxisOpts(opts.XAxis{Name: spec.XLabel}),
		echarts.WithYAxisOpts(opts.YAxis{Name: spec.YLabel}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		echarts.WithColorsOpts(opts.Colors(spec.Colors)),
	)

	bar.SetXAxis(spec.Labels)
	for _, s := range spec.Series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, data)
	}

	return renderFragment(bar, bar.Validate)
}

// renderFragment emits the chart as a snippet (element div + init script)
// rather than a full HTML document.
func renderFragment(chart any, validate func()) (string, error) {
	snippet := render.NewChartRender(chart, validate).RenderSnippet()
	return snippet.Element + snippet.Script, nil
}
