package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"worlddeaths.org/internal/deaths"
)

const (
	barWidth   = 28
	barSpacing = 12
	barHeight  = 720

	barTitleFontSize = 18
)

// CauseBars draws one vertical bar per cause, in the order given. Each bar
// is labelled underneath with its cause and the compact total, on one line
// rotated 60 degrees.
func CauseBars(w io.Writer, format Format, title string, totals []deaths.CauseTotal) error {
	if len(totals) == 0 {
		return ErrNoData
	}

	color := paletteColor()
	bars := make([]chart.Value, 0, len(totals))
	var max float64
	for _, t := range totals {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%s)", t.Cause, CompactNumber(t.Total)),
			Value: t.Total,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
		if t.Total > max {
			max = t.Total
		}
	}

	width := barChartWidth(len(bars))
	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{Hidden: true},
		Width:      width,
		Height:     barHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 180},
		},
		XAxis: chart.Style{
			FontSize:            9,
			TextRotationDegrees: 60,
			TextWrap:            chart.TextWrapNone,
		},
		YAxis: chart.YAxis{
			Name:           "Jumlah Kematian",
			ValueFormatter: compactFormatter,
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: upperBound(max),
			},
		},
		Bars:     bars,
		Elements: []chart.Renderable{barTitle(title, width)},
	}

	if err := graph.Render(format.renderer(), w); err != nil {
		return fmt.Errorf("error rendering %q: %w", title, err)
	}
	return nil
}

func barChartWidth(n int) int {
	width := 160 + n*(barWidth+barSpacing)
	if width < 640 {
		return 640
	}
	return width
}

// barTitle draws the chart title centred at the top. The renderer keeps the
// x-axis label rotation after the axis is drawn, so it is cleared first.
func barTitle(title string, width int) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		if title == "" {
			return
		}
		r.ClearTextRotation()
		r.SetFont(defaults.GetFont())
		r.SetFontColor(chart.DefaultTextColor)
		r.SetFontSize(barTitleFontSize)

		box := r.MeasureText(title)
		x := (width >> 1) - (box.Width() >> 1)
		y := chart.DefaultTitleTop + box.Height()
		r.Text(title, x, y)
	}
}
