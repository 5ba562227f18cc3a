package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"worlddeaths.org/internal/deaths"
)

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    5,
		DotColor:    col,
	}
}

// TrendScatter plots one value per year. Points may arrive in any order.
func TrendScatter(w io.Writer, format Format, title, xName, yName string, points []deaths.YearValue) error {
	if len(points) == 0 {
		return ErrNoData
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	minYear, maxYear := points[0].Year, points[0].Year
	var max float64
	for i, p := range points {
		xs[i] = float64(p.Year)
		ys[i] = p.Value
		if p.Year < minYear {
			minYear = p.Year
		}
		if p.Year > maxYear {
			maxYear = p.Year
		}
		if p.Value > max {
			max = p.Value
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1600,
		Height: 800,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		XAxis: chart.XAxis{
			Name:           xName,
			ValueFormatter: yearFormatter,
			Range: &chart.ContinuousRange{
				Min: float64(minYear - 1),
				Max: float64(maxYear + 1),
			},
		},
		YAxis: chart.YAxis{
			Name:           yName,
			ValueFormatter: compactFormatter,
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: upperBound(max),
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yName,
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(paletteColor()),
			},
		},
	}

	if err := graph.Render(format.renderer(), w); err != nil {
		return fmt.Errorf("error rendering %q: %w", title, err)
	}
	return nil
}
