// Package charts draws the dashboard charts: bar and scatter charts as SVG or
// PNG with go-chart, and the interactive world map as an ECharts page.
package charts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette is the colour used for every bar and point.
const Palette = "#991f17"

var (
	// ErrNoData is returned instead of drawing an empty chart.
	ErrNoData = errors.New("nothing to draw")
	// ErrUnsupportedFormat is returned for an image format other than svg or png.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format is the image encoding of a static chart.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat accepts "svg" and "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case SVG:
		return SVG, nil
	case PNG:
		return PNG, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
}

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) renderer() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

// CompactNumber abbreviates large counts the way the bar labels show them:
// 1,234.5 K, 3.4 M, 1.2 B. Values under a thousand keep one decimal.
func CompactNumber(v float64) string {
	const layout = "#,###.#"

	switch {
	case v >= 1e9:
		return humanize.FormatFloat(layout, v/1e9) + " B"
	case v >= 1e6:
		return humanize.FormatFloat(layout, v/1e6) + " M"
	case v >= 1e3:
		return humanize.FormatFloat(layout, v/1e3) + " K"
	default:
		return humanize.FormatFloat(layout, v)
	}
}

func compactFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return CompactNumber(f)
	}
	return fmt.Sprintf("%v", v)
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%v", v)
}

func paletteColor() drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(Palette, "#"))
}

// upperBound pads the largest value so the tallest bar or point is not
// clipped, and never returns zero so the axis range stays valid.
func upperBound(max float64) float64 {
	if max <= 0 {
		return 1
	}
	return max * 1.1
}
