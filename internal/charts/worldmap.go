package charts

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"worlddeaths.org/internal/deaths"
)

// viridis is the continuous colour scale of the world map, low to high.
var viridis = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WorldMap writes a standalone HTML page holding a choropleth of the
// all-cause totals of one year. Countries are matched by name.
func WorldMap(w io.Writer, year int, totals []deaths.CountryTotal) error {
	if len(totals) == 0 {
		return ErrNoData
	}

	data := make([]opts.MapData, 0, len(totals))
	var max float64
	for _, t := range totals {
		data = append(data, opts.MapData{Name: t.Country, Value: t.Total})
		if t.Total > max {
			max = t.Total
		}
	}

	title := strconv.Itoa(year)
	m := charts.NewMap()
	m.RegisterMapType("world")
	m.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Jumlah Kematian " + title,
			Width:           "100%",
			Height:          "500px",
			BackgroundColor: "#111111",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "center",
			Top:   "middle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(max),
			Text:       []string{"Total", ""},
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	m.AddSeries("Total", data)

	if err := m.Render(w); err != nil {
		return fmt.Errorf("error rendering world map for %d: %w", year, err)
	}
	return nil
}
