package app

import (
	"io"

	"worlddeaths.org/internal/charts"
)

// Chart builders shared by the HTTP handlers and the render command. Each
// one aggregates the dataset, fills the chart title from the page copy and
// draws. Dataset errors (deaths.ErrNoData, deaths.ErrUnknownCause) are
// returned as is.

func (app *Application) WorldMap(w io.Writer, year int) error {
	totals, err := app.Dataset.CountryTotals(year)
	if err != nil {
		return err
	}
	return charts.WorldMap(w, year, totals)
}

func (app *Application) CausesChart(w io.Writer, format charts.Format) error {
	vars := app.ContentVars(app.DefaultYear(), app.Config.Country, app.Config.TrendCause)
	return charts.CauseBars(w, format, vars.Expand(app.Content.Causes.Chart), app.Dataset.CauseTotals())
}

// TopCausesChart ranks the causes of one year. limit <= 0 draws every cause.
func (app *Application) TopCausesChart(w io.Writer, format charts.Format, year, limit int) error {
	top, err := app.Dataset.TopCauses(year, limit)
	if err != nil {
		return err
	}

	vars := app.ContentVars(year, app.Config.Country, app.Config.TrendCause)
	vars.TopN = len(top)
	return charts.CauseBars(w, format, vars.Expand(app.Content.Top.Chart), top)
}

func (app *Application) CountryCausesChart(w io.Writer, format charts.Format, country string) error {
	totals, err := app.Dataset.CountryCauseTotals(country)
	if err != nil {
		return err
	}

	vars := app.ContentVars(app.DefaultYear(), country, app.Config.TrendCause)
	return charts.CauseBars(w, format, vars.Expand(app.Content.Country.Chart), totals)
}

func (app *Application) CountryTrendChart(w io.Writer, format charts.Format, country, cause string) error {
	points, err := app.Dataset.CountryTrend(country, cause)
	if err != nil {
		return err
	}

	vars := app.ContentVars(app.DefaultYear(), country, cause)
	trend := app.Content.Trend
	return charts.TrendScatter(w, format,
		vars.Expand(trend.Chart),
		vars.Expand(trend.XAxis),
		vars.Expand(trend.YAxis),
		points)
}
