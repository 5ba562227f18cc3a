package restapi

import (
	"bytes"
	"errors"
	"net/http"
	"path"
	"strings"

	"worlddeaths.org/internal/charts"
)

// chartFormat is taken from the extension of the route that matched.
func chartFormat(r *http.Request) charts.Format {
	f, err := charts.ParseFormat(strings.TrimPrefix(path.Ext(r.URL.Path), "."))
	if err != nil {
		return charts.SVG
	}
	return f
}

// sendChart renders into a buffer first so a failed render still gets a
// clean error response.
func (api *RestAPI) sendChart(w http.ResponseWriter, r *http.Request, contentType string, render func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			api.sendNotFound(w, r)
			return
		}
		api.dataErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(buf.Bytes()); err != nil {
		api.Logger.Error("failed to write chart", "error", err, "path", r.URL.Path)
	}
}

func (api *RestAPI) worldMapHandler(w http.ResponseWriter, r *http.Request) {
	year, ok := api.yearQuery(w, r)
	if !ok {
		return
	}

	api.sendChart(w, r, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return api.WorldMap(buf, year)
	})
}

func (api *RestAPI) causesChartHandler(w http.ResponseWriter, r *http.Request) {
	format := chartFormat(r)
	api.sendChart(w, r, format.ContentType(), func(buf *bytes.Buffer) error {
		return api.CausesChart(buf, format)
	})
}

func (api *RestAPI) topCausesChartHandler(w http.ResponseWriter, r *http.Request) {
	format := chartFormat(r)
	year, ok := api.yearQuery(w, r)
	if !ok {
		return
	}
	limit, ok := api.limitQuery(w, r)
	if !ok {
		return
	}

	api.sendChart(w, r, format.ContentType(), func(buf *bytes.Buffer) error {
		return api.TopCausesChart(buf, format, year, limit)
	})
}

func (api *RestAPI) countryCausesChartHandler(w http.ResponseWriter, r *http.Request) {
	format := chartFormat(r)
	country, ok := api.countryParam(w, r)
	if !ok {
		return
	}

	api.sendChart(w, r, format.ContentType(), func(buf *bytes.Buffer) error {
		return api.CountryCausesChart(buf, format, country)
	})
}

func (api *RestAPI) countryTrendChartHandler(w http.ResponseWriter, r *http.Request) {
	format := chartFormat(r)
	country, ok := api.countryParam(w, r)
	if !ok {
		return
	}
	cause, ok := api.causeQuery(w, r)
	if !ok {
		return
	}

	api.sendChart(w, r, format.ContentType(), func(buf *bytes.Buffer) error {
		return api.CountryTrendChart(buf, format, country, cause)
	})
}
