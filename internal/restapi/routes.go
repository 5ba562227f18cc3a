package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"worlddeaths.org/internal/charts"
)

// SetRoutes registers the JSON API and the chart endpoints
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	router.HandlerFunc(http.MethodGet, "/api/v1/summary", api.summaryHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/causes", api.causesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/years/:year/totals", api.yearTotalsHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/years/:year/top-causes", api.topCausesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/countries", api.countriesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/countries/:country/causes", api.countryCausesHandler)
	router.HandlerFunc(http.MethodGet, "/api/v1/countries/:country/trend", api.countryTrendHandler)

	router.HandlerFunc(http.MethodGet, "/charts/world.html", api.worldMapHandler)
	for _, format := range []charts.Format{charts.SVG, charts.PNG} {
		ext := "." + string(format)
		router.HandlerFunc(http.MethodGet, "/charts/causes"+ext, api.causesChartHandler)
		router.HandlerFunc(http.MethodGet, "/charts/top-causes"+ext, api.topCausesChartHandler)
		router.HandlerFunc(http.MethodGet, "/charts/countries/:country/causes"+ext, api.countryCausesChartHandler)
		router.HandlerFunc(http.MethodGet, "/charts/countries/:country/trend"+ext, api.countryTrendChartHandler)
	}
}
