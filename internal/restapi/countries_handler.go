package restapi

import (
	"net/http"

	"worlddeaths.org/internal/models"
)

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.Dataset.Countries()))
}

func (api *RestAPI) countryCausesHandler(w http.ResponseWriter, r *http.Request) {
	country, ok := api.countryParam(w, r)
	if !ok {
		return
	}

	totals, err := api.Dataset.CountryCauseTotals(country)
	if err != nil {
		api.dataErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.CauseRanking{
		Country: country,
		Causes:  totals,
	}))
}

func (api *RestAPI) countryTrendHandler(w http.ResponseWriter, r *http.Request) {
	country, ok := api.countryParam(w, r)
	if !ok {
		return
	}
	cause, ok := api.causeQuery(w, r)
	if !ok {
		return
	}

	points, err := api.Dataset.CountryTrend(country, cause)
	if err != nil {
		api.dataErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.CountryTrend{
		Country: country,
		Cause:   cause,
		Points:  points,
	}))
}
