package restapi

import (
	"net/http"

	"worlddeaths.org/internal/models"
)

func (api *RestAPI) causesHandler(w http.ResponseWriter, r *http.Request) {
	ranking := models.CauseRanking{
		Causes: api.Dataset.CauseTotals(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(ranking))
}

func (api *RestAPI) topCausesHandler(w http.ResponseWriter, r *http.Request) {
	year, ok := api.yearParam(w, r)
	if !ok {
		return
	}
	limit, ok := api.limitQuery(w, r)
	if !ok {
		return
	}

	top, err := api.Dataset.TopCauses(year, limit)
	if err != nil {
		api.dataErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.CauseRanking{
		Year:   year,
		Causes: top,
	}))
}
