package restapi

import (
	"net/http"

	"worlddeaths.org/internal/models"
)

func (api *RestAPI) yearTotalsHandler(w http.ResponseWriter, r *http.Request) {
	year, ok := api.yearParam(w, r)
	if !ok {
		return
	}

	totals, err := api.Dataset.CountryTotals(year)
	if err != nil {
		api.dataErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.YearTotals{
		Year:      year,
		Countries: totals,
	}))
}
