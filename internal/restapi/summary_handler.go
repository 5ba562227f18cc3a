package restapi

import (
	"net/http"

	"worlddeaths.org/internal/deaths"
	"worlddeaths.org/internal/models"
)

type summaryEntry struct {
	deaths.Summary
	DefaultYear    int    `json:"defaultYear"`
	DefaultCountry string `json:"defaultCountry"`
	TrendCause     string `json:"trendCause"`
	TopN           int    `json:"topN"`
}

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	entry := summaryEntry{
		Summary:        api.Dataset.Summary(),
		DefaultYear:    api.DefaultYear(),
		DefaultCountry: api.Config.Country,
		TrendCause:     api.Config.TrendCause,
		TopN:           api.Config.TopN,
	}
	// The file path is an operator detail.
	entry.Source = ""

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
