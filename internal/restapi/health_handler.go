package restapi

import (
	"net/http"

	"worlddeaths.org/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(map[string]interface{}{
		"status": "ok",
		"rows":   api.Dataset.Len(),
	}))
}
