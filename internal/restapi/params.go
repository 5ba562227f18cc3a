package restapi

import (
	"net/http"

	"worlddeaths.org/internal/utils"
)

// yearParam reads the ":year" route parameter. ok is false when a
// validation response has already been written.
func (api *RestAPI) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := utils.ValidateYear(utils.ExtractParam(r, "year"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"year": {err.Error()}})
		return 0, false
	}
	return year, true
}

// yearQuery reads the "year" query parameter, defaulting to the dashboard year.
func (api *RestAPI) yearQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return api.DefaultYear(), true
	}

	year, err := utils.ValidateYear(raw)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"year": {err.Error()}})
		return 0, false
	}
	return year, true
}

func (api *RestAPI) limitQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit, err := utils.ValidateLimit(r.URL.Query().Get("limit"), api.Config.TopN)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"limit": {err.Error()}})
		return 0, false
	}
	return limit, true
}

func (api *RestAPI) countryParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	country := utils.ExtractParam(r, "country")
	if err := utils.ValidateName(country); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"country": {err.Error()}})
		return "", false
	}
	return country, true
}

// causeQuery reads the "cause" query parameter, defaulting to the
// configured trend cause.
func (api *RestAPI) causeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	cause := r.URL.Query().Get("cause")
	if cause == "" {
		return api.Config.TrendCause, true
	}
	if err := utils.ValidateName(cause); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"cause": {err.Error()}})
		return "", false
	}
	return cause, true
}
