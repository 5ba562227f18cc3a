package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"worlddeaths.org/internal/deaths"
	"worlddeaths.org/internal/logging"
	"worlddeaths.org/internal/models"
)

type errorBody struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, text string) {
	response := errorBody{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))

	api.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "resource not found")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// dataErrorResponse maps dataset errors: unmatched filters are 404, unknown
// causes are a bad "cause" parameter, anything else is a server error.
func (api *RestAPI) dataErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, deaths.ErrNoData):
		api.sendNotFound(w, r)
	case errors.Is(err, deaths.ErrUnknownCause):
		api.validationErrorResponse(w, r, map[string][]string{
			"cause": {"unknown cause"},
		})
	default:
		api.serverErrorResponse(w, r, err)
	}
}
