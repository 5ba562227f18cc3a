package restapi

import (
	"net/http"
	"time"

	"worlddeaths.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second).TrustProxy(app.Config.TrustProxy),
	}
}

// WithRateLimit wraps handler with the per-client rate limiter
func (api *RestAPI) WithRateLimit(handler http.Handler) http.Handler {
	return api.rateLimiter.Handler(handler)
}

// Shutdown stops background work started by NewRestAPI
func (api *RestAPI) Shutdown() {
	api.rateLimiter.Stop()
}
