package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"worlddeaths.org/internal/app"
	"worlddeaths.org/internal/restapi"
	"worlddeaths.org/internal/webui"
)

// routes wires the dashboard and the API behind the middleware chain:
// request logging, security headers, rate limiting, then compression.
func routes(application *app.Application, api *restapi.RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	var handler http.Handler = router
	handler = restapi.CompressionMiddleware(handler)
	handler = api.WithRateLimit(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger, application.Config.TrustProxy)(handler)
	return handler
}
