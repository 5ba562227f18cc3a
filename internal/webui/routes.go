package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetWebUIRoutes registers the dashboard, its image and the debug page
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/static/death.jpg", webUI.imageHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
