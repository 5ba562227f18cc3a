package webui

import (
	"net/http"
	"os"
)

// imageAvailable reports whether the configured illustration can be served.
func (webUI *WebUI) imageAvailable() bool {
	if webUI.Config.ImagePath == "" {
		return false
	}
	info, err := os.Stat(webUI.Config.ImagePath)
	return err == nil && !info.IsDir()
}

func (webUI *WebUI) imageHandler(w http.ResponseWriter, r *http.Request) {
	if !webUI.imageAvailable() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, webUI.Config.ImagePath)
}
