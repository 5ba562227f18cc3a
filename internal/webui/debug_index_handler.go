package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"worlddeaths.org/internal/logging"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "debug page failed", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "summary":
		data = webUI.Dataset.Summary()
		title = "Dataset - Summary"
	case "causes":
		data = webUI.Dataset.CauseTotals()
		title = "Dataset - Cause Totals"
	case "countries":
		data = webUI.Dataset.Countries()
		title = "Dataset - Countries"
	case "years":
		data = webUI.Dataset.Years()
		title = "Dataset - Years"
	case "config":
		data = webUI.Config
		title = "Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, causes, countries, years, config.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}
