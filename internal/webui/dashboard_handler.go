package webui

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"worlddeaths.org/internal/content"
	"worlddeaths.org/internal/logging"
	"worlddeaths.org/internal/utils"
)

type section struct {
	Heading    string
	Paragraphs []string
}

type slider struct {
	Label string
	Min   int
	Max   int
	Value int
}

type dashboardPage struct {
	Title        string
	ImageURL     string
	ImageCaption string
	Intro        section
	World        section
	Slider       slider
	WorldMapURL  string
	Causes       section
	CausesURL    string
	Top          section
	TopURL       string
	Country      section
	CountryURL   string
	TrendURL     string
	Closing      section
}

type errorPage struct {
	Title   string
	Status  int
	Message string
}

func newSection(vars content.Vars, s content.Section) section {
	return section{
		Heading:    vars.Expand(s.Heading),
		Paragraphs: vars.ExpandAll(s.Paragraphs),
	}
}

// selectedYear reads the slider value. ok is false when an error page has
// already been written.
func (webUI *WebUI) selectedYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return webUI.DefaultYear(), true
	}

	year, err := utils.ValidateYear(raw)
	if err == nil && !webUI.Dataset.HasYear(year) {
		first, last := webUI.Dataset.YearRange()
		err = fmt.Errorf("year must be between %d and %d", first, last)
	}
	if err != nil {
		webUI.renderError(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return year, true
}

func (webUI *WebUI) buildDashboard(year int) dashboardPage {
	cfg := webUI.Config
	vars := webUI.ContentVars(webUI.DefaultYear(), cfg.Country, cfg.TrendCause)
	c := webUI.Content
	first, last := webUI.Dataset.YearRange()
	country := url.PathEscape(cfg.Country)

	page := dashboardPage{
		Title:       vars.Expand(c.Title),
		Intro:       newSection(vars, c.Intro),
		World:       newSection(vars, c.World),
		WorldMapURL: fmt.Sprintf("/charts/world.html?year=%d", year),
		Slider: slider{
			Label: vars.Expand(c.World.Slider),
			Min:   first,
			Max:   last,
			Value: year,
		},
		Causes:     newSection(vars, c.Causes),
		CausesURL:  "/charts/causes.svg",
		Top:        newSection(vars, c.Top),
		TopURL:     fmt.Sprintf("/charts/top-causes.svg?year=%d&limit=%d", vars.Year, cfg.TopN),
		Country:    newSection(vars, c.Country),
		CountryURL: "/charts/countries/" + country + "/causes.svg",
		TrendURL:   "/charts/countries/" + country + "/trend.svg?cause=" + url.QueryEscape(cfg.TrendCause),
		Closing:    newSection(vars, c.Closing),
	}
	if webUI.imageAvailable() {
		page.ImageURL = "/static/death.jpg"
		page.ImageCaption = vars.Expand(c.Image.Caption)
	}
	return page
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	year, ok := webUI.selectedYear(w, r)
	if !ok {
		return
	}

	webUI.render(w, r, http.StatusOK, "dashboard.html", webUI.buildDashboard(year))
}

func (webUI *WebUI) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	webUI.render(w, r, status, "error.html", errorPage{
		Title:   webUI.Content.Title,
		Status:  status,
		Message: message,
	})
}

// render executes into a buffer so a template failure never leaves a
// half-written page behind.
func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "template failed", err,
			slog.String("template", name),
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
