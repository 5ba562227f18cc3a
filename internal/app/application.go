package app

import (
	"log/slog"

	"worlddeaths.org/internal/content"
	"worlddeaths.org/internal/deaths"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, the logger, the dataset loaded once at
// startup and the page copy.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Dataset *deaths.Dataset
	Content *content.Content
}

// New loads the dataset and the page copy named by cfg.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ds, err := deaths.Load(cfg.DataPath, logger)
	if err != nil {
		return nil, err
	}

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, err
	}

	first, last := ds.YearRange()
	logger.Info("dataset_loaded",
		slog.String("source", ds.Source()),
		slog.Int("rows", ds.Len()),
		slog.Int("countries", len(ds.Countries())),
		slog.Int("causes", len(ds.Causes())),
		slog.Int("first_year", first),
		slog.Int("last_year", last))

	if !ds.HasCountry(cfg.Country) {
		logger.Warn("configured country not in dataset", slog.String("country", cfg.Country))
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Dataset: ds,
		Content: c,
	}, nil
}

// DefaultYear is the configured year when the dataset has it, otherwise the
// most recent year available.
func (app *Application) DefaultYear() int {
	if app.Dataset.HasYear(app.Config.Year) {
		return app.Config.Year
	}
	_, last := app.Dataset.YearRange()
	return last
}

// ContentVars fills the placeholders of the page copy.
func (app *Application) ContentVars(year int, country, cause string) content.Vars {
	first, last := app.Dataset.YearRange()
	return content.Vars{
		FirstYear: first,
		LastYear:  last,
		Year:      year,
		TopN:      app.Config.TopN,
		Country:   country,
		Cause:     cause,
	}
}
