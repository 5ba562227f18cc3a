package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"worlddeaths.org/internal/app"
	"worlddeaths.org/internal/charts"
	"worlddeaths.org/internal/deaths"
	"worlddeaths.org/internal/logging"
)

func (c *cli) newRenderCmd() *cobra.Command {
	var outDir string
	var formats []string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write every dashboard chart to files",
		Long: `render draws the charts of the dashboard for the configured year,
country and cause and writes them to --out: world.html plus causes,
top-causes, country-causes and country-trend in each requested format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]charts.Format, 0, len(formats))
			for _, f := range formats {
				format, err := charts.ParseFormat(f)
				if err != nil {
					return err
				}
				parsed = append(parsed, format)
			}
			written, err := c.render(outDir, parsed)
			if err != nil {
				return err
			}
			for _, path := range written {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "charts", "Output directory")
	cmd.Flags().StringSliceVar(&formats, "format", []string{"svg", "png"}, "Image formats (svg, png)")
	return cmd
}

type renderJob struct {
	name string
	draw func(w io.Writer) error
}

// render writes the charts and returns the paths written, in order. The
// country and cause are checked before anything is written.
func (c *cli) render(outDir string, formats []charts.Format) ([]string, error) {
	application, err := app.New(c.cfg, c.logger)
	if err != nil {
		return nil, err
	}

	if !application.Dataset.HasCountry(c.cfg.Country) {
		return nil, fmt.Errorf("country %q: %w", c.cfg.Country, deaths.ErrNoData)
	}
	if !application.Dataset.HasCause(c.cfg.TrendCause) {
		return nil, fmt.Errorf("cause %q: %w", c.cfg.TrendCause, deaths.ErrUnknownCause)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	year := application.DefaultYear()
	country, cause := c.cfg.Country, c.cfg.TrendCause

	jobs := []renderJob{{
		name: "world.html",
		draw: func(w io.Writer) error { return application.WorldMap(w, year) },
	}}
	for _, format := range formats {
		format := format
		ext := "." + string(format)
		jobs = append(jobs,
			renderJob{
				name: "causes" + ext,
				draw: func(w io.Writer) error { return application.CausesChart(w, format) },
			},
			renderJob{
				name: "top-causes" + ext,
				draw: func(w io.Writer) error { return application.TopCausesChart(w, format, year, c.cfg.TopN) },
			},
			renderJob{
				name: "country-causes" + ext,
				draw: func(w io.Writer) error { return application.CountryCausesChart(w, format, country) },
			},
			renderJob{
				name: "country-trend" + ext,
				draw: func(w io.Writer) error { return application.CountryTrendChart(w, format, country, cause) },
			},
		)
	}

	written := make([]string, 0, len(jobs))
	for _, job := range jobs {
		path := filepath.Join(outDir, job.name)
		if err := writeChart(path, job.draw, c.logger); err != nil {
			return written, err
		}
		logging.LogOperation(c.logger, "chart_rendered",
			slog.String("file", path),
			slog.Int("year", year),
			slog.String("country", country))
		written = append(written, path)
	}
	return written, nil
}

func writeChart(path string, draw func(w io.Writer) error, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		logging.HandleDeferredError(&err, f.Close, logger, "close "+path)
		if err == nil {
			return
		}
		// drop the partial file
		if rmErr := os.Remove(path); rmErr != nil {
			logging.LogError(logger, "failed to remove partial chart", rmErr, slog.String("file", path))
		}
	}()

	w := bufio.NewWriter(f)
	if err := draw(w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return w.Flush()
}
