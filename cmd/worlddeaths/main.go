// Command worlddeaths serves the world deaths dashboard or renders its
// charts to files.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"worlddeaths.org/internal/app"
	"worlddeaths.org/internal/logging"
)

// cli carries the configuration and logger shared by the subcommands.
type cli struct {
	cfg    app.Config
	envErr error
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	c.cfg, c.envErr = app.LoadConfig()

	rootCmd := &cobra.Command{
		Use:   "worlddeaths",
		Short: "Dashboard of deaths by cause, country and year",
		Long: `worlddeaths loads a CSV of yearly death counts per country and cause
and serves a dashboard with a world map, cause rankings and a country trend.

Every flag can also be set through a WORLDDEATHS_* environment variable,
for example WORLDDEATHS_DATA_PATH or WORLDDEATHS_PORT. Flags win.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.envErr != nil {
				return c.envErr
			}

			level, err := logging.ParseLevel(c.cfg.LogLevel)
			if err != nil {
				return err
			}
			c.logger, err = logging.NewLogger(cmd.OutOrStdout(), level, c.cfg.LogFormat)
			if err != nil {
				return err
			}
			return c.cfg.Validate()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&c.cfg.Port, "port", c.cfg.Port, "HTTP server port")
	flags.StringVar(&c.cfg.Env, "env", c.cfg.Env, "Environment (development|test|production)")
	flags.StringVar(&c.cfg.DataPath, "data", c.cfg.DataPath, "Path to cause_of_deaths.csv")
	flags.StringVar(&c.cfg.ImagePath, "image", c.cfg.ImagePath, "Path to the dashboard illustration (empty to hide)")
	flags.StringVar(&c.cfg.ContentPath, "content", c.cfg.ContentPath, "YAML file overriding the built-in page copy")
	flags.IntVar(&c.cfg.Year, "year", c.cfg.Year, "Default year of the map and ranking")
	flags.StringVar(&c.cfg.Country, "country", c.cfg.Country, "Country of the country charts")
	flags.StringVar(&c.cfg.TrendCause, "cause", c.cfg.TrendCause, "Cause plotted per year for the country")
	flags.IntVar(&c.cfg.TopN, "top", c.cfg.TopN, "Number of causes in the ranking")
	flags.IntVar(&c.cfg.RateLimit, "rate-limit", c.cfg.RateLimit, "Requests per second per client (0 disables)")
	flags.BoolVar(&c.cfg.TrustProxy, "trust-proxy", c.cfg.TrustProxy, "Take client addresses from X-Forwarded-For (only behind a reverse proxy)")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "Log level (debug|info|warn|error)")
	flags.StringVar(&c.cfg.LogFormat, "log-format", c.cfg.LogFormat, "Log format (json|text)")

	rootCmd.AddCommand(c.newServeCmd(), c.newRenderCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
