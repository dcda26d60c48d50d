package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/scrapriq/dashboard/internal/backend"
	"github.com/scrapriq/dashboard/internal/config"
	"github.com/spf13/cobra"
)

var (
	apiURL  string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "scraprctl",
	Short: "Command-line client for the ScraprIQ backend",
	Long: `scraprctl talks to the same scraping backend as the dashboard.

The backend URL is read from SCRAPRIQ_API_URL (or FASTAPI_URL), a .env file
in the working directory, or the --api-url flag.

Available commands:
  health     Check backend connectivity
  scrape     Scrape leads from a company team page
  version    Print the version`,
	SilenceUsage: true,
}

// Execute runs the root command, cancelling in-flight requests on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides SCRAPRIQ_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides BACKEND_TIMEOUT)")
}

// newClient builds a backend client from the flags and the environment.
func newClient() (backend.Client, error) {
	_ = godotenv.Load()
	if apiURL != "" {
		os.Setenv("SCRAPRIQ_API_URL", apiURL)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		cfg.BackendTimeout = timeout
	}
	return backend.NewClient(cfg.GetBackendURL(), backend.WithTimeout(cfg.GetBackendTimeout())), nil
}
