package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jobsathi/jobsathi/internal/adapter"
	"github.com/jobsathi/jobsathi/internal/config"
	"github.com/jobsathi/jobsathi/internal/model"
	"github.com/jobsathi/jobsathi/internal/ratelimit"
	"github.com/jobsathi/jobsathi/internal/search"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobsathi",
	Short: "JobSathi job search backend",
	Long:  "JobSathi aggregates job listings from multiple search APIs and ranks them against a candidate profile.",
	// Default to `serve` so invoking the binary directly runs the server.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSATHI_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it. Credentials in
// the file are ${VAR} references, so a .env is loaded first when one
// exists.
// Priority: explicit path arg > JOBSATHI_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	if path == "" {
		if env := os.Getenv("JOBSATHI_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// buildSearcher wires the enabled providers, in fixed priority order,
// behind a shared rate limiter. The order here is also the merge
// order, so it must stay stable.
func buildSearcher(cfg *config.Config, logger *slog.Logger) *search.Searcher {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	limiter := ratelimit.NewProviderRateLimiter(cfg.RateLimit.MinDelay, cfg.RateLimit.Overrides)

	var providers []model.Provider
	add := func(p model.Provider) {
		providers = append(providers, ratelimit.NewRateLimitedProvider(p, limiter))
		logger.Info("registered provider", "name", p.Name())
	}

	if cfg.Providers.Adzuna.Enabled {
		add(adapter.NewAdzunaAdapter(
			cfg.Providers.Adzuna.AppID,
			cfg.Providers.Adzuna.AppKey,
			cfg.Providers.Adzuna.Country,
			httpClient,
			cfg.Search.CallTimeout,
		))
	}
	if cfg.Providers.Jooble.Enabled {
		add(adapter.NewJoobleAdapter(cfg.Providers.Jooble.APIKey, httpClient, cfg.Search.CallTimeout))
	}
	if cfg.Providers.SerpAPI.Enabled {
		add(adapter.NewSerpAPIAdapter(cfg.Providers.SerpAPI.APIKey, httpClient, cfg.Search.CallTimeout))
	}

	return search.NewSearcher(providers, cfg.Search.DefaultLocation, logger)
}
