package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobsathi/jobsathi/internal/browse"
	"github.com/jobsathi/jobsathi/internal/model"
)

var (
	profilePath string
	minScore    int
	interactive bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one job search from a profile file",
	Long:  "Run the aggregation pipeline once for a profile JSON file and print the ranked jobs.",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "path to profile JSON file (required)")
	searchCmd.Flags().IntVar(&minScore, "min-score", -1, "relevance threshold (default from config)")
	searchCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse results in a terminal UI")
	_ = searchCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}

	threshold := cfg.Search.MinScore
	if minScore >= 0 {
		threshold = minScore
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	searcher := buildSearcher(cfg, logger)
	jobs, err := searcher.Search(ctx, &profile, threshold)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if interactive {
		return browse.Run(jobs)
	}

	if len(jobs) == 0 {
		fmt.Println("no jobs cleared the relevance threshold")
		return nil
	}
	for _, j := range jobs {
		fmt.Printf("%3d  %-50s  %-25s  %s\n", j.RelevanceScore, j.Title, j.Company, j.Location)
	}
	return nil
}
