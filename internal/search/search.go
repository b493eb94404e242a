// Package search drives the full aggregation pipeline for one profile:
// extract keywords → fetch from every provider → merge → score →
// filter → rank.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jobsathi/jobsathi/internal/keywords"
	"github.com/jobsathi/jobsathi/internal/merge"
	"github.com/jobsathi/jobsathi/internal/model"
	"github.com/jobsathi/jobsathi/internal/score"
)

// DefaultMinScore is the relevance threshold used when the caller does
// not supply one.
const DefaultMinScore = 5

// ErrNilProfile is returned when Search is called without a profile.
// It is the only failure this package propagates; provider failures
// degrade to partial results instead.
var ErrNilProfile = errors.New("search: profile is required")

// Searcher owns the aggregation pipeline. Providers are queried
// concurrently but their results always merge in the order given to
// NewSearcher, so output is deterministic for fixed provider outputs.
type Searcher struct {
	providers       []model.Provider
	defaultLocation string
	logger          *slog.Logger
}

// NewSearcher creates a searcher wired with its providers in priority
// order and a fallback location for profiles that carry none.
func NewSearcher(providers []model.Provider, defaultLocation string, logger *slog.Logger) *Searcher {
	return &Searcher{
		providers:       providers,
		defaultLocation: defaultLocation,
		logger:          logger,
	}
}

// Search runs the pipeline and returns jobs scoring at least minScore,
// sorted descending by score with merge order breaking ties. An empty
// result is a success, not an error.
func (s *Searcher) Search(ctx context.Context, profile *model.Profile, minScore int) ([]model.ScoredJob, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}

	terms := keywords.Extract(profile)
	location := s.effectiveLocation(profile)

	s.logger.Debug("starting job search",
		"keywords", terms,
		"location", location,
		"min_score", minScore,
	)

	// One slot per provider keeps the merge scan in priority order
	// regardless of which fetch finishes first.
	results := make([][]model.JobRecord, len(s.providers))

	var g errgroup.Group
	for i, p := range s.providers {
		g.Go(func() error {
			records, err := p.Fetch(ctx, terms, location)
			if err != nil {
				// Degraded, not fatal: keep whatever the provider collected.
				s.logger.Warn("provider fetch degraded",
					"provider", p.Name(),
					"collected", len(records),
					"error", err,
				)
			}
			results[i] = records
			return nil
		})
	}
	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	merged := merge.Records(results...)

	scored := make([]model.ScoredJob, 0, len(merged))
	for _, job := range merged {
		relevance := score.Relevance(job, profile)
		if relevance >= minScore {
			scored = append(scored, model.ScoredJob{JobRecord: job, RelevanceScore: relevance})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	fetched := 0
	for _, r := range results {
		fetched += len(r)
	}
	s.logger.Info("job search complete",
		"fetched", fetched,
		"unique", len(merged),
		"relevant", len(scored),
		"min_score", minScore,
	)

	return scored, nil
}

// effectiveLocation resolves the search location: the profile's
// location when it carries real content, otherwise the configured
// default.
func (s *Searcher) effectiveLocation(profile *model.Profile) string {
	loc := strings.TrimSpace(profile.Location)
	if model.IsAbsent(loc) {
		return s.defaultLocation
	}
	return loc
}
