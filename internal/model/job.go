package model

import (
	"context"
)

// Unified representation of a job listing from any provider.
type JobRecord struct {
	Source      string `json:"source"`      // provider name, e.g. "Adzuna"
	Title       string `json:"title"`       // job title
	Company     string `json:"company"`     // company name, "N/A" when the provider omits it
	Location    string `json:"location"`    // location string, falls back to the query location
	URL         string `json:"url"`         // apply/redirect link, may be empty
	Description string `json:"description"` // plain-text snippet, capped at 300 chars
	Salary      string `json:"salary"`      // provider salary value or "Not specified"
}

// ScoredJob is a JobRecord annotated with its relevance to a profile.
type ScoredJob struct {
	JobRecord
	RelevanceScore int `json:"relevance_score"`
}

// Provider fetches job listings from one external search API.
//
// Fetch queries the provider for the given keywords and location and
// returns every record it managed to collect. A non-nil error reports
// skipped keywords or a provider-wide failure; the returned records are
// still valid and callers must use them. A failing provider degrades
// to a partial (possibly empty) contribution, never a hard failure of
// the overall search.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, keywords []string, location string) ([]JobRecord, error)
}
