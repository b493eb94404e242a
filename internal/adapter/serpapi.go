package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobsathi/jobsathi/internal/model"
)

const serpapiBaseURL = "https://serpapi.com/search"

// serpapiJob represents a single job in the SerpAPI Google Jobs
// response. Google Jobs exposes no salary field, so every record
// carries the "Not specified" sentinel.
type serpapiJob struct {
	Title        string               `json:"title"`
	CompanyName  string               `json:"company_name"`
	Location     string               `json:"location"`
	Description  string               `json:"description"`
	ApplyOptions []serpapiApplyOption `json:"apply_options"`
}

type serpapiApplyOption struct {
	Link string `json:"link"`
}

// serpapiResponse is the top-level SerpAPI response.
type serpapiResponse struct {
	JobsResults []serpapiJob `json:"jobs_results"`
}

// SerpAPIAdapter fetches jobs from Google Jobs via SerpAPI
// (query-string GET, api_key credential).
type SerpAPIAdapter struct {
	apiKey  string
	client  *http.Client
	timeout time.Duration
}

// NewSerpAPIAdapter creates an adapter for the SerpAPI Google Jobs
// engine. A zero timeout falls back to the default per-call bound.
func NewSerpAPIAdapter(apiKey string, client *http.Client, timeout time.Duration) *SerpAPIAdapter {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &SerpAPIAdapter{
		apiKey:  apiKey,
		client:  client,
		timeout: timeout,
	}
}

// Name identifies the provider in job records and logs.
func (a *SerpAPIAdapter) Name() string { return "Google Jobs" }

// Fetch issues one search per keyword (first three only) and
// normalizes the results. Failed keywords are skipped; whatever was
// collected is returned alongside the joined per-keyword errors.
func (a *SerpAPIAdapter) Fetch(ctx context.Context, keywords []string, location string) ([]model.JobRecord, error) {
	var records []model.JobRecord
	var errs []error

	for _, kw := range capKeywords(keywords) {
		page, err := a.fetchKeyword(ctx, kw, location)
		if err != nil {
			errs = append(errs, fmt.Errorf("serpapi query %q: %w", kw, err))
			continue
		}
		records = append(records, page...)
	}

	return records, errors.Join(errs...)
}

func (a *SerpAPIAdapter) fetchKeyword(ctx context.Context, keyword, location string) ([]model.JobRecord, error) {
	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", keyword)
	params.Set("location", location)
	params.Set("api_key", a.apiKey)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpapiBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload serpapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	records := make([]model.JobRecord, 0, len(payload.JobsResults))
	for _, sj := range payload.JobsResults {
		applyLink := ""
		if len(sj.ApplyOptions) > 0 {
			applyLink = sj.ApplyOptions[0].Link
		}

		records = append(records, model.JobRecord{
			Source:      a.Name(),
			Title:       sj.Title,
			Company:     orDefault(sj.CompanyName, "N/A"),
			Location:    orDefault(sj.Location, location),
			URL:         applyLink,
			Description: truncate(sj.Description, descriptionLimit),
			Salary:      notSpecified,
		})
	}
	return records, nil
}
