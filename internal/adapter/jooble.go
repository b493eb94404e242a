package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jobsathi/jobsathi/internal/model"
)

const joobleBaseURL = "https://in.jooble.org/api"

// joobleRequest is the JSON body Jooble expects per search.
type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

// joobleJob represents a single job in the Jooble API response.
type joobleJob struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Salary   string `json:"salary"`
}

// joobleResponse is the top-level Jooble API response.
type joobleResponse struct {
	Jobs []joobleJob `json:"jobs"`
}

// JoobleAdapter fetches jobs from the Jooble API (JSON POST, API key
// embedded in the URL path).
type JoobleAdapter struct {
	apiKey  string
	client  *http.Client
	timeout time.Duration
}

// NewJoobleAdapter creates an adapter for the Jooble API.
// A zero timeout falls back to the default per-call bound.
func NewJoobleAdapter(apiKey string, client *http.Client, timeout time.Duration) *JoobleAdapter {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &JoobleAdapter{
		apiKey:  apiKey,
		client:  client,
		timeout: timeout,
	}
}

// Name identifies the provider in job records and logs.
func (a *JoobleAdapter) Name() string { return "Jooble" }

// Fetch issues one search per keyword (first three only) and
// normalizes the results. Failed keywords are skipped; whatever was
// collected is returned alongside the joined per-keyword errors.
func (a *JoobleAdapter) Fetch(ctx context.Context, keywords []string, location string) ([]model.JobRecord, error) {
	var records []model.JobRecord
	var errs []error

	for _, kw := range capKeywords(keywords) {
		page, err := a.fetchKeyword(ctx, kw, location)
		if err != nil {
			errs = append(errs, fmt.Errorf("jooble query %q: %w", kw, err))
			continue
		}
		records = append(records, page...)
	}

	return records, errors.Join(errs...)
}

func (a *JoobleAdapter) fetchKeyword(ctx context.Context, keyword, location string) ([]model.JobRecord, error) {
	body, err := json.Marshal(joobleRequest{Keywords: keyword, Location: location})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s", joobleBaseURL, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload joobleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	records := make([]model.JobRecord, 0, len(payload.Jobs))
	for _, jj := range payload.Jobs {
		records = append(records, model.JobRecord{
			Source:      a.Name(),
			Title:       jj.Title,
			Company:     orDefault(jj.Company, "N/A"),
			Location:    orDefault(jj.Location, location),
			URL:         jj.Link,
			Description: truncate(jj.Snippet, descriptionLimit),
			Salary:      orDefault(jj.Salary, notSpecified),
		})
	}
	return records, nil
}
