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

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

const adzunaPageSize = 20

// adzunaJob represents a single job in the Adzuna search response.
type adzunaJob struct {
	Title       string      `json:"title"`
	Company     adzunaName  `json:"company"`
	Location    adzunaName  `json:"location"`
	RedirectURL string      `json:"redirect_url"`
	Description string      `json:"description"`
	SalaryMax   json.Number `json:"salary_max"`
}

// adzunaName is Adzuna's nested display-name object, shared by the
// company and location fields.
type adzunaName struct {
	DisplayName string `json:"display_name"`
}

// adzunaResponse is the top-level Adzuna search API response.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// AdzunaAdapter fetches jobs from the Adzuna search API
// (query-string GET, app_id/app_key credentials).
type AdzunaAdapter struct {
	appID   string
	appKey  string
	country string // lowercase ISO country code in the URL path
	client  *http.Client
	timeout time.Duration
}

// NewAdzunaAdapter creates an adapter for the given Adzuna country
// endpoint. A zero timeout falls back to the default per-call bound.
func NewAdzunaAdapter(appID, appKey, country string, client *http.Client, timeout time.Duration) *AdzunaAdapter {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &AdzunaAdapter{
		appID:   appID,
		appKey:  appKey,
		country: country,
		client:  client,
		timeout: timeout,
	}
}

// Name identifies the provider in job records and logs.
func (a *AdzunaAdapter) Name() string { return "Adzuna" }

// Fetch issues one search per keyword (first three only) and
// normalizes the results. Failed keywords are skipped; whatever was
// collected is returned alongside the joined per-keyword errors.
func (a *AdzunaAdapter) Fetch(ctx context.Context, keywords []string, location string) ([]model.JobRecord, error) {
	var records []model.JobRecord
	var errs []error

	for _, kw := range capKeywords(keywords) {
		page, err := a.fetchKeyword(ctx, kw, location)
		if err != nil {
			errs = append(errs, fmt.Errorf("adzuna query %q: %w", kw, err))
			continue
		}
		records = append(records, page...)
	}

	return records, errors.Join(errs...)
}

func (a *AdzunaAdapter) fetchKeyword(ctx context.Context, keyword, location string) ([]model.JobRecord, error) {
	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", fmt.Sprintf("%d", adzunaPageSize))
	params.Set("what", keyword)
	params.Set("where", location)

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", adzunaBaseURL, a.country, params.Encode())

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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

	var payload adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	records := make([]model.JobRecord, 0, len(payload.Results))
	for _, aj := range payload.Results {
		records = append(records, model.JobRecord{
			Source:      a.Name(),
			Title:       aj.Title,
			Company:     orDefault(aj.Company.DisplayName, "N/A"),
			Location:    orDefault(aj.Location.DisplayName, location),
			URL:         aj.RedirectURL,
			Description: truncate(aj.Description, descriptionLimit),
			Salary:      formatSalary(aj.SalaryMax),
		})
	}
	return records, nil
}
