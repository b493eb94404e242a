package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jobsathi/jobsathi/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSearcher struct {
	jobs []model.ScoredJob
	err  error

	gotProfile  *model.Profile
	gotMinScore int
}

func (f *fakeSearcher) Search(_ context.Context, profile *model.Profile, minScore int) ([]model.ScoredJob, error) {
	f.gotProfile = profile
	f.gotMinScore = minScore
	return f.jobs, f.err
}

func newTestRouter(s *fakeSearcher) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(NewHandler(s, 5, logger))
}

func postSearch(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/search_jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSearchJobs_Success(t *testing.T) {
	searcher := &fakeSearcher{
		jobs: []model.ScoredJob{
			{
				JobRecord: model.JobRecord{
					Source:   "Adzuna",
					Title:    "Driver",
					Company:  "Acme",
					Location: "Pune",
				},
				RelevanceScore: 23,
			},
		},
	}
	router := newTestRouter(searcher)

	rec := postSearch(t, router, `{"profile": {"role": "Driver"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string            `json:"status"`
		Jobs   []model.ScoredJob `json:"jobs"`
		Count  int               `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if resp.Count != 1 || len(resp.Jobs) != 1 {
		t.Fatalf("count = %d, jobs = %d, want 1 each", resp.Count, len(resp.Jobs))
	}
	if resp.Jobs[0].Title != "Driver" || resp.Jobs[0].RelevanceScore != 23 {
		t.Errorf("unexpected job payload: %+v", resp.Jobs[0])
	}

	if searcher.gotProfile == nil || searcher.gotProfile.Role != "Driver" {
		t.Errorf("searcher received profile %+v", searcher.gotProfile)
	}
	if searcher.gotMinScore != 5 {
		t.Errorf("min score = %d, want the configured default 5", searcher.gotMinScore)
	}
}

func TestSearchJobs_MinScoreOverride(t *testing.T) {
	searcher := &fakeSearcher{}
	router := newTestRouter(searcher)

	rec := postSearch(t, router, `{"profile": {"role": "Driver"}, "min_score": 20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if searcher.gotMinScore != 20 {
		t.Errorf("min score = %d, want 20", searcher.gotMinScore)
	}
}

func TestSearchJobs_EmptyResultIsEmptyArray(t *testing.T) {
	router := newTestRouter(&fakeSearcher{jobs: nil})

	rec := postSearch(t, router, `{"profile": {"role": "Driver"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"jobs":[]`) {
		t.Errorf("expected jobs to serialize as [], got %s", body)
	}
	if !strings.Contains(body, `"count":0`) {
		t.Errorf("expected count 0, got %s", body)
	}
}

func TestSearchJobs_MissingProfile(t *testing.T) {
	router := newTestRouter(&fakeSearcher{})

	for _, body := range []string{`{}`, `{"min_score": 10}`} {
		rec := postSearch(t, router, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "profile data is required") {
			t.Errorf("body %s: unexpected message: %s", body, rec.Body.String())
		}
	}
}

func TestSearchJobs_MalformedBody(t *testing.T) {
	router := newTestRouter(&fakeSearcher{})

	rec := postSearch(t, router, `{"profile": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid request body") {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}
}

func TestSearchJobs_SearcherError(t *testing.T) {
	router := newTestRouter(&fakeSearcher{err: errors.New("boom")})

	rec := postSearch(t, router, `{"profile": {"role": "Driver"}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
