package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobsathi/jobsathi/internal/model"
)

// JobSearcher runs the aggregation pipeline for one profile.
type JobSearcher interface {
	Search(ctx context.Context, profile *model.Profile, minScore int) ([]model.ScoredJob, error)
}

// Handler exposes the job search pipeline over HTTP.
type Handler struct {
	searcher        JobSearcher
	defaultMinScore int
	logger          *slog.Logger
}

// NewHandler creates a handler wired with its searcher. minScore is
// the threshold applied when a request does not carry one.
func NewHandler(searcher JobSearcher, minScore int, logger *slog.Logger) *Handler {
	return &Handler{
		searcher:        searcher,
		defaultMinScore: minScore,
		logger:          logger,
	}
}

// searchRequest is the POST /search_jobs body.
type searchRequest struct {
	Profile  *model.Profile `json:"profile"`
	MinScore *int           `json:"min_score"`
}

// SearchJobs handles POST /search_jobs: runs the pipeline and returns
// the ranked jobs. Provider failures degrade inside the pipeline and
// never surface here; the only client error is a missing profile.
func (h *Handler) SearchJobs(c *gin.Context) {
	requestID := uuid.NewString()

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("rejecting malformed search request", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "invalid request body",
		})
		return
	}

	if req.Profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "profile data is required",
		})
		return
	}

	minScore := h.defaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	jobs, err := h.searcher.Search(c.Request.Context(), req.Profile, minScore)
	if err != nil {
		h.logger.Error("job search failed", "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "job search failed",
		})
		return
	}

	// Serialize as [] rather than null when nothing cleared the bar.
	if jobs == nil {
		jobs = []model.ScoredJob{}
	}

	h.logger.Info("search request served", "request_id", requestID, "count", len(jobs))

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"jobs":   jobs,
		"count":  len(jobs),
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
