package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes registered.
// Recovery maps handler panics to a generic 500 so a programming error
// never takes the server down mid-request.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/search_jobs", h.SearchJobs)
	router.GET("/healthz", h.Health)

	return router
}
