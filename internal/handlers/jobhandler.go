package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/erickazee/jobtrack/internal/auth"
	"github.com/erickazee/jobtrack/internal/dtos"
	"github.com/erickazee/jobtrack/internal/models"
	"github.com/erickazee/jobtrack/internal/pipeline"
	"github.com/erickazee/jobtrack/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// List is GET /jobs: the full snapshot, newest first, with stats.
func (h *JobHandler) List(c *gin.Context) {
	resp, err := h.snapshot(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pipeline is GET /jobs/pipeline: the board view, one column per status.
// Built-in stages come first in display order, custom statuses follow
// alphabetically.
func (h *JobHandler) Pipeline(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	grouped := pipeline.GroupByStatus(jobs)

	columns := make([]dtos.PipelineColumn, 0, len(grouped))
	seen := make(map[string]bool)
	for _, status := range pipeline.Statuses() {
		jobs := grouped[status]
		if jobs == nil {
			jobs = []models.JobApplication{}
		}
		columns = append(columns, dtos.PipelineColumn{Status: status, Jobs: jobs})
		seen[status] = true
	}

	var custom []string
	for status := range grouped {
		if !seen[status] {
			custom = append(custom, status)
		}
	}
	sort.Strings(custom)
	for _, status := range custom {
		columns = append(columns, dtos.PipelineColumn{Status: status, Jobs: grouped[status]})
	}

	c.JSON(http.StatusOK, dtos.PipelineResponse{
		Columns: columns,
		Stats:   pipeline.ComputeStats(jobs),
	})
}

// Create is POST /jobs. Like every mutation it answers with the reloaded
// snapshot, so the client always reflects store state.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	userID := auth.UserID(c)
	if _, err := h.Jobs.Create(c.Request.Context(), userID, &req); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.snapshot(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update is PUT /jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	userID := auth.UserID(c)
	if _, err := h.Jobs.Update(c.Request.Context(), userID, c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.snapshot(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete is DELETE /jobs/:id. Hard delete; the client confirms before
// calling.
func (h *JobHandler) Delete(c *gin.Context) {
	userID := auth.UserID(c)
	if err := h.Jobs.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.snapshot(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) snapshot(ctx context.Context, userID string) (*dtos.JobListResponse, error) {
	jobs, err := h.Jobs.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dtos.JobListResponse{
		Jobs:  jobs,
		Stats: pipeline.ComputeStats(jobs),
	}, nil
}
