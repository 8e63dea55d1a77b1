package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erickazee/jobtrack/internal/auth"
	"github.com/erickazee/jobtrack/internal/dtos"
	"github.com/erickazee/jobtrack/internal/services"
)

type ResumeHandler struct {
	Resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

// SaveMaster is PUT /resumes/master: upsert, never a second row.
func (h *ResumeHandler) SaveMaster(c *gin.Context) {
	var req dtos.MasterResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	version, err := h.Resumes.SaveMaster(c.Request.Context(), auth.UserID(c), req.ResumeMD, req.CoverLetterMD)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

// GetMaster is GET /resumes/master.
func (h *ResumeHandler) GetMaster(c *gin.Context) {
	version, err := h.Resumes.GetMaster(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

// List is GET /resumes, optionally filtered with ?job_id=.
func (h *ResumeHandler) List(c *gin.Context) {
	versions, err := h.Resumes.List(c.Request.Context(), auth.UserID(c), c.Query("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// Get is GET /resumes/:id.
func (h *ResumeHandler) Get(c *gin.Context) {
	version, err := h.Resumes.Get(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}
