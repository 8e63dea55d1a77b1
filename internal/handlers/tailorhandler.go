package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erickazee/jobtrack/internal/auth"
	"github.com/erickazee/jobtrack/internal/dtos"
	"github.com/erickazee/jobtrack/internal/services"
)

// TailorHandler fronts the user-driven AI workflow: tailor a resume for a
// job, then stage the application bundle for manual submission.
type TailorHandler struct {
	Tailor   *services.TailorService
	Workflow *services.WorkflowService
}

func NewTailorHandler(tailor *services.TailorService, workflow *services.WorkflowService) *TailorHandler {
	return &TailorHandler{
		Tailor:   tailor,
		Workflow: workflow,
	}
}

// TailorResume is POST /tailor-resume. Request and response keep the
// original wire contract: {jobId} in, {success, resume_version_id, label}
// out.
func (h *TailorHandler) TailorResume(c *gin.Context) {
	var req dtos.TailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId is required"})
		return
	}

	version, err := h.Tailor.Tailor(c.Request.Context(), auth.UserID(c), req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.TailorResponse{
		Success:         true,
		ResumeVersionID: version.ID,
		Label:           version.Label,
	})
}

// Prepare is POST /jobs/:id/prepare. Returns the email-shaped bundle for
// preview/copy; nothing is sent from here.
func (h *TailorHandler) Prepare(c *gin.Context) {
	var req dtos.PrepareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume_version_id is required"})
		return
	}

	bundle, err := h.Workflow.PrepareApplication(c.Request.Context(), auth.UserID(c), c.Param("id"), req.ResumeVersionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}
