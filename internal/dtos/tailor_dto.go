package dtos

// TailorRequest matches the original wire contract: the key is "jobId".
type TailorRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

type TailorResponse struct {
	Success         bool   `json:"success"`
	ResumeVersionID string `json:"resume_version_id"`
	Label           string `json:"label"`
}
