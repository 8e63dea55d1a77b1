package dtos

type MasterResumeRequest struct {
	ResumeMD      string `json:"resume_md" binding:"required"`
	CoverLetterMD string `json:"cover_letter_md"`
}

// ApplicationBundle is the email-shaped package staged for manual
// submission. Field names are part of the client contract.
type ApplicationBundle struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Resume  string `json:"resume"`
	JobURL  string `json:"jobUrl"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

type PrepareRequest struct {
	ResumeVersionID string `json:"resume_version_id" binding:"required"`
}
