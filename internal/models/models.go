package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MasterLabel marks the single reusable resume version each user keeps.
// Tailored versions get a "Tailored: {company} - {role}" label instead.
const MasterLabel = "Master"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// JobApplication is one tracked posting. Deletes are hard deletes: once the
// user confirms, the row is gone (events referencing it stay, append-only).
type JobApplication struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string `gorm:"not null;index" json:"user_id"`
	Company     string `gorm:"not null" json:"company"`
	Role        string `gorm:"not null" json:"role"`
	Location    string `json:"location,omitempty"`
	Source      string `json:"source,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Status is one of the pipeline stages but the set is open: whatever the
	// user typed is stored verbatim, empty means "To Review".
	Status       string   `gorm:"default:'To Review'" json:"status"`
	Excitement   *int     `json:"excitement,omitempty"`
	AIMatchScore *float64 `json:"ai_match_score,omitempty"`
}

func (j *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// ResumeVersion holds a resume/cover-letter pair in markdown. JobID is nil
// for the Master (or any unattached) version and set for tailored ones.
// The Master row is replaced in place by upsert; tailored rows are
// create-only and never deleted here.
type ResumeVersion struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID        string  `gorm:"not null;index" json:"user_id"`
	JobID         *string `gorm:"index" json:"job_id,omitempty"`
	Label         string  `gorm:"not null" json:"label"`
	ResumeMD      string  `gorm:"type:text" json:"resume_md"`
	CoverLetterMD string  `gorm:"type:text" json:"cover_letter_md,omitempty"`
}

func (r *ResumeVersion) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ApplicationEvent is an append-only audit fact for one job. Rows are never
// updated or deleted.
type ApplicationEvent struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID   string         `gorm:"not null;index" json:"job_id"`
	UserID  string         `gorm:"not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"`
	Payload datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
}

func (e *ApplicationEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
