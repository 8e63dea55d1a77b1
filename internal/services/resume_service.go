package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

type ResumeService struct {
	DB *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{DB: db}
}

// SaveMaster upserts the single Master row keyed by (user, label). Saving
// twice replaces the content; there is never a second Master per user.
func (s *ResumeService) SaveMaster(ctx context.Context, userID, resumeMD, coverLetterMD string) (*models.ResumeVersion, error) {
	var version models.ResumeVersion
	err := s.DB.WithContext(ctx).
		Where(models.ResumeVersion{UserID: userID, Label: models.MasterLabel}).
		Assign(map[string]any{
			"resume_md":       resumeMD,
			"cover_letter_md": coverLetterMD,
		}).
		FirstOrCreate(&version).Error
	if err != nil {
		return nil, apperrors.DataAccess("failed to save master resume", err)
	}
	return &version, nil
}

func (s *ResumeService) GetMaster(ctx context.Context, userID string) (*models.ResumeVersion, error) {
	var version models.ResumeVersion
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND label = ?", userID, models.MasterLabel).
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Master resume not found. Please create a master resume first.")
		}
		return nil, apperrors.DataAccess("failed to load master resume", err)
	}
	return &version, nil
}

func (s *ResumeService) Get(ctx context.Context, userID, id string) (*models.ResumeVersion, error) {
	var version models.ResumeVersion
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Resume version not found with id: %s", id)
		}
		return nil, apperrors.DataAccess("failed to load resume version", err)
	}
	return &version, nil
}

// List returns the user's versions newest first, optionally narrowed to one
// job's tailored versions.
func (s *ResumeService) List(ctx context.Context, userID, jobID string) ([]models.ResumeVersion, error) {
	query := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}

	var versions []models.ResumeVersion
	if err := query.Order("created_at DESC").Find(&versions).Error; err != nil {
		return nil, apperrors.DataAccess("failed to load resume versions", err)
	}
	return versions, nil
}

// CreateTailored appends a tailored version. Tailored rows are create-only:
// label collisions are allowed and simply yield multiple versions.
func (s *ResumeService) CreateTailored(ctx context.Context, version *models.ResumeVersion) error {
	if err := s.DB.WithContext(ctx).Create(version).Error; err != nil {
		return apperrors.DataAccess("failed to save tailored resume", err)
	}
	return nil
}
