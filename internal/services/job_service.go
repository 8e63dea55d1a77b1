package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/dtos"
	"github.com/erickazee/jobtrack/internal/models"
	"github.com/erickazee/jobtrack/internal/pipeline"
)

type JobService struct {
	DB      *gorm.DB
	Matcher *MatcherService
}

func NewJobService(db *gorm.DB, matcher *MatcherService) *JobService {
	return &JobService{
		DB:      db,
		Matcher: matcher,
	}
}

// List returns every job the user tracks, newest first.
func (s *JobService) List(ctx context.Context, userID string) ([]models.JobApplication, error) {
	var jobs []models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.DataAccess("failed to load jobs", err)
	}
	return jobs, nil
}

// Get loads one job scoped to its owner. A row owned by someone else is
// indistinguishable from a missing one.
func (s *JobService) Get(ctx context.Context, userID, jobID string) (*models.JobApplication, error) {
	var job models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", jobID, userID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Job application not found with id: %s", jobID)
		}
		return nil, apperrors.DataAccess("failed to load job", err)
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, userID string, req *dtos.JobRequest) (*models.JobApplication, error) {
	job := &models.JobApplication{
		UserID:      userID,
		Company:     req.Company,
		Role:        req.Role,
		Location:    req.Location,
		Source:      req.Source,
		URL:         req.URL,
		Description: req.Description,
		Status:      pipeline.Normalize(req.Status),
		Excitement:  req.Excitement,
	}
	s.applyMatchScore(job)

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, apperrors.DataAccess("failed to create job", err)
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, userID, jobID string, req *dtos.JobRequest) (*models.JobApplication, error) {
	job, err := s.Get(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	job.Company = req.Company
	job.Role = req.Role
	job.Location = req.Location
	job.Source = req.Source
	job.URL = req.URL
	job.Description = req.Description
	job.Status = pipeline.Normalize(req.Status)
	job.Excitement = req.Excitement
	s.applyMatchScore(job)

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, apperrors.DataAccess("failed to update job", err)
	}
	return job, nil
}

// Delete removes the job permanently. The UI asks for confirmation first;
// there is no tombstone to restore from.
func (s *JobService) Delete(ctx context.Context, userID, jobID string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", jobID, userID).
		Delete(&models.JobApplication{})
	if res.Error != nil {
		return apperrors.DataAccess("failed to delete job", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Job application not found with id: %s", jobID)
	}
	return nil
}

func (s *JobService) applyMatchScore(job *models.JobApplication) {
	if job.Description == "" {
		job.AIMatchScore = nil
		return
	}
	score := s.Matcher.Score(job.Description, nil)
	job.AIMatchScore = &score
}
