// Package pipeline holds the pure data transforms behind the dashboard:
// status normalization, grouping into columns, and summary stats. Nothing
// here touches the database or the router, which keeps it directly testable.
package pipeline

import (
	"math"

	"github.com/erickazee/jobtrack/internal/models"
)

const (
	StatusToReview  = "To Review"
	StatusApplying  = "Applying"
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
)

// Statuses returns the built-in pipeline columns in display order. The set
// is open: a job may carry any status the user typed, and grouping keeps
// those under their literal value.
func Statuses() []string {
	return []string{StatusToReview, StatusApplying, StatusApplied, StatusInterview, StatusOffer}
}

// Normalize maps an absent/empty status to "To Review". This is the single
// normalization rule; grouping and stats both go through it.
func Normalize(status string) string {
	if status == "" {
		return StatusToReview
	}
	return status
}

// GroupByStatus buckets jobs by their normalized status, preserving the
// input order (newest-first when the input came from the store) within each
// bucket.
func GroupByStatus(jobs []models.JobApplication) map[string][]models.JobApplication {
	grouped := make(map[string][]models.JobApplication)
	for _, job := range jobs {
		status := Normalize(job.Status)
		grouped[status] = append(grouped[status], job)
	}
	return grouped
}

// Stats summarizes the pipeline for the dashboard header.
type Stats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Interviews   int `json:"interviews"`
	ResponseRate int `json:"response_rate"`
}

// ComputeStats derives the dashboard counters. Active means the application
// is in flight (Applying, Applied, Interview); a response is an Interview or
// an Offer. ResponseRate is a whole percentage and 0 for an empty pipeline.
func ComputeStats(jobs []models.JobApplication) Stats {
	var stats Stats
	stats.Total = len(jobs)

	responses := 0
	for _, job := range jobs {
		switch Normalize(job.Status) {
		case StatusApplying, StatusApplied:
			stats.Active++
		case StatusInterview:
			stats.Active++
			stats.Interviews++
			responses++
		case StatusOffer:
			responses++
		}
	}

	if stats.Total > 0 {
		stats.ResponseRate = int(math.Round(float64(responses) / float64(stats.Total) * 100))
	}
	return stats
}
