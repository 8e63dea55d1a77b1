package services

import (
	"math"
	"strings"
)

// matchKeywords is the fixed vocabulary the score is computed against.
// Simplified placeholder for real semantic matching: in production this
// would be an embedding lookup, here it is a keyword-overlap ratio.
var matchKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "legal technology",
	"prompt engineering", "automation", "contract analysis", "legal research",
	"compliance", "aba model rule", "legal workflows", "document review",
}

type MatcherService struct{}

func NewMatcherService() *MatcherService {
	return &MatcherService{}
}

// Score returns the fraction of the keyword list appearing in the job
// description, rounded to 2 decimal places and clamped to [0,1]. An empty
// description scores 0. userSkills is accepted for interface stability but
// not consulted yet. Known limitation, kept on purpose.
func (s *MatcherService) Score(jobDescription string, userSkills []string) float64 {
	if jobDescription == "" {
		return 0
	}

	jobText := strings.ToLower(jobDescription)
	matches := 0
	for _, keyword := range matchKeywords {
		if strings.Contains(jobText, keyword) {
			matches++
		}
	}

	score := math.Min(float64(matches)/float64(len(matchKeywords)), 1)
	return math.Round(score*100) / 100
}
