package review

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// RatingStats aggregates a project's approved reviews
type RatingStats struct {
	Average   float64                 `json:"average"`
	Total     int                     `json:"total"`
	Histogram [entity.MaxRating]int64 `json:"histogram"` // index 0 holds 1-star counts
}

// GetProjectRatingStats computes the average and per-star histogram over
// approved rows only; unapproved and pending-re-moderation reviews never
// contribute to public aggregates
func (s *Service) GetProjectRatingStats(ctx context.Context, projectID string) (*RatingStats, error) {
	reviews, err := s.reviews.ListByProject(ctx, projectID, true)
	if err != nil {
		return nil, err
	}

	stats := &RatingStats{Total: len(reviews)}
	if len(reviews) == 0 {
		return stats, nil
	}

	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
		stats.Histogram[r.Rating-1]++
	}
	stats.Average = float64(sum) / float64(len(reviews))
	return stats, nil
}
