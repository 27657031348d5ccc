package response

import (
	"time"

	"coffee-directory/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID  string    `json:"review_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Text      *string   `json:"text"`
	CreatedAt time.Time `json:"date"`
}

type ReviewCreatedResponse struct {
	ReviewID string `json:"review_id"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:  review.ID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}
