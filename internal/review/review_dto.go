package review

import "time"

type CreateReviewRequest struct {
	CustomerID  string `json:"customer_id" binding:"required,uuid"`
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Topic       string `json:"topic" binding:"max=100"`
	Description string `json:"description"`
}

type UpdateReviewRequest struct {
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Topic       string `json:"topic" binding:"max=100"`
	Description string `json:"description"`
}

type ReviewResponse struct {
	ReviewID    string    `json:"review_id" validate:"required,uuid"`
	CustomerID  string    `json:"customer_id" validate:"required,uuid"`
	Stars       int       `json:"stars" validate:"min=1,max=5"`
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:    r.ReviewID,
		CustomerID:  r.CustomerID,
		Stars:       r.Stars,
		Topic:       r.Topic,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
