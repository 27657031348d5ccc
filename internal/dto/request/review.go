package request

type ReviewRequest struct {
	Rating int     `json:"rating" validate:"required,min=1,max=5"`
	Text   *string `json:"review_text,omitempty"`
}
