package dto

// CommentCreateDTO creates a comment on a drop.
type CommentCreateDTO struct {
	DropID  uint64 `json:"drop_id" binding:"required"`
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// InterestDTO is one entry of a user's interest profile.
type InterestDTO struct {
	Topic string `json:"topic"`
	Score int64  `json:"score"`
}
