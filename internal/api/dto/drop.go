package dto

// CreateDropDTO is the publish payload. Tags may come explicitly or as
// #tags inside the content; both feed the topic mapper.
type CreateDropDTO struct {
	Content string   `json:"content" binding:"required" validate:"min=1,max=1000"`
	Tags    []string `json:"tags" validate:"max=10"`
}

// DropDTO is a drop as rendered to clients.
type DropDTO struct {
	ID            uint64   `json:"id"`
	Content       string   `json:"content"`
	Topics        []string `json:"topics"`
	LikesCount    int64    `json:"likes_count"`
	CommentsCount int64    `json:"comments_count"`
	SharesCount   int64    `json:"shares_count"`
	SavesCount    int64    `json:"saves_count"`
	CreatedAt     string   `json:"created_at"`

	UserID    uint64 `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

// DropListDTO is the shared page query.
type DropListDTO struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=50"`
	Topic    string `form:"topic"`
}

// DropFeedDTO is one assembled feed page.
type DropFeedDTO struct {
	List    []*DropDTO `json:"list"`
	HasMore bool       `json:"has_more"`
	Page    int        `json:"page"`
}

// PostingDeniedDTO surfaces a rate-limit denial so clients can render a
// retry countdown.
type PostingDeniedDTO struct {
	WaitMinutes int    `json:"wait_minutes"`
	Message     string `json:"message"`
}
