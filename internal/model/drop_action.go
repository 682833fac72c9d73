package model

import "time"

// Drop action kinds persisted in drop_actions. Shares are counter-only
// and never get a row, since the same user may share repeatedly.
const (
	DropActionLike = "like"
	DropActionSave = "save"
)

type DropAction struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	DropID    uint64    `gorm:"primaryKey;index:idx_drop_id" json:"drop_id"`
	Kind      string    `gorm:"primaryKey;type:varchar(16)" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

func (DropAction) TableName() string {
	return "drop_actions"
}
