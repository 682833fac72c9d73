package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type Drop struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_created,priority:1" json:"user_id"`
	Content       string    `gorm:"not null" json:"content"`
	Topics        TopicList `gorm:"type:json" json:"topics"` // assigned once at creation, never rewritten
	LikesCount    int64     `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int64     `gorm:"not null;default:0" json:"comments_count"`
	SharesCount   int64     `gorm:"not null;default:0" json:"shares_count"`
	SavesCount    int64     `gorm:"not null;default:0" json:"saves_count"`
	IsDeleted     bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt     time.Time `gorm:"index:idx_user_created,priority:2" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Drop) TableName() string {
	return "drops"
}

// EngagementScore is the derived count the ranking core reads at scoring
// time. Saves are a private signal and stay out of the public score.
func (d *Drop) EngagementScore() int64 {
	return d.LikesCount + d.CommentsCount + d.SharesCount
}

// TopicList is the drop's topic buckets stored as a JSON column.
type TopicList []string

func (t TopicList) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TopicList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, t)
}
