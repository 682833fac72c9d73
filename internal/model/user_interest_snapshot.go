package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// UserInterestSnapshot is the durable copy of a user's live interest
// profile, refreshed by the snapshot job. Scores only ever grow; the job
// copies, it never ages them.
type UserInterestSnapshot struct {
	UserID    uint64      `gorm:"primaryKey" json:"user_id"`
	Interests InterestMap `gorm:"type:json;not null" json:"interests"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (UserInterestSnapshot) TableName() string {
	return "user_interest_snapshots"
}

// InterestMap stores topic scores: map[topic]score.
type InterestMap map[string]int64

func (i InterestMap) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *InterestMap) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, i)
}
