package repository

import (
	"Vynce/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserInterestRepo interface {
	SaveUserInterests(ctx context.Context, data *model.UserInterestSnapshot) error
	GetUserInterests(ctx context.Context, userID uint64) (*model.UserInterestSnapshot, error)
}

type userInterestRepoImpl struct {
	db *gorm.DB
}

func NewUserInterestRepository(db *gorm.DB) UserInterestRepo {
	return &userInterestRepoImpl{db: db}
}

// SaveUserInterests upserts the durable profile snapshot.
func (r *userInterestRepoImpl) SaveUserInterests(ctx context.Context, data *model.UserInterestSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"interests", "updated_at"}),
	}).Create(data).Error
}

// GetUserInterests reads a user's snapshot; nil means no profile yet.
func (r *userInterestRepoImpl) GetUserInterests(ctx context.Context, userID uint64) (*model.UserInterestSnapshot, error) {
	var interests model.UserInterestSnapshot
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&interests).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &interests, nil
}
