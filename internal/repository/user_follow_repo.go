package repository

import (
	"Vynce/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserFollowRepo interface {
	CreateUserFollow(ctx context.Context, follow *model.UserFollow) error
	DeleteUserFollow(ctx context.Context, follow *model.UserFollow) error
	GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error)
}

type userFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &userFollowRepoImpl{db: db}
}

func (r *userFollowRepoImpl) CreateUserFollow(ctx context.Context, follow *model.UserFollow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *userFollowRepoImpl) DeleteUserFollow(ctx context.Context, follow *model.UserFollow) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", follow.FollowerID, follow.FollowingID).
		Delete(&model.UserFollow{}).Error
}

func (r *userFollowRepoImpl) GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
	var follow model.UserFollow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}
