package repository

import (
	"Vynce/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type DropRepo interface {
	CreateDrop(ctx context.Context, drop *model.Drop) error
	GetDrop(ctx context.Context, id uint64) (*model.Drop, error)
	GetDropsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Drop, error)
	DeleteDrop(ctx context.Context, id uint64) error
	UpdateDropCounts(ctx context.Context, id uint64, likes, comments, shares, saves int64) error

	// Candidate load for feed assembly: live drops inside the window,
	// newest first, author preloaded.
	RecentCandidates(ctx context.Context, since time.Time, limit int) ([]*model.Drop, error)

	// Posting-activity queries for the rate limiter.
	CountDropsByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (int64, error)
	OldestDropTimeByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (*time.Time, error)

	// Topic sets of an author's latest drops, for follow-interest inference.
	RecentTopicsByAuthor(ctx context.Context, authorID uint64, limit int) ([][]string, error)
}

type dropRepoImpl struct {
	db *gorm.DB
}

func NewDropRepository(db *gorm.DB) DropRepo {
	return &dropRepoImpl{db: db}
}

func (r *dropRepoImpl) CreateDrop(ctx context.Context, drop *model.Drop) error {
	return r.db.WithContext(ctx).Create(drop).Error
}

func (r *dropRepoImpl) GetDrop(ctx context.Context, id uint64) (*model.Drop, error) {
	var drop model.Drop
	err := r.db.WithContext(ctx).Preload("User").
		Where("is_deleted = 0").First(&drop, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drop, nil
}

func (r *dropRepoImpl) GetDropsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Drop, error) {
	var drops []*model.Drop
	err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ? AND is_deleted = 0", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&drops).Error
	if err != nil {
		return nil, err
	}
	return drops, nil
}

func (r *dropRepoImpl) DeleteDrop(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&model.Drop{}).
		Where("id = ?", id).Update("is_deleted", true).Error
}

func (r *dropRepoImpl) UpdateDropCounts(ctx context.Context, id uint64, likes, comments, shares, saves int64) error {
	updates := map[string]interface{}{}
	if likes != 0 {
		updates["likes_count"] = gorm.Expr("likes_count + ?", likes)
	}
	if comments != 0 {
		updates["comments_count"] = gorm.Expr("comments_count + ?", comments)
	}
	if shares != 0 {
		updates["shares_count"] = gorm.Expr("shares_count + ?", shares)
	}
	if saves != 0 {
		updates["saves_count"] = gorm.Expr("saves_count + ?", saves)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Drop{}).
		Where("id = ?", id).Updates(updates).Error
}

func (r *dropRepoImpl) RecentCandidates(ctx context.Context, since time.Time, limit int) ([]*model.Drop, error) {
	var drops []*model.Drop
	err := r.db.WithContext(ctx).Preload("User").
		Where("created_at > ? AND is_deleted = 0", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&drops).Error
	if err != nil {
		return nil, err
	}
	return drops, nil
}

func (r *dropRepoImpl) CountDropsByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Drop{}).
		Where("user_id = ? AND created_at > ? AND is_deleted = 0", authorID, since).
		Count(&count).Error
	return count, err
}

func (r *dropRepoImpl) OldestDropTimeByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (*time.Time, error) {
	var drop model.Drop
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at > ? AND is_deleted = 0", authorID, since).
		Order("created_at ASC").
		First(&drop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drop.CreatedAt, nil
}

func (r *dropRepoImpl) RecentTopicsByAuthor(ctx context.Context, authorID uint64, limit int) ([][]string, error) {
	var drops []*model.Drop
	err := r.db.WithContext(ctx).Select("id", "topics").
		Where("user_id = ? AND is_deleted = 0", authorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&drops).Error
	if err != nil {
		return nil, err
	}

	topicSets := make([][]string, 0, len(drops))
	for _, drop := range drops {
		topicSets = append(topicSets, drop.Topics)
	}
	return topicSets, nil
}
