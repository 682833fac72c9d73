package repository

import (
	"Vynce/internal/model"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateAction signals the (user, drop, kind) row already exists.
var ErrDuplicateAction = errors.New("duplicate action")

type DropActionRepo interface {
	CreateAction(ctx context.Context, action *model.DropAction) error
	CreateComment(ctx context.Context, comment *model.DropComment) error
	GetComment(ctx context.Context, commentID uint64) (*model.DropComment, error)
	DeleteComment(ctx context.Context, commentID uint64) error
}

type dropActionRepoImpl struct {
	db *gorm.DB
}

func NewDropActionRepository(db *gorm.DB) DropActionRepo {
	return &dropActionRepoImpl{db: db}
}

func (r *dropActionRepoImpl) CreateAction(ctx context.Context, action *model.DropAction) error {
	err := r.db.WithContext(ctx).Create(action).Error
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateAction
		}
		return err
	}
	return nil
}

func (r *dropActionRepoImpl) CreateComment(ctx context.Context, comment *model.DropComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *dropActionRepoImpl) GetComment(ctx context.Context, commentID uint64) (*model.DropComment, error) {
	var comment model.DropComment
	err := r.db.WithContext(ctx).Where("is_deleted = 0").First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *dropActionRepoImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	return r.db.WithContext(ctx).Model(&model.DropComment{}).
		Where("id = ?", commentID).Update("is_deleted", true).Error
}
