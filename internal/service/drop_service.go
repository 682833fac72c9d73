package service

import (
	"Vynce/internal/api/dto"
	"Vynce/internal/feed"
	"Vynce/internal/model"
	"Vynce/internal/pkg/consts"
	"Vynce/internal/pkg/util"
	"Vynce/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type DropService interface {
	// CreateDrop publishes a drop after the rate-limit check. A non-nil
	// denial (paired with ErrDropRateLimited) carries the wait time and
	// message for the client countdown.
	CreateDrop(ctx context.Context, userID uint64, req *dto.CreateDropDTO) (*dto.PostingDeniedDTO, error)
	GetDrop(ctx context.Context, dropID uint64) (*dto.DropDTO, error)
	GetDropsByUserID(ctx context.Context, userID uint64, page, pageSize int) (*dto.DropFeedDTO, error)
	DeleteDrop(ctx context.Context, userID, dropID uint64) error
}

type dropServiceImpl struct {
	dropRepo repository.DropRepo
	controls *feed.Controls
}

func NewDropService(dropRepo repository.DropRepo, controls *feed.Controls) DropService {
	return &dropServiceImpl{
		dropRepo: dropRepo,
		controls: controls,
	}
}

func (s *dropServiceImpl) CreateDrop(ctx context.Context, userID uint64, req *dto.CreateDropDTO) (*dto.PostingDeniedDTO, error) {
	decision := s.controls.CheckPostingLimits(ctx, userID)
	if !decision.CanPost {
		return &dto.PostingDeniedDTO{
			WaitMinutes: decision.WaitMinutes,
			Message:     decision.Message,
		}, ErrDropRateLimited
	}

	// Explicit tags and #tags in the content both feed the mapper;
	// topics are assigned once here and never recomputed.
	tags := append([]string{}, req.Tags...)
	tags = append(tags, util.ExtractTags(req.Content)...)

	drop := &model.Drop{
		UserID:  userID,
		Content: req.Content,
		Topics:  feed.MapTagsToTopics(tags),
	}

	if err := s.dropRepo.CreateDrop(ctx, drop); err != nil {
		return nil, err
	}

	return nil, nil
}

func (s *dropServiceImpl) GetDrop(ctx context.Context, dropID uint64) (*dto.DropDTO, error) {
	drop, err := s.dropRepo.GetDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}
	return toDropDTO(drop)
}

func (s *dropServiceImpl) GetDropsByUserID(ctx context.Context, userID uint64, page, pageSize int) (*dto.DropFeedDTO, error) {
	drops, err := s.dropRepo.GetDropsByUserID(ctx, userID, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(drops) > pageSize {
		hasMore = true
		drops = drops[:pageSize]
	}

	items, err := batchToDropDTO(drops)
	if err != nil {
		return nil, err
	}

	return &dto.DropFeedDTO{
		List:    items,
		HasMore: hasMore,
		Page:    page,
	}, nil
}

func (s *dropServiceImpl) DeleteDrop(ctx context.Context, userID, dropID uint64) error {
	drop, err := s.dropRepo.GetDrop(ctx, dropID)
	if err != nil {
		return err
	}
	if drop == nil {
		return ErrDropNotFound
	}
	if drop.UserID != userID {
		return UnauthorizedError
	}

	return s.dropRepo.DeleteDrop(ctx, dropID)
}

func toDropDTO(drop *model.Drop) (*dto.DropDTO, error) {
	out := &dto.DropDTO{}
	if err := copier.Copy(out, drop); err != nil {
		return nil, err
	}
	out.Topics = drop.Topics
	out.CreatedAt = drop.CreatedAt.Format(time.RFC3339)

	if drop.User.ID > 0 {
		out.UserID = drop.User.ID
		out.Nickname = drop.User.Nickname
		out.AvatarURL = drop.User.AvatarURL
	} else {
		out.Nickname = "user_" + strconv.FormatUint(drop.UserID, 10)
		out.AvatarURL = consts.DefaultAvatarURL
	}

	return out, nil
}

func batchToDropDTO(drops []*model.Drop) ([]*dto.DropDTO, error) {
	out := make([]*dto.DropDTO, len(drops))
	for i, drop := range drops {
		item, err := toDropDTO(drop)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
