package service

import (
	"Vynce/internal/api/dto"
	"Vynce/internal/feed"
	"Vynce/internal/model"
	"Vynce/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

const trackingTimeout = 5 * time.Second

type DropActionService interface {
	LikeDrop(ctx context.Context, userID, dropID uint64) error
	SaveDrop(ctx context.Context, userID, dropID uint64) error
	ShareDrop(ctx context.Context, userID, dropID uint64) error
	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) error
	DeleteComment(ctx context.Context, userID, commentID uint64) error
}

type dropActionServiceImpl struct {
	actionRepo repository.DropActionRepo
	dropRepo   repository.DropRepo
	tracker    *feed.Tracker
}

func NewDropActionService(actionRepo repository.DropActionRepo, dropRepo repository.DropRepo, tracker *feed.Tracker) DropActionService {
	return &dropActionServiceImpl{
		actionRepo: actionRepo,
		dropRepo:   dropRepo,
		tracker:    tracker,
	}
}

func (s *dropActionServiceImpl) LikeDrop(ctx context.Context, userID, dropID uint64) error {
	return s.recordAction(ctx, userID, dropID, model.DropActionLike, feed.ActionLike)
}

func (s *dropActionServiceImpl) SaveDrop(ctx context.Context, userID, dropID uint64) error {
	return s.recordAction(ctx, userID, dropID, model.DropActionSave, feed.ActionSave)
}

// ShareDrop has no uniqueness constraint: the same user can share a drop
// repeatedly and each share counts.
func (s *dropActionServiceImpl) ShareDrop(ctx context.Context, userID, dropID uint64) error {
	drop, err := s.dropRepo.GetDrop(ctx, dropID)
	if err != nil {
		return err
	}
	if drop == nil {
		return ErrDropNotFound
	}

	if err = s.dropRepo.UpdateDropCounts(ctx, dropID, 0, 0, 1, 0); err != nil {
		return err
	}

	s.trackAsync(userID, drop.Topics, feed.ActionShare)
	return nil
}

func (s *dropActionServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) error {
	drop, err := s.dropRepo.GetDrop(ctx, req.DropID)
	if err != nil {
		return err
	}
	if drop == nil {
		return ErrDropNotFound
	}

	comment := &model.DropComment{
		DropID:  req.DropID,
		UserID:  userID,
		Content: req.Content,
	}
	if err = s.actionRepo.CreateComment(ctx, comment); err != nil {
		return err
	}

	if err = s.dropRepo.UpdateDropCounts(ctx, req.DropID, 0, 1, 0, 0); err != nil {
		return err
	}

	s.trackAsync(userID, drop.Topics, feed.ActionComment)
	return nil
}

func (s *dropActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.actionRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return UnauthorizedError
	}

	if err = s.actionRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	return s.dropRepo.UpdateDropCounts(ctx, comment.DropID, 0, -1, 0, 0)
}

func (s *dropActionServiceImpl) recordAction(ctx context.Context, userID, dropID uint64, kind string, action feed.Action) error {
	drop, err := s.dropRepo.GetDrop(ctx, dropID)
	if err != nil {
		return err
	}
	if drop == nil {
		return ErrDropNotFound
	}

	err = s.actionRepo.CreateAction(ctx, &model.DropAction{
		UserID: userID,
		DropID: dropID,
		Kind:   kind,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAction) {
			return ErrActionDuplicate
		}
		return err
	}

	var likes, saves int64
	switch kind {
	case model.DropActionLike:
		likes = 1
	case model.DropActionSave:
		saves = 1
	}
	if err = s.dropRepo.UpdateDropCounts(ctx, dropID, likes, 0, 0, saves); err != nil {
		return err
	}

	s.trackAsync(userID, drop.Topics, action)
	return nil
}

// trackAsync updates the interest profile off the request path: the
// triggering action already succeeded, so tracking failures are logged
// and swallowed, never surfaced to the user.
func (s *dropActionServiceImpl) trackAsync(userID uint64, topics []string, action feed.Action) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), trackingTimeout)
		defer cancel()

		if err := s.tracker.TrackInterest(ctx, userID, topics, action); err != nil {
			log.Error("interest tracking failed", "user_id", userID, "action", action, "err", err)
		}
	}()
}
