package service

import (
	"Vynce/internal/feed"
	"Vynce/internal/model"
	"Vynce/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type UserFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
}

type userFollowServiceImpl struct {
	followRepo repository.UserFollowRepo
	tracker    *feed.Tracker
}

func NewUserFollowService(followRepo repository.UserFollowRepo, tracker *feed.Tracker) UserFollowService {
	return &userFollowServiceImpl{
		followRepo: followRepo,
		tracker:    tracker,
	}
}

func (s *userFollowServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrFollowSelf
	}

	existing, err := s.followRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrFollowExist
	}

	err = s.followRepo.CreateUserFollow(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	// Infer interests from the followed author's recent drops, off the
	// request path; the follow already succeeded.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), trackingTimeout)
		defer cancel()

		if err := s.tracker.TrackFollowInterest(bgCtx, followerID, followingID); err != nil {
			log.Error("follow interest tracking failed",
				"follower_id", followerID, "following_id", followingID, "err", err)
		}
	}()

	return nil
}

func (s *userFollowServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	return s.followRepo.DeleteUserFollow(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
}

func (s *userFollowServiceImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	follow, err := s.followRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}
