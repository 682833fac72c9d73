package repository

import (
	"Vynce/internal/feed"
	"Vynce/internal/pkg/consts"
	"Vynce/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	profileTTL        = 7 * 24 * time.Hour
	maxProfileTopics  = 100
	hydrateLockExpiry = 5 * time.Second
)

// interestProfileStore keeps the live interest profile as a per-user
// sorted set (topic scored by accumulated weight), marked dirty for the
// snapshot job on every write, and rebuilt from the MySQL snapshot on a
// cold cache.
type interestProfileStore struct {
	snapshots UserInterestRepo
}

func NewInterestProfileStore(snapshots UserInterestRepo) feed.ProfileStore {
	return &interestProfileStore{snapshots: snapshots}
}

func (s *interestProfileStore) IncrInterest(ctx context.Context, userID uint64, topic string, delta int64) error {
	key := consts.UserInterestKey + strconv.FormatUint(userID, 10)

	s.hydrateIfCold(ctx, userID, key)

	if err := redis.ZIncrBy(ctx, key, float64(delta), topic); err != nil {
		return err
	}

	_ = redis.Expire(ctx, key, profileTTL)
	_ = redis.ZRemRangeByRank(ctx, key, 0, int64(-maxProfileTopics-1))
	_ = redis.SAdd(ctx, consts.UserInterestDirtyKey, userID)

	return nil
}

func (s *interestProfileStore) TopInterests(ctx context.Context, userID uint64, limit int) ([]feed.TopicScore, error) {
	key := consts.UserInterestKey + strconv.FormatUint(userID, 10)

	entries, err := redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		s.hydrateIfCold(ctx, userID, key)
		entries, err = redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
		if err != nil {
			return nil, err
		}
	}

	interests := make([]feed.TopicScore, 0, len(entries))
	for _, entry := range entries {
		topic, ok := entry.Member.(string)
		if !ok {
			continue
		}
		interests = append(interests, feed.TopicScore{Topic: topic, Score: int64(entry.Score)})
	}
	return interests, nil
}

// hydrateIfCold rebuilds the zset from the durable snapshot when the key
// expired. Guarded by a short lock so concurrent requests do not stampede
// the database; losing the lock race just means someone else is loading.
//
// The lock covers the rebuild, not the caller's subsequent write: an
// increment landing between another request's Exists check and its ZAdd
// of the snapshot score is overwritten. Known race, accepted: it loses
// at most one action's weight, only on a cold start, against a profile
// the snapshot job persists daily.
func (s *interestProfileStore) hydrateIfCold(ctx context.Context, userID uint64, key string) {
	exists, err := redis.Exists(ctx, key)
	if err != nil || exists {
		return
	}

	userIDStr := strconv.FormatUint(userID, 10)
	lockKey := consts.UserInterestInitLock + userIDStr
	lockToken := uuid.NewString()

	ok, err := redis.TryLock(ctx, lockKey, lockToken, hydrateLockExpiry, 0)
	if err != nil || !ok {
		return
	}
	defer redis.UnLock(ctx, lockKey, lockToken)

	if exists, _ = redis.Exists(ctx, key); exists {
		return
	}

	snapshot, err := s.snapshots.GetUserInterests(ctx, userID)
	if err != nil {
		log.WarnContext(ctx, "interest snapshot load failed", "user_id", userID, "err", err)
		return
	}
	if snapshot == nil || len(snapshot.Interests) == 0 {
		return
	}

	for topic, score := range snapshot.Interests {
		_ = redis.ZAdd(ctx, key, float64(score), topic)
	}
	_ = redis.Expire(ctx, key, profileTTL)
}
