package job

import (
	"Vynce/internal/model"
	"Vynce/internal/pkg/consts"
	"Vynce/internal/pkg/logger"
	"Vynce/internal/pkg/redis"
	"Vynce/internal/pkg/util"
	"Vynce/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// InterestSnapshotJob drains the dirty set and copies each flagged user's
// live interest zset into its MySQL snapshot row.
type InterestSnapshotJob struct {
	interestRepo repository.UserInterestRepo
}

func NewInterestSnapshotJob(interestRepo repository.UserInterestRepo) *InterestSnapshotJob {
	return &InterestSnapshotJob{
		interestRepo: interestRepo,
	}
}

func (s *InterestSnapshotJob) Run() {
	traceID := "job-interest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// Rename swaps the dirty set out atomically so writers keep flagging
	// into a fresh set while we drain the old one. It fails when the set
	// does not exist, which just means nothing changed since last run.
	processingKey := consts.UserInterestDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserInterestDirtyKey, processingKey)
	if err != nil {
		return
	}

	dirtySet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get interest dirty set error", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(dirtySet)
	if err != nil {
		log.ErrorContext(ctx, "convert interest set to int slice error", "err", err)
		return
	}

	log.InfoContext(ctx, "InterestSnapshotJob processing", "user_count", len(userIDs))

	for _, uid := range userIDs {
		uidStr := strconv.FormatUint(uid, 10)
		interestKey := consts.UserInterestKey + uidStr

		zObjects, err := redis.ZRevRangeWithScores(ctx, interestKey, 0, 100)
		if err != nil {
			log.ErrorContext(ctx, "fetch interest zset error", "uid", uid, "err", err)
			continue
		}

		if len(zObjects) == 0 {
			continue
		}

		interestMap := make(model.InterestMap)
		for _, obj := range zObjects {
			if topic, ok := obj.Member.(string); ok {
				interestMap[topic] = int64(obj.Score)
			}
		}

		snapshot := &model.UserInterestSnapshot{
			UserID:    uid,
			Interests: interestMap,
			UpdatedAt: time.Now(),
		}

		err = s.interestRepo.SaveUserInterests(ctx, snapshot)
		if err != nil {
			log.ErrorContext(ctx, "save user interests to mysql error", "uid", uid, "err", err)
			continue
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete interest processing set error", "err", err)
	}

	log.InfoContext(ctx, "InterestSnapshotJob finished", "processed_count", len(userIDs))
}
