package service

import (
	"Vynce/internal/api/dto"
	"Vynce/internal/feed"
	"Vynce/internal/model"
	"Vynce/internal/pkg/consts"
	"Vynce/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultCandidateWindow = 72 * time.Hour
	defaultCandidateLimit  = 300
)

type FeedService interface {
	GetFeed(ctx context.Context, userID uint64, page, pageSize int, topic string) (*dto.DropFeedDTO, error)
	GetUserInterests(ctx context.Context, userID uint64, limit int) ([]*dto.InterestDTO, error)
}

// FeedServiceConfig tunes candidate loading; zero values use defaults.
type FeedServiceConfig struct {
	CandidateWindow time.Duration
	CandidateLimit  int
}

type feedServiceImpl struct {
	dropRepo       repository.DropRepo
	tracker        *feed.Tracker
	cache          feed.Cache
	candidateSpan  time.Duration
	candidateLimit int
}

func NewFeedService(dropRepo repository.DropRepo, tracker *feed.Tracker, cache feed.Cache, cfg FeedServiceConfig) FeedService {
	if cfg.CandidateWindow <= 0 {
		cfg.CandidateWindow = defaultCandidateWindow
	}
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = defaultCandidateLimit
	}
	return &feedServiceImpl{
		dropRepo:       dropRepo,
		tracker:        tracker,
		cache:          cache,
		candidateSpan:  cfg.CandidateWindow,
		candidateLimit: cfg.CandidateLimit,
	}
}

// GetFeed assembles one ranked feed page. Results are cached per request
// signature; on a miss the candidate drops and the viewer's interests are
// loaded concurrently, scored, sorted and paginated.
func (s *feedServiceImpl) GetFeed(ctx context.Context, userID uint64, page, pageSize int, topic string) (*dto.DropFeedDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}

	key := feedCacheKey(userID, page, pageSize, topic)
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(*dto.DropFeedDTO); ok {
			return result, nil
		}
	}

	now := time.Now()

	var (
		drops     []*model.Drop
		interests []feed.TopicScore
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		drops, err = s.dropRepo.RecentCandidates(gctx, now.Add(-s.candidateSpan), s.candidateLimit)
		return err
	})
	if userID > 0 {
		g.Go(func() error {
			var err error
			interests, err = s.tracker.UserInterests(gctx, userID, feed.DefaultInterestLimit)
			if err != nil {
				// Personalization degrades to zero boost rather than
				// failing the whole feed.
				log.WarnContext(gctx, "interest load failed, serving unpersonalized", "user_id", userID, "err", err)
				interests = nil
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uint64]*model.Drop, len(drops))
	candidates := make([]feed.Candidate, 0, len(drops))
	for _, drop := range drops {
		if topic != "" && !hasTopic(drop.Topics, topic) {
			continue
		}
		byID[drop.ID] = drop
		candidates = append(candidates, feed.Candidate{
			ID:         drop.ID,
			AuthorID:   drop.UserID,
			Topics:     drop.Topics,
			Engagement: drop.EngagementScore(),
			CreatedAt:  drop.CreatedAt,
		})
	}

	ranked := feed.Rank(candidates, interests, now)

	start := (page - 1) * pageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + pageSize
	hasMore := end < len(ranked)
	if end > len(ranked) {
		end = len(ranked)
	}

	pageDrops := make([]*model.Drop, 0, end-start)
	for _, item := range ranked[start:end] {
		pageDrops = append(pageDrops, byID[item.ID])
	}

	items, err := batchToDropDTO(pageDrops)
	if err != nil {
		return nil, err
	}

	result := &dto.DropFeedDTO{
		List:    items,
		HasMore: hasMore,
		Page:    page,
	}
	s.cache.Set(key, result)

	return result, nil
}

func (s *feedServiceImpl) GetUserInterests(ctx context.Context, userID uint64, limit int) ([]*dto.InterestDTO, error) {
	interests, err := s.tracker.UserInterests(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.InterestDTO, len(interests))
	for i, entry := range interests {
		out[i] = &dto.InterestDTO{Topic: entry.Topic, Score: entry.Score}
	}
	return out, nil
}

// feedCacheKey covers everything that distinguishes one feed request from
// another, so distinct requests never collide.
func feedCacheKey(userID uint64, page, pageSize int, topic string) string {
	return fmt.Sprintf("feed:%d:%d:%d:%s", userID, page, pageSize, topic)
}

func hasTopic(topics []string, want string) bool {
	for _, topic := range topics {
		if topic == want {
			return true
		}
	}
	return false
}
