package service

import (
	"Vynce/internal/feed"
	"Vynce/internal/model"
	"Vynce/internal/repository"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDropRepo struct {
	mu    sync.Mutex
	drops map[uint64]*model.Drop
}

func newFakeDropRepo(drops ...*model.Drop) *fakeDropRepo {
	r := &fakeDropRepo{drops: make(map[uint64]*model.Drop)}
	for _, d := range drops {
		r.drops[d.ID] = d
	}
	return r
}

func (r *fakeDropRepo) CreateDrop(ctx context.Context, drop *model.Drop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drops[drop.ID] = drop
	return nil
}

func (r *fakeDropRepo) GetDrop(ctx context.Context, id uint64) (*model.Drop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drops[id], nil
}

func (r *fakeDropRepo) GetDropsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Drop, error) {
	return nil, nil
}

func (r *fakeDropRepo) DeleteDrop(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drops, id)
	return nil
}

func (r *fakeDropRepo) UpdateDropCounts(ctx context.Context, id uint64, likes, comments, shares, saves int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop, ok := r.drops[id]
	if !ok {
		return nil
	}
	drop.LikesCount += likes
	drop.CommentsCount += comments
	drop.SharesCount += shares
	drop.SavesCount += saves
	return nil
}

func (r *fakeDropRepo) RecentCandidates(ctx context.Context, since time.Time, limit int) ([]*model.Drop, error) {
	return nil, nil
}

func (r *fakeDropRepo) CountDropsByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeDropRepo) OldestDropTimeByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (*time.Time, error) {
	return nil, nil
}

func (r *fakeDropRepo) RecentTopicsByAuthor(ctx context.Context, authorID uint64, limit int) ([][]string, error) {
	return nil, nil
}

type fakeActionRepo struct {
	mu   sync.Mutex
	rows map[string]struct{}
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{rows: make(map[string]struct{})}
}

func (r *fakeActionRepo) CreateAction(ctx context.Context, action *model.DropAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := fmt.Sprintf("%d:%d:%s", action.UserID, action.DropID, action.Kind)
	if _, exists := r.rows[key]; exists {
		return repository.ErrDuplicateAction
	}
	r.rows[key] = struct{}{}
	return nil
}

func (r *fakeActionRepo) CreateComment(ctx context.Context, comment *model.DropComment) error {
	return nil
}

func (r *fakeActionRepo) GetComment(ctx context.Context, commentID uint64) (*model.DropComment, error) {
	return nil, nil
}

func (r *fakeActionRepo) DeleteComment(ctx context.Context, commentID uint64) error {
	return nil
}

func (r *fakeActionRepo) rowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type noopProfileStore struct{ mu sync.Mutex }

func (s *noopProfileStore) IncrInterest(ctx context.Context, userID uint64, topic string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil
}

func (s *noopProfileStore) TopInterests(ctx context.Context, userID uint64, limit int) ([]feed.TopicScore, error) {
	return nil, nil
}

func newActionServiceFixture(drops ...*model.Drop) (DropActionService, *fakeDropRepo, *fakeActionRepo) {
	dropRepo := newFakeDropRepo(drops...)
	actionRepo := newFakeActionRepo()
	tracker := feed.NewTracker(&noopProfileStore{}, dropRepo)
	return NewDropActionService(actionRepo, dropRepo, tracker), dropRepo, actionRepo
}

func TestShareDropCounterOnly(t *testing.T) {
	svc, dropRepo, actionRepo := newActionServiceFixture(&model.Drop{ID: 1, UserID: 9})
	ctx := context.Background()

	// The same user sharing twice is legitimate; each share counts and
	// no uniqueness row is ever written.
	require.NoError(t, svc.ShareDrop(ctx, 7, 1))
	require.NoError(t, svc.ShareDrop(ctx, 7, 1))

	drop, err := dropRepo.GetDrop(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), drop.SharesCount)
	assert.Zero(t, actionRepo.rowCount())
}

func TestLikeDropDeduplicated(t *testing.T) {
	svc, dropRepo, actionRepo := newActionServiceFixture(&model.Drop{ID: 1, UserID: 9})
	ctx := context.Background()

	require.NoError(t, svc.LikeDrop(ctx, 7, 1))
	assert.ErrorIs(t, svc.LikeDrop(ctx, 7, 1), ErrActionDuplicate)

	drop, err := dropRepo.GetDrop(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), drop.LikesCount)
	assert.Equal(t, 1, actionRepo.rowCount())
}

func TestShareDropMissing(t *testing.T) {
	svc, _, _ := newActionServiceFixture()

	assert.ErrorIs(t, svc.ShareDrop(context.Background(), 7, 42), ErrDropNotFound)
}
