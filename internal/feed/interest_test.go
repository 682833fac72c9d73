package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memProfileStore is an in-memory ProfileStore: profiles are created on
// first increment, like the real store.
type memProfileStore struct {
	profiles map[uint64]map[string]int64
	err      error
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[uint64]map[string]int64)}
}

func (s *memProfileStore) IncrInterest(_ context.Context, userID uint64, topic string, delta int64) error {
	if s.err != nil {
		return s.err
	}
	if s.profiles[userID] == nil {
		s.profiles[userID] = make(map[string]int64)
	}
	s.profiles[userID][topic] += delta
	return nil
}

func (s *memProfileStore) TopInterests(_ context.Context, userID uint64, limit int) ([]TopicScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []TopicScore
	for topic, score := range s.profiles[userID] {
		out = append(out, TopicScore{Topic: topic, Score: score})
	}
	SortTopicScores(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubTopicSource struct {
	topicSets [][]string
	err       error
}

func (s *stubTopicSource) RecentTopicsByAuthor(context.Context, uint64, int) ([][]string, error) {
	return s.topicSets, s.err
}

func TestTrackInterestAccumulates(t *testing.T) {
	store := newMemProfileStore()
	tracker := NewTracker(store, &stubTopicSource{})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, tracker.TrackInterest(ctx, 7, []string{TopicTech}, ActionLike))
	}
	require.NoError(t, tracker.TrackInterest(ctx, 7, []string{TopicTech, TopicAI}, ActionComment))

	assert.Equal(t, int64(4*3+5), store.profiles[7][TopicTech])
	assert.Equal(t, int64(5), store.profiles[7][TopicAI])
}

func TestTrackInterestNoOps(t *testing.T) {
	store := newMemProfileStore()
	tracker := NewTracker(store, &stubTopicSource{})
	ctx := context.Background()

	require.NoError(t, tracker.TrackInterest(ctx, 7, nil, ActionLike))
	require.NoError(t, tracker.TrackInterest(ctx, 7, []string{TopicTech}, Action("poke")))

	// Neither call may have created a profile.
	_, exists := store.profiles[7]
	assert.False(t, exists)
}

func TestActionWeightOrdering(t *testing.T) {
	assert.Greater(t, ActionWeight(ActionComment), ActionWeight(ActionShare))
	assert.Greater(t, ActionWeight(ActionShare), ActionWeight(ActionLike))
	assert.Equal(t, ActionWeight(ActionLike), ActionWeight(ActionSave))
	assert.Greater(t, ActionWeight(ActionSave), ActionWeight(ActionFollow))
	assert.Positive(t, ActionWeight(ActionFollow))
	assert.Zero(t, ActionWeight(Action("poke")))
}

func TestTrackFollowInterest(t *testing.T) {
	store := newMemProfileStore()
	source := &stubTopicSource{topicSets: [][]string{
		{TopicTech, TopicAI},
		{TopicTech},
		{TopicTech, TopicGaming},
	}}
	tracker := NewTracker(store, source)

	require.NoError(t, tracker.TrackFollowInterest(context.Background(), 7, 42))

	// Follow weight applied once per distinct topic, not per drop.
	follow := ActionWeight(ActionFollow)
	assert.Equal(t, follow, store.profiles[7][TopicTech])
	assert.Equal(t, follow, store.profiles[7][TopicAI])
	assert.Equal(t, follow, store.profiles[7][TopicGaming])
}

func TestTrackFollowInterestNoDrops(t *testing.T) {
	store := newMemProfileStore()
	tracker := NewTracker(store, &stubTopicSource{})

	require.NoError(t, tracker.TrackFollowInterest(context.Background(), 7, 42))
	assert.Empty(t, store.profiles)
}

func TestTrackFollowInterestSourceError(t *testing.T) {
	store := newMemProfileStore()
	tracker := NewTracker(store, &stubTopicSource{err: errors.New("boom")})

	assert.Error(t, tracker.TrackFollowInterest(context.Background(), 7, 42))
	assert.Empty(t, store.profiles)
}

func TestUserInterestsOrderingAndLimit(t *testing.T) {
	store := newMemProfileStore()
	store.profiles[7] = map[string]int64{
		TopicTech:      20,
		TopicAI:        5,
		TopicGaming:    5,
		TopicFinance:   3,
		TopicMemes:     2,
		TopicLifestyle: 1,
	}
	tracker := NewTracker(store, &stubTopicSource{})

	interests, err := tracker.UserInterests(context.Background(), 7, 0)
	require.NoError(t, err)

	// Default limit 5; equal scores break ties by topic name.
	assert.Equal(t, []TopicScore{
		{Topic: TopicTech, Score: 20},
		{Topic: TopicAI, Score: 5},
		{Topic: TopicGaming, Score: 5},
		{Topic: TopicFinance, Score: 3},
		{Topic: TopicMemes, Score: 2},
	}, interests)
}

func TestUserInterestsEmptyProfile(t *testing.T) {
	tracker := NewTracker(newMemProfileStore(), &stubTopicSource{})

	interests, err := tracker.UserInterests(context.Background(), 99, 5)
	require.NoError(t, err)
	assert.Empty(t, interests)
}

func TestInterestBoost(t *testing.T) {
	interests := []TopicScore{
		{Topic: TopicTech, Score: 20},
		{Topic: TopicAI, Score: 5},
	}

	t.Run("empty inputs return zero", func(t *testing.T) {
		assert.Zero(t, InterestBoost(nil, interests))
		assert.Zero(t, InterestBoost([]string{TopicTech}, nil))
	})

	t.Run("max interest gets full per-topic boost", func(t *testing.T) {
		assert.InDelta(t, 2.0, InterestBoost([]string{TopicTech}, interests), 1e-9)
	})

	t.Run("lower interest scales by relative score", func(t *testing.T) {
		assert.InDelta(t, 0.5, InterestBoost([]string{TopicAI}, interests), 1e-9)
	})

	t.Run("monotonic in relative score", func(t *testing.T) {
		assert.Greater(t,
			InterestBoost([]string{TopicTech}, interests),
			InterestBoost([]string{TopicAI}, interests))
	})

	t.Run("clamped at cap", func(t *testing.T) {
		flat := []TopicScore{
			{Topic: TopicTech, Score: 10},
			{Topic: TopicAI, Score: 10},
			{Topic: TopicGaming, Score: 10},
		}
		boost := InterestBoost([]string{TopicTech, TopicAI, TopicGaming}, flat)
		assert.InDelta(t, MaxInterestBoost, boost, 1e-9)
	})

	t.Run("no overlap returns zero", func(t *testing.T) {
		assert.Zero(t, InterestBoost([]string{TopicMemes}, interests))
	})
}
