package feed

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPersonalizationWinsOnEqualEngagement(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	interests := []TopicScore{
		{Topic: TopicTech, Score: 20},
		{Topic: TopicAI, Score: 5},
	}

	// Two drops identical in age and engagement, differing only in topics.
	c1 := Candidate{ID: 1, Topics: []string{TopicTech}, Engagement: 2, CreatedAt: now.Add(-time.Hour)}
	c2 := Candidate{ID: 2, Topics: []string{TopicGaming}, Engagement: 2, CreatedAt: now.Add(-time.Hour)}

	ranked := Rank([]Candidate{c2, c1}, interests, now)
	require.Len(t, ranked, 2)

	base := 2 * 1.0 * math.Pow(0.7, 1.0/6.0)
	assert.Equal(t, uint64(1), ranked[0].ID)
	assert.InDelta(t, base+2.0, ranked[0].Score, 1e-9)
	assert.Equal(t, uint64(2), ranked[1].ID)
	assert.InDelta(t, base, ranked[1].Score, 1e-9)
}

func TestRankDecayDominatesForStaleUnpopularDrops(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	interests := []TopicScore{{Topic: TopicMemes, Score: 50}}

	fresh := Candidate{ID: 1, Topics: []string{TopicFinance}, Engagement: 40, CreatedAt: now.Add(-time.Hour)}
	stale := Candidate{ID: 2, Topics: []string{TopicMemes}, Engagement: 1, CreatedAt: now.Add(-30 * 24 * time.Hour)}

	ranked := Rank([]Candidate{stale, fresh}, interests, now)
	assert.Equal(t, uint64(1), ranked[0].ID)

	// Old unpopular content keeps a small nonzero base (floors 0.1 and 0.2),
	// so the boost still counts for something, just not enough here.
	assert.Greater(t, ranked[1].Score, 2.0)
}

func TestRankTiesBrokenByRecency(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Zero engagement zeroes the multiplicative term, forcing a score tie.
	older := Candidate{ID: 1, Engagement: 0, CreatedAt: now.Add(-time.Hour)}
	newer := Candidate{ID: 2, Engagement: 0, CreatedAt: now.Add(-30 * time.Minute)}

	ranked := Rank([]Candidate{older, newer}, nil, now)
	assert.Equal(t, uint64(2), ranked[0].ID)
	assert.Equal(t, uint64(1), ranked[1].ID)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, nil, time.Now()))
}
