package feed

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubActivitySource struct {
	dropTimes []time.Time
	err       error
}

func (s *stubActivitySource) CountDropsByAuthorSince(_ context.Context, _ uint64, since time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, ts := range s.dropTimes {
		if ts.After(since) {
			n++
		}
	}
	return n, nil
}

func (s *stubActivitySource) OldestDropTimeByAuthorSince(_ context.Context, _ uint64, since time.Time) (*time.Time, error) {
	if s.err != nil {
		return nil, s.err
	}
	var oldest *time.Time
	for i := range s.dropTimes {
		ts := s.dropTimes[i]
		if ts.After(since) && (oldest == nil || ts.Before(*oldest)) {
			oldest = &ts
		}
	}
	return oldest, nil
}

func newTestControls(source *stubActivitySource, now time.Time) *Controls {
	c := NewControls(source, ControlsConfig{})
	c.now = func() time.Time { return now }
	return c
}

func TestCheckPostingLimitsHourly(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("under the cap allows", func(t *testing.T) {
		source := &stubActivitySource{dropTimes: []time.Time{
			now.Add(-10 * time.Minute),
			now.Add(-30 * time.Minute),
		}}
		decision := newTestControls(source, now).CheckPostingLimits(ctx, 1)
		assert.True(t, decision.CanPost)
		assert.Zero(t, decision.WaitMinutes)
		assert.Empty(t, decision.Message)
	})

	t.Run("at the cap denies with wait until oldest ages out", func(t *testing.T) {
		source := &stubActivitySource{dropTimes: []time.Time{
			now.Add(-10 * time.Minute),
			now.Add(-30 * time.Minute),
			now.Add(-45 * time.Minute),
		}}
		decision := newTestControls(source, now).CheckPostingLimits(ctx, 1)
		require.False(t, decision.CanPost)
		// Oldest in-window drop is 45m old, so the window frees up in 15m.
		assert.Equal(t, 15, decision.WaitMinutes)
		assert.Contains(t, decision.Message, "15 minutes")
	})
}

func TestCheckPostingLimitsDaily(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	spread := func(n int) []time.Time {
		// n drops spread over the last 20 hours, none inside the last hour.
		times := make([]time.Time, 0, n)
		for i := 0; i < n; i++ {
			times = append(times, now.Add(-2*time.Hour-time.Duration(i)*90*time.Minute))
		}
		return times
	}

	t.Run("one under the daily cap allows", func(t *testing.T) {
		decision := newTestControls(&stubActivitySource{dropTimes: spread(9)}, now).CheckPostingLimits(ctx, 1)
		assert.True(t, decision.CanPost)
	})

	t.Run("at the daily cap denies in whole hours", func(t *testing.T) {
		decision := newTestControls(&stubActivitySource{dropTimes: spread(10)}, now).CheckPostingLimits(ctx, 1)
		require.False(t, decision.CanPost)
		assert.Positive(t, decision.WaitMinutes)
		assert.Zero(t, decision.WaitMinutes%60)
		assert.Contains(t, decision.Message, "hours")
	})
}

func TestCheckPostingLimitsFailsOpen(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	source := &stubActivitySource{err: errors.New("storage down")}

	decision := newTestControls(source, now).CheckPostingLimits(context.Background(), 1)
	assert.True(t, decision.CanPost)
}

func TestTimeDecay(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("no decay inside the two hour grace period", func(t *testing.T) {
		assert.Equal(t, 1.0, TimeDecay(now, now))
		assert.Equal(t, 1.0, TimeDecay(now.Add(-2*time.Hour), now))
	})

	t.Run("just past the grace period decays", func(t *testing.T) {
		assert.Less(t, TimeDecay(now.Add(-121*time.Minute), now), 1.0)
	})

	t.Run("half life of 24 hours", func(t *testing.T) {
		assert.InDelta(t, 0.5, TimeDecay(now.Add(-24*time.Hour), now), 1e-9)
	})

	t.Run("non-increasing in age", func(t *testing.T) {
		prev := 1.0
		for hours := 1; hours <= 200; hours += 3 {
			d := TimeDecay(now.Add(-time.Duration(hours)*time.Hour), now)
			assert.LessOrEqual(t, d, prev)
			prev = d
		}
	})

	t.Run("floored at 0.1 for ancient drops", func(t *testing.T) {
		assert.Equal(t, 0.1, TimeDecay(now.Add(-10000*time.Hour), now))
	})
}

func TestEngagementDecayTiering(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-12 * time.Hour)

	high := EngagementDecay(15, createdAt, now)
	medium := EngagementDecay(5, createdAt, now)
	low := EngagementDecay(1, createdAt, now)

	assert.Greater(t, high, medium)
	assert.Greater(t, medium, low)

	// Tier floors hold no matter the age.
	old := now.Add(-1000 * time.Hour)
	assert.Equal(t, 0.8, EngagementDecay(15, old, now))
	assert.Equal(t, 0.5, EngagementDecay(5, old, now))
	assert.InDelta(t, 0.2, EngagementDecay(1, old, now), 1e-9)
}

func TestEngagementDecayLowTierCurve(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	got := EngagementDecay(2, now.Add(-time.Hour), now)
	assert.InDelta(t, math.Pow(0.7, 1.0/6.0), got, 1e-9)
}
