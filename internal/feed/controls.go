package feed

import (
	"context"
	"fmt"
	log "log/slog"
	"math"
	"time"
)

// Default posting limits. Independent knobs, both sliding windows
// relative to the moment of the check.
const (
	DefaultMaxDropsPerHour = 3
	DefaultMaxDropsPerDay  = 10
)

// PostingDecision is the outcome of a rate-limit check. WaitMinutes and
// Message are only set on a denial.
type PostingDecision struct {
	CanPost     bool   `json:"can_post"`
	WaitMinutes int    `json:"wait_minutes,omitempty"`
	Message     string `json:"message,omitempty"`
}

// PostingActivitySource counts an author's recent drops. Backed by the
// drop store; always recomputed, never cached.
type PostingActivitySource interface {
	CountDropsByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (int64, error)
	OldestDropTimeByAuthorSince(ctx context.Context, authorID uint64, since time.Time) (*time.Time, error)
}

// ControlsConfig tunes the posting limits. Zero values fall back to the
// defaults.
type ControlsConfig struct {
	MaxPerHour int
	MaxPerDay  int
}

// Controls enforces per-author posting limits over the drop stream.
type Controls struct {
	drops      PostingActivitySource
	maxPerHour int
	maxPerDay  int
	now        func() time.Time
}

func NewControls(drops PostingActivitySource, cfg ControlsConfig) *Controls {
	if cfg.MaxPerHour <= 0 {
		cfg.MaxPerHour = DefaultMaxDropsPerHour
	}
	if cfg.MaxPerDay <= 0 {
		cfg.MaxPerDay = DefaultMaxDropsPerDay
	}
	return &Controls{
		drops:      drops,
		maxPerHour: cfg.MaxPerHour,
		maxPerDay:  cfg.MaxPerDay,
		now:        time.Now,
	}
}

// CheckPostingLimits decides whether an author may publish right now. Any
// storage failure fails open: a flaky count query must never block
// legitimate posting, so errors are logged and the post is allowed.
func (c *Controls) CheckPostingLimits(ctx context.Context, authorID uint64) PostingDecision {
	now := c.now()
	hourAgo := now.Add(-time.Hour)
	dayAgo := now.Add(-24 * time.Hour)

	hourly, err := c.drops.CountDropsByAuthorSince(ctx, authorID, hourAgo)
	if err != nil {
		log.WarnContext(ctx, "posting limit check failed, allowing", "author_id", authorID, "err", err)
		return PostingDecision{CanPost: true}
	}

	if hourly >= int64(c.maxPerHour) {
		oldest, err := c.drops.OldestDropTimeByAuthorSince(ctx, authorID, hourAgo)
		if err != nil || oldest == nil {
			log.WarnContext(ctx, "posting limit wait lookup failed, allowing", "author_id", authorID, "err", err)
			return PostingDecision{CanPost: true}
		}

		// Minutes until the oldest in-window drop ages out, rounded up.
		wait := oldest.Add(time.Hour).Sub(now)
		minutes := int(math.Ceil(wait.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		return PostingDecision{
			CanPost:     false,
			WaitMinutes: minutes,
			Message:     fmt.Sprintf("You're dropping too fast. Try again in %d minutes.", minutes),
		}
	}

	daily, err := c.drops.CountDropsByAuthorSince(ctx, authorID, dayAgo)
	if err != nil {
		log.WarnContext(ctx, "posting limit check failed, allowing", "author_id", authorID, "err", err)
		return PostingDecision{CanPost: true}
	}

	if daily >= int64(c.maxPerDay) {
		oldest, err := c.drops.OldestDropTimeByAuthorSince(ctx, authorID, dayAgo)
		if err != nil || oldest == nil {
			log.WarnContext(ctx, "posting limit wait lookup failed, allowing", "author_id", authorID, "err", err)
			return PostingDecision{CanPost: true}
		}

		// Daily denials are coarser: round up to whole hours, expressed
		// in minutes so callers render one countdown either way.
		wait := oldest.Add(24 * time.Hour).Sub(now)
		hours := int(math.Ceil(wait.Hours()))
		if hours < 1 {
			hours = 1
		}
		return PostingDecision{
			CanPost:     false,
			WaitMinutes: hours * 60,
			Message:     fmt.Sprintf("Daily drop limit reached. Try again in about %d hours.", hours),
		}
	}

	return PostingDecision{CanPost: true}
}

// TimeDecay reduces a drop's score purely by age: no decay for the first
// two hours, then a 24-hour half-life, floored at 0.1 so age alone never
// zeroes visibility.
func TimeDecay(createdAt, now time.Time) float64 {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours <= 2 {
		return 1
	}

	decay := math.Pow(0.5, ageHours/24)
	if decay < 0.1 {
		return 0.1
	}
	return decay
}

// Engagement tiers for EngagementDecay.
const (
	highEngagement   = 10
	mediumEngagement = 3
)

// EngagementDecay is the popularity-modulated decay term: highly engaged
// drops decay very slowly, barely-engaged ones are pruned from visibility
// on roughly a six-hour schedule to keep the feed feeling live.
func EngagementDecay(engagement int64, createdAt, now time.Time) float64 {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	switch {
	case engagement >= highEngagement:
		return math.Max(0.8, math.Pow(0.95, ageHours))
	case engagement >= mediumEngagement:
		return math.Max(0.5, math.Pow(0.9, ageHours))
	default:
		return math.Max(0.2, math.Pow(0.7, ageHours/6))
	}
}
