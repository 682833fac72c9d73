package feed

import (
	"context"
	"sort"
)

// Action is a tracked engagement kind on a drop.
type Action string

const (
	ActionLike    Action = "like"
	ActionComment Action = "comment"
	ActionShare   Action = "share"
	ActionFollow  Action = "follow"
	ActionSave    Action = "save"
)

// actionWeights fixes how strongly each action moves a user's topic
// scores. Comment is the strongest engagement signal, follow the weakest.
var actionWeights = map[Action]int64{
	ActionLike:    3,
	ActionComment: 5,
	ActionShare:   4,
	ActionFollow:  2,
	ActionSave:    3,
}

// ActionWeight returns the configured weight for an action, 0 if unknown.
func ActionWeight(action Action) int64 {
	return actionWeights[action]
}

const (
	// DefaultInterestLimit bounds how many top interests a ranking pass reads.
	DefaultInterestLimit = 5

	// followSampleSize is how many recent drops of a followed author are
	// sampled to infer topics on follow.
	followSampleSize = 10

	// boostPerTopic and MaxInterestBoost shape the additive personalization
	// term: each matching topic contributes its relative score times
	// boostPerTopic, and the total is clamped so personalization can never
	// bury the decay-weighted engagement term entirely.
	boostPerTopic    = 2.0
	MaxInterestBoost = 3.0
)

// TopicScore is one entry of a user's interest profile.
type TopicScore struct {
	Topic string
	Score int64
}

// ProfileStore is the external interest profile storage. Increments must be
// atomic per (user, topic) at the storage layer; concurrent increments are
// commutative and therefore safe without coordination here.
type ProfileStore interface {
	IncrInterest(ctx context.Context, userID uint64, topic string, delta int64) error
	TopInterests(ctx context.Context, userID uint64, limit int) ([]TopicScore, error)
}

// AuthorTopicSource yields the topic sets of an author's most recent drops,
// newest first. Used only for follow-interest inference.
type AuthorTopicSource interface {
	RecentTopicsByAuthor(ctx context.Context, authorID uint64, limit int) ([][]string, error)
}

// Tracker maintains per-user weighted topic-interest profiles from
// behavioral signals.
type Tracker struct {
	profiles ProfileStore
	drops    AuthorTopicSource
}

func NewTracker(profiles ProfileStore, drops AuthorTopicSource) *Tracker {
	return &Tracker{profiles: profiles, drops: drops}
}

// TrackInterest bumps the user's score for every topic in the set by the
// action's weight. Empty topic sets and unknown actions are silent no-ops:
// they must neither fail nor create a profile.
func (t *Tracker) TrackInterest(ctx context.Context, userID uint64, topics []string, action Action) error {
	if len(topics) == 0 {
		return nil
	}
	weight, ok := actionWeights[action]
	if !ok {
		return nil
	}

	for _, topic := range topics {
		if topic == "" {
			continue
		}
		if err := t.profiles.IncrInterest(ctx, userID, topic, weight); err != nil {
			return err
		}
	}
	return nil
}

// TrackFollowInterest infers topics from the followed author's last
// followSampleSize drops and applies the follow weight once per distinct
// topic, regardless of how often the author posts about it. An author with
// no drops yet is a no-op.
func (t *Tracker) TrackFollowInterest(ctx context.Context, userID, followedID uint64) error {
	topicSets, err := t.drops.RecentTopicsByAuthor(ctx, followedID, followSampleSize)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	var distinct []string
	for _, topics := range topicSets {
		for _, topic := range topics {
			if _, dup := seen[topic]; dup {
				continue
			}
			seen[topic] = struct{}{}
			distinct = append(distinct, topic)
		}
	}

	return t.TrackInterest(ctx, userID, distinct, ActionFollow)
}

// UserInterests returns the user's strongest interests, highest score
// first. Ties are broken by topic name ascending so repeated calls are
// stable no matter how the backing store iterates. An absent profile
// yields an empty slice.
func (t *Tracker) UserInterests(ctx context.Context, userID uint64, limit int) ([]TopicScore, error) {
	if limit <= 0 {
		limit = DefaultInterestLimit
	}

	interests, err := t.profiles.TopInterests(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	SortTopicScores(interests)
	if len(interests) > limit {
		interests = interests[:limit]
	}
	return interests, nil
}

// SortTopicScores orders a profile slice by score descending, topic
// ascending on equal scores.
func SortTopicScores(interests []TopicScore) {
	sort.Slice(interests, func(i, j int) bool {
		if interests[i].Score != interests[j].Score {
			return interests[i].Score > interests[j].Score
		}
		return interests[i].Topic < interests[j].Topic
	})
}

// InterestBoost scores how well a drop's topics match a user's profile.
// Each matching topic contributes proportionally to the user's own maximum
// interest, so one dominant interest area cannot drown the rest; the total
// is clamped to MaxInterestBoost. Returns 0 when either side is empty.
func InterestBoost(contentTopics []string, interests []TopicScore) float64 {
	if len(contentTopics) == 0 || len(interests) == 0 {
		return 0
	}

	var maxScore int64
	byTopic := make(map[string]int64, len(interests))
	for _, entry := range interests {
		byTopic[entry.Topic] = entry.Score
		if entry.Score > maxScore {
			maxScore = entry.Score
		}
	}
	if maxScore <= 0 {
		return 0
	}

	var boost float64
	for _, topic := range contentTopics {
		if score, ok := byTopic[topic]; ok {
			boost += float64(score) / float64(maxScore) * boostPerTopic
		}
	}

	if boost > MaxInterestBoost {
		boost = MaxInterestBoost
	}
	return boost
}
