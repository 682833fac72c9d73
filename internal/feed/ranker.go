package feed

import (
	"sort"
	"time"
)

// Candidate is a drop up for ranking: the plain data the scorer reads,
// nothing framework-shaped.
type Candidate struct {
	ID         uint64
	AuthorID   uint64
	Topics     []string
	Engagement int64
	CreatedAt  time.Time
}

// RankedDrop is a candidate with its final feed score attached.
type RankedDrop struct {
	Candidate
	Score float64
}

// Rank scores and orders candidates for one viewing user:
//
//	score = engagement * timeDecay * engagementDecay + interestBoost
//
// The decay product is multiplicative and floored above zero, the boost is
// additive and capped, so personalization can lift niche drops past
// slightly-more-popular generic ones but can never surface dead content
// over live, popular content. Ties go to the newer drop.
func Rank(candidates []Candidate, interests []TopicScore, now time.Time) []RankedDrop {
	ranked := make([]RankedDrop, 0, len(candidates))
	for _, c := range candidates {
		base := float64(c.Engagement) *
			TimeDecay(c.CreatedAt, now) *
			EngagementDecay(c.Engagement, c.CreatedAt, now)

		ranked = append(ranked, RankedDrop{
			Candidate: c,
			Score:     base + InterestBoost(c.Topics, interests),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}
