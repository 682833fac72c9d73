package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTagsToTopics(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "known tags collapse into one bucket",
			tags: []string{"javascript", "react", "webdev"},
			want: []string{TopicTech},
		},
		{
			name: "unknown tags yield nil",
			tags: []string{"unknown", "random", "tags"},
			want: nil,
		},
		{
			name: "normalization strips case and punctuation",
			tags: []string{"#Web-Dev!", "  A.I.  ", "CRYPTO"},
			want: []string{TopicTech, TopicAI, TopicFinance},
		},
		{
			name: "truncates to three in input order",
			tags: []string{"gym", "memes", "travel", "bitcoin", "golang"},
			want: []string{TopicFitness, TopicMemes, TopicLifestyle},
		},
		{
			name: "duplicate buckets deduplicated",
			tags: []string{"python", "rust", "linux", "docker"},
			want: []string{TopicTech},
		},
		{
			name: "empty input",
			tags: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapTagsToTopics(tt.tags))
		})
	}
}

func TestMapTagsToTopicsDeterministic(t *testing.T) {
	tags := []string{"fitness", "defi", "lol", "ux", "startup"}
	first := MapTagsToTopics(tags)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, MapTagsToTopics(tags))
	}
	assert.LessOrEqual(t, len(first), MaxTopicsPerDrop)
}

func TestMergeTopicDictionary(t *testing.T) {
	MergeTopicDictionary(map[string]string{"Sour-Dough": TopicLifestyle, "": TopicTech})

	assert.Equal(t, []string{TopicLifestyle}, MapTagsToTopics([]string{"sourdough"}))
}
