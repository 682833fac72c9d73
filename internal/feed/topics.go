package feed

import "strings"

// MaxTopicsPerDrop caps how many topic buckets a single drop can carry.
const MaxTopicsPerDrop = 3

// Topic buckets. Free-text tags are classified into this closed set;
// anything unknown is dropped.
const (
	TopicTech      = "Tech"
	TopicAI        = "AI"
	TopicBusiness  = "Business"
	TopicDesign    = "Design"
	TopicFitness   = "Fitness"
	TopicGaming    = "Gaming"
	TopicFinance   = "Finance"
	TopicLifestyle = "Lifestyle"
	TopicMemes     = "Memes"
)

// topicDictionary maps normalized tags to topic buckets. Kept as a plain
// lookup table so new vocabulary can be merged in from config without
// touching code.
var topicDictionary = map[string]string{
	// Tech
	"javascript": TopicTech, "typescript": TopicTech, "python": TopicTech,
	"golang": TopicTech, "go": TopicTech, "rust": TopicTech, "java": TopicTech,
	"react": TopicTech, "vue": TopicTech, "angular": TopicTech,
	"nodejs": TopicTech, "webdev": TopicTech, "coding": TopicTech,
	"programming": TopicTech, "developer": TopicTech, "software": TopicTech,
	"opensource": TopicTech, "linux": TopicTech, "devops": TopicTech,
	"cloud": TopicTech, "docker": TopicTech, "kubernetes": TopicTech,
	"tech": TopicTech, "technology": TopicTech,

	// AI
	"ai": TopicAI, "artificialintelligence": TopicAI, "machinelearning": TopicAI,
	"ml": TopicAI, "deeplearning": TopicAI, "neuralnetworks": TopicAI,
	"llm": TopicAI, "chatgpt": TopicAI, "genai": TopicAI, "datascience": TopicAI,

	// Business
	"business": TopicBusiness, "startup": TopicBusiness, "startups": TopicBusiness,
	"entrepreneur": TopicBusiness, "entrepreneurship": TopicBusiness,
	"marketing": TopicBusiness, "sales": TopicBusiness, "ecommerce": TopicBusiness,
	"saas": TopicBusiness, "leadership": TopicBusiness, "productivity": TopicBusiness,

	// Design
	"design": TopicDesign, "ux": TopicDesign, "ui": TopicDesign,
	"uxdesign": TopicDesign, "uidesign": TopicDesign, "figma": TopicDesign,
	"graphicdesign": TopicDesign, "webdesign": TopicDesign,
	"typography": TopicDesign, "branding": TopicDesign, "illustration": TopicDesign,

	// Fitness
	"fitness": TopicFitness, "gym": TopicFitness, "workout": TopicFitness,
	"health": TopicFitness, "running": TopicFitness, "yoga": TopicFitness,
	"nutrition": TopicFitness, "bodybuilding": TopicFitness,
	"wellness": TopicFitness, "cardio": TopicFitness,

	// Gaming
	"gaming": TopicGaming, "games": TopicGaming, "gamer": TopicGaming,
	"esports": TopicGaming, "videogames": TopicGaming, "playstation": TopicGaming,
	"xbox": TopicGaming, "nintendo": TopicGaming, "steam": TopicGaming,
	"twitch": TopicGaming, "minecraft": TopicGaming,

	// Finance
	"finance": TopicFinance, "investing": TopicFinance, "stocks": TopicFinance,
	"crypto": TopicFinance, "bitcoin": TopicFinance, "ethereum": TopicFinance,
	"trading": TopicFinance, "money": TopicFinance, "economy": TopicFinance,
	"personalfinance": TopicFinance, "defi": TopicFinance,

	// Lifestyle
	"lifestyle": TopicLifestyle, "travel": TopicLifestyle, "food": TopicLifestyle,
	"fashion": TopicLifestyle, "photography": TopicLifestyle,
	"music": TopicLifestyle, "art": TopicLifestyle, "books": TopicLifestyle,
	"coffee": TopicLifestyle, "minimalism": TopicLifestyle,

	// Memes
	"memes": TopicMemes, "meme": TopicMemes, "funny": TopicMemes,
	"humor": TopicMemes, "lol": TopicMemes, "comedy": TopicMemes,
	"jokes": TopicMemes, "shitpost": TopicMemes,
}

// MergeTopicDictionary adds or overrides dictionary entries, normalizing
// the tag side the same way lookups do. Used to load the `feed.topics`
// config section at startup.
func MergeTopicDictionary(extra map[string]string) {
	for tag, topic := range extra {
		normalized := normalizeTag(tag)
		if normalized == "" || topic == "" {
			continue
		}
		topicDictionary[normalized] = topic
	}
}

// normalizeTag lowercases a tag and strips everything that is not a
// letter or digit, so "#Web-Dev!" and "webdev" hit the same entry.
func normalizeTag(tag string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(tag) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MapTagsToTopics classifies free-text tags into at most MaxTopicsPerDrop
// distinct topic buckets, preserving first-seen input order. Unknown tags
// contribute nothing; empty and all-unknown inputs both yield nil, so a
// topicless drop always stores the same JSON null.
func MapTagsToTopics(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, MaxTopicsPerDrop)
	var topics []string

	for _, tag := range tags {
		topic, ok := topicDictionary[normalizeTag(tag)]
		if !ok {
			continue
		}
		if _, dup := seen[topic]; dup {
			continue
		}
		seen[topic] = struct{}{}
		topics = append(topics, topic)
		if len(topics) >= MaxTopicsPerDrop {
			break
		}
	}

	return topics
}
