package util

import (
	"regexp"
	"strconv"
	"strings"
)

var tagRegex = regexp.MustCompile(`#(\S+)`)

// ExtractTags pulls the deduplicated #tag list out of drop content,
// preserving first-seen order.
func ExtractTags(rawContent string) []string {
	matches := tagRegex.FindAllStringSubmatch(rawContent, -1)

	tagSet := make(map[string]struct{})
	var tags []string

	for _, m := range matches {
		if len(m) > 1 {
			tagName := strings.Trim(m[1], ".,!?;:")
			if tagName == "" {
				continue
			}
			if _, exists := tagSet[tagName]; !exists {
				tagSet[tagName] = struct{}{}
				tags = append(tags, tagName)
			}
		}
	}

	return tags
}

// StrSliceToUInt64Slice converts a slice of decimal strings, failing on
// the first bad element.
func StrSliceToUInt64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
