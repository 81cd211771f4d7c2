package categorizer

import (
	"strings"

	"github.com/rajindersingh041/agenda-congresso/internal/models"
)

// SplitKeywords parses an area's comma-separated keyword list: each entry
// trimmed and lower-cased, empty entries dropped.
func SplitKeywords(csv string) []string {
	parts := strings.Split(csv, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		kw := strings.ToLower(strings.TrimSpace(p))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Score computes the relevance of one area for an already-normalized
// search text. Each keyword contributes the weight of the first match
// tier it satisfies; the sum is divided by the keyword count, keeping the
// result in [0, 1]. An area with no usable keywords scores 0 and can
// therefore never win.
func Score(rules *Rules, text string, area models.Area) float64 {
	keywords := SplitKeywords(area.Keywords)
	if len(keywords) == 0 {
		return 0
	}

	var sum float64
	for _, kw := range keywords {
		for _, tier := range matchTiers {
			if tier.match(rules, kw, text) {
				sum += tier.weight
				break
			}
		}
	}
	return sum / float64(len(keywords))
}
