package categorizer

import "strings"

// radicalLen is how many leading characters of an accent-stripped keyword
// form its radical for crude morphological matching.
const radicalLen = 4

// matchTier tests one way a keyword can be considered present in the
// search text.
type matchTier struct {
	name   string
	weight float64
	match  func(r *Rules, keyword, text string) bool
}

// matchTiers are evaluated in priority order and only the first hit
// counts, so a keyword never scores twice. Adding a tier means appending
// here; the scoring engine does not change.
var matchTiers = []matchTier{
	{name: "exata", weight: 1.0, match: matchExact},
	{name: "variacao", weight: 0.8, match: matchVariation},
	{name: "relacionada", weight: 0.5, match: matchRelated},
}

func matchExact(_ *Rules, keyword, text string) bool {
	return strings.Contains(text, keyword)
}

// matchVariation compares accent-stripped forms, then falls back to the
// keyword's radical. The radical is only used when it is at least three
// characters long, so very short keywords cannot match half the dictionary.
func matchVariation(_ *Rules, keyword, text string) bool {
	strippedKeyword := StripAccents(keyword)
	strippedText := StripAccents(text)

	if strings.Contains(strippedText, strippedKeyword) {
		return true
	}

	radical := []rune(strippedKeyword)
	if len(radical) > radicalLen {
		radical = radical[:radicalLen]
	}
	if len(radical) >= 3 && strings.Contains(strippedText, string(radical)) {
		return true
	}
	return false
}

// matchRelated looks the raw keyword up in the synonym table and reports
// whether any related surface form appears in the text. This is how
// "escola" implies Educação for an event that never says "educação".
func matchRelated(r *Rules, keyword, text string) bool {
	for _, related := range r.Synonyms[keyword] {
		if strings.Contains(text, related) {
			return true
		}
	}
	return false
}
