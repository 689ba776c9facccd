package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the input and replaces every non-alphanumeric run
// with a single space, so token comparison ignores punctuation.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TokenSet returns the unique tokens of the text longer than minLen runes.
// Text is normalized first.
func TokenSet(s string, minLen int) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range strings.Fields(Normalize(s)) {
		if len([]rune(t)) <= minLen {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// Jaccard computes |A∩B| / |A∪B| over two token sets.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
