package extract

import (
	"regexp"
	"strings"
)

// Fields holds whatever the heuristics managed to pull out of the raw text.
// Anything that could not be extracted stays zero-valued.
type Fields struct {
	FullName string
	Email    string
	Phone    string
	Skills   []string
}

// FieldExtractor turns plain resume text into structured fields. Kept as an
// interface so a smarter (NLP-based) extractor can replace the heuristic one
// without touching the scoring engine.
type FieldExtractor interface {
	Extract(text string) Fields
}

var rePhone = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

// HeuristicExtractor is a best-effort, line-oriented extractor. It never
// fails: a field it cannot find is simply left unset.
type HeuristicExtractor struct {
	vocab []string
}

func NewHeuristicExtractor(vocab []string) *HeuristicExtractor {
	if len(vocab) == 0 {
		vocab = DefaultSkillVocabulary
	}
	return &HeuristicExtractor{vocab: vocab}
}

func (e *HeuristicExtractor) Extract(text string) Fields {
	var f Fields
	if strings.TrimSpace(text) == "" {
		return f
	}
	lines := strings.Split(text, "\n")
	f.FullName = firstNonBlankLine(lines)
	f.Email = findEmail(lines)
	f.Phone = rePhone.FindString(text)
	f.Skills = e.findSkills(text)
	return f
}

func firstNonBlankLine(lines []string) string {
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			return s
		}
	}
	return ""
}

// findEmail scans lines for the first token containing both '@' and '.',
// stripped down to the characters an address can hold.
func findEmail(lines []string) string {
	for _, line := range lines {
		if !strings.Contains(line, "@") || !strings.Contains(line, ".") {
			continue
		}
		for _, word := range strings.Fields(line) {
			if strings.Contains(word, "@") && strings.Contains(word, ".") {
				return reEmailJunk.ReplaceAllString(word, "")
			}
		}
	}
	return ""
}

var reEmailJunk = regexp.MustCompile(`[^a-zA-Z0-9@.]`)

// findSkills does a case-insensitive substring scan of the whole text against
// the reference vocabulary. Every token found contributes once.
func (e *HeuristicExtractor) findSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]struct{})
	for _, skill := range e.vocab {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		if strings.Contains(lower, key) {
			seen[key] = struct{}{}
			found = append(found, skill)
		}
	}
	return found
}
