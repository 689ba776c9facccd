package match

import (
	"sort"
	"strings"
)

// SkillMatch is the set analysis of resume skills against job requirements.
// Invariant: Matched ∪ Missing equals the normalized job skill set and the
// two are disjoint.
type SkillMatch struct {
	Matched []string
	Missing []string
	Score   float64 // |matched| / |job skills| * 100
}

// AnalyzeSkills compares the two skill collections case-insensitively.
// Output slices are sorted and never nil.
func AnalyzeSkills(resumeSkills, jobSkills []string) SkillMatch {
	have := normalizeSkillSet(resumeSkills)
	want := normalizeSkillSet(jobSkills)

	matched := []string{}
	missing := []string{}
	for skill := range want {
		if _, ok := have[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	sm := SkillMatch{Matched: matched, Missing: missing}
	if len(want) > 0 {
		sm.Score = float64(len(matched)) / float64(len(want)) * 100
	}
	return sm
}

func normalizeSkillSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}
