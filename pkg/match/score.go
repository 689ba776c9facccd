package match

import (
	"sort"

	"github.com/resumescanner/resume-match/pkg/job"
	"github.com/resumescanner/resume-match/pkg/nlp"
	"github.com/resumescanner/resume-match/pkg/resume"
)

// keywordMinLen drops tokens of this length or shorter from keyword sets.
const keywordMinLen = 3

// Weights is the linear combination applied to the five sub-scores. Tunable
// policy, not business law; DefaultWeights are the documented contract.
type Weights struct {
	Keyword    float64
	Skills     float64
	Semantic   float64
	Experience float64
	Education  float64
}

func DefaultWeights() Weights {
	return Weights{
		Keyword:    0.25,
		Skills:     0.35,
		Semantic:   0.15,
		Experience: 0.15,
		Education:  0.10,
	}
}

// normalized scales the weights to sum to 1 so the overall score stays in
// [0,100] for any positive override. Non-positive sums fall back to defaults.
func (w Weights) normalized() Weights {
	sum := w.Keyword + w.Skills + w.Semantic + w.Experience + w.Education
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Keyword:    w.Keyword / sum,
		Skills:     w.Skills / sum,
		Semantic:   w.Semantic / sum,
		Experience: w.Experience / sum,
		Education:  w.Education / sum,
	}
}

// Scorer combines five independent similarity signals into one explainable
// match. Scoring is a pure function of its inputs.
type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w.normalized()}
}

// Score computes every sub-score, the weighted overall score, the ATS signal
// and the matched/missing skill and keyword sets. Identity fields and the
// recommendation text are left for the caller.
func (s *Scorer) Score(r resume.Resume, j job.Job) Result {
	var res Result

	resumeWords := nlp.TokenSet(r.RawText, keywordMinLen)
	jobWords := nlp.TokenSet(j.Description, keywordMinLen)

	res.KeywordScore = clamp(nlp.Jaccard(resumeWords, jobWords) * 100)
	res.SemanticScore = clamp(semanticScore(res.KeywordScore))
	res.ATSScore = clamp(res.KeywordScore * 0.9)
	res.MatchedKeywords, res.MissingKeywords = splitKeywords(resumeWords, jobWords)

	sm := AnalyzeSkills(r.Skills, j.RequiredSkills)
	res.SkillsScore = clamp(sm.Score)
	res.MatchedSkills = sm.Matched
	res.MissingSkills = sm.Missing

	res.ExperienceScore = clamp(experienceScore(r, j))
	res.EducationScore = clamp(educationScore(r))

	w := s.weights
	res.OverallScore = clamp(res.KeywordScore*w.Keyword +
		res.SkillsScore*w.Skills +
		res.SemanticScore*w.Semantic +
		res.ExperienceScore*w.Experience +
		res.EducationScore*w.Education)

	return res
}

// semanticScore is a scaled keyword signal standing in for a real embedding
// similarity. Extension point: replace with a language-model backed scorer.
func semanticScore(keywordScore float64) float64 {
	return keywordScore * 0.8
}

// experienceScore measures entry count against the job's minimum years.
// Missing inputs score a neutral 50, not zero.
func experienceScore(r resume.Resume, j job.Job) float64 {
	if j.MinExperienceYears == nil || len(r.Experience) == 0 {
		return 50
	}
	required := *j.MinExperienceYears
	if len(r.Experience) >= required {
		return 100
	}
	return float64(len(r.Experience)) / float64(required) * 100
}

// educationScore is a coarse presence signal.
func educationScore(r resume.Resume) float64 {
	if len(r.Education) > 0 {
		return 80
	}
	return 40
}

// splitKeywords returns job-description tokens found in the resume and those
// absent from it, sorted.
func splitKeywords(resumeWords, jobWords map[string]struct{}) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for t := range jobWords {
		if _, ok := resumeWords[t]; ok {
			matched = append(matched, t)
		} else {
			missing = append(missing, t)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
