package match

import "strings"

// Recommendation bands over the overall score. Evaluated top-down, first
// match wins.
const (
	excellentThreshold = 80
	goodThreshold      = 60
)

// GenerateRecommendations fills the free-text guidance on an already-scored
// result from its overall score and missing skills.
func GenerateRecommendations(res *Result) {
	switch {
	case res.OverallScore >= excellentThreshold:
		res.Strengths = "Excellent match! Your profile aligns well with the job requirements."
		res.Recommendation = "Consider applying to this position as you meet most criteria."
	case res.OverallScore >= goodThreshold:
		res.Strengths = "Good match with some areas for improvement."
		res.Recommendation = "Consider strengthening missing skills before applying."
	default:
		res.Improvements = "Significant skill gap identified. "
		rec := "Focus on developing key skills: "
		if len(res.MissingSkills) > 0 {
			top := res.MissingSkills
			if len(top) > 3 {
				top = top[:3]
			}
			rec += strings.Join(top, ", ")
		}
		res.Recommendation = rec
	}
}
