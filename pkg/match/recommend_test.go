package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRecommendations_ExcellentBand(t *testing.T) {
	res := Result{OverallScore: 80}
	GenerateRecommendations(&res)

	assert.Equal(t, "Excellent match! Your profile aligns well with the job requirements.", res.Strengths)
	assert.Equal(t, "Consider applying to this position as you meet most criteria.", res.Recommendation)
	assert.Empty(t, res.Improvements)
}

func TestGenerateRecommendations_GoodBand(t *testing.T) {
	res := Result{OverallScore: 79.99}
	GenerateRecommendations(&res)

	assert.Equal(t, "Good match with some areas for improvement.", res.Strengths)
	assert.Equal(t, "Consider strengthening missing skills before applying.", res.Recommendation)

	edge := Result{OverallScore: 60}
	GenerateRecommendations(&edge)
	assert.Equal(t, "Good match with some areas for improvement.", edge.Strengths)
}

func TestGenerateRecommendations_LowBandNamesMissingSkills(t *testing.T) {
	res := Result{
		OverallScore:  55,
		MissingSkills: []string{"kubernetes", "terraform"},
	}
	GenerateRecommendations(&res)

	assert.Equal(t, "Significant skill gap identified. ", res.Improvements)
	assert.Contains(t, res.Recommendation, "kubernetes")
	assert.NotContains(t, res.Strengths, "Excellent")
}

func TestGenerateRecommendations_LowBandCapsAtThreeSkills(t *testing.T) {
	res := Result{
		OverallScore:  10,
		MissingSkills: []string{"aws", "docker", "go", "react"},
	}
	GenerateRecommendations(&res)

	assert.Equal(t, "Focus on developing key skills: aws, docker, go", res.Recommendation)
	assert.NotContains(t, res.Recommendation, "react")
}

func TestGenerateRecommendations_LowBandNoMissingSkills(t *testing.T) {
	res := Result{OverallScore: 30}
	GenerateRecommendations(&res)

	assert.True(t, strings.HasPrefix(res.Recommendation, "Focus on developing key skills:"))
}
