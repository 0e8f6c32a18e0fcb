// Package types provides type definitions for structured data used throughout the skill-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation tiers produced by the embedding matcher.
const (
	RecommendationHighly    = "Highly Recommended"
	RecommendationRecommend = "Recommended"
	RecommendationInterview = "Consider with Interview"
	RecommendationNot       = "Not Recommended"
)

// RecommendationForScore maps a combined 0-1 match score to a recommendation tier.
func RecommendationForScore(score float64) string {
	switch {
	case score >= 0.8:
		return RecommendationHighly
	case score >= 0.6:
		return RecommendationRecommend
	case score >= 0.4:
		return RecommendationInterview
	default:
		return RecommendationNot
	}
}

// MatchResult represents the outcome of scoring one candidate against one job.
// It is constructed fresh per match computation and immutable once produced.
type MatchResult struct {
	CandidateID         string             `json:"candidate_id"`
	JobID               string             `json:"job_id"`
	OverallScore        float64            `json:"overall_score"`
	SkillMatchScore     float64            `json:"skill_match_score"`
	TextSimilarityScore float64            `json:"text_similarity_score"`
	MatchedSkills       map[string]float64 `json:"matched_skills"`
	MissingSkills       []string           `json:"missing_skills"`
	Recommendation      string             `json:"recommendation"`
	Details             *MatchDetails      `json:"details,omitempty"`
}

// MatchDetails carries the explainability breakdown produced by the taxonomy matcher.
type MatchDetails struct {
	SkillMatchRatio   float64                     `json:"skill_match_ratio"`
	ExperienceScore   float64                     `json:"experience_score"`
	ExperienceMatch   bool                        `json:"experience_match"`
	CategoryBreakdown map[string]CategoryCoverage `json:"category_breakdown"`
	Recommendations   []string                    `json:"recommendations,omitempty"`
}

// CategoryCoverage summarizes how well one taxonomy category is covered.
type CategoryCoverage struct {
	Matched  int     `json:"matched"`
	Required int     `json:"required"`
	Coverage float64 `json:"coverage"`
	Weight   float64 `json:"weight"`
}
