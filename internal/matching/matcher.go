package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/skill-matcher/internal/skills"
	"github.com/jonathan/skill-matcher/internal/taxonomy"
	"github.com/jonathan/skill-matcher/internal/types"
)

// Matcher scores one candidate against one job. Implementations never fail:
// missing or malformed input degrades the score instead of producing an error,
// so callers always receive a well-formed result.
type Matcher interface {
	Score(ctx context.Context, candidate types.Candidate, job types.JobRequirements) types.MatchResult
}

// Weights for the embedding matcher's combined 0-1 score.
const (
	skillWeight    = 0.7
	semanticWeight = 0.3
)

// Weights for the taxonomy matcher's 0-100 score.
const (
	taxSkillWeight      = 0.4
	taxExperienceWeight = 0.3
	taxCategoryWeight   = 0.3
)

// containmentStrength is the partial credit for a containment match between a
// candidate skill and a job skill ("spring" against "spring boot").
const containmentStrength = 0.8

// maxRecommendedMissing caps how many missing skills a recommendation names.
const maxRecommendedMissing = 5

// EmbeddingMatcher combines skill overlap with embedding-based text similarity
// into a score in [0, 1] and a four-tier hiring recommendation. Candidate
// skills are taken from the structured skill list plus mentions extracted
// from the resume text.
type EmbeddingMatcher struct {
	extractor  *skills.Extractor
	normalizer *skills.Normalizer
	semantic   *SemanticScorer
}

// NewEmbeddingMatcher creates an EmbeddingMatcher from its scoring components.
func NewEmbeddingMatcher(extractor *skills.Extractor, normalizer *skills.Normalizer, semantic *SemanticScorer) *EmbeddingMatcher {
	return &EmbeddingMatcher{
		extractor:  extractor,
		normalizer: normalizer,
		semantic:   semantic,
	}
}

// Score computes the combined match: 70% skill overlap, 30% text similarity.
// All reported scores are rounded to three decimals.
func (m *EmbeddingMatcher) Score(ctx context.Context, candidate types.Candidate, job types.JobRequirements) types.MatchResult {
	mentions := m.extractor.Extract(ctx, candidate.ResumeText)
	candidateSkills := m.normalizer.Normalize(append(mentions, candidate.Skills...))
	jobSkills := m.normalizer.Normalize(job.Skills)

	skillScore, matched := MatchSkills(candidateSkills, jobSkills)
	textSimilarity := m.semantic.Similarity(ctx, candidate.ResumeText, job.Description)
	overall := round3(skillWeight*skillScore + semanticWeight*textSimilarity)

	return types.MatchResult{
		CandidateID:         candidate.ID,
		JobID:               job.ID,
		OverallScore:        overall,
		SkillMatchScore:     round3(skillScore),
		TextSimilarityScore: round3(textSimilarity),
		MatchedSkills:       matched,
		MissingSkills:       MissingSkills(candidateSkills, jobSkills),
		Recommendation:      types.RecommendationForScore(overall),
	}
}

// TaxonomyMatcher scores against the structured candidate profile: skill
// overlap with partial containment credit, experience fit, and weighted
// category coverage combine into a 0-100 score with a full explainability
// breakdown.
type TaxonomyMatcher struct {
	taxonomy   *taxonomy.Taxonomy
	normalizer *skills.Normalizer
}

// NewTaxonomyMatcher creates a TaxonomyMatcher over the given taxonomy and normalizer.
func NewTaxonomyMatcher(tax *taxonomy.Taxonomy, normalizer *skills.Normalizer) *TaxonomyMatcher {
	return &TaxonomyMatcher{
		taxonomy:   tax,
		normalizer: normalizer,
	}
}

// Score computes the weighted 0-100 match: 40% skill ratio (log-damped above
// 1.0), 30% experience fit, 30% weighted category coverage, clamped to 100.
func (m *TaxonomyMatcher) Score(ctx context.Context, candidate types.Candidate, job types.JobRequirements) types.MatchResult {
	_ = ctx

	candidateSkills := m.normalizer.Normalize(candidate.Skills)
	jobSkills := m.normalizer.Normalize(job.Skills)

	matched, missing := findSkillMatches(candidateSkills, jobSkills)
	ratio := 0.0
	if len(jobSkills) > 0 {
		ratio = float64(len(matched)) / float64(len(jobSkills))
	}

	experienceScore := ScoreExperience(candidate.Experience, job.ExperienceLevel)
	breakdown := AnalyzeCategories(m.taxonomy, candidateSkills, jobSkills)
	categoryScore := WeightedCategoryScore(breakdown)

	overall := diminishingRatio(ratio)*100*taxSkillWeight +
		experienceScore*100*taxExperienceWeight +
		categoryScore*100*taxCategoryWeight
	overall = math.Min(overall, 100)

	return types.MatchResult{
		CandidateID:         candidate.ID,
		JobID:               job.ID,
		OverallScore:        round2(overall),
		SkillMatchScore:     round3(ratio),
		TextSimilarityScore: 0,
		MatchedSkills:       matched,
		MissingSkills:       missing,
		Recommendation:      types.RecommendationForScore(overall / 100),
		Details: &types.MatchDetails{
			SkillMatchRatio:   round3(ratio),
			ExperienceScore:   round3(experienceScore),
			ExperienceMatch:   experienceScore > 0.7,
			CategoryBreakdown: breakdown,
			Recommendations:   buildRecommendations(missing, experienceScore, breakdown),
		},
	}
}

// findSkillMatches pairs job skills with candidate skills. Exact matches score
// 1.0; containment in either direction earns partial credit. Job skills with
// no counterpart are reported as missing.
func findSkillMatches(candidateSkills, jobSkills []string) (map[string]float64, []string) {
	matched := make(map[string]float64)
	missing := make([]string, 0)

	for _, jobSkill := range jobSkills {
		best := 0.0
		for _, candidateSkill := range candidateSkills {
			switch {
			case jobSkill == candidateSkill:
				best = 1.0
			case best < containmentStrength &&
				(strings.Contains(candidateSkill, jobSkill) || strings.Contains(jobSkill, candidateSkill)):
				best = containmentStrength
			}
			if best == 1.0 {
				break
			}
		}
		if best > 0 {
			matched[jobSkill] = best
		} else {
			missing = append(missing, jobSkill)
		}
	}
	return matched, missing
}

// buildRecommendations produces human-readable improvement suggestions from
// the score components.
func buildRecommendations(missing []string, experienceScore float64, breakdown map[string]types.CategoryCoverage) []string {
	recommendations := make([]string, 0, 3)

	if len(missing) > 0 {
		named := missing
		if len(named) > maxRecommendedMissing {
			named = named[:maxRecommendedMissing]
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Develop missing skills: %s", strings.Join(named, ", ")))
	}
	if experienceScore < 0.5 {
		recommendations = append(recommendations,
			"Experience falls short of the role's expected seniority")
	}
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if coverage := breakdown[name]; coverage.Weight >= 0.9 && coverage.Coverage < 0.5 {
			recommendations = append(recommendations,
				fmt.Sprintf("Strengthen coverage of %s, a high-priority area for this role", name))
		}
	}
	return recommendations
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
