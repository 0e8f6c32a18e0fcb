package matching

import (
	"math"
	"strings"

	"github.com/jonathan/skill-matcher/internal/taxonomy"
	"github.com/jonathan/skill-matcher/internal/types"
)

// AnalyzeCategories groups the job's required skills by taxonomy category and
// reports per-category coverage by the candidate. Job skills outside the
// taxonomy are ignored; only categories with at least one required skill
// appear in the breakdown.
func AnalyzeCategories(tax *taxonomy.Taxonomy, candidateSkills, jobSkills []string) map[string]types.CategoryCoverage {
	have := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[strings.ToLower(skill)] = struct{}{}
	}

	weights := make(map[string]float64, len(tax.Categories()))
	for _, category := range tax.Categories() {
		weights[category.Name] = category.Weight
	}

	breakdown := make(map[string]types.CategoryCoverage)
	for _, jobSkill := range jobSkills {
		categoryName, ok := tax.CategoryOf(jobSkill)
		if !ok {
			continue
		}
		coverage := breakdown[categoryName]
		coverage.Required++
		if _, matched := have[strings.ToLower(jobSkill)]; matched {
			coverage.Matched++
		}
		coverage.Weight = weights[categoryName]
		breakdown[categoryName] = coverage
	}

	for name, coverage := range breakdown {
		coverage.Coverage = float64(coverage.Matched) / float64(coverage.Required)
		breakdown[name] = coverage
	}
	return breakdown
}

// WeightedCategoryScore collapses a category breakdown into a single score in
// [0, 1]: the coverage of each category weighted by its importance. An empty
// breakdown (no required skill mapped to any category) scores a neutral 0.5.
func WeightedCategoryScore(breakdown map[string]types.CategoryCoverage) float64 {
	if len(breakdown) == 0 {
		return 0.5
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for _, coverage := range breakdown {
		weightedSum += coverage.Coverage * coverage.Weight
		weightTotal += coverage.Weight
	}
	if weightTotal == 0 {
		return 0.5
	}
	return weightedSum / weightTotal
}

// diminishingRatio damps skill-match ratios above 1.0 logarithmically so that
// over-stuffed skill lists cannot inflate the base score linearly.
func diminishingRatio(ratio float64) float64 {
	if ratio <= 1.0 {
		return ratio
	}
	return 1.0 + math.Log(ratio)
}
