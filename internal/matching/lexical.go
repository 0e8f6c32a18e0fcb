// Package matching implements the candidate-job scoring signals and the two
// matcher strategies that combine them: an embedding+overlap matcher producing
// a 0-1 score with a four-tier recommendation, and a taxonomy matcher
// producing a 0-100 score with a per-category breakdown.
package matching

import (
	"strings"
)

// MatchSkills computes the skill-overlap score between normalized candidate
// and job skill sets, along with the best-match strength per job skill.
//
// For every job skill the best-matching candidate skill is found: exact
// equality scores 1.0, otherwise the maximum token-level Jaccard similarity
// over all candidate skills. The aggregate score is the arithmetic mean of
// per-skill strengths. Empty inputs return 0.0 and an empty map, never an error.
func MatchSkills(candidateSkills, jobSkills []string) (float64, map[string]float64) {
	if len(candidateSkills) == 0 || len(jobSkills) == 0 {
		return 0.0, map[string]float64{}
	}

	perSkill := make(map[string]float64, len(jobSkills))
	total := 0.0

	for _, jobSkill := range jobSkills {
		best := 0.0
		for _, candidateSkill := range candidateSkills {
			score := 0.0
			if jobSkill == candidateSkill {
				score = 1.0
			} else {
				score = tokenJaccard(jobSkill, candidateSkill)
			}
			if score > best {
				best = score
			}
		}
		perSkill[jobSkill] = best
		total += best
	}

	return total / float64(len(jobSkills)), perSkill
}

// MissingSkills returns the job skills that have no exact (case-insensitive)
// counterpart in the candidate set. It is computed by set difference,
// independently of the partial-credit strengths from MatchSkills.
func MissingSkills(candidateSkills, jobSkills []string) []string {
	have := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[strings.ToLower(skill)] = struct{}{}
	}

	missing := make([]string, 0)
	for _, skill := range jobSkills {
		if _, ok := have[strings.ToLower(skill)]; !ok {
			missing = append(missing, skill)
		}
	}
	return missing
}

// tokenJaccard returns the Jaccard similarity between the word sets of two
// skill strings: intersection size over union size, 0 when either has no words.
func tokenJaccard(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		set[word] = struct{}{}
	}
	return set
}
