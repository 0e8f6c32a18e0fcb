package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/skill-matcher/internal/taxonomy"
)

const (
	// neutralExperienceScore applies when either side omits experience data.
	neutralExperienceScore = 0.5
	// unparseableExperienceScore applies when the candidate states experience
	// but no year count can be read from it.
	unparseableExperienceScore = 0.3
)

// yearPatterns capture a stated year count from free-text experience
// descriptions ("5 years", "7+ yrs", "experience: 10").
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?`),
	regexp.MustCompile(`(?i)experience:?\s*(\d+)`),
}

// ScoreExperience compares a candidate's stated experience against a job's
// required seniority level and returns a fit score in [0, 1].
//
// A neutral 0.5 is returned when either input is empty, so missing data never
// dominates the overall score. Stated but unparseable experience scores 0.3.
// Otherwise the candidate's years are compared against the expected years for
// the job level: a surplus of up to three years scores 0.95, a larger surplus
// 0.80 (overqualification risk), a shortfall of at most one year 0.70, up to
// three years 0.40, and anything worse 0.10.
func ScoreExperience(candidateExperience, jobLevel string) float64 {
	if strings.TrimSpace(candidateExperience) == "" || strings.TrimSpace(jobLevel) == "" {
		return neutralExperienceScore
	}

	years, ok := ParseYears(candidateExperience)
	if !ok {
		return unparseableExperienceScore
	}

	expected := taxonomy.ExpectedYears(jobLevel)
	switch diff := years - expected; {
	case diff >= 0 && diff <= 3:
		return 0.95
	case diff > 3:
		return 0.80
	case diff >= -1:
		return 0.70
	case diff >= -3:
		return 0.40
	default:
		return 0.10
	}
}

// ParseYears extracts the first stated year count from an experience
// description. The boolean is false when no pattern matches.
func ParseYears(experience string) (int, bool) {
	for _, pattern := range yearPatterns {
		if match := pattern.FindStringSubmatch(experience); match != nil {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			return years, true
		}
	}
	return 0, false
}
