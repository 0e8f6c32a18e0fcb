package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skill-matcher/internal/types"
)

func TestPrintJobRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirements(&types.JobRequirements{
		ID:              "job-1",
		Title:           "Backend Engineer",
		ExperienceLevel: "Senior",
		Skills:          []string{"go", "postgresql", "docker"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB REQUIREMENTS")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Senior")
	assert.Contains(t, out, "• go")
	assert.Contains(t, out, "• docker")
}

func TestPrintJobRequirementsNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirements(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobRequirementsTruncatesSkillList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]string, 8)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill-%d", i)
	}
	p.PrintJobRequirements(&types.JobRequirements{ID: "job-1", Skills: skills})

	out := buf.String()
	assert.Contains(t, out, "skill-4")
	assert.NotContains(t, out, "skill-5")
	assert.Contains(t, out, "... and 3 more")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		CandidateID:     "cand-1",
		JobID:           "job-1",
		OverallScore:    0.85,
		SkillMatchScore: 0.9,
		MatchedSkills:   map[string]float64{"go": 1.0, "docker": 0.8},
		MissingSkills:   []string{"kubernetes"},
		Recommendation:  types.RecommendationHighly,
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "cand-1")
	assert.Contains(t, out, "0.85")
	assert.Contains(t, out, "Highly Recommended")
	assert.Contains(t, out, "go (1.00)")
	assert.Contains(t, out, "⚠ kubernetes")
}

func TestPrintMatchResultSortsMatchedSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		CandidateID:   "cand-1",
		JobID:         "job-1",
		MatchedSkills: map[string]float64{"zig": 1.0, "ada": 1.0},
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "ada"), strings.Index(out, "zig"))
}

func TestPrintMatchDetails(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchDetails(&types.MatchDetails{
		SkillMatchRatio: 0.75,
		ExperienceScore: 0.95,
		ExperienceMatch: true,
		CategoryBreakdown: map[string]types.CategoryCoverage{
			"Programming Languages": {Matched: 2, Required: 3, Coverage: 0.67, Weight: 1.0},
		},
		Recommendations: []string{"Develop missing skills: kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH BREAKDOWN")
	assert.Contains(t, out, "0.75")
	assert.Contains(t, out, "Programming Languages: 2/3 (67%)")
	assert.Contains(t, out, "Develop missing skills")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking([]types.RankedCandidate{
		{
			Candidate:  types.Candidate{ID: "cand-1", Name: "Alex", Skills: []string{"go", "docker"}},
			MatchScore: 0.92,
		},
		{
			Candidate:  types.Candidate{ID: "cand-2"},
			MatchScore: 0.41,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED CANDIDATES")
	assert.Contains(t, out, "Total candidates ranked: 2")
	assert.Contains(t, out, "#1  Alex (cand-1)")
	assert.Contains(t, out, "#2  cand-2")
	assert.Contains(t, out, "Score: 0.92")
	assert.Contains(t, out, "Skills: go, docker")
}

func TestPrintRankingEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil)

	assert.Contains(t, buf.String(), "NO CANDIDATES RANKED")
}

func TestPrintRankingTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := make([]types.RankedCandidate, 7)
	for i := range ranked {
		ranked[i] = types.RankedCandidate{
			Candidate:  types.Candidate{ID: fmt.Sprintf("cand-%d", i)},
			MatchScore: float64(7-i) / 10,
		}
	}
	p.PrintRanking(ranked)

	out := buf.String()
	assert.Contains(t, out, "cand-4")
	assert.NotContains(t, out, "#6")
	assert.Contains(t, out, "... and 2 more candidates")
}
