// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/skill-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirements outputs a human-readable summary of the job requirements.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:        %s\n", job.ID))
	if job.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:      %s\n", job.Title))
	}
	if job.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:      %s\n", job.ExperienceLevel))
	}
	sb.WriteString("\n")

	if len(job.Skills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Skills[i]))
		}
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the scores and skill breakdown of one match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", result.CandidateID))
	sb.WriteString(fmt.Sprintf("Job:        %s\n", result.JobID))
	sb.WriteString(fmt.Sprintf("Overall:    %.2f\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:     %.2f\n", result.SkillMatchScore))
	if result.TextSimilarityScore > 0 {
		sb.WriteString(fmt.Sprintf("Semantic:   %.2f\n", result.TextSimilarityScore))
	}
	sb.WriteString(fmt.Sprintf("Verdict:    %s\n", result.Recommendation))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString("\nMatched Skills:\n")
		names := make([]string, 0, len(result.MatchedSkills))
		for name := range result.MatchedSkills {
			names = append(names, name)
		}
		sort.Strings(names)

		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", names[i], result.MatchedSkills[names[i]]))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		count := min(len(result.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.MissingSkills[i]))
		}
		if len(result.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchDetails outputs the taxonomy matcher's explainability breakdown.
func (p *Printer) PrintMatchDetails(details *types.MatchDetails) {
	if details == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill ratio:     %.2f\n", details.SkillMatchRatio))
	sb.WriteString(fmt.Sprintf("Experience:      %.2f", details.ExperienceScore))
	if details.ExperienceMatch {
		sb.WriteString(" ✓")
	}
	sb.WriteString("\n")

	if len(details.CategoryBreakdown) > 0 {
		sb.WriteString("\nCategory Coverage:\n")
		names := make([]string, 0, len(details.CategoryBreakdown))
		for name := range details.CategoryBreakdown {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			cov := details.CategoryBreakdown[name]
			sb.WriteString(fmt.Sprintf("  %s: %d/%d (%.0f%%)\n",
				name, cov.Matched, cov.Required, cov.Coverage*100))
		}
	}

	if len(details.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(details.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := details.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(details.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(details.Recommendations)-3))
		}
	}

	p.printBox("MATCH BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N ranked candidates with scores.
func (p *Printer) PrintRanking(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CANDIDATES RANKED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		candidate := ranked[i]
		label := candidate.ID
		if candidate.Name != "" {
			label = fmt.Sprintf("%s (%s)", candidate.Name, candidate.ID)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", candidate.MatchScore))
		if candidate.MatchDetails != nil {
			sb.WriteString(fmt.Sprintf(" (skills: %.2f)", candidate.MatchDetails.SkillMatchRatio))
		}
		sb.WriteString("\n")
		if len(candidate.Skills) > 0 {
			skills := strings.Join(candidate.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}
