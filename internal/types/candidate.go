// Package types provides type definitions for structured data used throughout the skill-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate represents a candidate record submitted for matching or ranking.
// Skills and Experience are optional; missing fields degrade scores rather than fail.
type Candidate struct {
	ID         string   `json:"id" validate:"required"`
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	ResumeText string   `json:"resume_text,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"` // free text, e.g. "5 years"
}

// JobRequirements represents the job side of a match: required skills plus an
// optional experience level and description text.
type JobRequirements struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

// RankedCandidate is a candidate annotated with its match score and details,
// as returned by batch ranking.
type RankedCandidate struct {
	Candidate
	MatchScore   float64       `json:"match_score"`
	MatchDetails *MatchDetails `json:"match_details,omitempty"`
}

// redactedValue replaces attributes removed by Scrub.
const redactedValue = "[REDACTED]"

// Scrub returns a copy of the candidate with personal identifiers that could
// introduce bias removed before the candidate enters ranking input.
func (c Candidate) Scrub() Candidate {
	scrubbed := c
	if scrubbed.Name != "" {
		scrubbed.Name = redactedValue
	}
	if scrubbed.Email != "" {
		scrubbed.Email = redactedValue
	}
	if scrubbed.Phone != "" {
		scrubbed.Phone = redactedValue
	}
	if scrubbed.Location != "" {
		scrubbed.Location = redactedValue
	}
	return scrubbed
}
