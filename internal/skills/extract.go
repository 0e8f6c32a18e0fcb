// Package skills provides skill extraction from free text and normalization
// of raw skill mentions to canonical identifiers.
package skills

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/skill-matcher/internal/entities"
	"github.com/jonathan/skill-matcher/internal/taxonomy"
)

const (
	// minMentionLength and maxMentionLength bound tokens captured from
	// explicit skill declarations ("skills: a, b, c").
	minMentionLength = 3
	maxMentionLength = 29

	// maxEntityLength bounds entity spans considered as skill candidates.
	maxEntityLength = 30
)

// declarationPatterns capture explicit skill declarations in resumes and
// job descriptions. Each pattern's first group holds a separator-delimited list.
var declarationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:expertise|experience|skilled|proficient)\s+(?:in|with)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)\b(?:skills|technologies|tools|languages)(?:\s+used)?:\s*([^.!?]+)`),
	regexp.MustCompile(`(?i)\b(?:programming|coding)\s+(?:languages?|skills?):\s*([^.!?]+)`),
}

// listSeparators splits declared skill lists on common separators.
var listSeparators = regexp.MustCompile(`[,;|&\n]+`)

// Extractor pulls raw skill mentions out of free text using taxonomy lookup,
// optional named-entity cues, and declaration patterns. The taxonomy is
// injected at construction and never mutated; the recognizer may be nil.
type Extractor struct {
	taxonomy   *taxonomy.Taxonomy
	recognizer entities.Recognizer
}

// NewExtractor creates an Extractor. Pass a nil recognizer to extract with
// taxonomy and pattern strategies only.
func NewExtractor(tax *taxonomy.Taxonomy, recognizer entities.Recognizer) *Extractor {
	return &Extractor{
		taxonomy:   tax,
		recognizer: recognizer,
	}
}

// Extract returns the deduplicated union of skill mentions found by all
// strategies, sorted for deterministic output. Empty text yields an empty
// slice; extraction never fails.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	textLower := strings.ToLower(text)
	found := make(map[string]struct{})

	// Strategy 1: taxonomy dictionary scan with token-boundary containment.
	for _, category := range e.taxonomy.Categories() {
		for _, skill := range category.Skills {
			if containsAtTokenBoundary(textLower, strings.ToLower(skill)) {
				found[strings.ToLower(skill)] = struct{}{}
			}
		}
	}

	// Strategy 2: named-entity cues intersected against the taxonomy.
	// Recognition is a precision filter; backend failure degrades to the
	// remaining strategies instead of aborting extraction.
	if e.recognizer != nil {
		ents, err := e.recognizer.Entities(ctx, text)
		if err != nil {
			log.Printf("entity recognition unavailable, continuing without it: %v", err)
		}
		for _, ent := range ents {
			candidate := strings.ToLower(strings.TrimSpace(ent.Text))
			if candidate == "" || len(candidate) >= maxEntityLength {
				continue
			}
			if e.matchesTaxonomy(candidate) {
				found[candidate] = struct{}{}
			}
		}
	}

	// Strategy 3: explicit declaration capture.
	for _, pattern := range declarationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			for _, part := range listSeparators.Split(match[1], -1) {
				part = strings.TrimSpace(part)
				if len(part) >= minMentionLength && len(part) <= maxMentionLength {
					found[part] = struct{}{}
				}
			}
		}
	}

	mentions := make([]string, 0, len(found))
	for mention := range found {
		mentions = append(mentions, mention)
	}
	sort.Strings(mentions)
	return mentions
}

// matchesTaxonomy reports whether the candidate equals a taxonomy skill or is
// contained in one (e.g. entity "spring" against taxonomy "spring boot").
func (e *Extractor) matchesTaxonomy(candidate string) bool {
	if e.taxonomy.Contains(candidate) {
		return true
	}
	for _, category := range e.taxonomy.Categories() {
		for _, skill := range category.Skills {
			if strings.Contains(strings.ToLower(skill), candidate) {
				return true
			}
		}
	}
	return false
}

// containsAtTokenBoundary reports whether needle occurs in haystack with
// non-alphanumeric characters (or string edges) on both sides. This keeps
// "java" from matching inside "javascript" while still allowing multi-word
// and symbol-bearing skills ("node.js", "c++") to match.
func containsAtTokenBoundary(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(needle)

		beforeOK := start == 0 || !isWordByte(haystack[start-1])
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}

		from = start + 1
		if from >= len(haystack) {
			return false
		}
	}
}

// isWordByte reports whether b is an ASCII letter or digit. Skill names in
// the taxonomy are ASCII, so byte-level boundary checks are sufficient.
func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}
