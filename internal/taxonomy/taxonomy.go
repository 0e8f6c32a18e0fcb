// Package taxonomy provides the static skill reference data used by extraction
// and matching: categorized canonical skills, synonym lookup, category
// importance weights, and the experience-level table. All data is immutable
// after construction and injected into the components that consume it.
package taxonomy

import (
	"fmt"
	"strings"
)

// DefaultCategoryWeight is used for categories without an explicit importance weight.
const DefaultCategoryWeight = 0.5

// Category holds one taxonomy category: an ordered list of canonical skill
// names and the category's importance weight for coverage scoring.
type Category struct {
	Name   string
	Skills []string
	Weight float64
}

// Taxonomy is the categorized canonical skill dictionary. Construct it once at
// process start (Default or Load) and treat it as read-only afterwards.
type Taxonomy struct {
	categories []Category
	skillIndex map[string]string // lowercased skill -> category name
}

// New builds a Taxonomy from categories. Returns an error if no category
// contains any skill, since a matcher without reference data cannot run.
func New(categories []Category) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: categories,
		skillIndex: make(map[string]string),
	}
	for i := range t.categories {
		if t.categories[i].Weight == 0 {
			t.categories[i].Weight = DefaultCategoryWeight
		}
		for _, skill := range t.categories[i].Skills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			if _, exists := t.skillIndex[key]; !exists {
				t.skillIndex[key] = t.categories[i].Name
			}
		}
	}
	if len(t.skillIndex) == 0 {
		return nil, fmt.Errorf("taxonomy contains no skills")
	}
	return t, nil
}

// Categories returns the ordered category list.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// Contains reports whether the skill (case-insensitive) is a canonical taxonomy entry.
func (t *Taxonomy) Contains(skill string) bool {
	_, ok := t.skillIndex[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// CategoryOf returns the category name a canonical skill belongs to.
func (t *Taxonomy) CategoryOf(skill string) (string, bool) {
	name, ok := t.skillIndex[strings.ToLower(strings.TrimSpace(skill))]
	return name, ok
}

// Len returns the number of distinct canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.skillIndex)
}

// Default returns the built-in technical skill taxonomy.
func Default() *Taxonomy {
	t, err := New([]Category{
		{
			Name: "programming_languages",
			Skills: []string{
				"python", "java", "javascript", "c++", "c#", "ruby", "php", "go", "rust",
				"typescript", "swift", "kotlin", "scala", "r", "matlab", "perl",
			},
			Weight: 1.0,
		},
		{
			Name: "web_technologies",
			Skills: []string{
				"html", "css", "react", "angular", "vue.js", "node.js", "express.js",
				"django", "flask", "spring boot", "asp.net", "laravel", "ruby on rails",
			},
			Weight: 0.9,
		},
		{
			Name: "databases",
			Skills: []string{
				"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra", "dynamodb",
				"oracle", "sql server", "sqlite", "elasticsearch",
			},
			Weight: 0.8,
		},
		{
			Name: "cloud_platforms",
			Skills: []string{
				"aws", "azure", "google cloud", "gcp", "heroku", "digitalocean", "linode",
			},
			Weight: 0.9,
		},
		{
			Name: "devops_tools",
			Skills: []string{
				"docker", "kubernetes", "jenkins", "gitlab ci", "travis ci", "circleci",
				"terraform", "ansible", "puppet", "chef",
			},
			Weight: 0.8,
		},
		{
			Name:   "version_control",
			Skills: []string{"git", "svn", "mercurial"},
			Weight: 0.6,
		},
		{
			Name: "data_science",
			Skills: []string{
				"machine learning", "data science", "pandas", "numpy", "scikit-learn",
				"tensorflow", "pytorch",
			},
		},
		{
			Name: "soft_skills",
			Skills: []string{
				"communication", "leadership", "problem solving", "teamwork", "agile",
				"scrum", "project management", "time management",
			},
			Weight: 0.7,
		},
	})
	if err != nil {
		// Default data is compile-time constant; this cannot happen.
		panic(err)
	}
	return t
}

// expectedYears maps job experience levels to typical years of experience.
var expectedYears = map[string]int{
	"Entry":     0,
	"Junior":    1,
	"Mid-Level": 3,
	"Senior":    5,
	"Lead":      7,
	"Principal": 10,
}

// defaultExpectedYears is used for unrecognized levels (treated as Mid-Level).
const defaultExpectedYears = 3

// ExpectedYears returns the typical years of experience for a job level.
// Unrecognized levels fall back to the Mid-Level expectation.
func ExpectedYears(level string) int {
	if years, ok := expectedYears[level]; ok {
		return years
	}
	return defaultExpectedYears
}
