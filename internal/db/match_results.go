package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skill-matcher/internal/types"
)

// StoredMatch is a persisted match result with storage metadata.
type StoredMatch struct {
	ID        uuid.UUID         `json:"id"`
	Strategy  string            `json:"strategy"`
	Result    types.MatchResult `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}

// SaveMatchResult stores a match result computed by the given strategy and
// returns the new record's ID.
func (db *DB) SaveMatchResult(ctx context.Context, strategy string, result types.MatchResult) (uuid.UUID, error) {
	matchedJSON, err := json.Marshal(result.MatchedSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal matched skills: %w", err)
	}
	missingJSON, err := json.Marshal(result.MissingSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}
	var detailsJSON []byte
	if result.Details != nil {
		detailsJSON, err = json.Marshal(result.Details)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal details: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_results
		 (candidate_id, job_id, strategy, overall_score, skill_match_score,
		  text_similarity_score, matched_skills, missing_skills, recommendation, details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		result.CandidateID, result.JobID, strategy, result.OverallScore,
		result.SkillMatchScore, result.TextSimilarityScore,
		matchedJSON, missingJSON, result.Recommendation, detailsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatchResult retrieves a stored match by ID. Returns nil when no record exists.
func (db *DB) GetMatchResult(ctx context.Context, id uuid.UUID) (*StoredMatch, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, strategy, overall_score, skill_match_score,
		        text_similarity_score, matched_skills, missing_skills, recommendation,
		        details, created_at
		 FROM match_results WHERE id = $1`,
		id,
	)

	match, err := scanStoredMatch(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}
	return match, nil
}

// MatchFilters holds optional filters for listing stored matches.
type MatchFilters struct {
	CandidateID string
	JobID       string
	Strategy    string
	Limit       int
}

// defaultListLimit bounds unfiltered listings.
const defaultListLimit = 50

// buildListQuery assembles the filtered listing SQL and its arguments.
func buildListQuery(filters MatchFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = defaultListLimit
	}

	query := `SELECT id, candidate_id, job_id, strategy, overall_score, skill_match_score,
	       text_similarity_score, matched_skills, missing_skills, recommendation,
	       details, created_at
	FROM match_results WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.CandidateID != "" {
		query += fmt.Sprintf(" AND candidate_id = $%d", argNum)
		args = append(args, filters.CandidateID)
		argNum++
	}
	if filters.JobID != "" {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, filters.JobID)
		argNum++
	}
	if filters.Strategy != "" {
		query += fmt.Sprintf(" AND strategy = $%d", argNum)
		args = append(args, filters.Strategy)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// ListMatchResults retrieves stored matches, newest first, with optional filters.
func (db *DB) ListMatchResults(ctx context.Context, filters MatchFilters) ([]StoredMatch, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var matches []StoredMatch
	for rows.Next() {
		match, err := scanStoredMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		matches = append(matches, *match)
	}
	return matches, nil
}

// DeleteMatchResult removes a stored match by ID.
func (db *DB) DeleteMatchResult(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM match_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("match result not found: %s", id)
	}
	return nil
}

// scanStoredMatch reads one match_results row.
func scanStoredMatch(row pgx.Row) (*StoredMatch, error) {
	var match StoredMatch
	var matchedJSON, missingJSON, detailsJSON []byte

	err := row.Scan(&match.ID, &match.Result.CandidateID, &match.Result.JobID,
		&match.Strategy, &match.Result.OverallScore, &match.Result.SkillMatchScore,
		&match.Result.TextSimilarityScore, &matchedJSON, &missingJSON,
		&match.Result.Recommendation, &detailsJSON, &match.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(matchedJSON) > 0 {
		if err := json.Unmarshal(matchedJSON, &match.Result.MatchedSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matched skills: %w", err)
		}
	}
	if len(missingJSON) > 0 {
		if err := json.Unmarshal(missingJSON, &match.Result.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal missing skills: %w", err)
		}
	}
	if len(detailsJSON) > 0 {
		match.Result.Details = &types.MatchDetails{}
		if err := json.Unmarshal(detailsJSON, match.Result.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal details: %w", err)
		}
	}
	return &match, nil
}
