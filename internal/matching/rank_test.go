package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-matcher/internal/types"
)

// matcherFunc adapts a function to the Matcher interface for tests.
type matcherFunc func(ctx context.Context, candidate types.Candidate, job types.JobRequirements) types.MatchResult

func (f matcherFunc) Score(ctx context.Context, candidate types.Candidate, job types.JobRequirements) types.MatchResult {
	return f(ctx, candidate, job)
}

func scoreByID(scores map[string]float64) Matcher {
	return matcherFunc(func(_ context.Context, candidate types.Candidate, job types.JobRequirements) types.MatchResult {
		return types.MatchResult{
			CandidateID:  candidate.ID,
			JobID:        job.ID,
			OverallScore: scores[candidate.ID],
		}
	})
}

func TestRankCandidates_DescendingOrder(t *testing.T) {
	candidates := []types.Candidate{{ID: "low"}, {ID: "high"}, {ID: "mid"}}
	matcher := scoreByID(map[string]float64{"low": 0.2, "high": 0.9, "mid": 0.5})

	ranked, err := RankCandidates(context.Background(), matcher, candidates, types.JobRequirements{ID: "job"}, RankOptions{})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "high", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "low", ranked[2].ID)
	assert.Equal(t, 0.9, ranked[0].MatchScore)
}

func TestRankCandidates_StableTies(t *testing.T) {
	candidates := []types.Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	matcher := scoreByID(map[string]float64{"a": 0.5, "b": 0.5, "c": 0.5, "d": 0.5})

	ranked, err := RankCandidates(context.Background(), matcher, candidates, types.JobRequirements{ID: "job"}, RankOptions{})
	require.NoError(t, err)

	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestRankCandidates_TopK(t *testing.T) {
	candidates := []types.Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	matcher := scoreByID(map[string]float64{"a": 0.1, "b": 0.9, "c": 0.5})

	ranked, err := RankCandidates(context.Background(), matcher, candidates, types.JobRequirements{ID: "job"}, RankOptions{TopK: 2})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "c", ranked[1].ID)
}

func TestRankCandidates_Scrub(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "a", Name: "Ada Lovelace", Email: "ada@example.com", Skills: []string{"python"}},
	}
	matcher := matcherFunc(func(_ context.Context, candidate types.Candidate, _ types.JobRequirements) types.MatchResult {
		// the matcher must never see personal identifiers
		assert.Equal(t, "[REDACTED]", candidate.Name)
		assert.Equal(t, "[REDACTED]", candidate.Email)
		return types.MatchResult{CandidateID: candidate.ID, OverallScore: 0.7}
	})

	ranked, err := RankCandidates(context.Background(), matcher, candidates, types.JobRequirements{ID: "job"}, RankOptions{Scrub: true})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "[REDACTED]", ranked[0].Name)
	assert.Equal(t, []string{"python"}, ranked[0].Skills)
}

func TestRankCandidates_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []types.Candidate{{ID: "a"}, {ID: "b"}}
	_, err := RankCandidates(ctx, scoreByID(nil), candidates, types.JobRequirements{ID: "job"}, RankOptions{})
	assert.Error(t, err)
}

func TestRankCandidates_Empty(t *testing.T) {
	ranked, err := RankCandidates(context.Background(), scoreByID(nil), nil, types.JobRequirements{ID: "job"}, RankOptions{})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestBatchScore_SortedResults(t *testing.T) {
	candidates := []types.Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	matcher := scoreByID(map[string]float64{"a": 0.3, "b": 0.8, "c": 0.6})

	results, err := BatchScore(context.Background(), matcher, candidates, types.JobRequirements{ID: "job"}, RankOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].CandidateID)
	assert.Equal(t, "c", results[1].CandidateID)
	assert.Equal(t, "a", results[2].CandidateID)
}

func TestBatchScore_TopK(t *testing.T) {
	candidates := []types.Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	matcher := scoreByID(map[string]float64{"a": 0.3, "b": 0.8, "c": 0.6})

	results, err := BatchScore(context.Background(), matcher, candidates, types.JobRequirements{ID: "job"}, RankOptions{TopK: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].CandidateID)
}
