package matching

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-matcher/internal/types"
)

// RankOptions controls batch ranking behavior.
type RankOptions struct {
	// TopK limits the number of returned candidates; 0 means no limit.
	TopK int
	// Workers bounds scoring concurrency; 0 means one worker per CPU.
	Workers int
	// Scrub removes personal identifiers from candidates before scoring.
	Scrub bool
}

// RankCandidates scores every candidate against the job concurrently and
// returns them ordered by descending match score. Candidates with equal scores
// keep their input order, so repeated runs over the same input produce the
// same ranking. Returns an error only when the context is canceled mid-batch.
func RankCandidates(ctx context.Context, matcher Matcher, candidates []types.Candidate, job types.JobRequirements, opts RankOptions) ([]types.RankedCandidate, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]types.MatchResult, len(candidates))
	scored := make([]types.Candidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if opts.Scrub {
				candidate = candidate.Scrub()
			}
			scored[i] = candidate
			results[i] = matcher.Score(ctx, candidate, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]types.RankedCandidate, len(candidates))
	for i := range candidates {
		ranked[i] = types.RankedCandidate{
			Candidate:    scored[i],
			MatchScore:   results[i].OverallScore,
			MatchDetails: results[i].Details,
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].MatchScore > ranked[b].MatchScore
	})

	if opts.TopK > 0 && opts.TopK < len(ranked) {
		ranked = ranked[:opts.TopK]
	}
	return ranked, nil
}

// BatchScore scores every candidate against the job and returns the full
// match results ordered by descending overall score, ties keeping input order.
func BatchScore(ctx context.Context, matcher Matcher, candidates []types.Candidate, job types.JobRequirements, opts RankOptions) ([]types.MatchResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]types.MatchResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if opts.Scrub {
				candidate = candidate.Scrub()
			}
			results[i] = matcher.Score(ctx, candidate, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].OverallScore > results[b].OverallScore
	})

	if opts.TopK > 0 && opts.TopK < len(results) {
		results = results[:opts.TopK]
	}
	return results, nil
}
