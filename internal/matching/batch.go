package matching

import (
	"context"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds MatchAll when no limit is given.
const DefaultConcurrency = 4

// MatchAll scores every resume against job, at most concurrency at a time,
// and returns the results best first. Ties keep resume ID order. The only
// error is cancellation of ctx.
func (s *Scorer) MatchAll(ctx context.Context, job types.JobRecord, resumes []types.ResumeRecord, concurrency int) ([]types.MatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]types.MatchResult, len(resumes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, resume := range resumes {
		i, resume := i, resume
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Match(gctx, resume, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortResults(results)
	return results, nil
}

// SortResults orders results by descending score, then by resume ID.
func SortResults(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CompatibilityScore != results[j].CompatibilityScore {
			return results[i].CompatibilityScore > results[j].CompatibilityScore
		}
		return results[i].ResumeID < results[j].ResumeID
	})
}
