package optimizer

import (
	"context"
	"fmt"

	"github.com/jonathan/load-organizer/internal/types"
	"golang.org/x/sync/errgroup"
)

// ComputeExitOrder normalizes a raw roster and computes its optimized load.
// It never fails; an empty roster yields an empty order, no groups, the bare
// climb time and no recommendations.
func ComputeExitOrder(entries []types.RosterEntry) *types.OptimizedLoad {
	return optimize(Normalize(entries))
}

// ComputeExitOrderJumpers is ComputeExitOrder for callers that already hold typed jumpers.
func ComputeExitOrderJumpers(jumpers []types.Jumper) *types.OptimizedLoad {
	return optimize(NormalizeJumpers(jumpers))
}

func optimize(jumpers []types.Jumper) *types.OptimizedLoad {
	ordered := SortExitOrder(jumpers)
	groups := AssembleGroups(ordered)

	return &types.OptimizedLoad{
		ExitOrder:       ordered,
		Groups:          groups,
		TotalTime:       TotalTime(groups),
		Recommendations: Recommend(jumpers, groups),
	}
}

// ComputeBatch optimizes several independent rosters concurrently, running at most
// limit computations at once (limit <= 0 means no limit). Results keep the order of
// rosters. It returns early with the context error if ctx is cancelled.
func ComputeBatch(ctx context.Context, rosters [][]types.RosterEntry, limit int) ([]*types.OptimizedLoad, error) {
	results := make([]*types.OptimizedLoad, len(rosters))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, roster := range rosters {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("roster %d: %w", i, err)
			}
			results[i] = ComputeExitOrder(roster)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
