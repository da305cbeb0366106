package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/solver"
)

// The build subcommand precomputes a strategy tree, merges it with any
// tree already on disk, and saves the result. Interrupts and the
// optional timeout cancel the search; whatever was built by then is
// still merged and saved.
func newBuildCmd() *cobra.Command {
	var (
		searchName string
		policyName string
		opener     string
		timeout    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Precompute a strategy tree and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if searchName == "" {
				searchName = cfg.Search
			}
			search, err := solver.ParseSearch(searchName)
			if err != nil {
				return err
			}
			policy := search.DefaultPolicy()
			if policyName != "" {
				if policy, err = solver.ParsePolicy(policyName); err != nil {
					return err
				}
			}
			if opener == "" {
				opener = cfg.Opener
			}

			res, err := solver.LoadResources(cfg, log)
			if err != nil {
				return err
			}
			strategy, err := solver.LoadStrategy(cfg.StrategyPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			delta, stats, err := res.BuildStrategy(ctx, solver.BuildSpec{
				Search: search,
				Policy: policy,
				Opener: opener,
			})
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			added := strategy.Merge(delta)
			log.WithField("nodes", stats.Nodes).WithField("added", added).
				WithField("elapsed", stats.Elapsed.Round(time.Millisecond)).
				Info("merge complete")
			return strategy.Save(cfg.StrategyPath)
		},
	}
	cmd.Flags().StringVar(&searchName, "search", "", "search variant: bfs, ucs, or astar")
	cmd.Flags().StringVar(&policyName, "policy", "", "selector policy: minimax, entropy, or freq-minimax (default: the search's pairing)")
	cmd.Flags().StringVar(&opener, "opener", "", "forced opening word (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "wall-clock limit; 0 means none")
	return cmd
}
