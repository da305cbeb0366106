package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/lib"
	"github.com/gmofishsauce/gtwbot/solver"
)

// The suggest subcommand prints the next guess for a history given on
// the command line, one guess:pattern pair per argument, e.g.
//
//	gtwbot suggest salet:00100 crony:02001
//
// where each pattern digit is 0 (absent), 1 (present) or 2 (correct),
// leftmost letter first.
func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [guess:pattern ...]",
		Short: "Suggest the next guess for a game history",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := parseHistory(args)
			if err != nil {
				return err
			}
			res, err := solver.LoadResources(cfg, log)
			if err != nil {
				return err
			}
			strategy, err := solver.LoadStrategy(cfg.StrategyPath)
			if err != nil {
				return err
			}
			search, err := solver.ParseSearch(cfg.Search)
			if err != nil {
				return err
			}
			s := solver.NewSolver(res, strategy, search, cfg.Opener, cfg.StrategyPath)
			word, err := s.Suggest(history)
			if err != nil {
				return err
			}
			fmt.Println(word)
			return nil
		},
	}
}

func parseHistory(args []string) (*gtw.History, error) {
	h := &gtw.History{}
	for _, arg := range args {
		guess, pat, found := strings.Cut(arg, ":")
		if !found || len(guess) != gtw.WordLen || len(pat) != gtw.WordLen {
			return nil, errors.Errorf("malformed history entry %q, want guess:pattern", arg)
		}
		var p gtw.Pattern
		for i := 0; i < gtw.WordLen; i++ {
			if pat[i] < '0' || pat[i] > '2' {
				return nil, errors.Errorf("pattern digit %q in %q, want 0, 1, or 2", pat[i], arg)
			}
			p[i] = pat[i] - '0'
		}
		h.Add(guess, p)
	}
	return h, nil
}
