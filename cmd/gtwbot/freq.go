package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/solver"
)

// The freq subcommand reports the frequency-derived solver cost of
// words, which is handy when tuning openers. The raw frequencies
// themselves are not printed.
func newFreqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freq word [word ...]",
		Short: "Report the frequency-derived solver cost of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solver.LoadResources(cfg, log)
			if err != nil {
				return err
			}
			guesses := res.Matrix().Guesses()
			for _, w := range args {
				g, ok := guesses.IndexOf(w)
				if !ok {
					return errors.Errorf("%q is not in the guess corpus", w)
				}
				fmt.Printf("%s cost=%.3f\n", w, res.Costs().Cost(g))
			}
			return nil
		},
	}
}
