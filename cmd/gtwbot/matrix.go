package main

import (
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/lib"
	"github.com/gmofishsauce/gtwbot/solver"
)

// The matrix subcommand is the one-shot offline job that produces the
// pattern matrix blob from the two word lists. Rebuilding from the
// same lists produces a byte-identical file.
func newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Build the pattern matrix from the word lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			guesses, err := gtw.LoadCorpus(cfg.GuessWords)
			if err != nil {
				return err
			}
			answers, err := gtw.LoadCorpus(cfg.AnswerWords)
			if err != nil {
				return err
			}
			log.WithField("guesses", guesses.Size()).WithField("answers", answers.Size()).
				Info("building pattern matrix")
			m, err := solver.BuildMatrix(guesses, answers)
			if err != nil {
				return err
			}
			if err := m.WriteFile(cfg.MatrixPath); err != nil {
				return err
			}
			log.WithField("path", cfg.MatrixPath).Info("pattern matrix written")
			return nil
		},
	}
}
