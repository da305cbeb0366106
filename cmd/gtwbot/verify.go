package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/lib"
)

// The verify subcommand checks the word lists: both must load cleanly,
// and every answer word must be a legal guess.
func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the word lists for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			guesses, err := gtw.LoadCorpus(cfg.GuessWords)
			if err != nil {
				return err
			}
			answers, err := gtw.LoadCorpus(cfg.AnswerWords)
			if err != nil {
				return err
			}
			missing := 0
			for _, w := range answers.Words() {
				if _, ok := guesses.IndexOf(w); !ok {
					fmt.Println(w)
					missing++
				}
			}
			if missing > 0 {
				return errors.Errorf("%d answer words are not in the guess list", missing)
			}
			log.WithField("guesses", guesses.Size()).WithField("answers", answers.Size()).
				Info("word lists are consistent")
			return nil
		},
	}
}
