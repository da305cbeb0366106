/*
Package main implements a command line interface to the word game
solver: building the pattern matrix, precomputing strategy trees, and
playing games with solver recommendations.

*/
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/solver"
)

var (
	configPath string
	verbose    bool

	cfg solver.Config
	log = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:           "gtwbot",
		Short:         "Strategy-tree solver for Guess the Word",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			var err error
			cfg, err = solver.LoadConfig(configPath)
			return err
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "gtwbot.yaml", "path to the config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newMatrixCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newSuggestCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newFreqCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
