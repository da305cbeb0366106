package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/gtwbot/lib"
	"github.com/gmofishsauce/gtwbot/solver"
)

const playHelp = `
--------
After each guess, the row is recolored. A green letter is correct and
in the correct location, a yellow letter is in the word but not in the
correct location, and a dim letter is not in the word. Press return on
an empty line to play the solver's recommendation.
--------
`

// suggestion is what the solver worker delivers back to the game loop.
type suggestion struct {
	word string
	err  error
}

// The play subcommand runs games against the engine. In interactive
// play the solver's recommendation for each turn is computed on a
// background goroutine and delivered over a channel; the game loop
// waits for it before showing the prompt. With --bot the
// recommendations are computed in the loop itself and played
// unattended.
func newPlayCmd() *cobra.Command {
	var (
		bot   bool
		games int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the word game with solver recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			engine := gtw.New(res.Matrix().Answers())
			if seed >= 0 {
				engine.SetSeed(seed)
				engine.NewGame()
			}

			if bot {
				return playBot(s, engine, games)
			}
			fmt.Print(playHelp)
			return playInteractive(s, engine)
		},
	}
	cmd.Flags().BoolVar(&bot, "bot", false, "let the solver play by itself")
	cmd.Flags().IntVar(&games, "games", 1, "number of games to play with --bot")
	cmd.Flags().Int64Var(&seed, "seed", -1, "goal-word RNG seed; -1 means random")
	return cmd
}

func playInteractive(s *solver.Solver, engine *gtw.GtwEngine) error {
	reader := bufio.NewReader(os.Stdin)
	for { // one game per loop. Runs until EOF or ^C.
		fmt.Println("New goal word selected")
		for { // one guess per loop
			history := engine.History()
			recommend := make(chan suggestion, 1)
			go func() {
				word, err := s.Suggest(&history)
				recommend <- suggestion{word, err}
			}()
			rec := <-recommend
			if rec.err != nil {
				log.WithError(rec.err).Warn("no recommendation this turn")
			} else {
				fmt.Printf("solver says: %s\n", rec.word)
			}

			fmt.Printf("guess> ")
			text, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println()
				return nil
			}
			text = strings.TrimSpace(text)
			if text == "" && rec.err == nil {
				text = rec.word
			}
			pattern, err := engine.Play(text)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("       %s\n", colorize(text, pattern))
			if engine.Over() {
				break
			}
		}
		if engine.Won() {
			fmt.Println("\nSuccess!")
		} else {
			fmt.Printf("\nOut of guesses. The word was %q.\n", engine.Cheat())
		}
		engine.NewGame()
	}
}

func playBot(s *solver.Solver, engine *gtw.GtwEngine, games int) error {
	wins, moves := 0, 0
	for i := 0; i < games; i++ {
		if i > 0 {
			engine.NewGame()
		}
		for !engine.Over() {
			history := engine.History()
			word, err := s.Suggest(&history)
			if err != nil {
				return err
			}
			pattern, err := engine.Play(word)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", colorize(word, pattern))
		}
		if engine.Won() {
			wins++
			finalHistory := engine.History()
			moves += finalHistory.Len()
			fmt.Printf("solved in %d\n\n", finalHistory.Len())
		} else {
			fmt.Printf("lost; the word was %q\n\n", engine.Cheat())
		}
	}
	if wins > 0 {
		fmt.Printf("%d/%d solved, %.2f average guesses\n", wins, games, float64(moves)/float64(wins))
	} else {
		fmt.Printf("0/%d solved\n", games)
	}
	return nil
}

var (
	correctLetter = color.New(color.BgGreen, color.FgBlack)
	presentLetter = color.New(color.BgYellow, color.FgBlack)
	absentLetter  = color.New(color.Faint)
)

// colorize renders one guess row the way the grid display would.
func colorize(guess string, p gtw.Pattern) string {
	var b strings.Builder
	for i := 0; i < gtw.WordLen; i++ {
		letter := string(guess[i])
		switch p[i] {
		case gtw.LetterCorrect:
			b.WriteString(correctLetter.Sprint(letter))
		case gtw.LetterPresent:
			b.WriteString(presentLetter.Sprint(letter))
		default:
			b.WriteString(absentLetter.Sprint(letter))
		}
	}
	return b.String()
}
