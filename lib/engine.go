/*
Package gtw implements a word game.

Artifacts in this package are suitable for use when
implementing a user interface for the word game or
when creating bots to play the word game.

*/
package gtw

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// MaxGuesses is the number of guesses a player gets per game.
const MaxGuesses = 6

// GtwEngine is a "game engine" for Guess the Word. It owns the goal
// word and scores guesses against it, tracking the guess count and the
// terminal state of the current game.
type GtwEngine struct {
	corpus  *Corpus
	rng     *rand.Rand
	goal    string
	history History
}

// New creates a new GtW evaluation engine given a corpus of words.
// The corpus may be constructed by LoadCorpus.
func New(corpus *Corpus) *GtwEngine {
	if corpus.Size() == 0 {
		panic("0-length corpus ... ouch, don't do that")
	}
	result := &GtwEngine{corpus: corpus}
	result.SetSeed(-1) // random
	result.NewGame()
	return result
}

// Get the Corpus
func (e *GtwEngine) Corpus() *Corpus {
	return e.corpus
}

// Set the seed for the RNG
func (e *GtwEngine) SetSeed(seed int64) {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	e.rng = rand.New(rand.NewSource(seed))
}

// NewGame reinitializes the goal word of the engine to a uniformly-
// selected random word from the engine's corpus.
func (e *GtwEngine) NewGame() {
	e.goal = e.corpus.WordAt(e.rng.Intn(e.corpus.Size()))
	e.history = History{}
}

// NewFixedGame reinitializes the goal word to the argument.
// The argument is not necessarily in the corpus.
func (e *GtwEngine) NewFixedGame(aWord string) error {
	if !validWord(aWord) {
		return errors.Errorf("goal %q is not a 5-letter lowercase word", aWord)
	}
	e.goal = aWord
	e.history = History{}
	return nil
}

// Cheat returns the engine's current goal word.
func (e *GtwEngine) Cheat() string {
	return e.goal
}

// Play scores a guess against the goal word and advances the game.
// The game ends when the guess matches the goal or when the guess
// budget is spent. Playing into a finished game is an error, as is a
// malformed guess; neither consumes a turn.
func (e *GtwEngine) Play(guess string) (Pattern, error) {
	if e.history.Terminal {
		return Pattern{}, errors.New("game is over")
	}
	if !validWord(guess) {
		return Pattern{}, errors.Errorf("guess %q is not a 5-letter lowercase word", guess)
	}
	p := Score(guess, e.goal)
	e.history.Add(guess, p)
	if p.Code() == AllCorrect || e.history.Len() == MaxGuesses {
		e.history.Terminal = true
	}
	return p, nil
}

// Won reports whether the current game ended with the goal guessed.
func (e *GtwEngine) Won() bool {
	n := e.history.Len()
	return n > 0 && e.history.Patterns[n-1].Code() == AllCorrect
}

// Over reports whether the current game is finished.
func (e *GtwEngine) Over() bool {
	return e.history.Terminal
}

// History returns a snapshot of the current game's history. The
// snapshot is independent of further plays.
func (e *GtwEngine) History() History {
	return e.history.Clone()
}
