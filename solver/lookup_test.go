package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmofishsauce/gtwbot/lib"
)

func newTestSolver(t *testing.T, r *Resources, search Search) (*Solver, *Strategy) {
	t.Helper()
	strategy := NewStrategy()
	return NewSolver(r, strategy, search, "salet", ""), strategy
}

func TestSuggestEmptyHistorySeedsAndReturnsOpener(t *testing.T) {
	r := newTestResources(t)
	s, strategy := newTestSolver(t, r, BFS)
	word, err := s.Suggest(&gtw.History{})
	require.NoError(t, err)
	assert.Equal(t, "salet", word)
	assert.Positive(t, strategy.Len(), "the empty table must be seeded")

	// A seeded table is not re-built on the next game.
	before := strategy.Len()
	_, err = s.Suggest(&gtw.History{})
	require.NoError(t, err)
	assert.Equal(t, before, strategy.Len())
}

func TestSuggestTerminalHistory(t *testing.T) {
	r := newTestResources(t)
	s, _ := newTestSolver(t, r, BFS)
	h := &gtw.History{Terminal: true}
	h.Add("crane", gtw.Score("crane", "crane"))
	_, err := s.Suggest(h)
	require.ErrorIs(t, err, ErrNoGuess)
}

func TestSuggestImpossibleState(t *testing.T) {
	r := newTestResources(t)
	s, _ := newTestSolver(t, r, BFS)
	// All-correct for a word that is not an answer matches nothing.
	h := &gtw.History{}
	h.Add("salet", gtw.Score("salet", "salet"))
	_, err := s.Suggest(h)
	require.ErrorIs(t, err, ErrImpossibleState)
}

func TestSuggestSingletonSet(t *testing.T) {
	r := newTestResources(t)
	s, strategy := newTestSolver(t, r, BFS)
	// "fuzzy" then "moist" leave only "lemon" alive; no search needed.
	h := &gtw.History{}
	h.Add("fuzzy", gtw.Score("fuzzy", "lemon"))
	h.Add("moist", gtw.Score("moist", "lemon"))
	word, err := s.Suggest(h)
	require.NoError(t, err)
	assert.Equal(t, "lemon", word)
	assert.Zero(t, strategy.Len())
}

func TestSuggestOffPlanRecovery(t *testing.T) {
	r := newTestResources(t)
	s, strategy := newTestSolver(t, r, UCS)
	// The table is empty, so any multi-candidate state is off-plan and
	// triggers a sub-tree search.
	h := &gtw.History{}
	h.Add("raise", gtw.Score("raise", "crane"))
	word, err := s.Suggest(h)
	require.NoError(t, err)
	require.NotEmpty(t, word)
	grown := strategy.Len()
	require.Positive(t, grown, "the recovery search must extend the table")

	// An identical lookup is now a plain hit: same guess, no growth.
	again, err := s.Suggest(h)
	require.NoError(t, err)
	assert.Equal(t, word, again)
	assert.Equal(t, grown, strategy.Len())
}

func TestSuggestOffPlanAfterForeignOpener(t *testing.T) {
	r := newTestResources(t)
	s, strategy := newTestSolver(t, r, BFS)

	// Seed the table behind the configured opener ...
	_, err := s.Suggest(&gtw.History{})
	require.NoError(t, err)
	seeded := strategy.Len()

	// ... then play a first guess the plan never considered.
	h := &gtw.History{}
	h.Add("raise", gtw.Score("raise", "crane"))
	word, err := s.Suggest(h)
	require.NoError(t, err)
	require.NotEmpty(t, word)
	require.GreaterOrEqual(t, strategy.Len(), seeded)

	again, err := s.Suggest(h)
	require.NoError(t, err)
	assert.Equal(t, word, again)
}

func TestSuggestTransposition(t *testing.T) {
	r := newTestResources(t)
	s, _ := newTestSolver(t, r, BFS)
	// Two different histories that strand the same candidate set must
	// get the same guess.
	h1 := &gtw.History{}
	h1.Add("salet", gtw.Score("salet", "crane"))

	h2 := &gtw.History{}
	h2.Add("salet", gtw.Score("salet", "crane"))
	h2.Add("qwxyz", gtw.Pattern{}) // unknown word: no information

	w1, err := s.Suggest(h1)
	require.NoError(t, err)
	w2, err := s.Suggest(h2)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)
}

// The randomized sweep of the testable-properties list: every answer,
// every search variant, play the solver to completion and demand a win
// within the guess budget.
func TestSolverSweep(t *testing.T) {
	r := newTestResources(t)
	for _, search := range []Search{BFS, UCS, AStar} {
		s, _ := newTestSolver(t, r, search)
		engine := gtw.New(r.Matrix().Answers())
		for _, goal := range testAnswerWords {
			require.NoError(t, engine.NewFixedGame(goal))
			for !engine.Over() {
				history := engine.History()
				word, err := s.Suggest(&history)
				require.NoError(t, err, "search %s, goal %q", search, goal)
				_, err = engine.Play(word)
				require.NoError(t, err, "search %s, goal %q", search, goal)
			}
			h := engine.History()
			require.True(t, engine.Won(), "search %s failed on %q", search, goal)
			require.LessOrEqual(t, h.Len(), gtw.MaxGuesses)
			require.Equal(t, gtw.AllCorrect, h.Patterns[h.Len()-1].Code())
		}
	}
}
