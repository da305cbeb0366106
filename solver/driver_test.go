package solver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmofishsauce/gtwbot/lib"
)

func buildFull(t *testing.T, r *Resources, search Search, opener string) map[StateKey]string {
	t.Helper()
	delta, stats, err := r.BuildStrategy(context.Background(), BuildSpec{
		Search: search,
		Policy: search.DefaultPolicy(),
		Opener: opener,
	})
	require.NoError(t, err)
	require.Positive(t, stats.Nodes)
	require.NotEmpty(t, delta)
	return delta
}

// followPlan plays the precomputed plan against a fixed goal and
// returns how many guesses it took. Failing to reach the goal within
// the guess budget fails the test.
func followPlan(t *testing.T, r *Resources, plan map[StateKey]string, opener, goal string) int {
	t.Helper()
	set := allAnswerIndices(r)
	guess := opener
	for turn := 1; turn <= gtw.MaxGuesses; turn++ {
		if guess == goal {
			return turn
		}
		code := gtw.Score(guess, goal).Code()
		g, ok := r.Matrix().Guesses().IndexOf(guess)
		require.True(t, ok, "plan chose %q, which is not a legal guess", guess)
		set = Narrow(r.Matrix(), set, g, code)
		require.NotEmpty(t, set, "goal %q filtered away by its own pattern", goal)
		next, ok := plan[KeyOf(set)]
		require.True(t, ok, "no plan entry for the state after %q against %q", guess, goal)
		guess = next
	}
	require.Equal(t, goal, guess, "goal %q not reached within %d guesses", goal, gtw.MaxGuesses)
	return gtw.MaxGuesses
}

func TestBuildStrategySolvesEveryAnswer(t *testing.T) {
	r := newTestResources(t)
	for _, search := range []Search{BFS, UCS, AStar} {
		plan := buildFull(t, r, search, "salet")
		for _, goal := range testAnswerWords {
			turns := followPlan(t, r, plan, "salet", goal)
			require.LessOrEqual(t, turns, gtw.MaxGuesses, "search %s, goal %q", search, goal)
		}
	}
}

func TestBuildStrategyRecordsOpener(t *testing.T) {
	r := newTestResources(t)
	plan := buildFull(t, r, BFS, "salet")
	root := KeyOf(allAnswerIndices(r))
	require.Equal(t, "salet", plan[root])
}

func TestBuildStrategyWithoutOpener(t *testing.T) {
	r := newTestResources(t)
	delta, _, err := r.BuildStrategy(context.Background(), BuildSpec{
		Search: BFS,
		Policy: Minimax,
	})
	require.NoError(t, err)
	root := KeyOf(allAnswerIndices(r))
	word, ok := delta[root]
	require.True(t, ok, "the selector must choose a root guess")
	_, ok = r.Matrix().Guesses().IndexOf(word)
	require.True(t, ok)
}

func TestBuildStrategyRejectsUnknownOpener(t *testing.T) {
	r := newTestResources(t)
	_, _, err := r.BuildStrategy(context.Background(), BuildSpec{
		Search: BFS,
		Policy: Minimax,
		Opener: "qwxyz",
	})
	require.Error(t, err)
}

func TestBuildStrategyIsDeterministic(t *testing.T) {
	r := newTestResources(t)
	for _, search := range []Search{BFS, UCS, AStar} {
		first := buildFull(t, r, search, "salet")
		second := buildFull(t, r, search, "salet")
		require.Equal(t, first, second, "search %s", search)
	}
}

func TestBuildStrategyIdempotentMerge(t *testing.T) {
	r := newTestResources(t)
	strategy := NewStrategy()
	first := buildFull(t, r, UCS, "salet")
	require.Positive(t, strategy.Merge(first))

	second := buildFull(t, r, UCS, "salet")
	assert.Zero(t, strategy.Merge(second), "re-building a built root must not change any entry")
}

func TestBuildStrategySubsetRoot(t *testing.T) {
	r := newTestResources(t)
	root := answerSet(t, r, "crane", "dream", "grape")
	delta, _, err := r.BuildStrategy(context.Background(), BuildSpec{
		Search: BFS,
		Policy: Minimax,
		Root:   root,
	})
	require.NoError(t, err)
	_, ok := delta[KeyOf(root)]
	require.True(t, ok)
}

func TestBuildStrategyHonorsCancellation(t *testing.T) {
	r := newTestResources(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	delta, _, err := r.BuildStrategy(ctx, BuildSpec{
		Search: BFS,
		Policy: Minimax,
		Opener: "salet",
	})
	require.ErrorIs(t, err, context.Canceled)
	// The partial map is still returned: the root entry was seeded
	// before the first frontier pop.
	require.Equal(t, "salet", delta[KeyOf(allAnswerIndices(r))])
}

func TestHeuristic(t *testing.T) {
	assert.Zero(t, heuristic(0))
	assert.Zero(t, heuristic(1))
	for n := 2; n < 64; n++ {
		h := heuristic(n)
		require.Positive(t, h)
		require.LessOrEqual(t, h, math.Log2(float64(n)))
	}
	assert.InDelta(t, 1.0, heuristic(2), 1e-9)
	assert.InDelta(t, 3.0, heuristic(8), 1e-9)
}

func TestSearchParsing(t *testing.T) {
	for _, search := range []Search{BFS, UCS, AStar} {
		got, err := ParseSearch(search.String())
		require.NoError(t, err)
		require.Equal(t, search, got)
	}
	_, err := ParseSearch("dfs")
	require.Error(t, err)
}

func TestDefaultPolicyPairing(t *testing.T) {
	assert.Equal(t, Minimax, BFS.DefaultPolicy())
	assert.Equal(t, FreqMinimax, UCS.DefaultPolicy())
	assert.Equal(t, EntropyCost, AStar.DefaultPolicy())
}
