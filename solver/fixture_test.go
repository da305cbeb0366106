package solver

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/gmofishsauce/gtwbot/lib"
)

// Do not lightly change the test data ... several tests depend on
// specific pattern collisions in it, e.g. "salet" scoring the same
// code against "crane", "dream", and "grape".

var testAnswerWords = []string{
	"apple", "baker", "crane", "dream", "eagle", "flame",
	"grape", "house", "ivory", "jolly", "knife", "lemon",
}

var testProbeWords = []string{
	"salet", "raise", "stare", "slate", "paper",
	"brick", "fuzzy", "moist", "pride", "gleam",
}

var testFreqs = map[string]float64{
	"house": 5.9, "apple": 5.1, "paper": 5.0, "dream": 4.9,
	"raise": 4.8, "pride": 4.5, "knife": 4.4, "eagle": 4.3,
	"brick": 4.2, "baker": 4.1, "flame": 4.1, "stare": 4.0,
	"lemon": 4.0, "grape": 3.9, "crane": 3.8, "slate": 3.7,
	"moist": 3.5, "ivory": 3.4, "fuzzy": 3.3, "jolly": 3.2,
	"gleam": 3.0,
	// "salet" is deliberately absent: it takes frequency 0.
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestResources(t *testing.T) *Resources {
	t.Helper()
	answers := gtw.NewCorpus(testAnswerWords)
	guesses := gtw.NewCorpus(append(append([]string(nil), testAnswerWords...), testProbeWords...))
	m, err := BuildMatrix(guesses, answers)
	require.NoError(t, err)
	return NewResources(m, NewCostModel(testFreqs, guesses), quietLogger())
}

// answerSet resolves answer words to their ascending index set.
func answerSet(t *testing.T, r *Resources, words ...string) []int {
	t.Helper()
	set := make([]int, 0, len(words))
	for _, w := range words {
		i, ok := r.Matrix().Answers().IndexOf(w)
		require.True(t, ok, "%q is not a test answer", w)
		set = append(set, i)
	}
	return set
}
