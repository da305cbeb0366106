package solver

import (
	"github.com/gmofishsauce/gtwbot/lib"
)

// Filter projects a game history onto the set of answer indices still
// consistent with every (guess, pattern) pair, starting from the full
// answer corpus. The result is ascending by index and only ever
// shrinks as the history grows. Guess words that are not in the guess
// corpus contribute no information and are skipped.
func (r *Resources) Filter(h *gtw.History) []int {
	set := make([]int, r.matrix.Answers().Size())
	for i := range set {
		set[i] = i
	}
	for i, guess := range h.Guesses {
		g, ok := r.matrix.Guesses().IndexOf(guess)
		if !ok {
			r.log.WithField("guess", guess).Debug("unknown guess in history, skipping")
			continue
		}
		set = Narrow(r.matrix, set, g, h.Patterns[i].Code())
	}
	return set
}

// Narrow returns the members of set whose matrix cell under guess
// index g equals the observed code. Order is preserved, so an
// ascending input stays ascending.
func Narrow(m *Matrix, set []int, g int, code gtw.Code) []int {
	row := m.Row(g)
	out := make([]int, 0, len(set))
	for _, a := range set {
		if gtw.Code(row[a]) == code {
			out = append(out, a)
		}
	}
	return out
}
