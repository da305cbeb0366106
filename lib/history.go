package gtw

// A History is the solver-facing record of a game in progress: the
// guesses played so far, the pattern each one scored, and whether the
// game has ended. Guesses and Patterns are parallel slices.
type History struct {
	Guesses  []string
	Patterns []Pattern
	Terminal bool
}

// Add appends one scored guess.
func (h *History) Add(guess string, p Pattern) {
	h.Guesses = append(h.Guesses, guess)
	h.Patterns = append(h.Patterns, p)
}

// Len returns the number of scored guesses.
func (h *History) Len() int {
	return len(h.Patterns)
}

// Clone returns a deep copy.
func (h *History) Clone() History {
	return History{
		Guesses:  append([]string(nil), h.Guesses...),
		Patterns: append([]Pattern(nil), h.Patterns...),
		Terminal: h.Terminal,
	}
}
