package solver

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/gmofishsauce/gtwbot/lib"
)

// A Policy decides which guess a candidate set gets.
type Policy int

const (
	// Minimax picks the guess whose worst pattern group is smallest,
	// breaking ties toward the cheaper word.
	Minimax Policy = iota
	// EntropyCost picks the guess with the most information per unit
	// of cost.
	EntropyCost
	// FreqMinimax is Minimax resolved by scanning guesses in
	// descending frequency order, so the first guess achieving the
	// best worst-case (the most common one) wins.
	FreqMinimax
)

func (p Policy) String() string {
	switch p {
	case Minimax:
		return "minimax"
	case EntropyCost:
		return "entropy"
	case FreqMinimax:
		return "freq-minimax"
	}
	return "unknown"
}

// ParsePolicy resolves a policy name from config or a flag.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "minimax":
		return Minimax, nil
	case "entropy":
		return EntropyCost, nil
	case "freq-minimax":
		return FreqMinimax, nil
	}
	return 0, errors.Errorf("unknown policy %q", s)
}

// A Partition groups a candidate set by the pattern code each member
// would score under some guess. Group slices stay ascending.
type Partition map[gtw.Code][]int

// lastDepth is the depth of the sixth and final guess. At that depth
// only a candidate can win, so probing outside the set is pointless.
const lastDepth = 5

// entropySlack and cheapEnough bound the entropy early exit: stop
// scanning once a guess is within entropySlack bits of the theoretical
// maximum split and costs less than cheapEnough.
const (
	entropySlack = 0.1
	cheapEnough  = 0.8
)

// SelectMove picks the next guess for a non-empty candidate set under
// the given policy and returns it with the set's partition under that
// guess. The choice is deterministic in (set, depth, policy).
//
// Scanning a guess computes only a 243-slot count histogram; the
// partition lists are materialized once, for the winner. Violating
// that makes the driver's cost be dominated by list construction.
func (r *Resources) SelectMove(set []int, depth int, policy Policy) (string, Partition) {
	answers := r.matrix.Answers()
	if len(set) == 0 {
		return "", nil
	}
	if len(set) == 1 {
		only := set[0]
		return answers.WordAt(only), Partition{gtw.AllCorrect: []int{only}}
	}

	search := r.searchSpace(set, depth)

	var best int
	switch policy {
	case EntropyCost:
		best = r.scanEntropy(set, search)
	case FreqMinimax:
		best = r.scanMinimax(set, search, false)
	default:
		best = r.scanMinimax(set, search, true)
	}
	if best < 0 {
		// Cannot happen with a non-empty set, but the contract says
		// always produce a winner.
		best, _ = r.matrix.Guesses().IndexOf(answers.WordAt(set[0]))
	}
	return r.matrix.Guesses().WordAt(best), r.partition(set, best)
}

// searchSpace returns the guess indices to scan. A two-candidate set
// and the final guess both restrict the scan to the candidates
// themselves, most frequent first; anything else scans the whole guess
// corpus.
func (r *Resources) searchSpace(set []int, depth int) []int {
	if depth < lastDepth && len(set) > 2 {
		return nil // nil means the full corpus, in policy-chosen order
	}
	guesses := r.matrix.Guesses()
	answers := r.matrix.Answers()
	space := make([]int, 0, len(set))
	for _, a := range set {
		if g, ok := guesses.IndexOf(answers.WordAt(a)); ok {
			space = append(space, g)
		}
	}
	sort.SliceStable(space, func(i, j int) bool {
		return r.costs.Cost(space[i]) < r.costs.Cost(space[j])
	})
	return space
}

// scanMinimax finds the guess minimizing the largest pattern group.
// With tieByCost set the scan walks the corpus in index order and
// breaks ties toward the cheaper word; without it the scan walks in
// descending frequency order and the first winner stands. In either
// mode the first guess with a perfect split (largest group of one)
// ends the scan, so cost does not break ties among perfect splits.
func (r *Resources) scanMinimax(set []int, search []int, tieByCost bool) int {
	if search == nil {
		if tieByCost {
			search = r.allGuessIndices()
		} else {
			search = r.costs.SortedGuessIndices()
		}
	}
	best := -1
	minWorst := len(set) + 1
	var bestCost float64
	for _, g := range search {
		row := r.matrix.Row(g)
		var counts [gtw.NumCodes]int
		worst := 0
		for _, a := range set {
			c := row[a]
			counts[c]++
			if counts[c] > worst {
				worst = counts[c]
				if worst > minWorst {
					break
				}
			}
		}
		if worst > minWorst {
			continue
		}
		if worst < minWorst || (tieByCost && r.costs.Cost(g) < bestCost) {
			minWorst = worst
			best = g
			bestCost = r.costs.Cost(g)
			if minWorst == 1 {
				// Perfect split; nothing can beat it, and in frequency
				// order this is already the most common such word.
				break
			}
		}
	}
	return best
}

// scanEntropy finds the guess maximizing entropy divided by cost,
// scanning in descending frequency order.
func (r *Resources) scanEntropy(set []int, search []int) int {
	if search == nil {
		search = r.costs.SortedGuessIndices()
	}
	best := -1
	bestEff := -1.0
	total := float64(len(set))
	maxEntropy := math.Log2(total)
	for _, g := range search {
		row := r.matrix.Row(g)
		var counts [gtw.NumCodes]int
		for _, a := range set {
			counts[row[a]]++
		}
		entropy := 0.0
		for _, n := range counts {
			if n > 0 {
				p := float64(n) / total
				entropy -= p * math.Log2(p)
			}
		}
		cost := r.costs.Cost(g)
		if eff := entropy / cost; eff > bestEff {
			bestEff = eff
			best = g
			if entropy > maxEntropy-entropySlack && cost < cheapEnough {
				break
			}
		}
	}
	return best
}

// partition materializes the group lists for the winning guess.
func (r *Resources) partition(set []int, g int) Partition {
	row := r.matrix.Row(g)
	groups := make(Partition)
	for _, a := range set {
		c := gtw.Code(row[a])
		groups[c] = append(groups[c], a)
	}
	return groups
}

// allGuessIndices is the 0..G-1 scan order used by plain minimax.
func (r *Resources) allGuessIndices() []int {
	n := r.matrix.Guesses().Size()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	return all
}
