/*
Package solver picks guesses for the word game.

The solver works over candidate sets: the answers still consistent
with everything a game has revealed. A precomputed pattern matrix
makes narrowing and scoring those sets cheap, a move selector picks
the guess for one set, and the search drivers in this file walk every
reachable set and record the choices in a strategy table that play
time can consult in constant time.

*/
package solver

import (
	"container/heap"
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gmofishsauce/gtwbot/lib"
)

// A Search names the frontier discipline of the strategy builder.
type Search int

const (
	// BFS expands candidate sets in insertion order.
	BFS Search = iota
	// UCS expands the set with the lowest accumulated word cost first.
	UCS
	// AStar orders the frontier by accumulated cost plus an
	// information-theoretic estimate of the cost remaining.
	AStar
)

func (s Search) String() string {
	switch s {
	case BFS:
		return "bfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	}
	return "unknown"
}

// ParseSearch resolves a search name from config or a flag.
func ParseSearch(s string) (Search, error) {
	switch s {
	case "bfs":
		return BFS, nil
	case "ucs":
		return UCS, nil
	case "astar":
		return AStar, nil
	}
	return 0, errors.Errorf("unknown search %q", s)
}

// DefaultPolicy returns the selector policy a search variant pairs
// with when the caller does not choose one.
func (s Search) DefaultPolicy() Policy {
	switch s {
	case UCS:
		return FreqMinimax
	case AStar:
		return EntropyCost
	}
	return Minimax
}

// A BuildSpec describes one strategy-build run.
type BuildSpec struct {
	Search Search
	Policy Policy
	// Opener forces the first guess for the root set. Empty lets the
	// selector choose.
	Opener string
	// Root restricts the build to a candidate subset (ascending
	// answer indices). Nil means the full answer set.
	Root []int
}

// Stats is the bookkeeping a build run returns.
type Stats struct {
	Nodes        int
	FrontierPeak int
	Elapsed      time.Duration
}

// node is one frontier entry: a candidate set with its depth, its
// accumulated path cost, and the priority the frontier orders by. seq
// breaks priority ties in insertion order, which keeps runs
// deterministic.
type node struct {
	set      []int
	depth    int
	g        float64
	priority float64
	seq      int
}

type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(*node)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return it
}

// heuristic is the A* estimate of the cost remaining below a set of n
// candidates: identifying one of n equiprobable words takes log2(n)
// bits, at roughly one guess per bit. It is zero for solved sets and
// never exceeds log2(n), so it stays admissible.
func heuristic(n int) float64 {
	if n < 2 {
		return 0
	}
	return math.Log2(float64(n))
}

// pushChildren enqueues every pattern group except the all-correct
// one, which is already solved. Groups go in ascending code order so
// that frontier insertion order, and with it a BFS run, is
// deterministic.
func pushChildren(push func([]int, int, float64), groups Partition, depth int, g float64) {
	for code := gtw.Code(0); code < gtw.NumCodes; code++ {
		subset, ok := groups[code]
		if !ok || code == gtw.AllCorrect {
			continue
		}
		push(subset, depth, g)
	}
}

// BuildStrategy expands every candidate set reachable from the root
// and records one chosen guess per set, returning the new entries as a
// delta map together with run statistics.
//
// States are canonical: a visited table keyed by StateKey prevents any
// set from being expanded twice, no matter how many paths reach it.
// Children are pushed for every pattern group except the all-correct
// one, which is already solved.
//
// Cancellation is honored at every frontier pop; a canceled run
// returns the partial map built so far along with the context's error.
func (r *Resources) BuildStrategy(ctx context.Context, spec BuildSpec) (map[StateKey]string, Stats, error) {
	start := time.Now()
	delta := make(map[StateKey]string)
	visited := make(map[StateKey]bool)

	root := spec.Root
	if root == nil {
		root = make([]int, r.matrix.Answers().Size())
		for i := range root {
			root[i] = i
		}
	}

	var f frontier
	seq := 0
	push := func(set []int, depth int, g float64) {
		n := &node{set: set, depth: depth, g: g, seq: seq}
		switch spec.Search {
		case UCS:
			n.priority = g
		case AStar:
			n.priority = g + heuristic(len(set))
		default:
			n.priority = float64(seq)
		}
		seq++
		heap.Push(&f, n)
	}

	if spec.Opener != "" {
		gi, ok := r.matrix.Guesses().IndexOf(spec.Opener)
		if !ok {
			return delta, Stats{}, errors.Errorf("opener %q is not in the guess corpus", spec.Opener)
		}
		key := KeyOf(root)
		delta[key] = spec.Opener
		visited[key] = true
		g := r.costs.Cost(gi)
		pushChildren(push, r.partition(root, gi), 1, g)
	} else {
		push(root, 0, 0)
	}

	stats := Stats{}
	log := r.log.WithFields(logrus.Fields{
		"search": spec.Search,
		"policy": spec.Policy,
		"root":   len(root),
	})
	log.Info("strategy build started")

	for f.Len() > 0 {
		select {
		case <-ctx.Done():
			stats.Elapsed = time.Since(start)
			log.WithField("nodes", stats.Nodes).Warn("strategy build canceled")
			return delta, stats, ctx.Err()
		default:
		}

		if f.Len() > stats.FrontierPeak {
			stats.FrontierPeak = f.Len()
		}
		cur := heap.Pop(&f).(*node)
		key := KeyOf(cur.set)
		if visited[key] {
			continue
		}
		visited[key] = true

		if len(cur.set) == 1 {
			delta[key] = r.matrix.Answers().WordAt(cur.set[0])
			continue
		}

		word, groups := r.SelectMove(cur.set, cur.depth, spec.Policy)
		delta[key] = word
		gi, _ := r.matrix.Guesses().IndexOf(word)
		pushChildren(push, groups, cur.depth+1, cur.g+r.costs.Cost(gi))

		stats.Nodes++
		if stats.Nodes%5000 == 0 {
			log.WithFields(logrus.Fields{
				"nodes":    stats.Nodes,
				"frontier": f.Len(),
				"elapsed":  time.Since(start).Round(time.Millisecond),
			}).Debug("strategy build progress")
		}
	}

	stats.Elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"nodes":   stats.Nodes,
		"entries": len(delta),
		"elapsed": stats.Elapsed.Round(time.Millisecond),
	}).Info("strategy build finished")
	return delta, stats, nil
}
