package solver

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gmofishsauce/gtwbot/lib"
)

// Errors a lookup can surface. Both are recoverable from the caller's
// point of view: the game controller decides what to tell the player.
var (
	// ErrNoGuess means the game is over; there is nothing to suggest.
	ErrNoGuess = errors.New("no guess available")
	// ErrImpossibleState means the history is inconsistent with every
	// answer word, which is a caller error.
	ErrImpossibleState = errors.New("no candidate is consistent with the history")
)

// A Solver answers "what should I guess next" for live games. It reads
// the shared strategy table and, when a game has wandered off the
// precomputed plan, transparently builds the missing sub-tree and
// merges it back in.
type Solver struct {
	res      *Resources
	strategy *Strategy
	search   Search
	policy   Policy
	opener   string
	savePath string
}

// NewSolver binds resources and a strategy table. opener is the forced
// first guess used when seeding an empty table; search chooses the
// driver used for seeding and for off-plan recovery, paired with its
// default policy. If savePath is non-empty the table is persisted
// after every merge that adds entries; a failed save leaves the
// in-memory table valid
// and is only logged.
func NewSolver(res *Resources, strategy *Strategy, search Search, opener, savePath string) *Solver {
	return &Solver{
		res:      res,
		strategy: strategy,
		search:   search,
		policy:   search.DefaultPolicy(),
		opener:   opener,
		savePath: savePath,
	}
}

// Suggest returns the next guess for a live game history.
//
// An empty history returns the opener, seeding the table with a full
// build first if it is empty. A terminal history returns ErrNoGuess.
// Otherwise the history is filtered down to the surviving candidate
// set: an empty set is ErrImpossibleState, a singleton is the answer,
// and anything else is looked up by its canonical key. A miss means
// the game is off-plan; the solver searches the sub-tree rooted at the
// live set, merges the result, and retries once.
//
// The re-search runs on the calling goroutine and is uninterruptible;
// embedding code that must stay responsive runs Suggest on a worker.
func (s *Solver) Suggest(h *gtw.History) (string, error) {
	if h.Len() == 0 {
		if s.strategy.Len() == 0 {
			if err := s.seed(); err != nil {
				return "", err
			}
		}
		return s.opener, nil
	}
	if h.Terminal {
		return "", ErrNoGuess
	}

	set := s.res.Filter(h)
	if len(set) == 0 {
		return "", ErrImpossibleState
	}
	if len(set) == 1 {
		return s.res.Matrix().Answers().WordAt(set[0]), nil
	}

	key := KeyOf(set)
	if word, ok := s.strategy.Guess(key); ok {
		return word, nil
	}

	s.res.log.WithField("candidates", len(set)).Info("off-plan state, searching sub-tree")
	delta, _, err := s.res.BuildStrategy(context.Background(), BuildSpec{
		Search: s.search,
		Policy: s.policy,
		Root:   set,
	})
	if err != nil {
		return "", errors.Wrap(err, "off-plan recovery")
	}
	s.merge(delta)

	word, ok := s.strategy.Guess(key)
	if !ok {
		return "", errors.Wrap(ErrNoGuess, "state missing after re-search")
	}
	return word, nil
}

// seed builds the full tree behind the configured opener.
func (s *Solver) seed() error {
	delta, _, err := s.res.BuildStrategy(context.Background(), BuildSpec{
		Search: s.search,
		Policy: s.policy,
		Opener: s.opener,
	})
	if err != nil {
		return errors.Wrap(err, "seed strategy")
	}
	s.merge(delta)
	return nil
}

func (s *Solver) merge(delta map[StateKey]string) {
	added := s.strategy.Merge(delta)
	if added > 0 && s.savePath != "" {
		if err := s.strategy.Save(s.savePath); err != nil {
			s.res.log.WithError(err).Warn("strategy save failed; in-memory table still valid")
		}
	}
}
