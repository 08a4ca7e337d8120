package agent

import (
	"sync"

	"pursuit/game"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	mu  *sync.Mutex
	rng *rand.Rand
}

// NewReflexAgent returns a one-ply baseline that scores each successor with the composite
// evaluation and breaks ties uniformly at random.
func NewReflexAgent(seed uint64) Agent {
	return reflexAgent{
		mu:  &sync.Mutex{},
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a reflexAgent) ChooseAction(state game.State) (game.Action, error) {
	actions := state.LegalActions(game.Pacman)
	if len(actions) == 0 {
		return "", ErrNoLegalActions
	}

	scores := make([]float64, len(actions))
	bestScore := 0.0
	for i, action := range actions {
		scores[i] = game.EvaluateComposite(state.Successor(game.Pacman, action))
		if i == 0 || scores[i] > bestScore {
			bestScore = scores[i]
		}
	}

	best := []int{}
	for i, score := range scores {
		if score == bestScore {
			best = append(best, i)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return actions[best[a.rng.Intn(len(best))]], nil
}
