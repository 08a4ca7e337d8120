package engine

import (
	"sync"

	"pursuit/game"

	"golang.org/x/exp/rand"
)

// GhostAgent picks a move for one ghost, identified by its agent index.
type GhostAgent interface {
	ChooseGhostAction(state game.State, agent int) game.Action
}

type randomGhost struct {
	mu  *sync.Mutex
	rng *rand.Rand
}

// NewRandomGhost returns a ghost choosing uniformly among its legal actions, as expectimax assumes.
func NewRandomGhost(seed uint64) GhostAgent {
	return randomGhost{mu: &sync.Mutex{}, rng: rand.New(rand.NewSource(seed))}
}

func (g randomGhost) ChooseGhostAction(state game.State, agent int) game.Action {
	actions := state.LegalActions(agent)
	g.mu.Lock()
	defer g.mu.Unlock()
	return actions[g.rng.Intn(len(actions))]
}

type directionalGhost struct {
	mu     *sync.Mutex
	rng    *rand.Rand
	chance float64
}

// NewDirectionalGhost returns a ghost that moves toward pacman with the given probability, or
// away from it while scared, and otherwise wanders at random.
func NewDirectionalGhost(seed uint64, chance float64) GhostAgent {
	return directionalGhost{mu: &sync.Mutex{}, rng: rand.New(rand.NewSource(seed)), chance: chance}
}

func (g directionalGhost) ChooseGhostAction(state game.State, agent int) game.Action {
	actions := state.LegalActions(agent)
	ghost := state.Ghosts()[agent-1]
	pacman := state.PacmanPosition()
	scared := ghost.ScaredTimer > 0

	best := []game.Action{}
	bestDistance := 0
	for _, action := range actions {
		distance := game.Manhattan(ghost.Position.Step(action), pacman)
		better := distance < bestDistance
		if scared {
			better = distance > bestDistance
		}
		if len(best) == 0 || better {
			best = []game.Action{action}
			bestDistance = distance
		} else if distance == bestDistance {
			best = append(best, action)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rng.Float64() < g.chance {
		return best[g.rng.Intn(len(best))]
	}
	return actions[g.rng.Intn(len(actions))]
}
