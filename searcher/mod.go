package searcher

import (
	"pursuit/game"
)

// Result is a node value and, when the node chose among its own agent's actions, the chosen action.
// Parents only read the value.
type Result struct {
	Value     float64
	Action    game.Action
	HasAction bool
}

func leaf(value float64) Result {
	return Result{Value: value}
}

func choice(value float64, action game.Action) Result {
	return Result{Value: value, Action: action, HasAction: true}
}

// NextTurn rotates to the next agent. Depth counts full rounds, so it only grows when pacman moves again.
func NextTurn(depth, agent, numAgents int) (nextDepth, nextAgent int) {
	nextAgent = (agent + 1) % numAgents
	if nextAgent == game.Pacman {
		return depth + 1, nextAgent
	}
	return depth, nextAgent
}
