package searcher

import (
	"pursuit/game"
)

// Chance nodes model ghosts as picking uniformly among their legal actions.

func (s *search) maxExpected(state game.State, depth, agent int, actions []game.Action) Result {
	best := leaf(negInf)
	for i, action := range actions {
		successor, nextDepth, nextAgent := child(state, depth, agent, action)
		value := s.expectimax(successor, nextDepth, nextAgent).Value
		if i == 0 || value > best.Value {
			best = choice(value, action)
		}
	}
	return best
}

// expectedValue is the mean of every outcome, no single outcome bounds it so nothing is pruned
func (s *search) expectedValue(state game.State, depth, agent int, actions []game.Action) Result {
	sum := 0.0
	for _, action := range actions {
		successor, nextDepth, nextAgent := child(state, depth, agent, action)
		sum += s.expectimax(successor, nextDepth, nextAgent).Value
	}
	return leaf(sum / float64(len(actions)))
}
