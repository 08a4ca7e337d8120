package searcher

import (
	"math"

	"pursuit/game"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Decision nodes pick the best action for their own agent: pacman maximizes, ghosts minimize.
// Comparisons are strict so the first action reaching the extreme value wins ties, and the first
// action is always taken so a node whose children are all infinite still has a choice.

func (s *search) maxValue(state game.State, depth, agent int, actions []game.Action) Result {
	best := leaf(negInf)
	for i, action := range actions {
		successor, nextDepth, nextAgent := child(state, depth, agent, action)
		value := s.minimax(successor, nextDepth, nextAgent).Value
		if i == 0 || value > best.Value {
			best = choice(value, action)
		}
	}
	return best
}

func (s *search) minValue(state game.State, depth, agent int, actions []game.Action) Result {
	best := leaf(posInf)
	for i, action := range actions {
		successor, nextDepth, nextAgent := child(state, depth, agent, action)
		value := s.minimax(successor, nextDepth, nextAgent).Value
		if i == 0 || value < best.Value {
			best = choice(value, action)
		}
	}
	return best
}

// maxValuePruned stops once pacman can already do better than beta, which the minimizing ancestor will never allow.
func (s *search) maxValuePruned(state game.State, depth, agent int, actions []game.Action, alpha, beta float64) Result {
	best := leaf(negInf)
	for i, action := range actions {
		successor, nextDepth, nextAgent := child(state, depth, agent, action)
		value := s.alphaBeta(successor, nextDepth, nextAgent, alpha, beta).Value
		if i == 0 || value > best.Value {
			best = choice(value, action)
		}
		if best.Value > beta {
			if i < len(actions)-1 {
				s.metrics.AddPrune()
			}
			return best
		}
		alpha = math.Max(alpha, best.Value)
	}
	return best
}

// minValuePruned stops once a ghost can already hold pacman below alpha.
func (s *search) minValuePruned(state game.State, depth, agent int, actions []game.Action, alpha, beta float64) Result {
	best := leaf(posInf)
	for i, action := range actions {
		successor, nextDepth, nextAgent := child(state, depth, agent, action)
		value := s.alphaBeta(successor, nextDepth, nextAgent, alpha, beta).Value
		if i == 0 || value < best.Value {
			best = choice(value, action)
		}
		if best.Value < alpha {
			if i < len(actions)-1 {
				s.metrics.AddPrune()
			}
			return best
		}
		beta = math.Min(beta, best.Value)
	}
	return best
}
