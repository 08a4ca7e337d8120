package agent

import (
	"fmt"

	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
	evaluate game.Evaluate
}

// NewSearchAgent returns an agent that plays the action found by a depth-limited tree search.
// A depth of 0 degenerates to a one-ply greedy choice under the evaluation function.
func NewSearchAgent(policy searcher.Policy, evaluator Evaluator, depth int, options ...searcher.Option) (MeasuredAgent, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrMisconfigured, searcher.ErrUnknownPolicy)
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: depth %d must not be negative", ErrMisconfigured, depth)
	}
	evaluate, err := evaluator.Func()
	if err != nil {
		return nil, err
	}

	options = append(options, searcher.WithDepth(depth), searcher.WithEvaluationFn(evaluate))
	return searchAgent{
		searcher: searcher.NewSearcher(policy, options...),
		evaluate: evaluate,
	}, nil
}

func (a searchAgent) ChooseAction(state game.State) (game.Action, error) {
	action, _, err := a.FindMove(state)
	return action, err
}

func (a searchAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(game.Pacman)
	if len(actions) == 0 {
		return "", metrics.SearchMetric{}, ErrNoLegalActions
	}

	result, metric := a.searcher.Search(state)
	if !result.HasAction { // Depth 0 evaluates the root only
		return a.greedy(state, actions), metric, nil
	}
	return result.Action, metric, nil
}

// greedy picks the first action whose successor evaluates highest
func (a searchAgent) greedy(state game.State, actions []game.Action) game.Action {
	bestAction := actions[0]
	bestValue := a.evaluate(state.Successor(game.Pacman, bestAction))
	for _, action := range actions[1:] {
		if value := a.evaluate(state.Successor(game.Pacman, action)); value > bestValue {
			bestValue = value
			bestAction = action
		}
	}
	return bestAction
}
