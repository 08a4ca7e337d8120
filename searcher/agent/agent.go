package agent

import (
	"errors"
	"fmt"
	"strings"

	"pursuit/experiments/metrics"
	"pursuit/game"
)

var (
	ErrMisconfigured  = errors.New("misconfigured agent")
	ErrNoLegalActions = errors.New("no legal actions")
)

type Agent interface {
	// ChooseAction returns pacman's next action for the state
	ChooseAction(state game.State) (game.Action, error)
}

// MeasuredAgent also reports the search metrics behind each decision
type MeasuredAgent interface {
	Agent
	FindMove(state game.State) (game.Action, metrics.SearchMetric, error)
}

// Evaluator selects an evaluation function by name, resolved once when an agent is built.
type Evaluator int

const (
	ScoreOnly Evaluator = iota
	Composite
)

var evaluatorNames = map[Evaluator]string{
	ScoreOnly: "scoreOnly",
	Composite: "composite",
}

var evaluators = map[Evaluator]game.Evaluate{
	ScoreOnly: game.EvaluateScore,
	Composite: game.EvaluateComposite,
}

func ParseEvaluator(name string) (Evaluator, error) {
	for evaluator, evaluatorName := range evaluatorNames {
		if strings.EqualFold(evaluatorName, strings.TrimSpace(name)) {
			return evaluator, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown evaluation function %q", ErrMisconfigured, name)
}

func (e Evaluator) Func() (game.Evaluate, error) {
	evaluate, ok := evaluators[e]
	if !ok {
		return nil, fmt.Errorf("%w: unknown evaluation function %d", ErrMisconfigured, int(e))
	}
	return evaluate, nil
}

func (e Evaluator) String() string {
	if name, ok := evaluatorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("evaluator(%d)", int(e))
}

func (e Evaluator) MarshalText() ([]byte, error) {
	if _, ok := evaluatorNames[e]; !ok {
		return nil, fmt.Errorf("%w: unknown evaluation function %d", ErrMisconfigured, int(e))
	}
	return []byte(e.String()), nil
}

func (e *Evaluator) UnmarshalText(text []byte) error {
	evaluator, err := ParseEvaluator(string(text))
	if err != nil {
		return err
	}
	*e = evaluator
	return nil
}
