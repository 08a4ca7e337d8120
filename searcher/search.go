package searcher

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher holds the immutable configuration of a depth-limited tree search.
// Every call to Search builds its own tree, so a Searcher can be shared.
type Searcher struct {
	policy   Policy
	depth    int
	evaluate game.Evaluate
	metrics  bool
}

// WithDepth sets the number of full rounds to search, 0 evaluates the root.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = true
	}
}

func NewSearcher(policy Policy, options ...Option) *Searcher {
	if !policy.Valid() {
		panic("unknown search policy")
	}
	s := &Searcher{ // Default values
		policy:   policy,
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateScore,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Policy() Policy {
	return s.policy
}

func (s *Searcher) Depth() int {
	return s.depth
}

// search is the per-call state of one tree exploration
type search struct {
	*Searcher
	metrics metrics.Collector
}

// Search explores the tree from pacman's turn at depth 0 and returns the root decision.
// The result has no action when pacman has no legal actions at the root.
func (s *Searcher) Search(state game.State) (Result, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if s.metrics {
		collector = metrics.NewCollector()
	}
	run := &search{Searcher: s, metrics: collector}

	run.metrics.Start(s.policy.String(), s.depth)
	result := run.root(state)
	metric := run.metrics.Complete()

	log.Debug().
		Str("policy", metric.Policy).
		Int("depth", s.depth).
		Float64("value", result.Value).
		Str("action", string(result.Action)).
		Int("nodes", metric.NodesExpanded).
		Int("leaves", metric.LeavesEvaluated).
		Int("prunes", metric.Prunes).
		Msg("search complete")

	return result, metric
}

func (s *search) root(state game.State) Result {
	switch s.policy {
	case Minimax:
		return s.minimax(state, 0, game.Pacman)
	case AlphaBeta:
		return s.alphaBeta(state, 0, game.Pacman, negInf, posInf)
	case Expectimax:
		return s.expectimax(state, 0, game.Pacman)
	default:
		panic("unknown search policy")
	}
}

// expand returns the agent's legal actions, or the cutoff value when the node is a leaf
func (s *search) expand(state game.State, depth, agent int) ([]game.Action, Result, bool) {
	actions := state.LegalActions(agent)
	if depth == s.depth || len(actions) == 0 {
		s.metrics.AddLeaf()
		return nil, leaf(s.evaluate(state)), true
	}
	s.metrics.AddNode()
	return actions, Result{}, false
}

// child plays the action and hands the successor to the next agent in rotation
func child(state game.State, depth, agent int, action game.Action) (game.State, int, int) {
	successor := state.Successor(agent, action)
	nextDepth, nextAgent := NextTurn(depth, agent, state.NumAgents())
	return successor, nextDepth, nextAgent
}

func (s *search) minimax(state game.State, depth, agent int) Result {
	actions, cutoff, isLeaf := s.expand(state, depth, agent)
	if isLeaf {
		return cutoff
	}
	if agent == game.Pacman {
		return s.maxValue(state, depth, agent, actions)
	}
	return s.minValue(state, depth, agent, actions)
}

func (s *search) alphaBeta(state game.State, depth, agent int, alpha, beta float64) Result {
	actions, cutoff, isLeaf := s.expand(state, depth, agent)
	if isLeaf {
		return cutoff
	}
	if agent == game.Pacman {
		return s.maxValuePruned(state, depth, agent, actions, alpha, beta)
	}
	return s.minValuePruned(state, depth, agent, actions, alpha, beta)
}

func (s *search) expectimax(state game.State, depth, agent int) Result {
	actions, cutoff, isLeaf := s.expand(state, depth, agent)
	if isLeaf {
		return cutoff
	}
	if agent == game.Pacman {
		return s.maxExpected(state, depth, agent, actions)
	}
	return s.expectedValue(state, depth, agent, actions)
}
