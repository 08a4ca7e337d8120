package searcher

import (
	"fmt"

	"pursuit/game"
)

// mockNode is a hand built game tree, the turn order is baked into its shape
type mockNode struct {
	name     string
	score    float64
	agents   int
	actions  []game.Action
	children []*mockNode
}

func (m *mockNode) LegalActions(agent int) []game.Action {
	return m.actions
}

func (m *mockNode) Successor(agent int, action game.Action) game.State {
	for i, a := range m.actions {
		if a == action {
			return m.children[i]
		}
	}
	panic(fmt.Sprintf("illegal action %s at node %s", action, m.name))
}

func (m *mockNode) NumAgents() int                { return m.agents }
func (m *mockNode) Score() float64                { return m.score }
func (m *mockNode) PacmanPosition() game.Position { return game.Position{} }
func (m *mockNode) Food() []game.Position         { return nil }
func (m *mockNode) Ghosts() []game.GhostState     { return nil }

// tree builds nodes for the given number of agents, children get actions a, b, c...
type tree struct {
	agents int
}

func (t tree) leaf(name string, score float64) *mockNode {
	return &mockNode{name: name, score: score, agents: t.agents}
}

func (t tree) node(name string, children ...*mockNode) *mockNode {
	n := &mockNode{name: name, agents: t.agents, children: children}
	for i := range children {
		n.actions = append(n.actions, game.Action(string(rune('a'+i))))
	}
	return n
}

// leaves creates one scored leaf per value, named prefix0, prefix1...
func (t tree) leaves(prefix string, scores ...float64) []*mockNode {
	nodes := make([]*mockNode, len(scores))
	for i, score := range scores {
		nodes[i] = t.leaf(fmt.Sprintf("%s%d", prefix, i), score)
	}
	return nodes
}

// recorder is an evaluation function that remembers which leaves it scored
type recorder struct {
	evaluated []string
}

func (r *recorder) evaluate(s game.State) float64 {
	node := s.(*mockNode)
	r.evaluated = append(r.evaluated, node.name)
	return node.score
}
