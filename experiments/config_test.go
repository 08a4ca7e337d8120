package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"pursuit/meta"
	"pursuit/searcher"
	"pursuit/searcher/agent"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
name: corridor
layout: |
  %%%%%%
  %P...%
  %%%%%%
games: 3
seed: 7
ghosts: random
agents:
  - id: 1
    policy: alpha-beta
    evaluator: composite
    depth: 3
  - id: 2
    policy: expectimax
  - id: 3
    reflex: true
`

func TestParseConfig(t *testing.T) {
	t.Run("decoding a full config", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(sampleConfig))

		require.NoError(t, err)
		require.Equal(t, "corridor", cfg.Name)
		require.Equal(t, "%%%%%%\n%P...%\n%%%%%%\n", cfg.Layout)
		require.Equal(t, 3, cfg.Games)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, RandomGhosts, cfg.Ghosts)
		require.Equal(t, "experiments", cfg.OutputDir, "Output directory defaults when omitted")
		require.Len(t, cfg.Agents, 3)

		require.Equal(t, AgentConfig{ID: 1, Policy: searcher.AlphaBeta, Evaluator: agent.Composite, Depth: 3}, cfg.Agents[0])
		require.Equal(t, searcher.Expectimax, cfg.Agents[1].Policy)
		require.Equal(t, agent.ScoreOnly, cfg.Agents[1].Evaluator)
		require.Equal(t, meta.DEFAULT_DEPTH, cfg.Agents[1].Depth, "Search agents without a depth get the default")
		require.True(t, cfg.Agents[2].Reflex)
		require.Zero(t, cfg.Agents[2].Depth)
	})

	t.Run("filling defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("name: x\nlayout_path: a.lay\nagents:\n  - id: 1\n"))

		require.NoError(t, err)
		require.Equal(t, meta.NUM_GAMES, cfg.Games)
		require.Equal(t, DirectionalGhosts, cfg.Ghosts)
		require.Equal(t, searcher.Minimax, cfg.Agents[0].Policy)
	})

	t.Run("rejecting invalid configs", func(t *testing.T) {
		invalid := map[string]string{
			"malformed yaml":   "name: [",
			"missing name":     "layout_path: a.lay\nagents:\n  - id: 1\n",
			"missing layout":   "name: x\nagents:\n  - id: 1\n",
			"no games":         "name: x\nlayout_path: a.lay\ngames: -1\nagents:\n  - id: 1\n",
			"unknown ghosts":   "name: x\nlayout_path: a.lay\nghosts: clyde\nagents:\n  - id: 1\n",
			"no agents":        "name: x\nlayout_path: a.lay\n",
			"duplicate ids":    "name: x\nlayout_path: a.lay\nagents:\n  - id: 1\n  - id: 1\n",
			"negative depth":   "name: x\nlayout_path: a.lay\nagents:\n  - id: 1\n    depth: -2\n",
			"unknown policy":   "name: x\nlayout_path: a.lay\nagents:\n  - id: 1\n    policy: mcts\n",
			"unknown evaluate": "name: x\nlayout_path: a.lay\nagents:\n  - id: 1\n    evaluator: learned\n",
		}
		for name, text := range invalid {
			t.Run(name, func(t *testing.T) {
				_, err := ParseConfig([]byte(text))
				require.Error(t, err)
			})
		}
	})

	t.Run("wrapping validation errors", func(t *testing.T) {
		_, err := ParseConfig([]byte("name: x\nagents:\n  - id: 1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reading a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "experiment.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "corridor", cfg.Name)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
