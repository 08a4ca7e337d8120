package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"pursuit/searcher"
	"pursuit/searcher/agent"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, pattern string) [][]string {
	t.Helper()
	matches, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.Len(t, matches, 1, "Expected exactly one file for %s", pattern)
	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("playing every agent and storing the records", func(t *testing.T) {
		out := t.TempDir()
		cfg := &Config{
			Name:      "corridor",
			Layout:    "%%%%%%\n%P...%\n%%%%%%\n",
			Games:     2,
			Seed:      1,
			Ghosts:    RandomGhosts,
			OutputDir: out,
			Agents: []AgentConfig{
				{ID: 1, Policy: searcher.AlphaBeta, Evaluator: agent.ScoreOnly, Depth: 2},
				{ID: 2, Reflex: true},
			},
		}

		summaries, err := Run(context.Background(), cfg)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		require.Equal(t, Summary{Agent: 1, Games: 2, Wins: 2, MeanScore: 527}, summaries[0])
		require.Equal(t, 2, summaries[1].Agent)
		require.Equal(t, 2, summaries[1].Games)

		dir := filepath.Join(out, "corridor", "*")
		agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, agents, 3, "Header and one row per agent")
		require.Equal(t, []string{"1", "search", "alphabeta", "scoreOnly", "2"}, agents[1])
		require.Equal(t, "reflex", agents[2][1])

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 5, "Header and one row per game")
		require.Equal(t, "inline", games[1][2])
		require.Equal(t, "true", games[1][3])

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Equal(t, []string{"1", "1", "East", "9", "alphabeta", "2"}, moves[1][:6])

		archives, err := filepath.Glob(filepath.Join(dir, "move_records.parquet"))
		require.NoError(t, err)
		require.Len(t, archives, 1)
	})

	t.Run("failing on a missing layout file", func(t *testing.T) {
		cfg := &Config{
			Name:       "missing",
			LayoutPath: filepath.Join(t.TempDir(), "missing.lay"),
			Games:      1,
			Ghosts:     RandomGhosts,
			OutputDir:  t.TempDir(),
			Agents:     []AgentConfig{{ID: 1, Depth: 1}},
		}

		_, err := Run(context.Background(), cfg)

		require.Error(t, err)
	})

	t.Run("stopping when the context is cancelled", func(t *testing.T) {
		cfg := &Config{
			Name:      "cancelled",
			Layout:    "%%%%%%\n%P...%\n%%%%%%\n",
			Games:     1,
			Ghosts:    DirectionalGhosts,
			OutputDir: t.TempDir(),
			Agents:    []AgentConfig{{ID: 1, Depth: 1}},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, cfg)

		require.ErrorIs(t, err, context.Canceled)
	})
}
