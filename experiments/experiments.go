package experiments

import (
	"context"
	"fmt"
	"path/filepath"

	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher"
	"pursuit/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Summary aggregates the games played by one agent config
type Summary struct {
	Agent     int
	Games     int
	Wins      int
	MeanScore float64
}

// Run plays every agent config for the configured number of games and stores the records
// under OutputDir/Name/<timestamp>.
func Run(ctx context.Context, cfg *Config) ([]Summary, error) {
	layout, layoutName, err := loadLayout(cfg)
	if err != nil {
		return nil, err
	}

	count := 0
	agentRecords := []metrics.AgentRecord{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := []Summary{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for ai, agentConfig := range cfg.Agents {
		log.Info().Msgf("starting agent %d of %d with config %+v...", ai+1, len(cfg.Agents), agentConfig)

		summary := Summary{Agent: agentConfig.ID}
		for i := 0; i < cfg.Games; i++ {
			count++
			seed := cfg.Seed + uint64(count)

			pacman, err := createAgent(agentConfig, seed)
			if err != nil {
				return nil, fmt.Errorf("agent %d: %w", agentConfig.ID, err)
			}
			state := game.NewGridState(layout, game.NewStandardRules())
			var e engine.Engine = engine.LocalEngine(state, pacman, createGhosts(cfg.Ghosts, len(layout.GhostStarts), seed))

			gameMetric, moveMetrics, err := e.Run(ctx)
			if err != nil {
				return nil, fmt.Errorf("agent %d game %d: %w", agentConfig.ID, i+1, err)
			}
			gameMetric.Layout = layoutName

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      agentConfig.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			summary.Games++
			summary.MeanScore += (gameMetric.Score - summary.MeanScore) / float64(summary.Games)
			if gameMetric.Won {
				summary.Wins++
			}

			log.Info().Msgf("completed agent %d game %d of %d: won=%t score=%.0f moves=%d",
				agentConfig.ID, i+1, cfg.Games, gameMetric.Won, gameMetric.Score, gameMetric.TotalMoves)
		}

		agentRecords = append(agentRecords, agentRecord(agentConfig))
		summaries = append(summaries, summary)
		log.Info().Msgf("completed agent %d: won %d of %d, mean score %.1f", summary.Agent, summary.Wins, summary.Games, summary.MeanScore)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if err := store(cfg, agentRecords, gameRecords, moveRecords); err != nil {
		return nil, err
	}
	return summaries, nil
}

func store(cfg *Config, agentRecords []metrics.AgentRecord, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentRecords(agentRecords); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteMoveArchive(moveRecords); err != nil {
		return fmt.Errorf("failed to write move archive: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func loadLayout(cfg *Config) (*game.Layout, string, error) {
	if cfg.Layout != "" {
		l, err := game.ParseLayout(cfg.Layout)
		return l, "inline", err
	}
	l, err := game.LoadLayout(cfg.LayoutPath)
	return l, filepath.Base(cfg.LayoutPath), err
}

func createAgent(config AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Reflex {
		return agent.NewReflexAgent(seed), nil
	}
	return agent.NewSearchAgent(config.Policy, config.Evaluator, config.Depth, searcher.WithMetrics())
}

func createGhosts(kind GhostKind, n int, seed uint64) []engine.GhostAgent {
	ghosts := make([]engine.GhostAgent, n)
	for i := range ghosts {
		ghostSeed := seed*31 + uint64(i)
		if kind == RandomGhosts {
			ghosts[i] = engine.NewRandomGhost(ghostSeed)
		} else {
			ghosts[i] = engine.NewDirectionalGhost(ghostSeed, meta.DIRECTIONAL_PROBABILITY)
		}
	}
	return ghosts
}

func agentRecord(config AgentConfig) metrics.AgentRecord {
	if config.Reflex {
		return metrics.AgentRecord{ID: config.ID, Kind: "reflex", Evaluator: agent.Composite.String(), Depth: 1}
	}
	return metrics.AgentRecord{
		ID:        config.ID,
		Kind:      "search",
		Policy:    config.Policy.String(),
		Evaluator: config.Evaluator.String(),
		Depth:     config.Depth,
	}
}
