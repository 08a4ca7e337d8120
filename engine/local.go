package engine

import (
	"context"
	"fmt"
	"time"

	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher/agent"
	"pursuit/utils"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	State    *game.GridState
	Pacman   agent.Agent
	Ghosts   []GhostAgent
	MaxMoves int
}

// LocalEngine plays pacman against one ghost agent per ghost on the state
func LocalEngine(state *game.GridState, pacman agent.Agent, ghosts []GhostAgent) *localEngine {
	if len(ghosts) != state.Layout.NumAgents()-1 {
		panic("number of ghost agents does not match number of ghosts")
	}
	return &localEngine{
		State:    state,
		Pacman:   pacman,
		Ghosts:   ghosts,
		MaxMoves: meta.MAX_MOVES,
	}
}

// Run executes the game loop until pacman wins or loses.
func (e *localEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("starting game with %d ghosts", len(e.Ghosts))

	moves := 0
	for !e.over() && moves < e.MaxMoves {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		action, searchMetric, err := e.pacmanMove()
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("pacman failed to move at step %d: %w", moves+1, err)
		}
		e.State = e.State.Successor(game.Pacman, action).(*game.GridState)
		moves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         moves,
			Action:       string(action),
			Score:        e.State.Score(),
			SearchMetric: searchMetric,
		})

		for i, ghost := range e.Ghosts {
			if e.over() {
				break
			}
			agentIndex := i + 1
			e.State = e.State.Successor(agentIndex, ghost.ChooseGhostAction(e.State, agentIndex)).(*game.GridState)
		}
	}

	if moves >= e.MaxMoves && !e.over() {
		log.Warn().Msgf("stopped after %d moves without a result", e.MaxMoves)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = e.State.IsWin()
	gameMetric.Score = e.State.Score()
	gameMetric.TotalMoves = moves
	return gameMetric, moveMetrics, nil
}

func (e *localEngine) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}

func (e *localEngine) pacmanMove() (game.Action, metrics.SearchMetric, error) {
	var (
		action game.Action
		metric metrics.SearchMetric
		err    error
	)
	if measured, ok := e.Pacman.(agent.MeasuredAgent); ok {
		action, metric, err = measured.FindMove(e.State)
	} else {
		action, err = e.Pacman.ChooseAction(e.State)
	}
	if err != nil {
		return "", metric, err
	}
	if !utils.Contains(e.State.LegalActions(game.Pacman), action) {
		return "", metric, fmt.Errorf("illegal action %q", action)
	}
	return action, metric, nil
}
