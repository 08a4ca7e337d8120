package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pursuit/engine"
	"pursuit/experiments"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher"
	"pursuit/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	config    string
	layout    string
	policy    string
	evaluator string
	depth     int
	reflex    bool
	ghosts    string
	seed      uint64
	serve     string
	remote    string
	debug     bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.config, "config", "", "Experiment config to run (YAML)")
	flag.StringVar(&opts.layout, "layout", "layouts/small.lay", "Layout of a single game")
	flag.StringVar(&opts.policy, "policy", "alphabeta", "Search policy: minimax, alphabeta or expectimax")
	flag.StringVar(&opts.evaluator, "eval", "scoreOnly", "Evaluation function: scoreOnly or composite")
	flag.IntVar(&opts.depth, "depth", meta.DEFAULT_DEPTH, "Search depth in full rounds of all agents")
	flag.BoolVar(&opts.reflex, "reflex", false, "Play with the reflex agent instead of a search agent")
	flag.StringVar(&opts.ghosts, "ghosts", string(experiments.DirectionalGhosts), "Ghost agents: random or directional")
	flag.Uint64Var(&opts.seed, "seed", 1, "Seed of the ghost and reflex agents")
	flag.StringVar(&opts.serve, "serve", "", "Serve the agent on this address instead of playing")
	flag.StringVar(&opts.remote, "remote", "", "Play a game with the agent served at this URL")
	flag.BoolVar(&opts.debug, "debug", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func run(ctx context.Context, opts options) error {
	if opts.config != "" {
		cfg, err := experiments.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		summaries, err := experiments.Run(ctx, cfg)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Printf("Agent %d: won %d of %d, mean score %.1f\n", s.Agent, s.Wins, s.Games, s.MeanScore)
		}
		return nil
	}

	var (
		pacman agent.Agent
		err    error
	)
	if opts.remote != "" {
		pacman = engine.NewRemoteAgent(opts.remote, nil)
	} else if pacman, err = createAgent(opts); err != nil {
		return err
	}

	if opts.serve != "" {
		return agent.StartAgentServer(opts.serve, pacman, game.NewStandardRules())
	}
	return playGame(ctx, opts, pacman)
}

func createAgent(opts options) (agent.Agent, error) {
	if opts.reflex {
		return agent.NewReflexAgent(opts.seed), nil
	}
	policy, err := searcher.ParsePolicy(opts.policy)
	if err != nil {
		return nil, err
	}
	evaluator, err := agent.ParseEvaluator(opts.evaluator)
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(policy, evaluator, opts.depth, searcher.WithMetrics())
}

func playGame(ctx context.Context, opts options, pacman agent.Agent) error {
	layout, err := game.LoadLayout(opts.layout)
	if err != nil {
		return err
	}

	ghosts := make([]engine.GhostAgent, len(layout.GhostStarts))
	for i := range ghosts {
		switch experiments.GhostKind(opts.ghosts) {
		case experiments.RandomGhosts:
			ghosts[i] = engine.NewRandomGhost(opts.seed + uint64(i))
		case experiments.DirectionalGhosts:
			ghosts[i] = engine.NewDirectionalGhost(opts.seed+uint64(i), meta.DIRECTIONAL_PROBABILITY)
		default:
			return fmt.Errorf("unknown ghosts %q", opts.ghosts)
		}
	}

	state := game.NewGridState(layout, game.NewStandardRules())
	fmt.Println(state)

	e := engine.LocalEngine(state, pacman, ghosts)
	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(e.State)
	nodes := 0
	for _, m := range moveMetrics {
		nodes += m.NodesExpanded
	}
	log.Info().Msgf("game over after %d moves in %s: won=%t score=%.0f nodes=%d",
		gameMetric.TotalMoves, gameMetric.Duration, gameMetric.Won, gameMetric.Score, nodes)
	return nil
}
