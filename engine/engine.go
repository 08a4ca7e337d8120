package engine

import (
	"context"

	"pursuit/experiments/metrics"
)

type Engine interface {
	// Run plays a game till pacman wins or loses, a max number of moves is reached or ctx is done
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
