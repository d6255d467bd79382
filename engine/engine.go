package engine

import "islands/experiments/metrics"

type Runner interface {
	// Run plays a game till the board is full or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
