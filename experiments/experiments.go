package experiments

import (
	"fmt"
	"islands/config"
	"islands/engine"
	"islands/experiments/metrics"
	"islands/player"

	"github.com/rs/zerolog/log"
)

// Summary describes a completed experiment.
type Summary struct {
	Games         int
	Disagreements int    // Games where the single-pass count differs from the worklist count
	Dir           string // Where the CSV files were written
}

// Run plays cfg.Games random self-play games for every board size, scores each
// finished board with both counting methods and writes the records as CSV.
func Run(cfg config.Experiment) (Summary, error) {
	count := 0
	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for si, size := range cfg.Sizes {
		log.Info().Msgf("starting size %d (%d of %d)...", size, si+1, len(cfg.Sizes))

		disagreements := 0
		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + uint64(count)*2
			winner, gameMetric, moveMetrics, err := runGame(size, seed)
			if err != nil {
				return summary, fmt.Errorf("game %d on size %d: %w", i+1, size, err)
			}
			count++

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if !gameMetric.Agrees() {
				disagreements++
				log.Debug().Msgf("game %d: worklist white=%d black=%d, single-pass white=%d black=%d",
					count, gameMetric.WhiteScore, gameMetric.BlackScore, gameMetric.HeuristicWhite, gameMetric.HeuristicBlack)
			}
			log.Debug().Msgf("completed size %d game %d of %d with winner: %s", size, i+1, cfg.Games, winner)
		}
		summary.Disagreements += disagreements
		log.Info().Msgf("completed size %d: %d of %d games disagree", size, disagreements, cfg.Games)
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteRunConfig(metrics.RunConfig{
		Name:  cfg.Name,
		Sizes: cfg.Sizes,
		Games: cfg.Games,
		Seed:  cfg.Seed,
	})
	if err != nil {
		return summary, fmt.Errorf("failed to store run config: %w", err)
	}
	log.Info().Msg("stored run config")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single random self-play game. White uses seed, Black seed+1.
func runGame(size int, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := []player.Player{
		player.NewRandomPlayer(seed),
		player.NewRandomPlayer(seed + 1),
	}
	e, err := engine.LocalEngine(players, size)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
