package engine

import (
	"islands/experiments/metrics"
	"islands/game"
	"islands/meta"
	"islands/player"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameState
	Players  []player.Player // White then Black
	MaxTurns int
}

// LocalEngine sets up an empty size×size game between two players. White,
// players[0], moves first.
func LocalEngine(players []player.Player, size int) (*Engine, error) {
	if len(players) != 2 {
		panic("need exactly two players")
	}

	state, err := game.NewGameState(size)
	if err != nil {
		return nil, err
	}

	// Every turn fills an empty cell, so a full board needs size² turns
	maxTurns := meta.MAX_TURNS
	if cells := size * size; cells > maxTurns {
		maxTurns = cells
	}

	return &Engine{
		State:    state,
		Players:  players,
		MaxTurns: maxTurns,
	}, nil
}

// Run executes the game loop until no legal moves remain.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Size:           e.State.Board.Size(),
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting on a %dx%d board", e.State.Player(), gameMetric.Size, gameMetric.Size)

	turnCount := 1
	for e.State.Winner() == "" && turnCount <= e.MaxTurns {
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			break
		}

		playerIndex := 0
		if e.State.Current == game.Black {
			playerIndex = 1
		}

		start := time.Now()
		move := e.Players[playerIndex].FindMove(e.State)
		elapsed := time.Since(start)

		forced := false
		if !contains(legal, move) {
			log.Warn().Msgf("%s returned an illegal move %v on turn %d, forcing %v", e.State.Player(), move, turnCount, legal[0])
			move = legal[0]
			forced = true
		}

		target := move.Target()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     turnCount,
			Player:   e.State.Player(),
			Row:      target.Row,
			Col:      target.Col,
			Forced:   forced,
			Duration: elapsed,
		})

		e.State = e.State.Play(move).(*game.GameState)
		turnCount++
	}

	board := e.State.Board
	gameMetric.Winner = e.State.Winner()
	gameMetric.WhiteScore = board.WhiteScore()
	gameMetric.BlackScore = board.BlackScore()
	gameMetric.HeuristicWhite = board.HeuristicScoreFor(game.White)
	gameMetric.HeuristicBlack = board.HeuristicScoreFor(game.Black)
	gameMetric.TotalMoves = board.Moves()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if gameMetric.Winner == "" {
		log.Warn().Msgf("stopped after %d turns without a full board", e.MaxTurns)
	} else {
		log.Debug().Msgf("game over after %d moves: white=%d black=%d winner=%s",
			gameMetric.TotalMoves, gameMetric.WhiteScore, gameMetric.BlackScore, gameMetric.Winner)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

func contains(moves []game.Move, move game.Move) bool {
	if move == nil {
		return false
	}
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
