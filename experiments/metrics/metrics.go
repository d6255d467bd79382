package metrics

import "time"

type MoveMetric struct {
	Step     int
	Player   string // Color name
	Row      int
	Col      int
	Forced   bool // The player's move was illegal and replaced by the engine
	Duration time.Duration
}

type GameMetric struct {
	Size           int
	StartingPlayer string // Color name
	Winner         string // Color name or game.Draw
	WhiteScore     int
	BlackScore     int
	HeuristicWhite int // Corrected single-pass count, for comparison
	HeuristicBlack int
	TotalMoves     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// Agrees reports whether the single-pass counts match the worklist counts.
func (g GameMetric) Agrees() bool {
	return g.WhiteScore == g.HeuristicWhite && g.BlackScore == g.HeuristicBlack
}

// RunConfig describes one experiment run, stored next to its results.
type RunConfig struct {
	Name  string
	Sizes []int
	Games int // Per size
	Seed  uint64
}
