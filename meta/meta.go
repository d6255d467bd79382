// meta/meta.go
package meta

// MAX_TURNS caps the game loop on boards with fewer than MAX_TURNS cells.
// Larger boards are capped at size² turns.
const MAX_TURNS = 10000

// DEFAULT_SIZE is the board edge used when none is configured.
const DEFAULT_SIZE = 11

// DEFAULT_GAMES defines the number of games per board size in an experiment.
const DEFAULT_GAMES = 30

// DEFAULT_OUT_DIR is where experiment results are written.
const DEFAULT_OUT_DIR = "experiments"
