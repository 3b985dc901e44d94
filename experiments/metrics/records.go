package metrics

import "time"

// AgentConfig identifies one searcher configuration under test.
type AgentConfig struct {
	ID           int
	Depth        int
	TieBreakSeed uint64 // 0 means deterministic first-found tie-breaking
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// GameRecord ties a game's metrics to the two configs that played it.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing Black
	Agent2 int // AgentConfig.ID, playing White
	GameMetric
}

// MoveMetric summarizes the search behind one move.
type MoveMetric struct {
	Step     int
	Player   string
	Duration time.Duration
	Depth    int
	Nodes    int64
	Leaves   int64
	Cutoffs  int64
}

// MoveRecord ties a move's metrics to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
