package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"loa/engine"
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"
)

const NumGames = 10 // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthExperiment pits a fixed-depth baseline against deeper searchers
// and records game outcomes and per-move search metrics as CSV.
func RunDepthExperiment() error {
	// Tie-broken randomly so repeated games differ; the baseline plays
	// Black in every matchup.
	baseline := metrics.AgentConfig{ID: 0, Depth: 2, TieBreakSeed: 1}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		config.TieBreakSeed = uint64(config.ID) + 1
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, NumGames)

			gameMetric, moveMetrics := runGame(config1, config2)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
	}

	log.Info().Msgf("finished %s experiment, writing records...", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func runGame(config1, config2 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric) {
	match := engine.NewMatch(
		engine.NewMachineAgent(game.Black, newSearcher(config1)),
		engine.NewMachineAgent(game.White, newSearcher(config2)),
	)

	start := time.Now()
	winner, records := match.Run()
	end := time.Now()

	gameMetric := metrics.GameMetric{
		Winner:     winner.String(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: len(records),
	}
	moveMetrics := make([]metrics.MoveMetric, len(records))
	for i, record := range records {
		moveMetrics[i] = metrics.MoveMetric{
			Step:     record.Step,
			Player:   record.Player.String(),
			Duration: record.Metrics.Duration,
			Depth:    record.Metrics.Depth,
			Nodes:    record.Metrics.Nodes,
			Leaves:   record.Metrics.Leaves,
			Cutoffs:  record.Metrics.Cutoffs,
		}
	}
	return gameMetric, moveMetrics
}

func newSearcher(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithMetrics(),
	}
	if config.TieBreakSeed != 0 {
		options = append(options, searcher.WithTieBreak(config.TieBreakSeed))
	}
	return searcher.NewMinimax(options...)
}
