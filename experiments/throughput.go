package experiments

import (
	"fmt"

	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughput searches the same position once per depth and reports how
// many positions were visited and how fast. Results are written under
// cfg.OutputDir unless it is empty.
func RunThroughput[M any, S game.State[M, S]](cfg Config, state S) ([]metrics.SearchMetric, string, error) {
	if len(cfg.Depths) == 0 {
		return nil, "", fmt.Errorf("throughput experiment needs at least one depth")
	}

	log.Info().Msgf("starting %s throughput experiment...", cfg.Name)

	results := make([]metrics.SearchMetric, 0, len(cfg.Depths))
	for _, depth := range cfg.Depths {
		minimax := searcher.NewMinimax[M, S](searcher.WithDepth(depth), searcher.WithMetrics())
		_, metric := minimax.Search(state, state.Turn())
		results = append(results, metric)

		log.Info().Msgf("depth %d: %d nodes in %s (%.0f nodes/s)", depth, metric.Nodes, metric.Duration, nodesPerSecond(metric))
	}

	log.Info().Msgf("completed %s throughput experiment", cfg.Name)

	if cfg.OutputDir == "" {
		return results, "", nil
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name+"_throughput")
	if err != nil {
		return results, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteSearchMetrics(results)
	if err != nil {
		return results, "", fmt.Errorf("failed to write search metrics: %w", err)
	}
	log.Info().Msg("stored search metrics")

	return results, writer.Dir(), nil
}

func nodesPerSecond(metric metrics.SearchMetric) float64 {
	if metric.Duration <= 0 {
		return 0
	}
	return float64(metric.Nodes) / metric.Duration.Seconds()
}
