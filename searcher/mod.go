package searcher

import "minmax/meta"

// Result is the outcome of searching a position: the best score and the move
// reaching it. Found is false when the position was terminal or the depth
// budget was exhausted, in which case Move is the zero value.
type Result[M any] struct {
	Score int
	Move  M
	Found bool
}

type settings struct {
	depth   int
	metrics bool
}

type Option func(s *settings)

func defaultSettings() settings {
	return settings{depth: meta.DEFAULT_DEPTH}
}

// WithDepth sets the number of plies explored below the root. Negative
// depths are treated as zero.
func WithDepth(depth int) Option {
	return func(s *settings) {
		s.depth = max(depth, 0)
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = true
	}
}
