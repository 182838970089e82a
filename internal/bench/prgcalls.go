// Package bench provides a small helper for estimating the PRG-call
// savings the path memoizer (spec §4.5.1) gives a sequence of point
// queries, summarizing the per-query interior-node expansion counts with
// mean/stddev the way tuneinsight-lattigo's precision-stats tooling
// summarizes repeated measurements via github.com/montanaflynn/stats.
package bench

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/rometsch-lab/grotto-dpf/inputs"
)

// PRGCallSummary describes how many interior-node PRG expansions a
// sequence of memoized point queries would need, and the distribution of
// that cost across the sequence.
type PRGCallSummary struct {
	Depth    int
	Calls    []float64 // per-query expansion count, one entry per query; the first is always Depth
	Mean     float64
	StdDev   float64
	Total    float64
}

// SummarizePathMemoizerCalls replays queries in order the way a caller
// holding one *eval.PathMemoizer would: the first query always walks the
// full depth, and each subsequent query only expands the levels below
// where it first diverges from its predecessor (spec §4.5.1,
// "countl_zero_symmetric_difference-based restart"). It returns the
// resulting per-query cost distribution without needing the memoizer's
// internal state, since the restart level is a pure function of two
// consecutive queries.
func SummarizePathMemoizerCalls(depth int, queries []inputs.Input) (PRGCallSummary, error) {
	if len(queries) == 0 {
		return PRGCallSummary{}, fmt.Errorf("bench: no queries given")
	}

	calls := make([]float64, 0, len(queries))
	calls = append(calls, float64(depth))

	for i := 1; i < len(queries); i++ {
		shared := queries[i].CountlZeroSymmetricDifference(queries[i-1])
		if shared > depth {
			shared = depth
		}
		calls = append(calls, float64(depth-shared))
	}

	mean, err := stats.Mean(calls)
	if err != nil {
		return PRGCallSummary{}, fmt.Errorf("bench: computing mean: %w", err)
	}
	stddev, err := stats.StandardDeviation(calls)
	if err != nil {
		return PRGCallSummary{}, fmt.Errorf("bench: computing stddev: %w", err)
	}
	total, err := stats.Sum(calls)
	if err != nil {
		return PRGCallSummary{}, fmt.Errorf("bench: computing total: %w", err)
	}

	return PRGCallSummary{Depth: depth, Calls: calls, Mean: mean, StdDev: stddev, Total: total}, nil
}
