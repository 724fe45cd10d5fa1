package matcher

import (
	"context"
	"fmt"
	"math"
)

// Breakdown is the aggregated score of one candidate against the reference.
type Breakdown struct {
	// Overall is the weighted match percentage in [0,100].
	Overall float64
	// PerSection holds percentages for comparable sections only.
	PerSection map[SectionName]float64
}

// Aggregator folds per-section similarities into one weighted percentage.
type Aggregator struct {
	scorer PairScorer
}

func NewAggregator(scorer PairScorer) *Aggregator {
	return &Aggregator{scorer: scorer}
}

// Aggregate scores every weighted section found on both sides. The weighted
// total is divided by the weight of the sections actually compared, so a
// missing section only loses its own contribution. No comparable sections
// yields a zero score and an empty breakdown.
func (a *Aggregator) Aggregate(ctx context.Context, ref, cand SectionSet) (Breakdown, error) {
	breakdown := Breakdown{PerSection: make(map[SectionName]float64)}

	var total, activeWeight float64
	for _, name := range WeightedSections() {
		refText, candText := ref.Get(name), cand.Get(name)
		if !Comparable(refText, candText) {
			continue
		}

		score, err := a.scorer.Score(ctx, refText, candText)
		if err != nil {
			return Breakdown{PerSection: map[SectionName]float64{}}, fmt.Errorf("failed to score %s: %w", name, err)
		}

		weight := name.Weight()
		total += weight * score
		activeWeight += weight
		breakdown.PerSection[name] = round2(score * 100)
	}

	if activeWeight > 0 {
		breakdown.Overall = round2(total / activeWeight * 100)
	}

	return breakdown, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
