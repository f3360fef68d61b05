package engine

import (
	"fmt"
	"sort"

	"eve-scout/internal/esi"
)

// MarketSource is the remote accessor the ranking pipeline runs against.
type MarketSource interface {
	FetchCandidateTypes(limit int, maxAveragePrice float64) ([]int32, error)
	FetchOrdersForType(regionID, typeID int32) ([]esi.MarketOrder, error)
	LatestDailyVolume(regionID, typeID int32) (float64, error)
	ResolveNames(typeIDs []int32) (map[int32]string, error)
}

// Ranker orchestrates candidate sampling, per-item fetching, opportunity
// calculation and filtering. Fully sequential: one remote round trip per
// candidate for orders and one for volume, no batching.
type Ranker struct {
	Source MarketSource
}

// NewRanker creates a Ranker over the given market source.
func NewRanker(source MarketSource) *Ranker {
	return &Ranker{Source: source}
}

// Rank finds the most profitable flip opportunities in a region. Results are
// sorted by absolute spread descending (ties keep sampled order) and bounded
// by params.Limit. A failed remote call aborts the run; there are no partial
// results.
func (r *Ranker) Rank(params RankParams, progress func(string)) ([]Opportunity, error) {
	if progress == nil {
		progress = func(string) {}
	}

	progress(fmt.Sprintf("Sampling %d candidates by average price...", params.SampleSize))
	candidates, err := r.Source.FetchCandidateTypes(params.SampleSize, params.MaxBuyPrice)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	names, err := r.Source.ResolveNames(candidates)
	if err != nil {
		return nil, fmt.Errorf("resolve names: %w", err)
	}

	progress(fmt.Sprintf("Scanning order books for %d items...", len(candidates)))

	var results []Opportunity
	for _, typeID := range candidates {
		orders, err := r.Source.FetchOrdersForType(params.RegionID, typeID)
		if err != nil {
			return nil, fmt.Errorf("fetch orders for type %d: %w", typeID, err)
		}
		volume, err := r.Source.LatestDailyVolume(params.RegionID, typeID)
		if err != nil {
			return nil, fmt.Errorf("fetch history for type %d: %w", typeID, err)
		}
		if volume < params.MinDailyVolume {
			continue
		}

		name := names[typeID]
		if name == "" {
			name = fmt.Sprintf("Type %d", typeID)
		}

		opp, ok := ComputeOpportunity(typeID, name, orders, volume, params.SalesTaxPct, params.BrokerFeePct)
		if !ok {
			continue
		}
		// Average price and best buy can diverge, so the prefilter ceiling
		// is re-checked against the actual best bid.
		if params.MaxBuyPrice > 0 && opp.BestBuy > params.MaxBuyPrice {
			continue
		}
		if opp.NetProfit < params.MinNetProfit {
			continue
		}
		results = append(results, opp)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Spread > results[j].Spread
	})

	limit := EffectiveMaxResults(params.Limit, DefaultMaxResults)
	if len(results) > limit {
		results = results[:limit]
	}

	progress(fmt.Sprintf("Found %d profitable flips", len(results)))
	return results, nil
}
