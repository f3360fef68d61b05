package engine

import (
	"math"

	"eve-scout/internal/esi"
)

// ComputeOpportunity derives a flip opportunity from the raw order book of
// one item. Orders missing a price or a side flag are skipped. The second
// return value is false when no two-sided market with a positive spread
// exists. Net-profit thresholds are the pipeline's business: a record is
// returned even when fees eat the whole spread.
func ComputeOpportunity(typeID int32, name string, orders []esi.MarketOrder, dailyVolume, salesTaxPct, brokerFeePct float64) (Opportunity, bool) {
	var buyPrices, sellPrices []float64
	for _, o := range orders {
		if o.Price == nil || o.IsBuyOrder == nil {
			continue
		}
		if *o.IsBuyOrder {
			buyPrices = append(buyPrices, *o.Price)
		} else {
			sellPrices = append(sellPrices, *o.Price)
		}
	}

	if len(buyPrices) == 0 || len(sellPrices) == 0 {
		return Opportunity{}, false
	}

	// Worst-case round trip: sell into the highest bid, buy out of the lowest ask.
	bestBuy := buyPrices[0]
	for _, p := range buyPrices[1:] {
		if p > bestBuy {
			bestBuy = p
		}
	}
	bestSell := sellPrices[0]
	for _, p := range sellPrices[1:] {
		if p < bestSell {
			bestSell = p
		}
	}

	spread := bestSell - bestBuy
	if spread <= 0 || bestBuy <= 0 {
		return Opportunity{}, false
	}

	grossROI := spread / bestBuy * 100

	// Sales tax hits the sell leg; the broker takes a cut of both notionals.
	netProfit := spread - bestSell*salesTaxPct/100 - (bestBuy+bestSell)*brokerFeePct/100
	netROI := netProfit / bestBuy * 100

	return Opportunity{
		TypeID:      typeID,
		Name:        name,
		BestBuy:     bestBuy,
		BestSell:    bestSell,
		Spread:      spread,
		GrossROIPct: sanitizeFloat(grossROI),
		DailyVolume: dailyVolume,
		NetProfit:   netProfit,
		NetROIPct:   sanitizeFloat(netROI),
	}, true
}

// sanitizeFloat replaces NaN/Inf with 0 to prevent JSON marshal errors.
func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
