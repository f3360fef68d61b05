package engine

// Opportunity represents a computed flip opportunity for one item: buy into
// the highest standing bid, sell out of the lowest standing ask, net of fees.
// Immutable once constructed; Spread > 0 and BestBuy > 0 always hold.
type Opportunity struct {
	TypeID      int32   `json:"type_id"`
	Name        string  `json:"name"`
	BestBuy     float64 `json:"best_buy"`
	BestSell    float64 `json:"best_sell"`
	Spread      float64 `json:"spread"`
	GrossROIPct float64 `json:"roi_pct"`
	DailyVolume float64 `json:"daily_volume"`
	NetProfit   float64 `json:"net_profit"`
	NetROIPct   float64 `json:"net_roi_pct"`
}

// RankParams holds the input parameters for a ranking run.
type RankParams struct {
	RegionID       int32
	Limit          int // 0 = use default (25)
	SampleSize     int
	MaxBuyPrice    float64 // 0 = no budget cap
	MinDailyVolume float64
	SalesTaxPct    float64
	BrokerFeePct   float64
	MinNetProfit   float64
}

// DefaultMaxResults is the number of results returned when Limit is not set.
const DefaultMaxResults = 25

// EffectiveMaxResults returns the max results limit, using defaultVal if v <= 0.
func EffectiveMaxResults(v int, defaultVal int) int {
	if v <= 0 {
		return defaultVal
	}
	return v
}
