// Package report renders ranked opportunities as a plain-text table or a
// JSON document and writes the result to stdout and optionally a file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"eve-scout/internal/engine"
)

// Params echoes the query parameters into the rendered report.
type Params struct {
	RegionID       int32
	SampleSize     int
	MinDailyVolume float64
	SalesTaxPct    float64
	BrokerFeePct   float64
	MinNetProfit   float64
}

// RankedOpportunity is an opportunity with its 1-based position in the report.
type RankedOpportunity struct {
	Rank int `json:"rank"`
	engine.Opportunity
}

// Payload is the JSON report document.
type Payload struct {
	RegionID       int32               `json:"region_id"`
	SampleSize     int                 `json:"sample_size"`
	MinDailyVolume float64             `json:"min_daily_volume"`
	SalesTaxPct    float64             `json:"sales_tax_pct"`
	BrokerFeePct   float64             `json:"broker_fee_pct"`
	MinNetProfit   float64             `json:"min_net_profit"`
	Count          int                 `json:"count"`
	Opportunities  []RankedOpportunity `json:"opportunities"`
}

// BuildPayload assembles the JSON report document from ranked results.
func BuildPayload(opportunities []engine.Opportunity, params Params) Payload {
	ranked := make([]RankedOpportunity, 0, len(opportunities))
	for i, opp := range opportunities {
		ranked = append(ranked, RankedOpportunity{Rank: i + 1, Opportunity: opp})
	}
	return Payload{
		RegionID:       params.RegionID,
		SampleSize:     params.SampleSize,
		MinDailyVolume: params.MinDailyVolume,
		SalesTaxPct:    params.SalesTaxPct,
		BrokerFeePct:   params.BrokerFeePct,
		MinNetProfit:   params.MinNetProfit,
		Count:          len(opportunities),
		Opportunities:  ranked,
	}
}

// JSONLines renders the report as a single indented JSON document.
func JSONLines(opportunities []engine.Opportunity, params Params) ([]string, error) {
	data, err := json.MarshalIndent(BuildPayload(opportunities, params), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return []string{string(data)}, nil
}

// TextLines renders the report as a human-readable table.
func TextLines(opportunities []engine.Opportunity, params Params) []string {
	if len(opportunities) == 0 {
		return []string{
			"No profitable opportunities found in current sample.",
			"Pipeline checks: average price cap -> daily volume -> fees/taxes -> net profit.",
			fmt.Sprintf("Current filters: min daily volume=%s, min net profit=%s.",
				isk(params.MinDailyVolume, 0), isk(params.MinNetProfit, 2)),
		}
	}

	lines := []string{
		fmt.Sprintf("Top %d opportunities in region %d (sampled %d, min daily vol %s, tax %.2f%%, broker %.2f%%):",
			len(opportunities), params.RegionID, params.SampleSize,
			isk(params.MinDailyVolume, 0), params.SalesTaxPct, params.BrokerFeePct),
	}
	for i, opp := range opportunities {
		lines = append(lines, formatRow(i+1, opp))
	}
	return lines
}

func formatRow(rank int, opp engine.Opportunity) string {
	return fmt.Sprintf("%2d. %-24s buy=%11s sell=%11s spread=%10s roi=%6.2f%% net=%10s net_roi=%6.2f%% daily_vol=%8s",
		rank, opp.Name,
		isk(opp.BestBuy, 2), isk(opp.BestSell, 2), isk(opp.Spread, 2),
		opp.GrossROIPct,
		isk(opp.NetProfit, 2), opp.NetROIPct,
		isk(opp.DailyVolume, 0))
}

// isk formats an ISK amount with thousands separators.
func isk(v float64, decimals int) string {
	return humanize.CommafWithDigits(v, decimals)
}

// Write prints lines to stdout and optionally writes them to a file.
func Write(lines []string, outputPath string) error {
	content := strings.Join(lines, "\n")
	fmt.Println(content)

	if outputPath == "" {
		return nil
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
