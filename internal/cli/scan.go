package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"eve-scout/internal/config"
	"eve-scout/internal/engine"
	"eve-scout/internal/esi"
	"eve-scout/internal/logger"
	"eve-scout/internal/report"
)

func newScanCommand(version string) *cobra.Command {
	var (
		configPath string
		asJSON     bool
		outputPath string

		regionID       int32
		top            int
		sampleSize     int
		maxBuyPrice    float64
		minDailyVolume float64
		salesTaxPct    float64
		brokerFeePct   float64
		minNetProfit   float64
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find profitable EVE market opportunities",
		Long: `Scan a region for profitable flip opportunities.

Samples the most expensive items under the budget ceiling, fetches each
item's order book and trading history, and ranks survivors by absolute
spread after fee, volume and net-profit filters.

Examples:
  eve-scout scan
  eve-scout scan --region-id 10000043 --top 10 --sample-size 50
  eve-scout scan --json --output report.json --sales-tax-pct 3.37`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags the user left untouched inherit config/env values.
			flags := cmd.Flags()
			if !flags.Changed("region-id") {
				regionID = cfg.RegionID
			}
			if !flags.Changed("top") {
				top = cfg.Top
			}
			if !flags.Changed("sample-size") {
				sampleSize = cfg.SampleSize
			}
			if !flags.Changed("max-buy-price") {
				maxBuyPrice = cfg.MaxBuyPrice
			}
			if !flags.Changed("min-daily-volume") {
				minDailyVolume = cfg.MinDailyVolume
			}
			if !flags.Changed("sales-tax-pct") {
				salesTaxPct = cfg.SalesTaxPct
			}
			if !flags.Changed("broker-fee-pct") {
				brokerFeePct = cfg.BrokerFeePct
			}
			if !flags.Changed("min-net-profit") {
				minNetProfit = cfg.MinNetProfit
			}

			merged := &config.Config{
				RegionID:       regionID,
				Top:            top,
				SampleSize:     sampleSize,
				MaxBuyPrice:    maxBuyPrice,
				MinDailyVolume: minDailyVolume,
				SalesTaxPct:    salesTaxPct,
				BrokerFeePct:   brokerFeePct,
				MinNetProfit:   minNetProfit,
			}
			if err := config.ValidateConfig(merged); err != nil {
				return err
			}

			logger.Banner(version)
			logger.Section("Market scan")
			logger.Stats("region", merged.RegionID)
			logger.Stats("sample size", merged.SampleSize)

			ranker := engine.NewRanker(esi.NewClient())
			opportunities, err := ranker.Rank(engine.RankParams{
				RegionID:       merged.RegionID,
				Limit:          merged.Top,
				SampleSize:     merged.SampleSize,
				MaxBuyPrice:    merged.MaxBuyPrice,
				MinDailyVolume: merged.MinDailyVolume,
				SalesTaxPct:    merged.SalesTaxPct,
				BrokerFeePct:   merged.BrokerFeePct,
				MinNetProfit:   merged.MinNetProfit,
			}, func(msg string) {
				logger.Info("SCAN", msg)
			})
			if err != nil {
				var remoteErr *esi.RemoteError
				if errors.As(err, &remoteErr) {
					// The remote source is unreliable-but-single-shot:
					// report and exit cleanly, same as the reference tool.
					logger.Error("ESI", err.Error())
					fmt.Printf("Failed to query EVE ESI API: %v\n", err)
					return nil
				}
				return err
			}

			params := report.Params{
				RegionID:       merged.RegionID,
				SampleSize:     merged.SampleSize,
				MinDailyVolume: merged.MinDailyVolume,
				SalesTaxPct:    merged.SalesTaxPct,
				BrokerFeePct:   merged.BrokerFeePct,
				MinNetProfit:   merged.MinNetProfit,
			}

			var lines []string
			if asJSON {
				lines, err = report.JSONLines(opportunities, params)
				if err != nil {
					return err
				}
			} else {
				lines = report.TextLines(opportunities, params)
			}

			if err := report.Write(lines, outputPath); err != nil {
				return err
			}
			if outputPath != "" {
				logger.Success("SCAN", fmt.Sprintf("Report written to %s", outputPath))
			}
			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: ./scout.yaml if present)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().StringVar(&outputPath, "output", "", "Optional output file path for report content")
	cmd.Flags().Int32Var(&regionID, "region-id", defaults.RegionID, "EVE region ID")
	cmd.Flags().IntVar(&top, "top", defaults.Top, "How many results to show")
	cmd.Flags().IntVar(&sampleSize, "sample-size", defaults.SampleSize, "How many candidate items to scan before ranking")
	cmd.Flags().Float64Var(&maxBuyPrice, "max-buy-price", defaults.MaxBuyPrice, "Maximum best-buy price to include in results (ISK)")
	cmd.Flags().Float64Var(&minDailyVolume, "min-daily-volume", defaults.MinDailyVolume, "Minimum latest daily trade volume required (units/day)")
	cmd.Flags().Float64Var(&salesTaxPct, "sales-tax-pct", defaults.SalesTaxPct, "Sales tax percentage used for net profit filter")
	cmd.Flags().Float64Var(&brokerFeePct, "broker-fee-pct", defaults.BrokerFeePct, "Broker fee percentage used for net profit filter")
	cmd.Flags().Float64Var(&minNetProfit, "min-net-profit", defaults.MinNetProfit, "Minimum post-fee profit per unit to include (ISK)")

	return cmd
}
