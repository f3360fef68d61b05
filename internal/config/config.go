package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the scan parameters. Values layer as defaults < config file
// < SCOUT_* environment variables, with CLI flags applied on top by the
// command layer.
type Config struct {
	RegionID       int32   `mapstructure:"region_id" validate:"gt=0"`
	Top            int     `mapstructure:"top" validate:"gt=0"`
	SampleSize     int     `mapstructure:"sample_size" validate:"gt=0"`
	MaxBuyPrice    float64 `mapstructure:"max_buy_price" validate:"gte=0"`
	MinDailyVolume float64 `mapstructure:"min_daily_volume" validate:"gte=0"`
	SalesTaxPct    float64 `mapstructure:"sales_tax_pct" validate:"gte=0,lte=100"`
	BrokerFeePct   float64 `mapstructure:"broker_fee_pct" validate:"gte=0,lte=100"`
	MinNetProfit   float64 `mapstructure:"min_net_profit"`
}

// Default returns a Config with sensible defaults: The Forge (Jita), a 250M
// ISK budget ceiling and NPC-station fee rates.
func Default() *Config {
	return &Config{
		RegionID:       10000002,
		Top:            25,
		SampleSize:     75,
		MaxBuyPrice:    250_000_000,
		MinDailyVolume: 100,
		SalesTaxPct:    4.5,
		BrokerFeePct:   3.0,
		MinNetProfit:   0,
	}
}

// Load reads configuration with priority: environment variables, then an
// optional config file, then defaults. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	// Load .env if present (doesn't error if missing).
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("scout")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("region_id", d.RegionID)
	v.SetDefault("top", d.Top)
	v.SetDefault("sample_size", d.SampleSize)
	v.SetDefault("max_buy_price", d.MaxBuyPrice)
	v.SetDefault("min_daily_volume", d.MinDailyVolume)
	v.SetDefault("sales_tax_pct", d.SalesTaxPct)
	v.SetDefault("broker_fee_pct", d.BrokerFeePct)
	v.SetDefault("min_net_profit", d.MinNetProfit)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
