package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Values(t *testing.T) {
	c := Default()
	if c == nil {
		t.Fatal("Default() returned nil")
	}
	if c.RegionID != 10000002 {
		t.Errorf("RegionID = %v, want 10000002", c.RegionID)
	}
	if c.Top != 25 {
		t.Errorf("Top = %v, want 25", c.Top)
	}
	if c.SampleSize != 75 {
		t.Errorf("SampleSize = %v, want 75", c.SampleSize)
	}
	if c.MaxBuyPrice != 250_000_000 {
		t.Errorf("MaxBuyPrice = %v, want 250000000", c.MaxBuyPrice)
	}
	if c.MinDailyVolume != 100 {
		t.Errorf("MinDailyVolume = %v, want 100", c.MinDailyVolume)
	}
	if c.SalesTaxPct != 4.5 {
		t.Errorf("SalesTaxPct = %v, want 4.5", c.SalesTaxPct)
	}
	if c.BrokerFeePct != 3.0 {
		t.Errorf("BrokerFeePct = %v, want 3.0", c.BrokerFeePct)
	}
	if c.MinNetProfit != 0 {
		t.Errorf("MinNetProfit = %v, want 0", c.MinNetProfit)
	}
}

func TestValidateConfig_DefaultIsValid(t *testing.T) {
	if err := ValidateConfig(Default()); err != nil {
		t.Errorf("ValidateConfig(Default()) = %v", err)
	}
}

func TestValidateConfig_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero region", func(c *Config) { c.RegionID = 0 }},
		{"negative top", func(c *Config) { c.Top = -1 }},
		{"zero sample size", func(c *Config) { c.SampleSize = 0 }},
		{"negative budget", func(c *Config) { c.MaxBuyPrice = -1 }},
		{"tax above 100", func(c *Config) { c.SalesTaxPct = 150 }},
		{"negative broker fee", func(c *Config) { c.BrokerFeePct = -3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			if err := ValidateConfig(c); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RegionID != 10000002 || cfg.SampleSize != 75 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SCOUT_REGION_ID", "10000043")
	t.Setenv("SCOUT_SALES_TAX_PCT", "3.37")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RegionID != 10000043 {
		t.Errorf("RegionID = %v, want 10000043", cfg.RegionID)
	}
	if cfg.SalesTaxPct != 3.37 {
		t.Errorf("SalesTaxPct = %v, want 3.37", cfg.SalesTaxPct)
	}
	if cfg.Top != 25 {
		t.Errorf("Top = %v, want default 25", cfg.Top)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.yaml")
	content := "region_id: 10000030\ntop: 10\nmin_net_profit: 50000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RegionID != 10000030 {
		t.Errorf("RegionID = %v, want 10000030", cfg.RegionID)
	}
	if cfg.Top != 10 {
		t.Errorf("Top = %v, want 10", cfg.Top)
	}
	if cfg.MinNetProfit != 50000 {
		t.Errorf("MinNetProfit = %v, want 50000", cfg.MinNetProfit)
	}
	if cfg.SampleSize != 75 {
		t.Errorf("SampleSize = %v, want default 75", cfg.SampleSize)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
