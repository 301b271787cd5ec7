package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assumptions.hjson")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAssumptions(t *testing.T) {
	path := writeFile(t, `{
  // tuned after the 2025 rate cuts
  risk_free_rate: 0.041
  market_risk_premium: 0.05
  terminal_growth: 0.02
}`)
	a, err := LoadAssumptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if a.RiskFreeRate != 0.041 || a.MarketRiskPremium != 0.05 || a.TerminalGrowth != 0.02 {
		t.Errorf("loaded values: %+v", a)
	}
	// Untouched fields keep defaults.
	if a.Years1 != 5 || a.Years2 != 10 || a.DCFWeight != 0.7 {
		t.Errorf("defaults not preserved: %+v", a)
	}
}

func TestLoadAssumptionsMissingFileKeepsDefaults(t *testing.T) {
	a, err := LoadAssumptions(filepath.Join(t.TempDir(), "absent.hjson"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if a != DefaultAssumptions() {
		t.Errorf("expected defaults on error, got %+v", a)
	}
}

func TestLoadAssumptionsRejectsOutOfRange(t *testing.T) {
	path := writeFile(t, `{ market_risk_premium: 0.9 }`)
	a, err := LoadAssumptions(path)
	if err == nil {
		t.Error("expected validation error")
	}
	if a != DefaultAssumptions() {
		t.Errorf("invalid file should fall back to defaults, got %+v", a)
	}
}
