// Package config loads the valuation assumption defaults. The file is
// HJSON so analysts can annotate the numbers they tune.
package config

import (
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
)

// Assumptions are the tunable model defaults. Rates are decimals.
type Assumptions struct {
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
	TerminalGrowth    float64 `json:"terminal_growth"`
	GrowthStage1      float64 `json:"growth_stage1"`
	Years1            int     `json:"years1"`
	Years2            int     `json:"years2"`
	DCFWeight         float64 `json:"dcf_weight"`
}

// DefaultAssumptions mirrors the built-in model constants.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		RiskFreeRate:      0.035,
		MarketRiskPremium: 0.055,
		TerminalGrowth:    0.025,
		GrowthStage1:      0.08,
		Years1:            5,
		Years2:            10,
		DCFWeight:         0.7,
	}
}

// LoadAssumptions reads an HJSON assumptions file over the defaults.
// Fields absent from the file keep their default values.
func LoadAssumptions(path string) (Assumptions, error) {
	a := DefaultAssumptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read assumptions: %w", err)
	}
	if err := hjson.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("parse assumptions: %w", err)
	}
	if err := a.validate(); err != nil {
		return DefaultAssumptions(), err
	}
	return a, nil
}

func (a Assumptions) validate() error {
	switch {
	case a.RiskFreeRate < 0 || a.RiskFreeRate > 0.2:
		return fmt.Errorf("risk_free_rate %.4f out of range", a.RiskFreeRate)
	case a.MarketRiskPremium <= 0 || a.MarketRiskPremium > 0.2:
		return fmt.Errorf("market_risk_premium %.4f out of range", a.MarketRiskPremium)
	case a.TerminalGrowth <= -0.5 || a.TerminalGrowth >= 0.5:
		return fmt.Errorf("terminal_growth %.4f out of range", a.TerminalGrowth)
	case a.Years1 < 1 || a.Years2 < 1:
		return fmt.Errorf("projection years must be positive")
	case a.DCFWeight < 0 || a.DCFWeight > 1:
		return fmt.Errorf("dcf_weight %.4f out of range", a.DCFWeight)
	}
	return nil
}
