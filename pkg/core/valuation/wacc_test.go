package valuation

import (
	"math"
	"testing"

	"intrinsic_valuation/pkg/models"
)

func rateP(v Rate) *Rate       { return &v }
func floatP(v float64) *float64 { return &v }

func TestEstimateWACCBuildUp(t *testing.T) {
	cf := &models.CompanyFinancials{
		Beta:            1.2,
		EffectiveTax:    0.25,
		TotalDebt:       400,
		MarketCap:       600,
		InterestExpense: 20,
		RiskFreeRate:    0.04,
	}
	res := EstimateWACC(cf, WACCOverrides{})

	ke := 0.04 + 1.2*DefaultMarketRiskPremium
	if math.Abs(res.CostOfEquity-ke) > 1e-12 {
		t.Errorf("cost of equity: expected %f, got %f", ke, res.CostOfEquity)
	}
	// Kd = 20/400 = 5%, inside the [rf+1%, 20%] clamp.
	if math.Abs(res.CostOfDebtPreTax-0.05) > 1e-12 {
		t.Errorf("cost of debt: expected 0.05, got %f", res.CostOfDebtPreTax)
	}
	if res.CostOfDebtSource != "interest/avg_debt" {
		t.Errorf("unexpected cost of debt source %q", res.CostOfDebtSource)
	}
	if math.Abs(res.WeightDebt-0.4) > 1e-12 {
		t.Errorf("weight debt: expected 0.4, got %f", res.WeightDebt)
	}

	wacc := ke*0.6 + 0.05*0.75*0.4
	if math.Abs(res.WACC-wacc) > 1e-12 {
		t.Errorf("wacc: expected %f, got %f", wacc, res.WACC)
	}
	if res.Overridden {
		t.Error("no override was supplied")
	}
}

func TestEstimateWACCFullOverrideShortCircuits(t *testing.T) {
	cf := &models.CompanyFinancials{Beta: 2.0, TotalDebt: 1000, MarketCap: 100}
	res := EstimateWACC(cf, WACCOverrides{WACC: rateP(0.095)})
	if res.WACC != 0.095 || !res.Overridden {
		t.Errorf("expected pinned wacc 0.095, got %+v", res)
	}
	// The weights still sum to one so the displayed build-up reconciles.
	if res.WeightDebt+res.WeightEquity != 1 {
		t.Errorf("weights should sum to 1, got wd=%f we=%f", res.WeightDebt, res.WeightEquity)
	}
	if res.CostOfEquity*res.WeightEquity != res.WACC {
		t.Errorf("build-up should reproduce the pinned rate, got %f", res.CostOfEquity*res.WeightEquity)
	}
}

func TestEstimateWACCComponentOverrides(t *testing.T) {
	cf := &models.CompanyFinancials{Beta: 1.0, MarketCap: 1000}
	res := EstimateWACC(cf, WACCOverrides{
		RiskFreeRate: rateP(0.03),
		Beta:         floatP(8.0), // clamps to 5.0
		CostOfDebt:   rateP(0.50), // clamps to 20%
		WeightOfDebt: floatP(0.95),
		TaxRate:      rateP(0.30),
	})
	if res.Beta != 5.0 {
		t.Errorf("beta should clamp to 5.0, got %f", res.Beta)
	}
	if res.CostOfDebtPreTax != 0.20 {
		t.Errorf("cost of debt should clamp to 0.20, got %f", res.CostOfDebtPreTax)
	}
	if res.CostOfDebtSource != "override" {
		t.Errorf("unexpected cost of debt source %q", res.CostOfDebtSource)
	}
	if res.WeightDebt != 0.9 {
		t.Errorf("weight of debt should clamp to 0.9, got %f", res.WeightDebt)
	}
	if res.TaxRate != 0.30 {
		t.Errorf("tax rate: expected 0.30, got %f", res.TaxRate)
	}
	if res.RiskFreeRate != 0.03 {
		t.Errorf("risk-free rate: expected 0.03, got %f", res.RiskFreeRate)
	}
}

func TestEstimateWACCEquityFloor(t *testing.T) {
	// Near-zero beta must still price equity at least 2% over treasuries.
	cf := &models.CompanyFinancials{Beta: 0.1, MarketCap: 1000, RiskFreeRate: 0.035}
	res := EstimateWACC(cf, WACCOverrides{})
	if res.CostOfEquity < 0.035+0.02 {
		t.Errorf("cost of equity %f below rf+2%% floor", res.CostOfEquity)
	}
}

func TestEstimateWACCFinalClamp(t *testing.T) {
	// All-equity firm with an extreme beta pushes Ke past 30%.
	cf := &models.CompanyFinancials{Beta: 5.0, MarketCap: 1000, RiskFreeRate: 0.05}
	res := EstimateWACC(cf, WACCOverrides{WeightOfDebt: floatP(0)})
	if res.WACC != 0.30 {
		t.Errorf("wacc should clamp to 0.30, got %f", res.WACC)
	}
}

func TestEstimateCostOfDebtFallback(t *testing.T) {
	// No interest expense: fall back to rf + 2%.
	cf := &models.CompanyFinancials{TotalDebt: 500, MarketCap: 500, RiskFreeRate: 0.04}
	res := EstimateWACC(cf, WACCOverrides{})
	if res.CostOfDebtSource != "rf_spread" {
		t.Errorf("expected rf_spread source, got %q", res.CostOfDebtSource)
	}
	if math.Abs(res.CostOfDebtPreTax-0.06) > 1e-12 {
		t.Errorf("expected 0.06 fallback, got %f", res.CostOfDebtPreTax)
	}
}

func TestEstimateCostOfDebtAveragesPeriods(t *testing.T) {
	d1, d2, d3 := 300.0, 400.0, 500.0
	cf := &models.CompanyFinancials{
		TotalDebt:       300,
		MarketCap:       700,
		InterestExpense: 20,
		Statements: &models.StatementSet{
			Periods: []string{"2025-12-31", "2024-12-31", "2023-12-31"},
			Balance: models.StatementTable{
				"Total Debt": {&d1, &d2, &d3},
			},
		},
	}
	res := EstimateWACC(cf, WACCOverrides{})
	// avg debt = 400, Kd = 20/400 = 5%.
	if math.Abs(res.CostOfDebtPreTax-0.05) > 1e-12 {
		t.Errorf("expected 0.05 from 3-period average, got %f", res.CostOfDebtPreTax)
	}
}

func TestEstimateWACCDefaultsWithoutData(t *testing.T) {
	res := EstimateWACC(&models.CompanyFinancials{}, WACCOverrides{})
	if res.Beta != 1.0 {
		t.Errorf("missing beta should default to 1.0, got %f", res.Beta)
	}
	if res.TaxRate != 0.21 {
		t.Errorf("missing tax should default to 0.21, got %f", res.TaxRate)
	}
	if res.RiskFreeRate != DefaultRiskFreeRate {
		t.Errorf("missing rf should default to %f, got %f", DefaultRiskFreeRate, res.RiskFreeRate)
	}
	if res.WeightDebt != 0.3 {
		t.Errorf("missing capital base should default Wd to 0.3, got %f", res.WeightDebt)
	}
}
