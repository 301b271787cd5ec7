package valuation

import (
	"intrinsic_valuation/pkg/core/statements"
	"intrinsic_valuation/pkg/models"
)

// Baseline assumptions. MRP is overridable per request and via
// config/assumptions.hjson.
const (
	DefaultMarketRiskPremium = 0.055
	DefaultRiskFreeRate      = 0.035
	defaultTaxRate           = 0.21
	defaultWeightDebt        = 0.3
)

// WACCOverrides lets the caller pin any component of the build-up. Nil
// means "estimate it". A non-nil WACC short-circuits everything else.
type WACCOverrides struct {
	WACC              *Rate    `json:"wacc,omitempty"`
	RiskFreeRate      *Rate    `json:"risk_free_rate,omitempty"`
	MarketRiskPremium *Rate    `json:"market_risk_premium,omitempty"`
	Beta              *float64 `json:"beta,omitempty"`
	TaxRate           *Rate    `json:"tax_rate,omitempty"`
	CostOfEquity      *Rate    `json:"cost_of_equity,omitempty"`
	CostOfDebt        *Rate    `json:"cost_of_debt,omitempty"`
	WeightOfDebt      *float64 `json:"weight_of_debt,omitempty"`
}

// WACCResult carries every intermediate so callers can display the
// full build-up, plus the source of each estimated component.
type WACCResult struct {
	WACC              Rate    `json:"wacc"`
	CostOfEquity      Rate    `json:"cost_of_equity"`
	CostOfDebtPreTax  Rate    `json:"cost_of_debt_pre_tax"`
	CostOfDebtAfter   Rate    `json:"cost_of_debt_after_tax"`
	Beta              float64 `json:"beta"`
	RiskFreeRate      Rate    `json:"risk_free_rate"`
	MarketRiskPremium Rate    `json:"market_risk_premium"`
	TaxRate           Rate    `json:"tax_rate"`
	WeightDebt        float64 `json:"weight_debt"`
	WeightEquity      float64 `json:"weight_equity"`
	CostOfDebtSource  string  `json:"cost_of_debt_source"` // "interest/avg_debt" or "rf_spread"
	Overridden        bool    `json:"overridden"`
}

// EstimateWACC computes the CAPM weighted average cost of capital from
// a flattened company snapshot.
//
// FORMULA: WACC = Ke * We + Kd * (1 - T) * Wd
//
// Where:
//   - Ke = max(rf + beta*MRP, rf + 2%)
//   - Kd = interest expense / average total debt (up to 3 periods),
//     falling back to rf + 2%, clamped to [rf + 1%, 20%]
//   - Wd = D / (D + MarketCap), clamped to [0, 0.9]
//
// The final WACC is clamped to [rf + 2%, 30%].
func EstimateWACC(cf *models.CompanyFinancials, ov WACCOverrides) WACCResult {
	if ov.WACC != nil {
		// A pinned WACC presents as all-equity so the build-up still
		// reconciles: Ke * We = WACC, and Wd + We = 1.
		w := *ov.WACC
		return WACCResult{WACC: w, CostOfEquity: w, WeightEquity: 1, Overridden: true}
	}

	rf := DefaultRiskFreeRate
	if cf.RiskFreeRate > 0 {
		rf = cf.RiskFreeRate
	}
	if ov.RiskFreeRate != nil {
		rf = *ov.RiskFreeRate
	}

	mrp := DefaultMarketRiskPremium
	if ov.MarketRiskPremium != nil {
		mrp = *ov.MarketRiskPremium
	}

	beta := cf.Beta
	if beta == 0 {
		beta = 1.0
	}
	if ov.Beta != nil {
		beta = clamp(*ov.Beta, 0.1, 5.0)
	}

	tax := cf.EffectiveTax
	if tax <= 0 || tax > 0.5 {
		tax = defaultTaxRate
	}
	if ov.TaxRate != nil {
		tax = clamp(*ov.TaxRate, 0, 0.5)
	}

	// Cost of equity: CAPM with a floor 2% over the risk-free rate so a
	// near-zero beta cannot price equity like treasuries.
	ke := rf + beta*mrp
	if ke < rf+0.02 {
		ke = rf + 0.02
	}
	if ov.CostOfEquity != nil {
		ke = *ov.CostOfEquity
	}

	kd, kdSource := estimateCostOfDebt(cf, rf)
	if ov.CostOfDebt != nil {
		kd = clamp(*ov.CostOfDebt, rf+0.01, 0.20)
		kdSource = "override"
	}

	wd := defaultWeightDebt
	if capitalBase := cf.TotalDebt + cf.MarketCap; capitalBase > 0 {
		wd = clamp(cf.TotalDebt/capitalBase, 0, 0.9)
	}
	if ov.WeightOfDebt != nil {
		wd = clamp(*ov.WeightOfDebt, 0, 0.9)
	}
	we := 1 - wd

	wacc := clamp(ke*we+kd*(1-tax)*wd, rf+0.02, 0.30)

	return WACCResult{
		WACC:              wacc,
		CostOfEquity:      ke,
		CostOfDebtPreTax:  kd,
		CostOfDebtAfter:   kd * (1 - tax),
		Beta:              beta,
		RiskFreeRate:      rf,
		MarketRiskPremium: mrp,
		TaxRate:           tax,
		WeightDebt:        wd,
		WeightEquity:      we,
		CostOfDebtSource:  kdSource,
	}
}

// estimateCostOfDebt divides interest expense by the average debt load
// over up to 3 reported periods. Degenerate inputs fall back to a fixed
// spread over the risk-free rate.
func estimateCostOfDebt(cf *models.CompanyFinancials, rf Rate) (Rate, string) {
	avgDebt := cf.TotalDebt
	if cf.Statements != nil {
		vals, mask := statements.Series(cf.Statements.Balance, 3, statements.TotalDebtLabels...)
		var sum float64
		var n int
		for i, ok := range mask {
			if ok && vals[i] > 0 {
				sum += vals[i]
				n++
			}
		}
		if n > 0 {
			avgDebt = sum / float64(n)
		}
	}

	if cf.InterestExpense <= 0 || avgDebt <= 0 {
		return clamp(rf+0.02, rf+0.01, 0.20), "rf_spread"
	}
	return clamp(cf.InterestExpense/avgDebt, rf+0.01, 0.20), "interest/avg_debt"
}
