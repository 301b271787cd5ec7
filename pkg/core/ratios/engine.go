package ratios

import (
	"math"

	"intrinsic_valuation/pkg/core/statements"
	"intrinsic_valuation/pkg/models"
)

// =============================================================================
// RATIO ENGINE
// Resolution order for every ratio: live quote field, then statement
// figures, then a no-data record. Zero denominators yield explicit
// infinite records, never NaN.
// =============================================================================

var (
	noRevenue = naStatus(
		"Cannot calculate due to missing revenue data.",
		"매출 데이터가 없어 계산할 수 없습니다.",
		"由于缺少收入数据，无法计算。")
	noBalance = naStatus(
		"Cannot calculate due to missing balance sheet data.",
		"재무상태표 데이터가 없어 계산할 수 없습니다.",
		"由于缺少资产负债表数据，无法计算。")
	noHistory = naStatus(
		"Cannot calculate due to missing prior-period data.",
		"전기 데이터가 없어 계산할 수 없습니다.",
		"由于缺少上期数据，无法计算。")
	noCashFlow = naStatus(
		"Cannot calculate due to missing cash flow data.",
		"현금흐름 데이터가 없어 계산할 수 없습니다.",
		"由于缺少现金流数据，无法计算。")
	noMarket = naStatus(
		"Cannot calculate due to missing market data.",
		"시장 데이터가 없어 계산할 수 없습니다.",
		"由于缺少市场数据，无法计算。")
)

// Compute builds the full ratio panel. wacc feeds the wacc and
// value_spread records; pass 0 to omit both.
func Compute(cf *models.CompanyFinancials, wacc float64) map[string]*Record {
	r := map[string]*Record{}
	q := cf.Quote

	// ===== PROFITABILITY =====

	if cf.Revenue > 0 {
		r["gross_margin"] = record(cf.GrossProfit/cf.Revenue, grossMarginBands)
		r["net_profit_margin"] = record(cf.NetIncome/cf.Revenue, netMarginBands)
	} else {
		r["gross_margin"] = noData(noRevenue)
		r["net_profit_margin"] = noData(noRevenue)
	}

	if om, ok := q.Get("operatingMargins"); ok {
		r["operating_margin"] = record(om, operatingMarginBands)
	} else if cf.Revenue > 0 {
		r["operating_margin"] = record(cf.OperatingIncome/cf.Revenue, operatingMarginBands)
	} else {
		r["operating_margin"] = noData(noRevenue)
	}

	if roa, ok := q.Get("returnOnAssets"); ok {
		r["roa"] = record(roa, roaBands)
	} else if cf.TotalAssets > 0 {
		r["roa"] = record(cf.NetIncome/cf.TotalAssets, roaBands)
	} else {
		r["roa"] = noData(noBalance)
	}

	if roe, ok := q.Get("returnOnEquity"); ok {
		r["roe"] = record(roe, roeBands)
	} else if cf.Equity > 0 {
		r["roe"] = record(cf.NetIncome/cf.Equity, roeBands)
	} else {
		r["roe"] = noData(noBalance)
	}

	if roic, ok := ComputeROIC(cf); ok {
		r["roic"] = record(roic, roicBands)
	} else {
		r["roic"] = noData(noBalance)
	}

	// ===== LEVERAGE =====

	totalLiabilities := cf.TotalAssets - cf.Equity
	if de, ok := q.Get("debtToEquity"); ok {
		// Upstream reports this one in percent.
		r["debt_to_equity"] = record(de/100, debtToEquityBands)
	} else if cf.Equity > 0 {
		r["debt_to_equity"] = record(totalLiabilities/cf.Equity, debtToEquityBands)
	} else {
		r["debt_to_equity"] = noData(noBalance)
	}

	if cf.TotalAssets > 0 {
		r["debt_ratio"] = record(totalLiabilities/cf.TotalAssets, debtRatioBands)
		r["equity_ratio"] = record(cf.Equity/cf.TotalAssets, equityRatioBands)
	} else {
		r["debt_ratio"] = noData(noBalance)
		r["equity_ratio"] = noData(noBalance)
	}

	if cf.InterestExpense != 0 {
		r["interest_coverage"] = record(cf.EBIT/math.Abs(cf.InterestExpense), interestCoverageBands)
	} else {
		r["interest_coverage"] = infiniteRecord(interestFreeStatus)
	}

	// ===== GROWTH =====

	r["revenue_growth"] = growthRecord(cf, statements.RevenueLabels, q, "revenueGrowth", revenueGrowthBands)
	r["net_income_growth"] = growthRecord(cf, statements.NetIncomeLabels, nil, "", incomeGrowthBands)
	r["operating_income_growth"] = growthRecord(cf, statements.OperatingLabels, nil, "", incomeGrowthBands)

	if g, ok := q.Get("earningsGrowth", "earningsQuarterlyGrowth"); ok {
		r["eps_growth"] = record(g, epsGrowthBands)
	} else {
		r["eps_growth"] = noData(noMarket)
	}

	// ===== LIQUIDITY =====

	if cr, ok := q.Get("currentRatio"); ok {
		r["current_ratio"] = record(cr, currentRatioBands)
	} else if cf.CurrentLiabilities > 0 {
		r["current_ratio"] = record(cf.CurrentAssets/cf.CurrentLiabilities, currentRatioBands)
	} else if cf.CurrentAssets > 0 {
		r["current_ratio"] = infiniteRecord(currentRatioBands[len(currentRatioBands)-1].Status)
	} else {
		r["current_ratio"] = noData(noBalance)
	}

	if qr, ok := q.Get("quickRatio"); ok {
		r["quick_ratio"] = record(qr, quickRatioBands)
	} else if cf.CurrentLiabilities > 0 {
		r["quick_ratio"] = record((cf.CurrentAssets-cf.Inventory)/cf.CurrentLiabilities, quickRatioBands)
	} else if cf.CurrentAssets > 0 {
		r["quick_ratio"] = infiniteRecord(quickRatioBands[len(quickRatioBands)-1].Status)
	} else {
		r["quick_ratio"] = noData(noBalance)
	}

	if cf.CurrentLiabilities > 0 {
		r["cash_ratio"] = record(cf.CashAndSTInvest/cf.CurrentLiabilities, cashRatioBands)
	} else if cf.CashAndSTInvest > 0 {
		r["cash_ratio"] = infiniteRecord(cashRatioBands[len(cashRatioBands)-1].Status)
	} else {
		r["cash_ratio"] = noData(noBalance)
	}

	// ===== EFFICIENCY =====

	if cf.TotalAssets > 0 && cf.Revenue > 0 {
		r["asset_turnover"] = record(cf.Revenue/cf.TotalAssets, assetTurnoverBands)
	} else {
		r["asset_turnover"] = noData(noBalance)
	}

	cogs := cf.Revenue - cf.GrossProfit
	if cf.Inventory > 0 && cogs > 0 {
		invTurn := cogs / cf.Inventory
		r["inventory_turnover"] = record(invTurn, inventoryTurnoverBands)
		r["days_inventory"] = record(365/invTurn, daysInventoryBands)
	} else {
		r["inventory_turnover"] = noData(noBalance)
		r["days_inventory"] = noData(noBalance)
	}

	if cf.Receivables > 0 && cf.Revenue > 0 {
		recTurn := cf.Revenue / cf.Receivables
		r["receivables_turnover"] = record(recTurn, receivablesTurnoverBands)
		r["days_sales_outstanding"] = record(365/recTurn, daysSalesOutstandingBands)
	} else {
		r["receivables_turnover"] = noData(noBalance)
		r["days_sales_outstanding"] = noData(noBalance)
	}

	if r["days_inventory"].HasData && r["days_sales_outstanding"].HasData {
		r["operating_cycle"] = record(r["days_inventory"].Value+r["days_sales_outstanding"].Value, operatingCycleBands)
	} else {
		r["operating_cycle"] = noData(noBalance)
	}

	// ===== CASH FLOW =====

	if cf.Revenue > 0 && cf.OperatingCashflow != 0 {
		r["ocf_to_revenue"] = record(cf.OperatingCashflow/cf.Revenue, ocfToRevenueBands)
	} else {
		r["ocf_to_revenue"] = noData(noCashFlow)
	}

	if cf.OperatingCashflow > 0 {
		r["fcf_to_ocf"] = record(cf.FreeCashflow/cf.OperatingCashflow, fcfToOCFBands)
	} else {
		r["fcf_to_ocf"] = noData(noCashFlow)
	}

	if cf.Revenue > 0 && cf.CapEx > 0 {
		r["capex_to_sales"] = record(cf.CapEx/cf.Revenue, capexToSalesBands)
	} else {
		r["capex_to_sales"] = noData(noCashFlow)
	}

	if cf.Depreciation > 0 && cf.CapEx > 0 {
		r["capex_to_depreciation"] = record(cf.CapEx/cf.Depreciation, capexToDepreciationBands)
	} else {
		r["capex_to_depreciation"] = noData(noCashFlow)
	}

	if cf.CapEx > 0 && cf.OperatingCashflow != 0 {
		r["cash_flow_to_capex"] = record(cf.OperatingCashflow/cf.CapEx, cashFlowToCapexBands)
	} else if cf.OperatingCashflow > 0 {
		r["cash_flow_to_capex"] = infiniteRecord(cashFlowToCapexBands[len(cashFlowToCapexBands)-1].Status)
	} else {
		r["cash_flow_to_capex"] = noData(noCashFlow)
	}

	if cf.Revenue > 0 {
		r["fcf_to_sales"] = record(cf.FreeCashflow/cf.Revenue, fcfToSalesBands)
	} else {
		r["fcf_to_sales"] = noData(noRevenue)
	}

	// ===== MARKET =====

	r["eps"] = valueOnly(cf.EPS)
	r["forward_eps"] = valueOnly(cf.ForwardEPS)

	if cf.TrailingPE > 0 {
		r["pe_ratio"] = record(cf.TrailingPE, peBands)
	} else if cf.EPS > 0 && cf.Price > 0 {
		r["pe_ratio"] = record(cf.Price/cf.EPS, peBands)
	} else {
		r["pe_ratio"] = noData(noMarket)
	}

	if cf.ForwardPE > 0 {
		r["forward_pe_ratio"] = record(cf.ForwardPE, peBands)
	} else if cf.ForwardEPS > 0 && cf.Price > 0 {
		r["forward_pe_ratio"] = record(cf.Price/cf.ForwardEPS, peBands)
	} else {
		r["forward_pe_ratio"] = noData(noMarket)
	}

	if pb, ok := q.Get("priceToBook"); ok {
		r["pb_ratio"] = record(pb, pbBands)
	} else if cf.Equity > 0 && cf.SharesOutstanding > 0 && cf.Price > 0 {
		bvps := cf.Equity / cf.SharesOutstanding
		r["pb_ratio"] = record(cf.Price/bvps, pbBands)
	} else {
		r["pb_ratio"] = noData(noMarket)
	}

	if cf.Revenue > 0 && cf.MarketCap > 0 {
		r["ps_ratio"] = record(cf.MarketCap/cf.Revenue, psBands)
	} else {
		r["ps_ratio"] = noData(noMarket)
	}

	if cf.EBITDA > 0 && cf.EnterpriseValue > 0 {
		r["ev_to_ebitda"] = record(cf.EnterpriseValue/cf.EBITDA, evEbitdaBands)
	} else {
		r["ev_to_ebitda"] = noData(noMarket)
	}

	// ===== COST OF CAPITAL =====

	if wacc > 0 {
		r["wacc"] = record(wacc, waccBands)
		if r["roic"].HasData {
			r["value_spread"] = record(r["roic"].Value-wacc, ValueSpreadBands)
		} else {
			r["value_spread"] = noData(noBalance)
		}
	}

	return r
}

// growthRecord derives year-over-year growth from a quote field when
// available, else from the two most recent statement columns.
func growthRecord(cf *models.CompanyFinancials, labels []string, q *models.Quote, quoteField string, bands []Band) *Record {
	if q != nil && quoteField != "" {
		if g, ok := q.Get(quoteField); ok {
			return record(g, bands)
		}
	}
	if cf.Statements == nil {
		return noData(noHistory)
	}
	cur, okCur := statements.Resolve(cf.Statements.Income, 0, labels...)
	prev, okPrev := statements.Resolve(cf.Statements.Income, 1, labels...)
	if !okCur || !okPrev || prev <= 0 {
		return noData(noHistory)
	}
	return record(cur/prev-1, bands)
}

// ComputeROIC derives return on invested capital.
//
// FORMULA: ROIC = NOPAT / avg(InvestedCapital)
//
// Where:
//   - InvestedCapital = TotalAssets - (AP + Accrued) - ExcessCash
//   - ExcessCash = CashSTI - max(0, CL - CA + CashSTI)
//   - NOPAT = EBIT * (1 - effective tax), tax kept in [10%, 40%]
//
// Invested capital averages the current and prior period when the
// prior balance sheet is available.
func ComputeROIC(cf *models.CompanyFinancials) (float64, bool) {
	if cf.Statements == nil {
		return 0, false
	}
	bal := cf.Statements.Balance

	ic := func(col int) (float64, bool) {
		ta, ok := statements.Resolve(bal, col, statements.TotalAssetsLabels...)
		if !ok || ta <= 0 {
			return 0, false
		}
		ap := statements.ResolveOr(bal, col, 0, statements.PayableLabels...)
		accrued := statements.ResolveOr(bal, col, 0, statements.AccruedLabels...)
		cash := statements.ResolveOr(bal, col, 0, statements.CashSTILabels...)
		cl := statements.ResolveOr(bal, col, 0, statements.CurrentLiabs...)
		ca := statements.ResolveOr(bal, col, 0, statements.CurrentAssets...)

		operatingCashNeed := math.Max(0, cl-ca+cash)
		excessCash := cash - operatingCashNeed
		return ta - (ap + accrued) - excessCash, true
	}

	current, ok := ic(0)
	if !ok || current <= 0 {
		return 0, false
	}
	avgIC := current
	if prior, ok := ic(1); ok && prior > 0 {
		avgIC = (current + prior) / 2
	}

	tax := 0.21
	if cf.PretaxIncome > 0 {
		if t := cf.IncomeTax / cf.PretaxIncome; t >= 0.10 && t <= 0.40 {
			tax = t
		}
	}
	nopat := cf.EBIT * (1 - tax)
	return nopat / avgIC, true
}
