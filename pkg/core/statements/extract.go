package statements

import (
	"math"

	"intrinsic_valuation/pkg/models"
)

// Beta outside this range is treated as a data error, not a real
// exposure. >5 resets to market beta, <0.1 floors.
const (
	betaFloor   = 0.1
	betaCeiling = 5.0
	betaDefault = 1.0
)

// Build flattens the live quote and the raw annual statements into one
// CompanyFinancials snapshot. Every field that can be missing upstream
// gets its fallback applied here, once, so downstream engines never
// re-guess.
func Build(ticker string, q *models.Quote, s *models.StatementSet, riskFree float64) *models.CompanyFinancials {
	cf := &models.CompanyFinancials{
		Ticker:       ticker,
		RiskFreeRate: riskFree,
		Statements:   s,
		Quote:        q,
	}
	if q != nil {
		cf.Name = q.Name
		cf.Sector = q.Sector
		cf.Industry = q.Industry
		cf.Currency = q.Currency
	}

	cf.Price = q.GetOr(0, "currentPrice", "regularMarketPrice", "previousClose")
	cf.MarketCap = q.GetOr(0, "marketCap")
	cf.SharesOutstanding = q.GetOr(0, "sharesOutstanding", "impliedSharesOutstanding", "floatShares")
	if cf.SharesOutstanding == 0 && cf.Price > 0 && cf.MarketCap > 0 {
		cf.SharesOutstanding = cf.MarketCap / cf.Price
	}
	if cf.MarketCap == 0 {
		cf.MarketCap = cf.Price * cf.SharesOutstanding
	}

	cf.Beta = resolveBeta(q)

	cf.EPS = q.GetOr(0, "trailingEps", "epsTrailingTwelveMonths")
	if cf.EPS == 0 && cf.Price > 0 {
		// Last resort: assume a P/E of 15.
		cf.EPS = cf.Price / 15
	}
	cf.ForwardEPS = q.GetOr(0, "forwardEps", "epsForward")
	cf.TrailingPE = q.GetOr(0, "trailingPE")
	cf.ForwardPE = q.GetOr(0, "forwardPE")
	cf.RevenueGrowth = q.GetOr(0, "revenueGrowth")
	cf.EarningsGrowth = q.GetOr(0, "earningsGrowth", "earningsQuarterlyGrowth")
	cf.TrailingPegRatio = q.GetOr(0, "trailingPegRatio", "pegRatio")

	if s == nil {
		return cf
	}
	inc, bal, cfs := s.Income, s.Balance, s.CashFlow

	// Income statement, latest column.
	cf.Revenue = ResolveOr(inc, 0, 0, RevenueLabels...)
	cf.GrossProfit = ResolveOr(inc, 0, 0, GrossProfitLabels...)
	if cf.GrossProfit == 0 && cf.Revenue != 0 {
		if cost, ok := Resolve(inc, 0, CostOfRevLabels...); ok {
			cf.GrossProfit = cf.Revenue - cost
		}
	}
	cf.OperatingIncome = ResolveOr(inc, 0, 0, OperatingLabels...)
	cf.EBIT = ResolveOr(inc, 0, cf.OperatingIncome, EBITLabels...)
	cf.PretaxIncome = ResolveOr(inc, 0, 0, PretaxLabels...)
	cf.IncomeTax = ResolveOr(inc, 0, 0, TaxLabels...)
	cf.NetIncome = ResolveOr(inc, 0, 0, NetIncomeLabels...)

	// Balance sheet.
	cf.TotalAssets = ResolveOr(bal, 0, 0, TotalAssetsLabels...)
	cf.CurrentAssets = ResolveOr(bal, 0, 0, CurrentAssets...)
	cf.CurrentLiabilities = ResolveOr(bal, 0, 0, CurrentLiabs...)
	cf.CashAndSTInvest = ResolveOr(bal, 0, 0, CashSTILabels...)
	cf.Inventory = ResolveOr(bal, 0, 0, InventoryLabels...)
	cf.Receivables = ResolveOr(bal, 0, 0, ReceivableLabels...)
	cf.AccountsPayable = ResolveOr(bal, 0, 0, PayableLabels...)
	cf.AccruedLiabilities = ResolveOr(bal, 0, 0, AccruedLabels...)
	cf.Equity = ResolveOr(bal, 0, 0, EquityLabels...)

	cf.TotalDebt, _ = Resolve(bal, 0, TotalDebtLabels...)
	if cf.TotalDebt == 0 {
		ltd := ResolveOr(bal, 0, 0, LongTermDebt...)
		std := ResolveOr(bal, 0, 0, ShortTermDebt...)
		cf.TotalDebt = ltd + std
	}

	intangibles, ok := Resolve(bal, 0, IntangibleLabels...)
	if !ok {
		intangibles = ResolveOr(bal, 0, 0, GoodwillLabels...)
	}
	cf.TangibleEquity = cf.Equity - intangibles

	// Cash flow statement. CapEx is reported negative; store magnitude.
	cf.OperatingCashflow = ResolveOr(cfs, 0, q.GetOr(0, "operatingCashflow"), OperatingCFLabels...)
	cf.CapEx = math.Abs(ResolveOr(cfs, 0, 0, CapExLabels...))
	cf.FreeCashflow = ResolveOr(cfs, 0, 0, FreeCashflowLabels...)
	if cf.FreeCashflow == 0 && cf.OperatingCashflow != 0 {
		cf.FreeCashflow = cf.OperatingCashflow - cf.CapEx
	}
	cf.Depreciation = ResolveOr(cfs, 0, 0, DepreciationLabels...)

	if cf.EBITDA = ResolveOr(inc, 0, 0, EBITDALabels...); cf.EBITDA == 0 {
		cf.EBITDA = cf.EBIT + cf.Depreciation
	}

	// Interest expense is sparse: scan up to 3 columns, last resort 4%
	// of carried debt.
	if v, found := ResolveAny(inc, 3, InterestLabels...); found {
		cf.InterestExpense = math.Abs(v)
	} else if cf.TotalDebt > 0 {
		cf.InterestExpense = cf.TotalDebt * 0.04
	}

	cf.EffectiveTax = effectiveTaxRate(cf.IncomeTax, cf.PretaxIncome)
	cf.EnterpriseValue = cf.MarketCap + cf.TotalDebt - cf.CashAndSTInvest
	cf.NetDebt = cf.TotalDebt - cf.CashAndSTInvest

	return cf
}

func resolveBeta(q *models.Quote) float64 {
	b, ok := q.Get("beta", "beta3Year", "beta5Year")
	if !ok {
		return betaDefault
	}
	if b > betaCeiling {
		return betaDefault
	}
	if b < betaFloor {
		return betaFloor
	}
	return b
}

// effectiveTaxRate derives tax/pretax, clamped to [0, 0.5]. Anything
// outside falls back to the US statutory 21%.
func effectiveTaxRate(tax, pretax float64) float64 {
	if pretax <= 0 {
		return 0.21
	}
	rate := tax / pretax
	if rate < 0 || rate > 0.5 {
		return 0.21
	}
	return rate
}
