package models

// StatementTable holds one financial statement as line-item label ->
// per-period values, most recent period first. Missing cells are nil.
type StatementTable map[string][]*float64

// StatementSet bundles the three annual statements for one company.
type StatementSet struct {
	Periods   []string       `json:"periods"` // fiscal period end dates, most recent first
	Income    StatementTable `json:"income"`
	Balance   StatementTable `json:"balance"`
	CashFlow  StatementTable `json:"cash_flow"`
}

// Quote is the live market snapshot for a ticker. Numeric summary
// fields keep their upstream names so fallback chains can address them
// directly (beta, beta3Year, trailingEps, ...).
type Quote struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Currency string `json:"currency"`

	Fields map[string]float64 `json:"fields"`
}

// Get returns the first present, non-zero field among keys.
func (q *Quote) Get(keys ...string) (float64, bool) {
	if q == nil || q.Fields == nil {
		return 0, false
	}
	for _, k := range keys {
		if v, ok := q.Fields[k]; ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}

// GetOr returns the first present, non-zero field among keys, or def.
func (q *Quote) GetOr(def float64, keys ...string) float64 {
	if v, ok := q.Get(keys...); ok {
		return v
	}
	return def
}

// CompanyFinancials is the flattened input to every downstream engine:
// the most recent annual figures plus live market fields, resolved from
// the raw statements with fallbacks already applied.
type CompanyFinancials struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Currency string `json:"currency"`

	// Market
	Price             float64 `json:"price"`
	MarketCap         float64 `json:"market_cap"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	Beta              float64 `json:"beta"`
	EPS               float64 `json:"eps"`
	ForwardEPS        float64 `json:"forward_eps"`
	TrailingPE        float64 `json:"trailing_pe"`
	ForwardPE         float64 `json:"forward_pe"`
	RevenueGrowth     float64 `json:"revenue_growth"`
	EarningsGrowth    float64 `json:"earnings_growth"`
	TrailingPegRatio  float64 `json:"trailing_peg_ratio"`

	// Income statement
	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingIncome float64 `json:"operating_income"`
	EBIT            float64 `json:"ebit"`
	EBITDA          float64 `json:"ebitda"`
	PretaxIncome    float64 `json:"pretax_income"`
	IncomeTax       float64 `json:"income_tax"`
	NetIncome       float64 `json:"net_income"`
	InterestExpense float64 `json:"interest_expense"`

	// Balance sheet
	TotalAssets        float64 `json:"total_assets"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	CashAndSTInvest    float64 `json:"cash_and_st_investments"`
	Inventory          float64 `json:"inventory"`
	Receivables        float64 `json:"receivables"`
	AccountsPayable    float64 `json:"accounts_payable"`
	AccruedLiabilities float64 `json:"accrued_liabilities"`
	TotalDebt          float64 `json:"total_debt"`
	Equity             float64 `json:"equity"`
	TangibleEquity     float64 `json:"tangible_equity"`

	// Cash flow
	OperatingCashflow float64 `json:"operating_cashflow"`
	CapEx             float64 `json:"capex"`
	FreeCashflow      float64 `json:"free_cashflow"`
	Depreciation      float64 `json:"depreciation"`

	// Derived
	EnterpriseValue float64 `json:"enterprise_value"`
	NetDebt         float64 `json:"net_debt"`
	EffectiveTax    float64 `json:"effective_tax"`
	RiskFreeRate    float64 `json:"risk_free_rate"`

	// Raw statements kept for multi-period ratios
	Statements *StatementSet `json:"-"`
	Quote      *Quote        `json:"-"`
}
