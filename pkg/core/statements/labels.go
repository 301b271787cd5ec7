package statements

// Label alias sets, ordered by preference. The upstream feed is not
// consistent across exchanges, so every consumer resolves through these
// instead of hard-coding a single label.
var (
	RevenueLabels     = []string{"Total Revenue", "Operating Revenue"}
	CostOfRevLabels   = []string{"Cost Of Revenue", "Reconciled Cost Of Revenue"}
	GrossProfitLabels = []string{"Gross Profit"}
	OperatingLabels   = []string{"Operating Income", "Total Operating Income As Reported"}
	EBITLabels        = []string{"EBIT", "Operating Income"}
	EBITDALabels      = []string{"EBITDA", "Normalized EBITDA"}
	PretaxLabels      = []string{"Pretax Income", "Income Before Tax"}
	TaxLabels         = []string{"Tax Provision", "Income Tax Expense"}
	NetIncomeLabels   = []string{"Net Income", "Net Income Common Stockholders", "Net Income Continuous Operations"}

	InterestLabels = []string{
		"Interest Expense",
		"Interest Expense Non Operating",
		"Net Non Operating Interest Income Expense",
		"Net Interest Income",
		"Total Other Finance Cost",
	}

	TotalAssetsLabels = []string{"Total Assets"}
	CurrentAssets     = []string{"Current Assets", "Total Current Assets"}
	CurrentLiabs      = []string{"Current Liabilities", "Total Current Liabilities"}
	CashSTILabels     = []string{
		"Cash Cash Equivalents And Short Term Investments",
		"Cash And Cash Equivalents",
		"Cash Financial",
	}
	InventoryLabels   = []string{"Inventory", "Inventories"}
	ReceivableLabels  = []string{"Accounts Receivable", "Receivables", "Net Receivables"}
	PayableLabels     = []string{"Accounts Payable", "Payables", "Payables And Accrued Expenses"}
	AccruedLabels     = []string{"Current Accrued Expenses", "Accrued Liabilities"}
	TotalDebtLabels   = []string{"Total Debt", "Total Debt And Capital Lease Obligation"}
	LongTermDebt      = []string{"Long Term Debt", "Long Term Debt And Capital Lease Obligation"}
	ShortTermDebt     = []string{"Current Debt", "Current Debt And Capital Lease Obligation"}
	EquityLabels      = []string{"Stockholders Equity", "Common Stock Equity", "Total Equity Gross Minority Interest"}
	IntangibleLabels  = []string{"Goodwill And Other Intangible Assets", "Other Intangible Assets"}
	GoodwillLabels    = []string{"Goodwill"}

	OperatingCFLabels = []string{
		"Operating Cash Flow",
		"Cash Flow From Continuing Operating Activities",
		"Total Cash From Operating Activities",
	}
	CapExLabels        = []string{"Capital Expenditure", "Capital Expenditures", "Purchase Of PPE"}
	FreeCashflowLabels = []string{"Free Cash Flow"}
	DepreciationLabels = []string{
		"Depreciation And Amortization",
		"Depreciation Amortization Depletion",
		"Depreciation",
	}
)
