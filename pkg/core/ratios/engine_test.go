package ratios

import (
	"math"
	"testing"

	"intrinsic_valuation/pkg/models"
)

func sampleCompany() *models.CompanyFinancials {
	ta0, ta1 := 1000.0, 900.0
	ap0, ap1 := 80.0, 70.0
	acc0, acc1 := 20.0, 20.0
	cash0, cash1 := 200.0, 150.0
	cl0, cl1 := 250.0, 220.0
	ca0, ca1 := 450.0, 400.0
	rev0, rev1 := 600.0, 500.0
	ni0, ni1 := 90.0, 75.0
	oi0, oi1 := 120.0, 100.0

	return &models.CompanyFinancials{
		Ticker:            "TEST",
		Price:             50,
		MarketCap:         500,
		SharesOutstanding: 10,
		EPS:               9,
		ForwardEPS:        10,
		Revenue:           600,
		GrossProfit:       240,
		OperatingIncome:   120,
		EBIT:              120,
		EBITDA:            150,
		PretaxIncome:      112,
		IncomeTax:         22,
		NetIncome:         90,
		InterestExpense:   8,
		TotalAssets:       1000,
		CurrentAssets:     450,
		CurrentLiabilities: 250,
		CashAndSTInvest:   200,
		Inventory:         90,
		Receivables:       60,
		TotalDebt:         200,
		Equity:            500,
		OperatingCashflow: 130,
		CapEx:             40,
		FreeCashflow:      90,
		Depreciation:      30,
		EnterpriseValue:   550,
		Statements: &models.StatementSet{
			Periods: []string{"2025-12-31", "2024-12-31"},
			Income: models.StatementTable{
				"Total Revenue":    {&rev0, &rev1},
				"Net Income":       {&ni0, &ni1},
				"Operating Income": {&oi0, &oi1},
			},
			Balance: models.StatementTable{
				"Total Assets":                     {&ta0, &ta1},
				"Accounts Payable":                 {&ap0, &ap1},
				"Current Accrued Expenses":         {&acc0, &acc1},
				"Cash Cash Equivalents And Short Term Investments": {&cash0, &cash1},
				"Current Liabilities":              {&cl0, &cl1},
				"Current Assets":                   {&ca0, &ca1},
			},
		},
	}
}

func TestComputeProfitabilityPanel(t *testing.T) {
	r := Compute(sampleCompany(), 0)

	gm := r["gross_margin"]
	if !gm.HasData || math.Abs(gm.Value-0.40) > 1e-9 {
		t.Errorf("gross margin: got %+v", gm)
	}
	if gm.Status.Level != "Good" {
		t.Errorf("gross margin 40%% should be Good, got %q", gm.Status.Level)
	}

	nm := r["net_profit_margin"]
	if math.Abs(nm.Value-0.15) > 1e-9 || nm.Status.Level != "Excellent" {
		t.Errorf("net margin: got %+v", nm)
	}

	om := r["operating_margin"]
	if math.Abs(om.Value-0.20) > 1e-9 || om.Status.Level != "Excellent" {
		t.Errorf("operating margin: got %+v", om)
	}

	roe := r["roe"]
	if math.Abs(roe.Value-0.18) > 1e-9 {
		t.Errorf("roe: expected 0.18, got %f", roe.Value)
	}
}

func TestComputeQuoteFieldsTakePriority(t *testing.T) {
	cf := sampleCompany()
	cf.Quote = &models.Quote{Fields: map[string]float64{
		"operatingMargins": 0.33,
		"returnOnEquity":   0.44,
		"debtToEquity":     150, // percent upstream
		"currentRatio":     2.5,
	}}
	r := Compute(cf, 0)

	if r["operating_margin"].Value != 0.33 {
		t.Errorf("operating margin should come from quote, got %f", r["operating_margin"].Value)
	}
	if r["roe"].Value != 0.44 {
		t.Errorf("roe should come from quote, got %f", r["roe"].Value)
	}
	if math.Abs(r["debt_to_equity"].Value-1.5) > 1e-9 {
		t.Errorf("debt/equity quote percent should convert to 1.5, got %f", r["debt_to_equity"].Value)
	}
	if r["current_ratio"].Value != 2.5 {
		t.Errorf("current ratio should come from quote, got %f", r["current_ratio"].Value)
	}
}

func TestComputeInfiniteInterestCoverage(t *testing.T) {
	cf := sampleCompany()
	cf.InterestExpense = 0
	r := Compute(cf, 0)

	ic := r["interest_coverage"]
	if !ic.Infinite || !ic.HasData {
		t.Errorf("expected infinite record, got %+v", ic)
	}
	if ic.Status.Level != "Safe" {
		t.Errorf("debt-free coverage should read Safe, got %q", ic.Status.Level)
	}

	cf.InterestExpense = 8
	r = Compute(cf, 0)
	ic = r["interest_coverage"]
	// 120/8 = 15x.
	if ic.Infinite || math.Abs(ic.Value-15) > 1e-9 || ic.Status.Level != "Safe" {
		t.Errorf("15x coverage: got %+v", ic)
	}
}

func TestComputeGrowthFromStatements(t *testing.T) {
	r := Compute(sampleCompany(), 0)

	rg := r["revenue_growth"]
	if !rg.HasData || math.Abs(rg.Value-0.20) > 1e-9 {
		t.Errorf("revenue growth: expected 0.20, got %+v", rg)
	}
	if rg.Status.Level != "High Growth" {
		t.Errorf("20%% revenue growth tier: got %q", rg.Status.Level)
	}

	ng := r["net_income_growth"]
	if math.Abs(ng.Value-0.20) > 1e-9 {
		t.Errorf("net income growth: expected 0.20, got %f", ng.Value)
	}

	og := r["operating_income_growth"]
	if math.Abs(og.Value-0.20) > 1e-9 {
		t.Errorf("operating income growth: expected 0.20, got %f", og.Value)
	}
}

func TestComputeEfficiencyAndCycle(t *testing.T) {
	r := Compute(sampleCompany(), 0)

	// COGS = 600-240 = 360, inventory 90: 4x turnover, 91.25 days.
	it := r["inventory_turnover"]
	if math.Abs(it.Value-4) > 1e-9 {
		t.Errorf("inventory turnover: expected 4, got %f", it.Value)
	}
	di := r["days_inventory"]
	if math.Abs(di.Value-91.25) > 1e-9 {
		t.Errorf("days inventory: expected 91.25, got %f", di.Value)
	}

	// Revenue 600, receivables 60: 10x, 36.5 days DSO.
	dso := r["days_sales_outstanding"]
	if math.Abs(dso.Value-36.5) > 1e-9 {
		t.Errorf("dso: expected 36.5, got %f", dso.Value)
	}

	oc := r["operating_cycle"]
	if math.Abs(oc.Value-127.75) > 1e-9 {
		t.Errorf("operating cycle: expected 127.75, got %f", oc.Value)
	}
	if oc.Status.Level != "Inefficient" {
		t.Errorf("127.75-day cycle tier: got %q", oc.Status.Level)
	}
}

func TestComputeROICHandValues(t *testing.T) {
	cf := sampleCompany()
	roic, ok := ComputeROIC(cf)
	if !ok {
		t.Fatal("expected roic")
	}

	// Current: need = max(0, 250-450+200)=0, excess=200,
	// IC = 1000-100-200 = 700.
	// Prior: need = max(0, 220-400+150)=0, excess=150,
	// IC = 900-90-150 = 660. Avg 680.
	// Tax 22/112 ~ 0.196 in range; NOPAT = 120*0.8036 = 96.43.
	tax := 22.0 / 112.0
	want := 120 * (1 - tax) / 680
	if math.Abs(roic-want) > 1e-9 {
		t.Errorf("roic: expected %f, got %f", want, roic)
	}
}

func TestComputeROICTaxOutsideRangeDefaults(t *testing.T) {
	cf := sampleCompany()
	cf.IncomeTax = 1   // sub-10% effective rate
	cf.PretaxIncome = 112
	roic, ok := ComputeROIC(cf)
	if !ok {
		t.Fatal("expected roic")
	}
	want := 120 * (1 - 0.21) / 680
	if math.Abs(roic-want) > 1e-9 {
		t.Errorf("roic with default tax: expected %f, got %f", want, roic)
	}
}

func TestComputeValueSpread(t *testing.T) {
	r := Compute(sampleCompany(), 0.09)

	w := r["wacc"]
	if w == nil || math.Abs(w.Value-0.09) > 1e-12 {
		t.Fatalf("wacc record: got %+v", w)
	}
	if w.Status.Level != "Moderate" {
		t.Errorf("9%% wacc tier: got %q", w.Status.Level)
	}

	vs := r["value_spread"]
	if vs == nil || !vs.HasData {
		t.Fatal("expected value spread record")
	}
	roic := r["roic"].Value
	if math.Abs(vs.Value-(roic-0.09)) > 1e-12 {
		t.Errorf("value spread: expected %f, got %f", roic-0.09, vs.Value)
	}

	// Without a wacc neither record appears.
	r = Compute(sampleCompany(), 0)
	if r["wacc"] != nil || r["value_spread"] != nil {
		t.Error("wacc records should be omitted when wacc is 0")
	}
}

func TestComputeMissingDataStatuses(t *testing.T) {
	r := Compute(&models.CompanyFinancials{}, 0)

	for _, key := range []string{"gross_margin", "net_profit_margin", "fcf_to_sales"} {
		if r[key].HasData {
			t.Errorf("%s should have no data", key)
		}
		if r[key].Status.Level != "N/A" {
			t.Errorf("%s: expected N/A, got %q", key, r[key].Status.Level)
		}
	}
	if r["revenue_growth"].HasData {
		t.Error("revenue growth needs statements")
	}
}

func TestClassifyBoundaries(t *testing.T) {
	// Bands are strict upper bounds: a value exactly on a boundary falls
	// into the next tier up.
	if got := Classify(0.05, grossMarginBands).Level; got != "Average" {
		t.Errorf("gross margin 0.05: got %q", got)
	}
	if got := Classify(0.0499, grossMarginBands).Level; got != "Poor" {
		t.Errorf("gross margin 0.0499: got %q", got)
	}
	if got := Classify(0.10, grossMarginBands).Level; got != "Good" {
		t.Errorf("gross margin 0.10: got %q", got)
	}
}
