package statements

import (
	"math"
	"testing"

	"intrinsic_valuation/pkg/models"
)

func f(v float64) *float64 { return &v }

func table(rows map[string][]*float64) models.StatementTable {
	t := models.StatementTable{}
	for k, v := range rows {
		t[k] = v
	}
	return t
}

func TestResolveSkipsNilAndZero(t *testing.T) {
	tbl := table(map[string][]*float64{
		"Total Revenue":     {nil, f(500)},
		"Operating Revenue": {f(450), f(480)},
	})

	// Column 0: Total Revenue is nil, must fall through to Operating Revenue.
	v, ok := Resolve(tbl, 0, "Total Revenue", "Operating Revenue")
	if !ok || v != 450 {
		t.Errorf("Expected 450 via fallback, got %f (ok=%v)", v, ok)
	}

	// Zero cells are placeholders, not values.
	tbl["Total Revenue"][0] = f(0)
	v, ok = Resolve(tbl, 0, "Total Revenue", "Operating Revenue")
	if !ok || v != 450 {
		t.Errorf("Expected zero cell skipped, got %f (ok=%v)", v, ok)
	}

	// Column 1: Total Revenue present, takes priority.
	v, _ = Resolve(tbl, 1, "Total Revenue", "Operating Revenue")
	if v != 500 {
		t.Errorf("Expected 500, got %f", v)
	}
}

func TestResolveAnyScansColumns(t *testing.T) {
	tbl := table(map[string][]*float64{
		"Interest Expense": {nil, nil, f(120)},
	})
	v, ok := ResolveAny(tbl, 3, InterestLabels...)
	if !ok || v != 120 {
		t.Errorf("Expected 120 from third column, got %f (ok=%v)", v, ok)
	}
	if _, ok := ResolveAny(tbl, 2, InterestLabels...); ok {
		t.Error("Expected miss when scan stops before the populated column")
	}
}

func TestBetaClamping(t *testing.T) {
	cases := []struct {
		fields   map[string]float64
		expected float64
	}{
		{map[string]float64{"beta": 1.3}, 1.3},
		{map[string]float64{"beta3Year": 0.8}, 0.8}, // fallback field
		{map[string]float64{"beta": 7.2}, 1.0},      // absurd high resets
		{map[string]float64{"beta": 0.02}, 0.1},     // floors
		{map[string]float64{}, 1.0},                 // missing defaults
	}
	for i, c := range cases {
		q := &models.Quote{Fields: c.fields}
		if got := resolveBeta(q); got != c.expected {
			t.Errorf("case %d: expected beta %f, got %f", i, c.expected, got)
		}
	}
}

func TestEffectiveTaxRate(t *testing.T) {
	if r := effectiveTaxRate(21, 100); r != 0.21 {
		t.Errorf("Expected 0.21, got %f", r)
	}
	// Negative pretax income: statutory default.
	if r := effectiveTaxRate(5, -10); r != 0.21 {
		t.Errorf("Expected default on loss, got %f", r)
	}
	// Tax credit pushing the ratio negative: statutory default.
	if r := effectiveTaxRate(-5, 100); r != 0.21 {
		t.Errorf("Expected default on negative rate, got %f", r)
	}
	if r := effectiveTaxRate(60, 100); r != 0.21 {
		t.Errorf("Expected default above 50%%, got %f", r)
	}
}

func TestBuildDerivesFallbacks(t *testing.T) {
	q := &models.Quote{
		Symbol: "TEST",
		Fields: map[string]float64{
			"currentPrice": 100,
			"marketCap":    1000e6,
			"beta":         1.2,
		},
	}
	s := &models.StatementSet{
		Income: table(map[string][]*float64{
			"Total Revenue":   {f(500e6)},
			"Cost Of Revenue": {f(300e6)},
			"Pretax Income":   {f(100e6)},
			"Tax Provision":   {f(21e6)},
			"Net Income":      {f(79e6)},
		}),
		Balance: table(map[string][]*float64{
			"Total Assets":        {f(900e6)},
			"Stockholders Equity": {f(400e6)},
			"Goodwill":            {f(50e6)},
			"Long Term Debt":      {f(180e6)},
			"Current Debt":        {f(20e6)},
			"Cash Cash Equivalents And Short Term Investments": {f(120e6)},
		}),
		CashFlow: table(map[string][]*float64{
			"Operating Cash Flow": {f(110e6)},
			"Capital Expenditure": {f(-30e6)},
		}),
	}

	cf := Build("TEST", q, s, 0.04)

	// Shares derived from marketCap / price.
	if math.Abs(cf.SharesOutstanding-10e6) > 1 {
		t.Errorf("Expected 10M shares, got %f", cf.SharesOutstanding)
	}
	// Gross profit from revenue - cost.
	if cf.GrossProfit != 200e6 {
		t.Errorf("Expected gross profit 200M, got %f", cf.GrossProfit)
	}
	// Debt summed from long + short term.
	if cf.TotalDebt != 200e6 {
		t.Errorf("Expected debt 200M, got %f", cf.TotalDebt)
	}
	// Tangible equity nets out goodwill.
	if cf.TangibleEquity != 350e6 {
		t.Errorf("Expected tangible equity 350M, got %f", cf.TangibleEquity)
	}
	// FCF = OCF - |capex|.
	if cf.FreeCashflow != 80e6 {
		t.Errorf("Expected FCF 80M, got %f", cf.FreeCashflow)
	}
	// Interest missing: 4%% of debt.
	if cf.InterestExpense != 8e6 {
		t.Errorf("Expected estimated interest 8M, got %f", cf.InterestExpense)
	}
	// EV = mcap + debt - cash.
	if cf.EnterpriseValue != 1080e6 {
		t.Errorf("Expected EV 1080M, got %f", cf.EnterpriseValue)
	}
	if cf.NetDebt != 80e6 {
		t.Errorf("Expected net debt 80M, got %f", cf.NetDebt)
	}
	if cf.EffectiveTax != 0.21 {
		t.Errorf("Expected effective tax 0.21, got %f", cf.EffectiveTax)
	}
	// EPS fallback price/15 when quote lacks it.
	if math.Abs(cf.EPS-100.0/15) > 1e-9 {
		t.Errorf("Expected EPS fallback %f, got %f", 100.0/15, cf.EPS)
	}
}
