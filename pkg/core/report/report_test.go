package report

import (
	"strings"
	"testing"

	"intrinsic_valuation/pkg/core/valuation"
	"intrinsic_valuation/pkg/models"
)

func sampleAnalysis() *valuation.Analysis {
	cf := &models.CompanyFinancials{
		Ticker:            "ACME",
		Name:              "Acme Corp",
		Sector:            "Technology",
		Price:             80,
		MarketCap:         800e6,
		SharesOutstanding: 10e6,
		EPS:               6,
		Beta:              1.1,
		Revenue:           500e6,
		GrossProfit:       200e6,
		OperatingIncome:   100e6,
		EBIT:              100e6,
		EBITDA:            120e6,
		NetIncome:         60e6,
		InterestExpense:   8e6,
		TotalAssets:       900e6,
		Equity:            400e6,
		TotalDebt:         200e6,
		OperatingCashflow: 110e6,
		CapEx:             30e6,
		FreeCashflow:      80e6,
		EnterpriseValue:   950e6,
		NetDebt:           150e6,
		EarningsGrowth:    0.10,
	}
	return valuation.Analyze(cf, valuation.AnalysisOptions{})
}

func TestBuildReport(t *testing.T) {
	r := Build(sampleAnalysis(), nil)

	if r.ID == "" {
		t.Error("expected a run ID")
	}
	if r.Ticker != "ACME" {
		t.Errorf("ticker: got %q", r.Ticker)
	}

	for _, want := range []string{
		"# Valuation Report: Acme Corp (ACME)",
		"## Fair Value",
		"## Cost of Capital",
		"## Discounted Cash Flow",
		"## Ratios",
		"### Profitability",
		"gross_margin",
	} {
		if !strings.Contains(r.Markdown, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestBuildReportDistinctIDs(t *testing.T) {
	a := sampleAnalysis()
	if Build(a, nil).ID == Build(a, nil).ID {
		t.Error("run IDs should be unique")
	}
}

func TestRenderHTML(t *testing.T) {
	r := Build(sampleAnalysis(), nil)
	html, err := r.RenderHTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<table") {
		t.Errorf("expected rendered headings and tables, got %.120s", html)
	}
}
