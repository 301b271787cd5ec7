package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"intrinsic_valuation/pkg/models"
)

const timeseriesURL = "https://query1.finance.yahoo.com/ws/fundamentals-timeseries/v1/finance/timeseries/%s?type=%s&period1=%d&period2=%d"

// timeseries type keys per statement, mapped to the row labels the
// resolution layer expects.
var (
	incomeKeys = map[string]string{
		"annualTotalRevenue":     "Total Revenue",
		"annualCostOfRevenue":    "Cost Of Revenue",
		"annualGrossProfit":      "Gross Profit",
		"annualOperatingIncome":  "Operating Income",
		"annualEBIT":             "EBIT",
		"annualEBITDA":           "EBITDA",
		"annualPretaxIncome":     "Pretax Income",
		"annualTaxProvision":     "Tax Provision",
		"annualNetIncome":        "Net Income",
		"annualInterestExpense":  "Interest Expense",
		"annualDilutedEPS":       "Diluted EPS",
	}
	balanceKeys = map[string]string{
		"annualTotalAssets":        "Total Assets",
		"annualCurrentAssets":      "Current Assets",
		"annualCurrentLiabilities": "Current Liabilities",
		"annualCashCashEquivalentsAndShortTermInvestments": "Cash Cash Equivalents And Short Term Investments",
		"annualInventory":              "Inventory",
		"annualAccountsReceivable":     "Accounts Receivable",
		"annualAccountsPayable":        "Accounts Payable",
		"annualCurrentAccruedExpenses": "Current Accrued Expenses",
		"annualTotalDebt":              "Total Debt",
		"annualLongTermDebt":           "Long Term Debt",
		"annualCurrentDebt":            "Current Debt",
		"annualStockholdersEquity":     "Stockholders Equity",
		"annualGoodwillAndOtherIntangibleAssets": "Goodwill And Other Intangible Assets",
		"annualGoodwill":                         "Goodwill",
	}
	cashflowKeys = map[string]string{
		"annualOperatingCashFlow":            "Operating Cash Flow",
		"annualCapitalExpenditure":           "Capital Expenditure",
		"annualFreeCashFlow":                 "Free Cash Flow",
		"annualDepreciationAndAmortization":  "Depreciation And Amortization",
	}
)

type timeseriesResponse struct {
	Timeseries struct {
		Result []json.RawMessage `json:"result"`
	} `json:"timeseries"`
}

type timeseriesMeta struct {
	Meta struct {
		Type []string `json:"type"`
	} `json:"meta"`
}

type timeseriesPoint struct {
	AsOfDate      string   `json:"asOfDate"`
	ReportedValue rawValue `json:"reportedValue"`
}

// FetchStatements pulls up to five annual periods of the three core
// statements. Rows are stored newest-first to match the resolution
// layer's column convention.
func (c *Client) FetchStatements(ctx context.Context, symbol string) (*models.StatementSet, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	allKeys := make([]string, 0, len(incomeKeys)+len(balanceKeys)+len(cashflowKeys))
	for k := range incomeKeys {
		allKeys = append(allKeys, k)
	}
	for k := range balanceKeys {
		allKeys = append(allKeys, k)
	}
	for k := range cashflowKeys {
		allKeys = append(allKeys, k)
	}
	sort.Strings(allKeys)

	now := time.Now()
	url := fmt.Sprintf(timeseriesURL, symbol, strings.Join(allKeys, ","),
		now.AddDate(-5, 0, 0).Unix(), now.Unix())

	var resp timeseriesResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Timeseries.Result) == 0 {
		return nil, fmt.Errorf("statements %s: empty result", symbol)
	}

	// First pass: collect every reported value by (label, period).
	type statementRow struct {
		table  string
		byDate map[string]float64
	}
	rows := map[string]*statementRow{}
	periodSet := map[string]bool{}

	for _, raw := range resp.Timeseries.Result {
		var meta timeseriesMeta
		if err := json.Unmarshal(raw, &meta); err != nil || len(meta.Meta.Type) == 0 {
			continue
		}
		key := meta.Meta.Type[0]

		label, table := "", ""
		if l, ok := incomeKeys[key]; ok {
			label, table = l, "income"
		} else if l, ok := balanceKeys[key]; ok {
			label, table = l, "balance"
		} else if l, ok := cashflowKeys[key]; ok {
			label, table = l, "cashflow"
		} else {
			continue
		}

		var series map[string][]*timeseriesPoint
		if err := json.Unmarshal(raw, &series); err != nil {
			continue
		}
		row := &statementRow{table: table, byDate: map[string]float64{}}
		for _, p := range series[key] {
			if p == nil || p.AsOfDate == "" {
				continue
			}
			row.byDate[p.AsOfDate] = p.ReportedValue.Raw
			periodSet[p.AsOfDate] = true
		}
		if len(row.byDate) > 0 {
			rows[label] = row
		}
	}

	if len(periodSet) == 0 {
		return nil, fmt.Errorf("statements %s: no reported periods", symbol)
	}

	// Periods newest-first; column 0 is the most recent fiscal year.
	periods := make([]string, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(periods)))

	set := &models.StatementSet{
		Periods:  periods,
		Income:   models.StatementTable{},
		Balance:  models.StatementTable{},
		CashFlow: models.StatementTable{},
	}
	for label, row := range rows {
		cols := make([]*float64, len(periods))
		for i, p := range periods {
			if v, ok := row.byDate[p]; ok {
				v := v
				cols[i] = &v
			}
		}
		switch row.table {
		case "income":
			set.Income[label] = cols
		case "balance":
			set.Balance[label] = cols
		case "cashflow":
			set.CashFlow[label] = cols
		}
	}

	c.logger.Debug("statements fetched",
		zap.String("symbol", symbol),
		zap.Int("periods", len(periods)),
		zap.Int("rows", len(rows)))
	return set, nil
}
