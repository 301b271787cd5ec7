package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"intrinsic_valuation/pkg/models"
)

const keyStatisticsURL = "https://finance.yahoo.com/quote/%s/key-statistics"

// Statistic page labels mapped to the API field names the engines read.
var scrapedFields = map[string]string{
	"Trailing P/E":              "trailingPE",
	"Forward P/E":               "forwardPE",
	"Price/Book":                "priceToBook",
	"Price/Sales":               "priceToSalesTrailing12Months",
	"Beta (5Y Monthly)":         "beta",
	"Enterprise Value/EBITDA":   "enterpriseToEbitda",
	"PEG Ratio (5 yr expected)": "pegRatio",
	"Shares Outstanding":        "sharesOutstanding",
	"Return on Equity":          "returnOnEquity",
	"Return on Assets":          "returnOnAssets",
	"Profit Margin":             "profitMargins",
	"Operating Margin":          "operatingMargins",
	"Current Ratio":             "currentRatio",
	"Total Debt/Equity":         "debtToEquity",
}

// ScrapeKeyStatistics fills quote fields the JSON API left empty by
// parsing the statistics page tables. Existing fields are never
// overwritten. Best effort: a failed scrape leaves the quote untouched.
func (c *Client) ScrapeKeyStatistics(ctx context.Context, q *models.Quote) error {
	if q == nil || q.Symbol == "" {
		return fmt.Errorf("scrape: no symbol")
	}
	if err := ValidateSymbol(q.Symbol); err != nil {
		return err
	}

	url := fmt.Sprintf(keyStatisticsURL, q.Symbol)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("scrape %s: %w", q.Symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scrape %s: status %d", q.Symbol, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return err
	}

	if q.Fields == nil {
		q.Fields = map[string]float64{}
	}
	added := 0
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.First().Text())
		field, ok := scrapedFields[label]
		if !ok {
			return
		}
		if _, exists := q.Fields[field]; exists {
			return
		}
		if v, ok := parseStatValue(strings.TrimSpace(cells.Eq(1).Text())); ok {
			q.Fields[field] = v
			added++
		}
	})

	c.logger.Debug("key statistics scraped",
		zap.String("symbol", q.Symbol), zap.Int("added", added))
	return nil
}

// parseStatValue handles the page's display formats: plain numbers,
// percentages, and B/M/k magnitude suffixes.
func parseStatValue(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "N/A" || s == "--" {
		return 0, false
	}

	mult := 1.0
	if strings.HasSuffix(s, "%") {
		mult = 0.01
		s = strings.TrimSuffix(s, "%")
	} else {
		switch {
		case strings.HasSuffix(s, "T"):
			mult = 1e12
			s = strings.TrimSuffix(s, "T")
		case strings.HasSuffix(s, "B"):
			mult = 1e9
			s = strings.TrimSuffix(s, "B")
		case strings.HasSuffix(s, "M"):
			mult = 1e6
			s = strings.TrimSuffix(s, "M")
		case strings.HasSuffix(s, "k"):
			mult = 1e3
			s = strings.TrimSuffix(s, "k")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * mult, true
}
