// Package fetch pulls quotes, financial statements and price history
// from the Yahoo Finance JSON endpoints, with a goquery scrape fallback
// for fields the API omits.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"intrinsic_valuation/pkg/models"
)

const (
	quoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=%s"
	chartURL        = "https://query1.finance.yahoo.com/v8/finance/chart/%s?range=%s&interval=%s"

	// The public endpoints reject default Go user agents.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	riskFreeSymbol      = "^TNX"
	defaultRiskFreeRate = 0.035
)

var quoteModules = strings.Join([]string{
	"price",
	"summaryDetail",
	"summaryProfile",
	"financialData",
	"defaultKeyStatistics",
}, ",")

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.^=-]{0,11}$`)

// ValidateSymbol rejects ticker strings that cannot be a quote symbol
// before they reach a URL.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("invalid ticker symbol %q", symbol)
	}
	return nil
}

// Client fetches market data. A nil cache disables caching.
type Client struct {
	http   *http.Client
	cache  *ResponseCache
	logger *zap.Logger
}

// NewClient builds a client with the default cache and timeout.
func NewClient(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: 30 * time.Second},
		cache:  NewResponseCache(),
		logger: logger,
	}
}

// NewClientWithCache builds a client over a specific cache.
func NewClientWithCache(logger *zap.Logger, cache *ResponseCache) *Client {
	c := NewClient(logger)
	c.cache = cache
	return c
}

// getJSON fetches url through the cache and decodes into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	if c.cache != nil {
		if payload := c.cache.Get(url); payload != nil {
			return json.Unmarshal(payload, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if c.cache != nil {
		if err := c.cache.Set(url, payload); err != nil {
			c.logger.Warn("cache write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return json.Unmarshal(payload, out)
}

// rawValue is Yahoo's {raw, fmt} number wrapper. Some fields arrive as
// plain numbers instead, so both shapes decode.
type rawValue struct {
	Raw float64 `json:"raw"`
}

func (v *rawValue) UnmarshalJSON(data []byte) error {
	var plain float64
	if err := json.Unmarshal(data, &plain); err == nil {
		v.Raw = plain
		return nil
	}
	type wrapper rawValue
	var w wrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v.Raw = w.Raw
	return nil
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]map[string]json.RawMessage `json:"result"`
		Error  *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchQuote pulls the live quote modules and flattens every numeric
// field into Quote.Fields under its API name.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(quoteSummaryURL, symbol, quoteModules)
	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quote %s: %s", symbol, resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quote %s: empty result", symbol)
	}

	q := &models.Quote{Symbol: symbol, Fields: map[string]float64{}}
	for _, fields := range resp.QuoteSummary.Result[0] {
		for name, raw := range fields {
			switch name {
			case "longName", "shortName":
				var s string
				if json.Unmarshal(raw, &s) == nil && q.Name == "" {
					q.Name = s
				}
			case "sector":
				json.Unmarshal(raw, &q.Sector)
			case "industry":
				json.Unmarshal(raw, &q.Industry)
			case "currency", "financialCurrency":
				var s string
				if json.Unmarshal(raw, &s) == nil && q.Currency == "" {
					q.Currency = s
				}
			default:
				var v rawValue
				if json.Unmarshal(raw, &v) == nil && v.Raw != 0 {
					q.Fields[name] = v.Raw
				}
			}
		}
	}

	c.logger.Debug("quote fetched",
		zap.String("symbol", symbol),
		zap.Int("fields", len(q.Fields)))
	return q, nil
}

// FetchRiskFreeRate reads the 10-year treasury yield. The quote is in
// percent points; failures fall back to the long-run default.
func (c *Client) FetchRiskFreeRate(ctx context.Context) float64 {
	prev, err := c.previousClose(ctx, riskFreeSymbol)
	if err != nil || prev <= 0 {
		c.logger.Warn("risk-free rate unavailable, using default",
			zap.Float64("default", defaultRiskFreeRate), zap.Error(err))
		return defaultRiskFreeRate
	}
	return prev / 100
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

func (c *Client) fetchChart(ctx context.Context, symbol, rng, interval string) (*chartResponse, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	url := fmt.Sprintf(chartURL, symbol, rng, interval)
	var resp chartResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart %s: empty result", symbol)
	}
	return &resp, nil
}

func (c *Client) previousClose(ctx context.Context, symbol string) (float64, error) {
	resp, err := c.fetchChart(ctx, symbol, "5d", "1d")
	if err != nil {
		return 0, err
	}
	meta := resp.Chart.Result[0].Meta
	if meta.PreviousClose > 0 {
		return meta.PreviousClose, nil
	}
	if meta.RegularMarketPrice > 0 {
		return meta.RegularMarketPrice, nil
	}
	return meta.ChartPreviousClose, nil
}
