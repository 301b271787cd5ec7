package fetch

import (
	"context"
	"time"
)

// FetchYearlyAveragePrices averages monthly closes per calendar year
// over the last ten years, feeding the historical multiple analysis.
func (c *Client) FetchYearlyAveragePrices(ctx context.Context, symbol string) (map[int]float64, error) {
	resp, err := c.fetchChart(ctx, symbol, "10y", "1mo")
	if err != nil {
		return nil, err
	}
	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return map[int]float64{}, nil
	}
	closes := result.Indicators.Quote[0].Close

	sums := map[int]float64{}
	counts := map[int]int{}
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		year := time.Unix(ts, 0).UTC().Year()
		sums[year] += *closes[i]
		counts[year]++
	}

	avg := make(map[int]float64, len(sums))
	for year, sum := range sums {
		avg[year] = sum / float64(counts[year])
	}
	return avg, nil
}

// FetchCurrentPrice returns the latest traded price for symbol.
func (c *Client) FetchCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	resp, err := c.fetchChart(ctx, symbol, "1d", "1d")
	if err != nil {
		return 0, err
	}
	meta := resp.Chart.Result[0].Meta
	if meta.RegularMarketPrice > 0 {
		return meta.RegularMarketPrice, nil
	}
	return meta.PreviousClose, nil
}
