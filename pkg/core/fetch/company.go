package fetch

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"intrinsic_valuation/pkg/core/statements"
	"intrinsic_valuation/pkg/models"
)

// FetchCompany assembles the full analysis input for one ticker: live
// quote, annual statements, the current risk-free rate, and the
// flattened snapshot with extraction fallbacks applied. The statistics
// scrape only runs when the quote came back thin.
func (c *Client) FetchCompany(ctx context.Context, ticker string) (*models.CompanyFinancials, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if err := ValidateSymbol(ticker); err != nil {
		return nil, err
	}

	quote, err := c.FetchQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch company %s: %w", ticker, err)
	}
	if len(quote.Fields) < 5 {
		if err := c.ScrapeKeyStatistics(ctx, quote); err != nil {
			c.logger.Warn("statistics scrape failed",
				zap.String("ticker", ticker), zap.Error(err))
		}
	}

	stmts, err := c.FetchStatements(ctx, ticker)
	if err != nil {
		// Quote-only analysis still works for most ratios.
		c.logger.Warn("statements unavailable",
			zap.String("ticker", ticker), zap.Error(err))
	}

	riskFree := c.FetchRiskFreeRate(ctx)

	cf := statements.Build(ticker, quote, stmts, riskFree)
	if cf.Price <= 0 {
		if price, err := c.FetchCurrentPrice(ctx, ticker); err == nil {
			cf.Price = price
		}
	}
	if cf.Price <= 0 {
		return nil, fmt.Errorf("fetch company %s: no market price", ticker)
	}

	c.logger.Info("company data assembled",
		zap.String("ticker", ticker),
		zap.String("sector", cf.Sector),
		zap.Float64("price", cf.Price))
	return cf, nil
}
