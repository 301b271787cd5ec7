// Command analyze runs the full valuation for one ticker and writes the
// report to stdout or a file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"intrinsic_valuation/pkg/core/config"
	"intrinsic_valuation/pkg/core/fetch"
	"intrinsic_valuation/pkg/core/ratios"
	"intrinsic_valuation/pkg/core/report"
	"intrinsic_valuation/pkg/core/sector"
	"intrinsic_valuation/pkg/core/valuation"
)

func main() {
	godotenv.Load()

	ticker := flag.String("ticker", "", "ticker symbol to analyze (required)")
	format := flag.String("format", "markdown", "output format: markdown, html or json")
	out := flag.String("out", "", "output file (default stdout)")
	sectorsFile := flag.String("sectors", "config/sectors.yaml", "sector multiples file")
	assumptionsFile := flag.String("assumptions", "config/assumptions.hjson", "assumptions file")
	waccOverride := flag.Float64("wacc", 0, "pin the discount rate (decimal or percent)")
	growth := flag.Float64("growth", 0, "stage-1 growth override (decimal or percent)")
	terminal := flag.Float64("terminal", 0, "terminal growth override (decimal or percent)")
	perpetuity := flag.Bool("perpetuity", false, "use a Gordon perpetuity terminal value")
	timeout := flag.Duration("timeout", 60*time.Second, "overall fetch timeout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *ticker == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	sectors := sector.Default()
	if loaded, err := sector.Load(*sectorsFile); err == nil {
		sectors = loaded
	}
	assumptions, err := config.LoadAssumptions(*assumptionsFile)
	if err != nil {
		logger.Debug("assumptions load failed, using defaults", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := fetch.NewClient(logger)
	cf, err := client.FetchCompany(ctx, *ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch %s: %v\n", *ticker, err)
		os.Exit(1)
	}

	opts := valuation.AnalysisOptions{
		UsePerpetuity: *perpetuity,
		DCFWeight:     assumptions.DCFWeight,
		SectorTable:   sectors,
		Overrides: valuation.WACCOverrides{
			MarketRiskPremium: &assumptions.MarketRiskPremium,
		},
	}
	if *waccOverride > 0 {
		w := valuation.NormalizeRate(*waccOverride)
		opts.Overrides.WACC = &w
	}
	if *growth > 0 {
		g := valuation.NormalizeRate(*growth)
		opts.GrowthStage1 = &g
	}
	if *terminal > 0 {
		g := valuation.NormalizeRate(*terminal)
		opts.TerminalGrowth = &g
	}

	analysis := valuation.Analyze(cf, opts)

	var history *ratios.HistoricalRatios
	if prices, err := client.FetchYearlyAveragePrices(ctx, cf.Ticker); err == nil {
		history = ratios.ComputeHistoricalRatios(cf.Statements, prices, cf.SharesOutstanding)
	}

	rep := report.Build(analysis, history)

	var output []byte
	switch *format {
	case "markdown":
		output = []byte(rep.Markdown)
	case "html":
		html, err := rep.RenderHTML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		output = []byte(html)
	case "json":
		output, err = json.MarshalIndent(struct {
			Analysis *valuation.Analysis      `json:"analysis"`
			History  *ratios.HistoricalRatios `json:"history,omitempty"`
		}{analysis, history}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	if *out == "" {
		os.Stdout.Write(output)
		return
	}
	if err := os.WriteFile(*out, output, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
	logger.Info("report written",
		zap.String("ticker", cf.Ticker),
		zap.String("path", *out),
		zap.String("id", rep.ID))
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		l, _ := zap.NewDevelopment()
		return l
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, _ := cfg.Build()
	return l
}
