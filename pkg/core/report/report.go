// Package report renders a valuation analysis as a markdown document
// and, via goldmark, as standalone HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"intrinsic_valuation/pkg/core/ratios"
	"intrinsic_valuation/pkg/core/valuation"
)

// Report is one rendered analysis run.
type Report struct {
	ID          string    `json:"id"`
	Ticker      string    `json:"ticker"`
	GeneratedAt time.Time `json:"generated_at"`
	Markdown    string    `json:"markdown"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Build renders the analysis into a markdown report with a unique run
// ID. History may be nil.
func Build(a *valuation.Analysis, history *ratios.HistoricalRatios) *Report {
	var b strings.Builder

	fmt.Fprintf(&b, "# Valuation Report: %s (%s)\n\n", a.Name, a.Ticker)
	fmt.Fprintf(&b, "Sector: %s | Price: %.2f\n\n", orNA(a.Sector), a.Price)

	b.WriteString("## Fair Value\n\n")
	fmt.Fprintf(&b, "| View | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Blended fair value | %.2f |\n", a.FairValue)
	fmt.Fprintf(&b, "| DCF fair value | %.2f |\n", a.DCFFairValue)
	fmt.Fprintf(&b, "| Relative fair value (%s) | %.2f |\n", a.Relative.SectorName, a.Relative.FairValue)
	if a.LynchValid {
		fmt.Fprintf(&b, "| Peter Lynch fair value | %.2f |\n", a.LynchValue)
	}
	fmt.Fprintf(&b, "| Upside vs price | %+.1f%% |\n\n", a.UpsidePercent)

	b.WriteString("## Cost of Capital\n\n")
	fmt.Fprintf(&b, "WACC **%.2f%%** (Ke %.2f%%, Kd %.2f%% after tax, debt weight %.0f%%)\n\n",
		a.WACC.WACC*100, a.WACC.CostOfEquity*100, a.WACC.CostOfDebtAfter*100, a.WACC.WeightDebt*100)
	if a.ValueCreation.Status.Level != "" {
		fmt.Fprintf(&b, "ROIC %.2f%% against WACC %.2f%%: **%s** (spread %+.2f%%)\n\n",
			a.ValueCreation.ROIC*100, a.ValueCreation.WACC*100,
			a.ValueCreation.Status.Level, a.ValueCreation.Spread*100)
	}

	b.WriteString("## Discounted Cash Flow\n\n")
	if a.TwoStage.Success {
		fmt.Fprintf(&b, "Two-stage model: intrinsic value %.0f, equity value %.0f, **%.2f per share**.\n\n",
			a.TwoStage.IntrinsicValue, a.TwoStage.EquityValue, a.TwoStage.FairValuePerShare)
	} else if a.TwoStage.Reason != "" {
		fmt.Fprintf(&b, "Two-stage model unavailable: %s.\n\n", a.TwoStage.Reason)
	}
	if a.EarningsDCF.Valid {
		fmt.Fprintf(&b, "- Earnings-based closed form: %.2f per share%s\n",
			a.EarningsDCF.Value, repairNote(a.EarningsDCF))
	}
	if a.FCFDCF.Valid {
		fmt.Fprintf(&b, "- FCF-based closed form: %.2f per share%s\n",
			a.FCFDCF.Value, repairNote(a.FCFDCF))
	}
	b.WriteString("\n")

	if a.Sensitivity != nil && a.Sensitivity.Stats != nil {
		s := a.Sensitivity.Stats
		b.WriteString("## Sensitivity\n\n")
		fmt.Fprintf(&b, "Across %d x %d WACC/growth scenarios: min %.2f, mean %.2f, max %.2f. ",
			len(a.Sensitivity.WACCValues), len(a.Sensitivity.GrowthValues), s.Min, s.Mean, s.Max)
		fmt.Fprintf(&b, "%.0f%% of scenarios price above the current quote: **%s**.\n\n",
			s.AbovePercent, s.Assessment)
		writeSensitivityGrid(&b, a.Sensitivity)
	}

	writeRatioSection(&b, a.Ratios)

	if history != nil && (history.PEStats != nil || history.PBStats != nil) {
		b.WriteString("## Historical Multiples\n\n")
		if s := history.PEStats; s != nil {
			fmt.Fprintf(&b, "- P/E over history: min %.1f, median %.1f, max %.1f\n", s.Min, s.Median, s.Max)
		}
		if s := history.PBStats; s != nil {
			fmt.Fprintf(&b, "- P/B over history: min %.1f, median %.1f, max %.1f\n", s.Min, s.Median, s.Max)
		}
		b.WriteString("\n")
	}

	return &Report{
		ID:          uuid.NewString(),
		Ticker:      a.Ticker,
		GeneratedAt: time.Now().UTC(),
		Markdown:    b.String(),
	}
}

// ratioSections orders the panel for display.
var ratioSections = []struct {
	title string
	keys  []string
}{
	{"Profitability", []string{"gross_margin", "operating_margin", "net_profit_margin", "roa", "roe", "roic"}},
	{"Leverage", []string{"debt_to_equity", "debt_ratio", "equity_ratio", "interest_coverage"}},
	{"Growth", []string{"revenue_growth", "operating_income_growth", "net_income_growth", "eps_growth"}},
	{"Liquidity", []string{"current_ratio", "quick_ratio", "cash_ratio"}},
	{"Cash Flow", []string{"ocf_to_revenue", "fcf_to_ocf", "fcf_to_sales", "cash_flow_to_capex"}},
	{"Market", []string{"pe_ratio", "forward_pe_ratio", "pb_ratio", "ps_ratio", "ev_to_ebitda"}},
}

func writeRatioSection(b *strings.Builder, panel map[string]*ratios.Record) {
	if len(panel) == 0 {
		return
	}
	b.WriteString("## Ratios\n\n")
	for _, sec := range ratioSections {
		var lines []string
		for _, key := range sec.keys {
			r, ok := panel[key]
			if !ok || !r.HasData {
				continue
			}
			val := fmt.Sprintf("%.2f", r.Value)
			if r.Infinite {
				val = "inf"
			}
			level := r.Status.Level
			if level == "" {
				level = "-"
			}
			lines = append(lines, fmt.Sprintf("| %s | %s | %s |", key, val, level))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n| Ratio | Value | Status |\n|---|---|---|\n", sec.title)
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n")
	}
}

// writeSensitivityGrid renders the fair-value matrix, rows WACC and
// columns terminal growth. Interpolated cells carry a `*` suffix.
func writeSensitivityGrid(b *strings.Builder, g *valuation.Grid) {
	b.WriteString("| WACC \\ Growth |")
	for _, tg := range g.GrowthValues {
		fmt.Fprintf(b, " %.1f%% |", tg*100)
	}
	b.WriteString("\n|---|")
	for range g.GrowthValues {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for i, w := range g.WACCValues {
		fmt.Fprintf(b, "| %.1f%% |", w*100)
		for j := range g.GrowthValues {
			c := g.Cells[i][j]
			switch c.State {
			case valuation.CellValue:
				fmt.Fprintf(b, " %.2f |", c.Value)
			case valuation.CellInterpolated:
				fmt.Fprintf(b, " %.2f* |", c.Value)
			default:
				b.WriteString(" - |")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n`*` interpolated from the nearest computed scenario.\n\n")
}

// RenderHTML converts the report body to an HTML fragment.
func (r *Report) RenderHTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(r.Markdown), &buf); err != nil {
		return "", fmt.Errorf("render report %s: %w", r.ID, err)
	}
	return buf.String(), nil
}

func repairNote(r valuation.ClosedFormResult) string {
	if !r.Repaired {
		return ""
	}
	return fmt.Sprintf(" (discount floored to %.1f%%)", r.EffectiveDiscount*100)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
