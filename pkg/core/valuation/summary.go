package valuation

import (
	"intrinsic_valuation/pkg/core/ratios"
	"intrinsic_valuation/pkg/core/sector"
	"intrinsic_valuation/pkg/models"
)

// Default model assumptions, overridable per request and via
// config/assumptions.hjson.
const (
	DefaultGrowthStage1   = 0.08
	DefaultTerminalGrowth = 0.025
	DefaultYears1         = 5
	DefaultYears2         = 10
	DefaultDCFWeight      = 0.7
)

// AnalysisOptions tune one valuation run. Zero values fall back to the
// defaults above; rates are decimals.
type AnalysisOptions struct {
	Overrides       WACCOverrides `json:"overrides"`
	GrowthStage1    *Rate         `json:"growth_stage1,omitempty"`
	TerminalGrowth  *Rate         `json:"terminal_growth,omitempty"`
	Years1          int           `json:"years1,omitempty"`
	Years2          int           `json:"years2,omitempty"`
	DCFWeight       float64       `json:"dcf_weight,omitempty"`
	UsePerpetuity   bool          `json:"use_perpetuity,omitempty"`
	SkipSensitivity bool          `json:"skip_sensitivity,omitempty"`

	SectorTable *sector.Table `json:"-"`
}

// Analysis is the full valuation picture for one company.
type Analysis struct {
	Ticker string  `json:"ticker"`
	Name   string  `json:"name"`
	Sector string  `json:"sector"`
	Price  float64 `json:"price"`

	WACC          WACCResult                `json:"wacc"`
	EarningsDCF   ClosedFormResult          `json:"earnings_dcf"`
	FCFDCF        ClosedFormResult          `json:"fcf_dcf"`
	TwoStage      TwoStageResult            `json:"two_stage"`
	Relative      RelativeResult            `json:"relative"`
	LynchValue    float64                   `json:"lynch_value"`
	LynchValid    bool                      `json:"lynch_valid"`
	ValueCreation ValueCreation             `json:"value_creation"`
	Ratios        map[string]*ratios.Record `json:"ratios"`
	Sensitivity   *Grid                     `json:"sensitivity,omitempty"`

	DCFFairValue  float64 `json:"dcf_fair_value"`
	FairValue     float64 `json:"fair_value"`
	UpsidePercent float64 `json:"upside_percent"`
}

// Analyze runs every model against one company snapshot: WACC, the
// closed-form per-share DCFs, the aggregate two-stage DCF, the
// sensitivity sweep, relative valuation and the ratio panel, then
// blends the DCF and multiple views into one fair value.
func Analyze(cf *models.CompanyFinancials, opts AnalysisOptions) *Analysis {
	a := &Analysis{
		Ticker: cf.Ticker,
		Name:   cf.Name,
		Sector: cf.Sector,
		Price:  cf.Price,
	}

	g1 := DefaultGrowthStage1
	if opts.GrowthStage1 != nil {
		g1 = *opts.GrowthStage1
	} else if cf.EarningsGrowth > 0 {
		g1 = clamp(cf.EarningsGrowth, 0.02, 0.25)
	} else if cf.RevenueGrowth > 0 {
		g1 = clamp(cf.RevenueGrowth, 0.02, 0.25)
	}
	g2 := DefaultTerminalGrowth
	if opts.TerminalGrowth != nil {
		g2 = *opts.TerminalGrowth
	}
	n1 := opts.Years1
	if n1 <= 0 {
		n1 = DefaultYears1
	}
	n2 := opts.Years2
	if n2 <= 0 {
		n2 = DefaultYears2
	}

	a.WACC = EstimateWACC(cf, opts.Overrides)
	d := a.WACC.WACC

	a.EarningsDCF = EarningsBasedDCF(cf.EPS, g1, g2, d, n1, n2)
	var fcfPS float64
	if cf.SharesOutstanding > 0 {
		fcfPS = cf.FreeCashflow / cf.SharesOutstanding
	}
	a.FCFDCF = FCFBasedDCF(fcfPS, g1, g2, d, n1, n2)

	a.TwoStage = TwoStageDCF(TwoStageInput{
		BaseCashFlow:      cf.FreeCashflow,
		GrowthStage1:      g1,
		TerminalGrowth:    g2,
		Discount:          d,
		Years1:            n1,
		Years2:            n2,
		UsePerpetuity:     opts.UsePerpetuity,
		NetDebt:           cf.NetDebt,
		SharesOutstanding: cf.SharesOutstanding,
	})

	a.LynchValue, a.LynchValid = PeterLynchFairValue(cf.TrailingPegRatio, cf.EPS, cf.EarningsGrowth)

	a.Ratios = ratios.Compute(cf, d)

	if roic, ok := ratios.ComputeROIC(cf); ok {
		a.ValueCreation = AnalyzeValueCreation(roic, d)
	}

	a.Relative = RelativeValuation(relativeInputFrom(cf, a.Ratios), opts.SectorTable)

	// DCF side of the blend: the aggregate model when it accepted the
	// inputs, else the mean of the valid per-share closed forms.
	switch {
	case a.TwoStage.Success && a.TwoStage.FairValuePerShare > 0:
		a.DCFFairValue = a.TwoStage.FairValuePerShare
	default:
		var sum float64
		var n int
		if a.EarningsDCF.Valid && a.EarningsDCF.Value > 0 {
			sum += a.EarningsDCF.Value
			n++
		}
		if a.FCFDCF.Valid && a.FCFDCF.Value > 0 {
			sum += a.FCFDCF.Value
			n++
		}
		if n > 0 {
			a.DCFFairValue = sum / float64(n)
		}
	}

	blendWeight := DefaultDCFWeight
	if opts.DCFWeight > 0 {
		blendWeight = opts.DCFWeight
	}
	a.FairValue = BlendFairValue(a.DCFFairValue, a.Relative.FairValue, blendWeight)
	if cf.Price > 0 && a.FairValue > 0 {
		a.UpsidePercent = (a.FairValue/cf.Price - 1) * 100
	}

	if !opts.SkipSensitivity && cf.SharesOutstanding > 0 && cf.FreeCashflow > 0 {
		a.Sensitivity = BuildSensitivityGrid(SensitivityInput{
			BaseCashFlow:       cf.FreeCashflow,
			GrowthStage1:       g1,
			BaseTerminalGrowth: g2,
			BaseWACC:           d,
			Years1:             n1,
			NetDebt:            cf.NetDebt,
			SharesOutstanding:  cf.SharesOutstanding,
			CurrentPrice:       cf.Price,
		})
	}

	return a
}

func relativeInputFrom(cf *models.CompanyFinancials, panel map[string]*ratios.Record) RelativeInput {
	in := RelativeInput{
		EPS:    cf.ForwardEPS,
		Sector: cf.Sector,
	}
	if in.EPS <= 0 {
		in.EPS = cf.EPS
	}
	if cf.SharesOutstanding > 0 {
		in.BookValuePS = cf.Equity / cf.SharesOutstanding
		in.RevenuePS = cf.Revenue / cf.SharesOutstanding
		in.EBITDAPS = cf.EBITDA / cf.SharesOutstanding
		in.NetDebtPS = cf.NetDebt / cf.SharesOutstanding
	}
	if r, ok := panel["revenue_growth"]; ok && r.HasData {
		in.RevenueGrowth = r.Value
	}
	if r, ok := panel["roe"]; ok && r.HasData {
		in.ROE = r.Value
	}
	if r, ok := panel["net_profit_margin"]; ok && r.HasData {
		in.NetMargin = r.Value
	}
	if r, ok := panel["operating_margin"]; ok && r.HasData {
		in.OperatingMargin = r.Value
	}
	return in
}
