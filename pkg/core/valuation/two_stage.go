package valuation

import (
	"math"
)

// TwoStageInput is the aggregate-level two-stage DCF. BaseCashFlow is a
// company-level flow (earnings or FCF), not per-share.
type TwoStageInput struct {
	BaseCashFlow      float64 `json:"base_cash_flow"`
	GrowthStage1      Rate    `json:"growth_stage1"`
	TerminalGrowth    Rate    `json:"terminal_growth"`
	Discount          Rate    `json:"discount"`
	Years1            int     `json:"years1"`
	Years2            int     `json:"years2"` // ignored when UsePerpetuity
	UsePerpetuity     bool    `json:"use_perpetuity"`
	NetDebt           float64 `json:"net_debt"`
	SharesOutstanding float64 `json:"shares_outstanding"`
}

// TwoStageResult is tagged: Success=false means the inputs were
// rejected and every value field is zero. No silent repair happens in
// this model.
type TwoStageResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`

	ProjectedFlows    []float64 `json:"projected_flows,omitempty"`
	PVFlows           []float64 `json:"pv_flows,omitempty"`
	GrowthStageValue  float64   `json:"growth_stage_value"`
	PVTerminalValue   float64   `json:"pv_terminal_value"`
	IntrinsicValue    float64   `json:"intrinsic_value"`
	EquityValue       float64   `json:"equity_value"`
	FairValuePerShare float64   `json:"fair_value_per_share"`
}

func failure(reason string) TwoStageResult {
	return TwoStageResult{Success: false, Reason: reason}
}

// TwoStageDCF projects BaseCashFlow for Years1 periods at GrowthStage1,
// discounts each at Discount, then adds either a Gordon-growth
// perpetuity or a finite Years2 second stage. Equity value nets out
// debt; fair value per share floors equity at zero.
func TwoStageDCF(in TwoStageInput) TwoStageResult {
	switch {
	case in.BaseCashFlow <= 0:
		return failure("base cash flow must be positive")
	case in.Years1 < 1:
		return failure("stage-1 horizon must be at least 1 year")
	case in.GrowthStage1 <= -1 || in.GrowthStage1 >= 2:
		return failure("stage-1 growth out of range (-100%, 200%)")
	case in.TerminalGrowth <= -0.5 || in.TerminalGrowth >= 0.5:
		return failure("terminal growth out of range (-50%, 50%)")
	case in.Discount <= in.TerminalGrowth:
		return failure("discount rate must exceed terminal growth")
	case in.SharesOutstanding <= 0:
		return failure("shares outstanding must be positive")
	}

	res := TwoStageResult{Success: true}
	res.ProjectedFlows = make([]float64, 0, in.Years1)
	res.PVFlows = make([]float64, 0, in.Years1)

	cf := in.BaseCashFlow
	for t := 1; t <= in.Years1; t++ {
		cf *= 1 + in.GrowthStage1
		pv := cf / math.Pow(1+in.Discount, float64(t))
		res.ProjectedFlows = append(res.ProjectedFlows, cf)
		res.PVFlows = append(res.PVFlows, pv)
		res.GrowthStageValue += pv
	}

	// cf now holds the final stage-1 flow.
	n1 := float64(in.Years1)
	if in.UsePerpetuity {
		terminal := cf * (1 + in.TerminalGrowth) / (in.Discount - in.TerminalGrowth)
		res.PVTerminalValue = terminal / math.Pow(1+in.Discount, n1)
	} else {
		stage2 := cf
		for t := 1; t <= in.Years2; t++ {
			stage2 *= 1 + in.TerminalGrowth
			res.PVTerminalValue += stage2 / math.Pow(1+in.Discount, n1+float64(t))
		}
	}

	res.IntrinsicValue = res.GrowthStageValue + res.PVTerminalValue
	res.EquityValue = res.IntrinsicValue - in.NetDebt
	res.FairValuePerShare = math.Max(res.EquityValue, 0) / in.SharesOutstanding
	return res
}
