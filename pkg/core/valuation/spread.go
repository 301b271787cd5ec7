package valuation

import (
	"intrinsic_valuation/pkg/core/ratios"
)

// ValueCreation is the ROIC-versus-WACC read on whether the business
// earns more than its capital costs.
type ValueCreation struct {
	ROIC   Rate          `json:"roic"`
	WACC   Rate          `json:"wacc"`
	Spread Rate          `json:"spread"`
	Status ratios.Status `json:"status"`
}

// AnalyzeValueCreation classifies the spread between return on
// invested capital and the weighted average cost of capital.
func AnalyzeValueCreation(roic, wacc Rate) ValueCreation {
	spread := roic - wacc
	return ValueCreation{
		ROIC:   roic,
		WACC:   wacc,
		Spread: spread,
		Status: ratios.Classify(spread, ratios.ValueSpreadBands),
	}
}
