package valuation

import (
	"math"
	"testing"
)

func TestClosedFormMatchesDirectSum(t *testing.T) {
	cases := []struct {
		name           string
		base           float64
		g1, g2, d      Rate
		n1, n2         int
	}{
		{"typical", 6.0, 0.10, 0.04, 0.11, 10, 10},
		{"at growth cap", 3.5, 0.20, 0.03, 0.09, 5, 10},
		{"at growth floor", 10.0, 0.05, 0.02, 0.08, 7, 10},
		{"near degenerate", 5.0, 0.10, 0.04, 0.10, 10, 10}, // g1 == d
		{"short horizons", 2.0, 0.12, 0.025, 0.10, 1, 1},
	}

	for _, c := range cases {
		res := EarningsBasedDCF(c.base, c.g1, c.g2, c.d, c.n1, c.n2)
		if !res.Valid {
			t.Errorf("%s: expected valid result", c.name)
			continue
		}
		if res.CrossCheckDelta > 0.5 {
			t.Errorf("%s: closed form %f diverges from direct sum %f by %f",
				c.name, res.Value, res.DirectSum, res.CrossCheckDelta)
		}
	}
}

func TestClosedFormTypicalScenario(t *testing.T) {
	// eps=6, g1=10%, d=11%, g2=4%, 10+10 years.
	// x = 1.10/1.11, y = 1.04/1.11. Stage sums hand-checked against the
	// direct year-by-year discount.
	res := EarningsBasedDCF(6.0, 0.10, 0.04, 0.11, 10, 10)
	if !res.Valid {
		t.Fatal("expected valid result")
	}
	if res.Repaired {
		t.Error("no repair expected when d > g2")
	}
	if math.Abs(res.Value-res.DirectSum) > 0.5 {
		t.Errorf("closed form %f vs direct %f", res.Value, res.DirectSum)
	}
	// Stage 1 alone is worth more than 6*10/1.11^10 and less than 6*1.1^10*10.
	if res.Value < 50 || res.Value > 200 {
		t.Errorf("value %f outside plausible band", res.Value)
	}
}

func TestClosedFormDegenerateBranchIsLinear(t *testing.T) {
	// g1 exactly equals d: x == 1, each stage-1 year contributes base.
	res := EarningsBasedDCF(4.0, 0.10, 0.02, 0.10, 10, 0)
	if !res.Valid {
		t.Fatal("expected valid result")
	}
	expected := 4.0 * 10
	if math.Abs(res.Value-expected) > 1e-6 {
		t.Errorf("expected linear stage-1 value %f, got %f", expected, res.Value)
	}
}

func TestClosedFormClampsStageOneGrowth(t *testing.T) {
	// 30% growth sits above the model's band and must value exactly like
	// the 20% cap; 1% must value like the 5% floor.
	high := EarningsBasedDCF(6.0, 0.30, 0.04, 0.11, 10, 10)
	capped := EarningsBasedDCF(6.0, 0.20, 0.04, 0.11, 10, 10)
	if !high.Valid || !capped.Valid {
		t.Fatal("expected valid results")
	}
	if !high.GrowthClamped {
		t.Error("expected clamp flag for 30% growth")
	}
	if math.Abs(high.EffectiveGrowth1-0.20) > 1e-12 {
		t.Errorf("expected effective growth 0.20, got %f", high.EffectiveGrowth1)
	}
	if high.Value != capped.Value {
		t.Errorf("clamped value %f should equal the cap value %f", high.Value, capped.Value)
	}
	if math.Abs(high.Value-187.50) > 0.5 {
		t.Errorf("capped value %f outside hand-checked band around 187.50", high.Value)
	}

	low := EarningsBasedDCF(6.0, 0.01, 0.04, 0.11, 10, 10)
	floored := EarningsBasedDCF(6.0, 0.05, 0.04, 0.11, 10, 10)
	if !low.GrowthClamped || math.Abs(low.EffectiveGrowth1-0.05) > 1e-12 {
		t.Errorf("expected floor at 0.05, got %+v", low)
	}
	if low.Value != floored.Value {
		t.Errorf("floored value %f should equal the floor value %f", low.Value, floored.Value)
	}

	if capped.GrowthClamped {
		t.Error("in-band growth must not be flagged as clamped")
	}
	if math.Abs(capped.EffectiveGrowth1-0.20) > 1e-12 {
		t.Errorf("in-band growth should pass through, got %f", capped.EffectiveGrowth1)
	}
}

func TestClosedFormRepairsDiscountBelowTerminalGrowth(t *testing.T) {
	res := FCFBasedDCF(5.0, 0.08, 0.06, 0.05, 5, 10)
	if !res.Valid {
		t.Fatal("expected valid result")
	}
	if !res.Repaired {
		t.Error("expected repair flag when d <= g2")
	}
	if math.Abs(res.EffectiveDiscount-0.08) > 1e-12 {
		t.Errorf("expected effective discount g2+2%% = 0.08, got %f", res.EffectiveDiscount)
	}
	// Cross-check must use the repaired rate too.
	if res.CrossCheckDelta > 0.5 {
		t.Errorf("cross check delta %f too large", res.CrossCheckDelta)
	}
}

func TestClosedFormRejectsNonPositiveBase(t *testing.T) {
	res := EarningsBasedDCF(-2.0, 0.10, 0.03, 0.09, 10, 10)
	if res.Valid || res.Value != 0 {
		t.Errorf("expected invalid zero result, got %+v", res)
	}
}

func TestTwoStageDCFGordonGrowth(t *testing.T) {
	// 100 base, 10% for 2 years, then 3% perpetuity at 8% discount.
	// Year flows: 110, 121. PVs: 110/1.08, 121/1.08^2.
	// Terminal = 121*1.03/(0.08-0.03) = 2492.6, discounted 2 years.
	res := TwoStageDCF(TwoStageInput{
		BaseCashFlow:      100,
		GrowthStage1:      0.10,
		TerminalGrowth:    0.03,
		Discount:          0.08,
		Years1:            2,
		UsePerpetuity:     true,
		NetDebt:           50,
		SharesOutstanding: 10,
	})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Reason)
	}

	pv1 := 110.0 / 1.08
	pv2 := 121.0 / (1.08 * 1.08)
	if math.Abs(res.GrowthStageValue-(pv1+pv2)) > 1e-9 {
		t.Errorf("growth stage: expected %f, got %f", pv1+pv2, res.GrowthStageValue)
	}

	terminal := 121.0 * 1.03 / 0.05
	pvTerminal := terminal / (1.08 * 1.08)
	if math.Abs(res.PVTerminalValue-pvTerminal) > 1e-9 {
		t.Errorf("terminal: expected %f, got %f", pvTerminal, res.PVTerminalValue)
	}

	intrinsic := pv1 + pv2 + pvTerminal
	if math.Abs(res.IntrinsicValue-intrinsic) > 1e-9 {
		t.Errorf("intrinsic: expected %f, got %f", intrinsic, res.IntrinsicValue)
	}
	if math.Abs(res.EquityValue-(intrinsic-50)) > 1e-9 {
		t.Errorf("equity: expected %f, got %f", intrinsic-50, res.EquityValue)
	}
	if math.Abs(res.FairValuePerShare-(intrinsic-50)/10) > 1e-9 {
		t.Errorf("per share: expected %f, got %f", (intrinsic-50)/10, res.FairValuePerShare)
	}
}

func TestTwoStageDCFRejections(t *testing.T) {
	base := TwoStageInput{
		BaseCashFlow:      100,
		GrowthStage1:      0.10,
		TerminalGrowth:    0.03,
		Discount:          0.08,
		Years1:            5,
		Years2:            10,
		SharesOutstanding: 10,
	}

	discountTooLow := base
	discountTooLow.Discount = 0.03
	noShares := base
	noShares.SharesOutstanding = 0
	negShares := base
	negShares.SharesOutstanding = -5
	badGrowth := base
	badGrowth.GrowthStage1 = 2.5
	badTerminal := base
	badTerminal.TerminalGrowth = 0.6
	negBase := base
	negBase.BaseCashFlow = -10

	for name, in := range map[string]TwoStageInput{
		"discount below terminal": discountTooLow,
		"zero shares":             noShares,
		"negative shares":         negShares,
		"stage1 growth range":     badGrowth,
		"terminal growth range":   badTerminal,
		"negative base":           negBase,
	} {
		res := TwoStageDCF(in)
		if res.Success {
			t.Errorf("%s: expected failure", name)
		}
		if res.FairValuePerShare != 0 || res.IntrinsicValue != 0 {
			t.Errorf("%s: expected zero values on failure", name)
		}
		if res.Reason == "" {
			t.Errorf("%s: expected a reason", name)
		}
	}
}

func TestTwoStageDCFNegativeEquityFloorsPerShare(t *testing.T) {
	res := TwoStageDCF(TwoStageInput{
		BaseCashFlow:      10,
		GrowthStage1:      0.02,
		TerminalGrowth:    0.01,
		Discount:          0.10,
		Years1:            3,
		Years2:            5,
		NetDebt:           1e6,
		SharesOutstanding: 100,
	})
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Reason)
	}
	if res.EquityValue >= 0 {
		t.Fatalf("test setup: equity should be negative, got %f", res.EquityValue)
	}
	if res.FairValuePerShare != 0 {
		t.Errorf("expected per-share floor at 0, got %f", res.FairValuePerShare)
	}
}

func TestTwoStageDCFMonotonicity(t *testing.T) {
	value := func(g2, d Rate) float64 {
		res := TwoStageDCF(TwoStageInput{
			BaseCashFlow: 100, GrowthStage1: 0.08, TerminalGrowth: g2,
			Discount: d, Years1: 5, Years2: 10, SharesOutstanding: 10,
		})
		if !res.Success {
			t.Fatalf("unexpected failure at g2=%f d=%f", g2, d)
		}
		return res.FairValuePerShare
	}

	// Higher terminal growth raises value, higher discount lowers it.
	if value(0.02, 0.10) >= value(0.04, 0.10) {
		t.Error("value should rise with terminal growth")
	}
	if value(0.03, 0.09) <= value(0.03, 0.12) {
		t.Error("value should fall with discount rate")
	}
}
