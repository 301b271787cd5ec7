// Package ratios computes the financial ratio panel: ~30 ratios across
// profitability, leverage, growth, liquidity, efficiency, cash flow and
// market pricing, each tagged with a tiered, localized status.
package ratios

import (
	"math"
)

// Status is the qualitative read on one ratio. Level and Description
// carry English plus Korean and Chinese variants for the UI layer.
type Status struct {
	Level         string `json:"level"`
	LevelKo       string `json:"level_ko"`
	LevelZh       string `json:"level_zh"`
	Color         string `json:"color"`
	Description   string `json:"description"`
	DescriptionKo string `json:"description_ko"`
	DescriptionZh string `json:"description_zh"`
}

// Band is one tier of a decision table: the status applies to values
// strictly below Upper. Tables are sorted ascending and terminated by a
// +Inf band, so classification is a single forward scan.
type Band struct {
	Upper  float64
	Status Status
}

// Classify runs value through a sorted decision table.
func Classify(value float64, bands []Band) Status {
	for _, b := range bands {
		if value < b.Upper {
			return b.Status
		}
	}
	// Tables end with an +Inf band; reaching here means a malformed
	// table, not a data condition.
	return bands[len(bands)-1].Status
}

// Record is one computed ratio. Infinite marks a zero-denominator case
// (the value is +Inf); HasData=false means the inputs were missing and
// Status explains why.
type Record struct {
	Value    float64 `json:"value"`
	Infinite bool    `json:"infinite"`
	HasData  bool    `json:"has_data"`
	Status   Status  `json:"status"`
}

func record(value float64, bands []Band) *Record {
	return &Record{Value: value, HasData: true, Status: Classify(value, bands)}
}

func infiniteRecord(st Status) *Record {
	return &Record{Value: math.Inf(1), Infinite: true, HasData: true, Status: st}
}

func noData(st Status) *Record {
	return &Record{Status: st}
}

// valueOnly is for ratios reported without a tier (EPS and friends).
func valueOnly(value float64) *Record {
	return &Record{Value: value, HasData: true}
}

func status(level, ko, zh, color, desc, descKo, descZh string) Status {
	return Status{
		Level: level, LevelKo: ko, LevelZh: zh, Color: color,
		Description: desc, DescriptionKo: descKo, DescriptionZh: descZh,
	}
}

func naStatus(desc, descKo, descZh string) Status {
	return status("N/A", "데이터 없음", "无数据", "gray", desc, descKo, descZh)
}

var inf = math.Inf(1)
