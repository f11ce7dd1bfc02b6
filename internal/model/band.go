package model

import (
	"errors"
	"fmt"
	"math"
)

// PriceBand 价格加价区间（左闭右开）
type PriceBand struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"` // math.Inf(1) 表示无上限
	Add   float64 `json:"add"`
	Label string  `json:"label"`
}

// Contains 判断价格是否落在本区间内
func (b PriceBand) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// Unbounded 是否为无上限区间
func (b PriceBand) Unbounded() bool {
	return math.IsInf(b.Max, 1)
}

// DefaultBands 默认加价区间表
func DefaultBands() []PriceBand {
	return []PriceBand{
		{Min: 0, Max: 10, Add: 1.00, Label: "0-10"},
		{Min: 10, Max: 20, Add: 1.50, Label: "10-20"},
		{Min: 20, Max: 30, Add: 2.00, Label: "20-30"},
		{Min: 30, Max: 40, Add: 2.50, Label: "30-40"},
		{Min: 40, Max: 50, Add: 3.00, Label: "40-50"},
		{Min: 50, Max: math.Inf(1), Add: 3.50, Label: "50+"},
	}
}

// FindBand 查找包含指定价格的区间；负数价格不属于任何区间
func FindBand(bands []PriceBand, v float64) (PriceBand, bool) {
	for _, b := range bands {
		if b.Contains(v) {
			return b, true
		}
	}
	return PriceBand{}, false
}

// ValidateBands 校验区间表：从 0 开始、连续、最后一档无上限
func ValidateBands(bands []PriceBand) error {
	if len(bands) == 0 {
		return errors.New("empty band table")
	}
	if bands[0].Min != 0 {
		return fmt.Errorf("first band must start at 0, got %v", bands[0].Min)
	}
	for i, b := range bands {
		if b.Max <= b.Min {
			return fmt.Errorf("band %q has max <= min", b.Label)
		}
		if i > 0 && b.Min != bands[i-1].Max {
			return fmt.Errorf("band %q is not contiguous with %q", b.Label, bands[i-1].Label)
		}
	}
	if !bands[len(bands)-1].Unbounded() {
		return errors.New("last band must be unbounded")
	}
	return nil
}
