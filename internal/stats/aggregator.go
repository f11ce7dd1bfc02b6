package stats

import (
	"sort"

	"pricenorm/internal/model"
)

// Aggregator 运行期统计累加器：价格区间计数与箱型计数。
// 生命周期仅一次运行，只增不减，结束后随进程丢弃。
type Aggregator struct {
	bands     []model.PriceBand
	bandCount map[string]int
	typeCount map[string]int
	typeOrder []string // 箱型首次出现顺序，用于稳定排序
	unbanded  int
}

// NewAggregator 创建累加器
func NewAggregator(bands []model.PriceBand) *Aggregator {
	return &Aggregator{
		bands:     bands,
		bandCount: make(map[string]int),
		typeCount: make(map[string]int),
	}
}

// Observe 记录一条成功导出的行。价格按加价前的原始值归入区间；
// 无法解析或不落在任何区间的价格计入 unbanded，保证区间计数与
// unbanded 之和等于导出行数。
func (a *Aggregator) Observe(boxType string, rawPrice float64, priced bool) {
	if _, seen := a.typeCount[boxType]; !seen {
		a.typeOrder = append(a.typeOrder, boxType)
	}
	a.typeCount[boxType]++

	if !priced {
		a.unbanded++
		return
	}
	band, ok := model.FindBand(a.bands, rawPrice)
	if !ok {
		a.unbanded++
		return
	}
	a.bandCount[band.Label]++
}

// Unbanded 未归入任何区间的行数
func (a *Aggregator) Unbanded() int {
	return a.unbanded
}

// BandSummary 返回非零区间的计数，按区间表声明顺序
func (a *Aggregator) BandSummary() []model.BandCount {
	out := make([]model.BandCount, 0, len(a.bands))
	for _, b := range a.bands {
		if n := a.bandCount[b.Label]; n > 0 {
			out = append(out, model.BandCount{Label: b.Label, Add: b.Add, Count: n})
		}
	}
	return out
}

// TypeSummary 返回全部箱型计数，按计数降序，计数相同按首次出现顺序
func (a *Aggregator) TypeSummary() []model.TypeCount {
	out := make([]model.TypeCount, 0, len(a.typeOrder))
	for _, label := range a.typeOrder {
		out = append(out, model.TypeCount{Label: label, Count: a.typeCount[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
