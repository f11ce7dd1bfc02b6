package parser

import (
	"math"
	"strconv"
	"strings"

	"pricenorm/internal/model"
)

// Normalizer 行规范化器：清洗描述、映射箱型、按区间加价
type Normalizer struct {
	bands    []model.PriceBand
	boxTypes model.BoxTypeTable
	fallback string
}

// NewNormalizer 创建规范化器。区间表与箱型表在启动时构建一次，运行期只读。
func NewNormalizer(bands []model.PriceBand, boxTypes model.BoxTypeTable, fallback string) *Normalizer {
	if fallback == "" {
		fallback = model.FallbackBoxType
	}
	return &Normalizer{
		bands:    bands,
		boxTypes: boxTypes,
		fallback: fallback,
	}
}

// RowResult 单行规范化结果
type RowResult struct {
	Row      *model.NormalizedRow
	RawPrice float64 // 加价前价格（用于区间统计）
	Priced   bool    // 价格是否解析成功
}

// NormalizeRow 规范化单行数据。描述、价格、品牌任一为空时该行被跳过
// （返回 ok=false），属于正常情况而非错误；箱型列允许为空。
func (n *Normalizer) NormalizeRow(row []string, cols *ColumnMap) (RowResult, bool) {
	desc := strings.TrimSpace(cellAt(row, cols.Description))
	rawPrice := strings.TrimSpace(cellAt(row, cols.Price))
	brand := strings.TrimSpace(cellAt(row, cols.Brand))
	if desc == "" || rawPrice == "" || brand == "" {
		return RowResult{}, false
	}

	res := RowResult{
		Row: &model.NormalizedRow{
			Brand:       brand,
			Description: CleanDescription(desc),
			BoxType:     n.normalizeBoxType(cellAt(row, cols.Type)),
		},
	}

	v, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		// 无法解析的价格原样保留，不加价也不报错
		res.Row.Price = rawPrice
		return res, true
	}

	res.RawPrice = v
	res.Priced = true
	res.Row.Price = n.markup(v)
	return res, true
}

// normalizeBoxType 箱型映射：缺失用固定标签，表中未收录的编码去空格后原样保留
func (n *Normalizer) normalizeBoxType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return n.fallback
	}
	if label, ok := n.boxTypes[trimmed]; ok {
		return label
	}
	return trimmed
}

// markup 按区间加价并保留两位小数；不落在任何区间的价格（负数）只取整不加价
func (n *Normalizer) markup(v float64) float64 {
	if band, ok := model.FindBand(n.bands, v); ok {
		return round2(v + band.Add)
	}
	return round2(v)
}

// round2 四舍五入保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cellAt 取行内指定列的值，索引越界按空单元格处理
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
