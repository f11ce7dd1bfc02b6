package parser

import "errors"

// 四个逻辑列在表头中的标记
const (
	markerDescription = "DESCRIPTION"
	markerPrice       = "PRICE"
	markerBrand       = "BRAND"
	markerType        = "TYPE"
)

// ErrHeaderNotFound 全表未找到表头行
var ErrHeaderNotFound = errors.New("header row not found")

// ErrColumnsNotFound 表头行缺少必需列
var ErrColumnsNotFound = errors.New("required columns not found")

// ColumnMap 四个逻辑列在表头行中的列索引
type ColumnMap struct {
	Description int `json:"description"`
	Price       int `json:"price"`
	Brand       int `json:"brand"`
	Type        int `json:"type"`
}
