package model

// NormalizedRow 规范化后的单行数据
type NormalizedRow struct {
	Brand       string      `json:"brand"`
	Description string      `json:"description"`
	BoxType     string      `json:"boxType"`
	Price       interface{} `json:"price"` // float64（已加价）；价格无法解析时原样保留字符串
}
