package model

// FallbackBoxType 箱型缺失时使用的固定标签
const FallbackBoxType = "Undefined"

// BoxTypeTable 箱型编码到可读标签的映射（精确匹配；非穷举，未知编码原样保留）
type BoxTypeTable map[string]string

// DefaultBoxTypes 默认箱型映射表
func DefaultBoxTypes() BoxTypeTable {
	return BoxTypeTable{
		"100.Regular": "Original Box",
		"101.Tester":  "Tester Box",
		"102.Unboxed": "Without Box",
		"103.Damaged": "Damaged Box",
		"109.Vial":    "Vial",
		"110.Sample":  "Sample",
	}
}
