package model

import "time"

// BandCount 单个价格区间的计数
type BandCount struct {
	Label string  `json:"label"`
	Add   float64 `json:"add"`
	Count int     `json:"count"`
}

// TypeCount 单个箱型的计数
type TypeCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RunReport 一次规范化运行的报告
type RunReport struct {
	RunID       string        `json:"runId"`
	InputFile   string        `json:"inputFile"`
	OutputFile  string        `json:"outputFile,omitempty"`
	HeaderRow   int           `json:"headerRow"`
	TotalRows   int           `json:"totalRows"`   // 表头以下的数据行数
	EmittedRows int           `json:"emittedRows"` // 成功导出的行数
	SkippedRows int           `json:"skippedRows"` // 因缺少必填字段跳过的行数
	Unbanded    int           `json:"unbanded"`    // 价格无法归入区间的导出行数
	BandSummary []BandCount   `json:"bandSummary"` // 按区间表顺序，仅非零区间
	TypeSummary []TypeCount   `json:"typeSummary"` // 按计数降序，计数相同按首次出现顺序
	Duration    time.Duration `json:"duration"`
}
