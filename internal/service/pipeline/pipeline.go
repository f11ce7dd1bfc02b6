package pipeline

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"pricenorm/internal/config"
	"pricenorm/internal/model"
	"pricenorm/internal/parser"
	"pricenorm/internal/service/excel"
	"pricenorm/internal/stats"
)

// Runner 规范化流水线：读取 → 定位表头 → 解析列 → 逐行规范化 → 汇总 → 导出。
// 全程单线程顺序执行；表头或必需列缺失时整体失败，不写出部分结果。
type Runner struct {
	bands      []model.PriceBand
	normalizer *parser.Normalizer
	reader     *excel.Reader
	writer     *excel.Writer
}

// NewRunner 创建流水线；加价区间配置不合法时返回错误
func NewRunner(cfg *config.AppConfig) (*Runner, error) {
	bands, err := cfg.Bands()
	if err != nil {
		return nil, err
	}

	return &Runner{
		bands:      bands,
		normalizer: parser.NewNormalizer(bands, cfg.BoxTypes(), cfg.FallbackBoxType()),
		reader:     excel.NewReader(),
		writer:     excel.NewWriter(cfg.ColumnWidths()),
	}, nil
}

// Run 处理单个文件并写出规范化结果
func (r *Runner) Run(inputPath, outputPath string) (*model.RunReport, error) {
	start := time.Now()

	rows, err := r.reader.Load(inputPath)
	if err != nil {
		return nil, err
	}

	report, normalized, err := r.process(rows)
	if err != nil {
		return nil, err
	}

	if err := r.writer.Save(normalized, outputPath); err != nil {
		return nil, err
	}

	report.InputFile = inputPath
	report.OutputFile = outputPath
	report.Duration = time.Since(start)
	return report, nil
}

// RunBytes 处理内存中的工作簿，返回报告与未落盘的输出工作簿（HTTP 模式复用）
func (r *Runner) RunBytes(data []byte, name string) (*model.RunReport, *excelize.File, error) {
	start := time.Now()

	rows, err := r.reader.LoadReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}

	report, normalized, err := r.process(rows)
	if err != nil {
		return nil, nil, err
	}

	f, err := r.writer.Build(normalized)
	if err != nil {
		return nil, nil, err
	}

	report.InputFile = name
	report.Duration = time.Since(start)
	return report, f, nil
}

// process 执行表头定位、列解析与逐行规范化
func (r *Runner) process(rows [][]string) (*model.RunReport, []*model.NormalizedRow, error) {
	headerIdx, err := parser.LocateHeader(rows)
	if err != nil {
		return nil, nil, err
	}

	cols, err := parser.MapColumns(rows[headerIdx])
	if err != nil {
		return nil, nil, err
	}

	agg := stats.NewAggregator(r.bands)
	dataRows := rows[headerIdx+1:]
	normalized := make([]*model.NormalizedRow, 0, len(dataRows))
	skipped := 0

	for _, row := range dataRows {
		res, ok := r.normalizer.NormalizeRow(row, cols)
		if !ok {
			skipped++
			continue
		}
		normalized = append(normalized, res.Row)
		agg.Observe(res.Row.BoxType, res.RawPrice, res.Priced)
	}

	report := &model.RunReport{
		RunID:       uuid.New().String(),
		HeaderRow:   headerIdx,
		TotalRows:   len(dataRows),
		EmittedRows: len(normalized),
		SkippedRows: skipped,
		Unbanded:    agg.Unbanded(),
		BandSummary: agg.BandSummary(),
		TypeSummary: agg.TypeSummary(),
	}
	return report, normalized, nil
}
