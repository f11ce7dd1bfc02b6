package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pricenorm/internal/model"
)

// 输出表头固定不变，与输入表头的措辞和顺序无关
var outputHeader = []string{"BRAND", "DESCRIPTION", "CAJA", "PRICE"}

// DefaultColumnWidths 输出列宽（BRAND/DESCRIPTION/CAJA/PRICE）
var DefaultColumnWidths = [4]float64{20, 50, 20, 12}

const outputSheet = "Prices"

// Writer 规范化结果导出器
type Writer struct {
	widths [4]float64
}

// NewWriter 创建导出器；widths 为零值时使用默认列宽
func NewWriter(widths [4]float64) *Writer {
	for _, w := range widths {
		if w <= 0 {
			widths = DefaultColumnWidths
			break
		}
	}
	return &Writer{widths: widths}
}

// Build 生成输出工作簿：固定表头 + 规范化数据行
func (w *Writer) Build(rows []*model.NormalizedRow) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", outputSheet)

	for i, h := range outputHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(outputSheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(outputSheet, 1, 1, headerStyle)

	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(outputSheet, fmt.Sprintf("A%d", rowNum), r.Brand)
		f.SetCellValue(outputSheet, fmt.Sprintf("B%d", rowNum), r.Description)
		f.SetCellValue(outputSheet, fmt.Sprintf("C%d", rowNum), r.BoxType)
		f.SetCellValue(outputSheet, fmt.Sprintf("D%d", rowNum), r.Price)
	}

	f.SetColWidth(outputSheet, "A", "A", w.widths[0])
	f.SetColWidth(outputSheet, "B", "B", w.widths[1])
	f.SetColWidth(outputSheet, "C", "C", w.widths[2])
	f.SetColWidth(outputSheet, "D", "D", w.widths[3])

	return f, nil
}

// Save 生成并保存输出文件
func (w *Writer) Save(rows []*model.NormalizedRow, path string) error {
	f, err := w.Build(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save excel file %s: %w", path, err)
	}
	return nil
}
