package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Reader 价格表读取器（只读第一个工作表）
type Reader struct{}

// NewReader 创建读取器
func NewReader() *Reader {
	return &Reader{}
}

// Load 读取文件第一个工作表的全部单元格。空单元格表现为空字符串或行尾截断，
// 数字单元格由 excelize 统一转成文本，价格解析始终按文本处理。
func (r *Reader) Load(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer f.Close()

	return readFirstSheet(f)
}

// LoadReader 从内存读取（HTTP 上传模式）
func (r *Reader) LoadReader(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open excel: %w", err)
	}
	defer f.Close()

	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) ([][]string, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}
