package pipeline

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"pricenorm/internal/config"
	"pricenorm/internal/parser"
)

// writeInput 构造测试输入：表头前有干扰行，表头在第 2 行（0 基）
func writeInput(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save input: %v", err)
	}
	return path
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	r, err := NewRunner(config.DefaultConfig())
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r
}

func TestRunner_EndToEnd(t *testing.T) {
	t.Parallel()

	input := writeInput(t, [][]interface{}{
		{"Perfume price list 2024"},
		{},
		{"BRAND", "PRODUCT DESCRIPTION", "TYPE", "PRICE"},
		{"Dior", "Dior Sauvage (116427) - France -", "100.Regular", "45"},
		{"Lattafa", "Khamrah - 12pcs ByBox", "109.Vial", "8.5"},
		{"NoPrice", "Something", "100.Regular", ""},
		{"Brandy", "Mystery", "", "abc"},
	})
	output := filepath.Join(t.TempDir(), "out.xlsx")

	rep, err := newTestRunner(t).Run(input, output)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if rep.HeaderRow != 2 {
		t.Fatalf("header row want=2 got=%d", rep.HeaderRow)
	}
	if rep.TotalRows != 4 || rep.EmittedRows != 3 || rep.SkippedRows != 1 {
		t.Fatalf("unexpected counts: %+v", rep)
	}
	if rep.Unbanded != 1 {
		t.Fatalf("unbanded want=1 got=%d", rep.Unbanded)
	}
	if rep.RunID == "" {
		t.Fatalf("run id must be set")
	}

	// 区间计数 + 未识别 = 导出行数
	bandTotal := rep.Unbanded
	for _, b := range rep.BandSummary {
		bandTotal += b.Count
	}
	if bandTotal != rep.EmittedRows {
		t.Fatalf("band counts + unbanded want=%d got=%d", rep.EmittedRows, bandTotal)
	}
	typeTotal := 0
	for _, tc := range rep.TypeSummary {
		typeTotal += tc.Count
	}
	if typeTotal != rep.EmittedRows {
		t.Fatalf("type counts want=%d got=%d", rep.EmittedRows, typeTotal)
	}

	// 校验输出内容
	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows("Prices")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := [][]string{
		{"BRAND", "DESCRIPTION", "CAJA", "PRICE"},
		{"Dior", "Dior Sauvage", "Original Box", "48"},
		{"Lattafa", "Khamrah", "Vial", "9.5"},
		{"Brandy", "Mystery", "Undefined", "abc"},
	}
	if len(rows) != len(want) {
		t.Fatalf("output rows want=%d got=%d", len(want), len(rows))
	}
	for i, w := range want {
		for j, cell := range w {
			if rows[i][j] != cell {
				t.Fatalf("cell (%d,%d) want=%q got=%q", i, j, cell, rows[i][j])
			}
		}
	}
}

func TestRunner_HeaderNotFound(t *testing.T) {
	t.Parallel()

	input := writeInput(t, [][]interface{}{
		{"just", "some", "cells"},
		{"Dior", "Dior Sauvage", "100.Regular", "45"},
	})

	_, err := newTestRunner(t).Run(input, filepath.Join(t.TempDir(), "out.xlsx"))
	if !errors.Is(err, parser.ErrHeaderNotFound) {
		t.Fatalf("want ErrHeaderNotFound got=%v", err)
	}
}

func TestRunner_ColumnsNotFound(t *testing.T) {
	t.Parallel()

	// 四个标记同行出现，但 price 列不是精确匹配
	input := writeInput(t, [][]interface{}{
		{"BRAND", "DESCRIPTION", "TYPE", "PRICE USD"},
	})

	_, err := newTestRunner(t).Run(input, filepath.Join(t.TempDir(), "out.xlsx"))
	if !errors.Is(err, parser.ErrColumnsNotFound) {
		t.Fatalf("want ErrColumnsNotFound got=%v", err)
	}
}

func TestRunner_InputMissing(t *testing.T) {
	t.Parallel()

	_, err := newTestRunner(t).Run(filepath.Join(t.TempDir(), "nope.xlsx"), filepath.Join(t.TempDir(), "out.xlsx"))
	if err == nil {
		t.Fatalf("want error for missing input")
	}
}

func TestRunner_RunBytes(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	row := []interface{}{"BRAND", "DESCRIPTION", "TYPE", "PRICE"}
	if err := f.SetSheetRow("Sheet1", "A1", &row); err != nil {
		t.Fatalf("set header: %v", err)
	}
	data := []interface{}{"Dior", "Sauvage", "100.Regular", "20"}
	if err := f.SetSheetRow("Sheet1", "A2", &data); err != nil {
		t.Fatalf("set data: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write buffer: %v", err)
	}
	_ = f.Close()

	rep, out, err := newTestRunner(t).RunBytes(buf.Bytes(), "upload.xlsx")
	if err != nil {
		t.Fatalf("run bytes: %v", err)
	}
	t.Cleanup(func() { _ = out.Close() })

	if rep.EmittedRows != 1 || rep.InputFile != "upload.xlsx" {
		t.Fatalf("unexpected report: %+v", rep)
	}

	rows, err := out.GetRows("Prices")
	if err != nil {
		t.Fatalf("read output workbook: %v", err)
	}
	if len(rows) != 2 || rows[1][3] != "22" {
		t.Fatalf("unexpected output rows: %v", rows)
	}
}
