package parser

import (
	"testing"

	"pricenorm/internal/model"
)

func testNormalizer() *Normalizer {
	return NewNormalizer(model.DefaultBands(), model.DefaultBoxTypes(), model.FallbackBoxType)
}

func testColumns() *ColumnMap {
	return &ColumnMap{Brand: 0, Description: 1, Type: 2, Price: 3}
}

func TestNormalizeRow_EndToEndExample(t *testing.T) {
	t.Parallel()

	n := testNormalizer()
	res, ok := n.NormalizeRow([]string{"Dior", "Dior Sauvage (116427) - France -", "100.Regular", "45"}, testColumns())
	if !ok {
		t.Fatalf("row should be admitted")
	}

	row := res.Row
	if row.Brand != "Dior" {
		t.Fatalf("brand want=Dior got=%q", row.Brand)
	}
	if row.Description != "Dior Sauvage" {
		t.Fatalf("description want=%q got=%q", "Dior Sauvage", row.Description)
	}
	if row.BoxType != "Original Box" {
		t.Fatalf("box type want=%q got=%q", "Original Box", row.BoxType)
	}
	if price, _ := row.Price.(float64); price != 48.00 {
		t.Fatalf("price want=48.00 got=%v", row.Price)
	}
	if !res.Priced || res.RawPrice != 45 {
		t.Fatalf("raw price want=45 got=%v priced=%v", res.RawPrice, res.Priced)
	}
}

func TestNormalizeRow_LowBandRounding(t *testing.T) {
	t.Parallel()

	n := testNormalizer()
	res, ok := n.NormalizeRow([]string{"Lattafa", "Khamrah", "109.Vial", "8.5"}, testColumns())
	if !ok {
		t.Fatalf("row should be admitted")
	}
	if price, _ := res.Row.Price.(float64); price != 9.5 {
		t.Fatalf("price want=9.5 got=%v", res.Row.Price)
	}
	if res.Row.BoxType != "Vial" {
		t.Fatalf("box type want=Vial got=%q", res.Row.BoxType)
	}
}

func TestNormalizeRow_UnparseablePricePassesThrough(t *testing.T) {
	t.Parallel()

	n := testNormalizer()
	res, ok := n.NormalizeRow([]string{"Dior", "Something", "100.Regular", "abc"}, testColumns())
	if !ok {
		t.Fatalf("row with unparseable price must still be emitted")
	}
	if res.Priced {
		t.Fatalf("price must not be marked as parsed")
	}
	if got, _ := res.Row.Price.(string); got != "abc" {
		t.Fatalf("price want raw %q got=%v", "abc", res.Row.Price)
	}
}

func TestNormalizeRow_Admission(t *testing.T) {
	t.Parallel()

	n := testNormalizer()
	cols := testColumns()

	cases := []struct {
		name string
		row  []string
		want bool
	}{
		{"missing description", []string{"Dior", "", "100.Regular", "45"}, false},
		{"missing price", []string{"Dior", "Sauvage", "100.Regular", ""}, false},
		{"missing brand", []string{"", "Sauvage", "100.Regular", "45"}, false},
		{"short row", []string{"Dior", "Sauvage"}, false},
		{"missing type is admitted", []string{"Dior", "Sauvage", "", "45"}, true},
		{"whitespace-only counts as missing", []string{"Dior", "  ", "100.Regular", "45"}, false},
	}

	for _, tc := range cases {
		res, ok := n.NormalizeRow(tc.row, cols)
		if ok != tc.want {
			t.Fatalf("%s: admitted want=%v got=%v", tc.name, tc.want, ok)
		}
		if ok && tc.row[2] == "" && res.Row.BoxType != model.FallbackBoxType {
			t.Fatalf("%s: box type want=%q got=%q", tc.name, model.FallbackBoxType, res.Row.BoxType)
		}
	}
}

func TestNormalizeBoxType_Totality(t *testing.T) {
	t.Parallel()

	n := testNormalizer()
	cols := testColumns()

	for code, label := range model.DefaultBoxTypes() {
		res, ok := n.NormalizeRow([]string{"B", "D", code, "10"}, cols)
		if !ok {
			t.Fatalf("row with type %q should be admitted", code)
		}
		if res.Row.BoxType != label {
			t.Fatalf("type %q want=%q got=%q", code, label, res.Row.BoxType)
		}
	}

	// 表中未收录的编码去空格后原样保留
	res, _ := n.NormalizeRow([]string{"B", "D", " 999.Future ", "10"}, cols)
	if res.Row.BoxType != "999.Future" {
		t.Fatalf("unknown type want passthrough got=%q", res.Row.BoxType)
	}
}

func TestMarkup_BandBoundaries(t *testing.T) {
	t.Parallel()

	n := testNormalizer()
	cols := testColumns()

	cases := []struct {
		raw  string
		want float64
	}{
		{"0", 1.00},
		{"9.99", 10.99},
		{"10", 11.50},
		{"19.99", 21.49},
		{"20", 22.00},
		{"30", 32.50},
		{"40", 43.00},
		{"49.99", 52.99},
		{"50", 53.50},
		{"120", 123.50},
		// 负数价格不落在任何区间，只取整不加价
		{"-5", -5},
	}

	for _, tc := range cases {
		res, ok := n.NormalizeRow([]string{"B", "D", "", tc.raw}, cols)
		if !ok {
			t.Fatalf("price %q: row should be admitted", tc.raw)
		}
		if got, _ := res.Row.Price.(float64); got != tc.want {
			t.Fatalf("price %q want=%v got=%v", tc.raw, tc.want, got)
		}
	}
}
