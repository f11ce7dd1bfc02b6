package parser

import "strings"

// LocateHeader 自上而下扫描，返回第一个同时包含四个表头标记的行索引。
// 整行单元格用空格拼接后转大写做包含判断，标记允许作为更长表头文本的子串出现
// （如 "PRODUCT DESCRIPTION"）。找不到时返回 ErrHeaderNotFound。
func LocateHeader(rows [][]string) (int, error) {
	for i, row := range rows {
		joined := strings.ToUpper(strings.Join(row, " "))
		if strings.Contains(joined, markerDescription) &&
			strings.Contains(joined, markerPrice) &&
			strings.Contains(joined, markerBrand) &&
			strings.Contains(joined, markerType) {
			return i, nil
		}
	}
	return 0, ErrHeaderNotFound
}
