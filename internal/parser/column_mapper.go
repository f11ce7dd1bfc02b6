package parser

import (
	"fmt"
	"strings"
)

// MapColumns 从表头行解析四个逻辑列的索引。
// description 取第一个包含 DESCRIPTION 子串的单元格；price/brand/type 要求
// 去空格转大写后精确相等。空单元格不参与匹配。任一列缺失返回 ErrColumnsNotFound。
func MapColumns(header []string) (*ColumnMap, error) {
	cm := &ColumnMap{Description: -1, Price: -1, Brand: -1, Type: -1}

	for i, cell := range header {
		text := strings.ToUpper(strings.TrimSpace(cell))
		if text == "" {
			continue
		}
		if cm.Description < 0 && strings.Contains(text, markerDescription) {
			cm.Description = i
		}
		if cm.Price < 0 && text == markerPrice {
			cm.Price = i
		}
		if cm.Brand < 0 && text == markerBrand {
			cm.Brand = i
		}
		if cm.Type < 0 && text == markerType {
			cm.Type = i
		}
	}

	var missing []string
	if cm.Description < 0 {
		missing = append(missing, "description")
	}
	if cm.Price < 0 {
		missing = append(missing, "price")
	}
	if cm.Brand < 0 {
		missing = append(missing, "brand")
	}
	if cm.Type < 0 {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnsNotFound, strings.Join(missing, ", "))
	}

	return cm, nil
}
