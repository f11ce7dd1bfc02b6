package parser

import (
	"regexp"
	"strings"
)

// 描述清洗使用的固定模式。清洗按声明顺序执行，顺序不可调整：
// 国别标注去掉后括号货号才会落到行尾。
var (
	// 尾部国别标注，如 "- France -"。只匹配单个首字母大写的词，
	// 多词国名（"- United Kingdom -"）有意不处理。
	reCountry = regexp.MustCompile(`\s*-\s*[A-Z][a-z]+\s*-\s*$`)
	// 尾部括号货号，如 "(116427)"
	reCode = regexp.MustCompile(`[\s-]*\(\d+\)\s*$`)
	// 整箱数量标注，如 "- 12pcs ByBox"（ByBox 不区分大小写）
	reBoxQty = regexp.MustCompile(`[\s-]*\d+\s*pcs\s*(?i:bybox)`)
	// 残留的独立 ByBox 标记
	reByBox  = regexp.MustCompile(`[\s-]*\b(?i:bybox)\b`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// CleanDescription 按固定顺序清洗商品描述：去首尾空白、去尾部国别标注、
// 去尾部括号货号、去整箱数量标注、去残留 ByBox 标记，最后压缩空白。
// 每个模式同时吃掉紧邻的前导空白/连字符，不会留下双空格或悬挂连字符。
func CleanDescription(raw string) string {
	s := strings.TrimSpace(raw)
	s = reCountry.ReplaceAllString(s, "")
	s = reCode.ReplaceAllString(s, "")
	s = reBoxQty.ReplaceAllString(s, " ")
	s = reByBox.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
