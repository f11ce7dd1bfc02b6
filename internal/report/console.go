package report

import (
	"fmt"
	"time"

	"pricenorm/internal/model"
)

// PrintStart 打印处理开始提示
func PrintStart(inputPath string) {
	fmt.Printf("正在处理: %s\n", inputPath)
}

// PrintReport 打印运行摘要：总体计数、价格区间汇总与箱型汇总。
// 全部为提示性输出，不属于机器可读契约。
func PrintReport(rep *model.RunReport) {
	fmt.Println("==========================================")
	fmt.Printf("处理完成: 共 %d 行，导出 %d 行，跳过 %d 行 (耗时 %s)\n",
		rep.TotalRows, rep.EmittedRows, rep.SkippedRows, rep.Duration.Round(time.Millisecond))
	if rep.OutputFile != "" {
		fmt.Printf("输出文件: %s\n", rep.OutputFile)
	}

	fmt.Println("\n价格区间汇总:")
	for _, b := range rep.BandSummary {
		fmt.Printf("  %-8s (+%.2f): %d\n", b.Label, b.Add, b.Count)
	}
	if rep.Unbanded > 0 {
		fmt.Printf("  价格未识别: %d\n", rep.Unbanded)
	}

	fmt.Println("\n箱型汇总:")
	for _, t := range rep.TypeSummary {
		fmt.Printf("  %-20s %d\n", t.Label, t.Count)
	}
}
