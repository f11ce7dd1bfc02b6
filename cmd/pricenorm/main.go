package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pricenorm/internal/config"
	"pricenorm/internal/report"
	"pricenorm/internal/server"
	"pricenorm/internal/service/pipeline"
)

var (
	serve = flag.Bool("serve", false, "以 HTTP 服务方式运行")
	port  = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
)

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "用法: %s [-serve] <输入文件.xlsx> [输出文件.xlsx]\n", prog)
	fmt.Fprintln(os.Stderr, "  输出文件缺省为 normalized-prices.xlsx")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 加价区间覆盖不合法时回退到内置区间表
	if _, err := cfg.Bands(); err != nil {
		log.Printf("加价区间配置无效，使用默认区间: %v", err)
		cfg.Markup.Bands = nil
	}

	if *serve {
		runServer(cfg)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	inputPath := args[0]
	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "输入文件不存在: %s\n", inputPath)
		os.Exit(1)
	}

	outputPath := cfg.Output.DefaultPath
	if outputPath == "" {
		outputPath = "normalized-prices.xlsx"
	}
	if len(args) >= 2 {
		outputPath = args[1]
	}

	runner, err := pipeline.NewRunner(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	report.PrintStart(inputPath)
	rep, err := runner.Run(inputPath, outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "处理失败: %v\n", err)
		os.Exit(1)
	}

	report.PrintReport(rep)
}

// runServer 启动 HTTP 模式
func runServer(cfg *config.AppConfig) {
	if *port > 0 {
		cfg.Server.Port = *port
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("服务初始化失败: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
