package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"teslastats/cache"
	"teslastats/config"
	"teslastats/database"
	"teslastats/dataset"
	"teslastats/middleware"
	"teslastats/router"
	"teslastats/service"
)

// @title Tesla 交付数据 API
// @version 1.0
// @description Tesla 全球交付数据集（2015-2025）的导入、校验、查询、统计与导出
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "teslastats v1.0.0"

var (
	configFile   string
	port         string
	showVersion  bool
	validateFile string
	importFile   string
	splitFile    string
	outDir       string
	filePrefix   string
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.StringVar(&validateFile, "validate", "", "校验 CSV 文件并输出错误行，不启动服务")
	flag.StringVar(&importFile, "import", "", "将 CSV 文件导入数据库，不启动服务")
	flag.StringVar(&splitFile, "split", "", "按地区拆分 CSV 文件，不启动服务")
	flag.StringVar(&outDir, "out", ".", "拆分输出目录")
	flag.StringVar(&filePrefix, "prefix", "tesla_deliveries_", "拆分输出文件名前缀")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println(version)
		return
	}

	switch {
	case validateFile != "":
		invalid, err := runValidate(validateFile, os.Stdout)
		if err != nil {
			log.Fatalf("校验失败: %v", err)
		}
		if invalid > 0 {
			os.Exit(1)
		}
		return
	case splitFile != "":
		if _, err := runSplit(splitFile, outDir, filePrefix, os.Stdout); err != nil {
			log.Fatalf("拆分失败: %v", err)
		}
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 初始化统计缓存
	cache.Init(&cfg.Redis)

	if importFile != "" {
		if err := runImport(cfg, importFile, os.Stdout); err != nil {
			log.Fatalf("导入失败: %v", err)
		}
		return
	}

	// 初始化 JWT
	middleware.InitJWT(cfg)

	// 设置路由
	r := router.SetupRouter(cfg)

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  Tesla 交付数据服务已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// runValidate 校验 CSV 并逐行输出错误，返回错误行数
func runValidate(path string, w io.Writer) (int, error) {
	table, err := dataset.ReadFile(path)
	if err != nil {
		return 0, err
	}

	for _, e := range table.Errors {
		fmt.Fprintln(w, e.Error())
	}
	fmt.Fprintf(w, "共 %d 行，合法 %d 行，错误 %d 行，重复 %d 行\n",
		table.TotalRows, len(table.Records), len(table.Errors), table.Duplicates)
	return len(table.Errors), nil
}

// runSplit 按地区拆分为多个 CSV，错误行跳过并提示
func runSplit(path, dir, prefix string, w io.Writer) ([]string, error) {
	table, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(table.Errors) > 0 {
		log.Printf("警告: %s 中有 %d 行未通过校验，已跳过", path, len(table.Errors))
	}

	split := dataset.SplitByRegion(table.Records)
	files, err := dataset.SaveRegionFiles(dir, prefix, split, dataset.WriteOptions{ChargingStations: table.ChargingStations})
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		fmt.Fprintln(w, f)
	}
	return files, nil
}

// runImport 通过导入服务写入数据库
func runImport(cfg *config.Config, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()

	var mailer service.ReportMailer
	if cfg.Email.Enabled && len(cfg.Email.Notify) > 0 {
		mailer = service.NewEmailService(&cfg.Email)
	}
	svc := service.NewImportService(database.DB, cfg, cache.Default(), mailer)

	report, err := svc.Import(context.Background(), filepath.Base(path), f, 0)
	if err != nil {
		return err
	}

	for _, e := range report.Errors {
		if e.Column != "" {
			fmt.Fprintf(w, "第 %d 行 %s: %s\n", e.Line, e.Column, e.Message)
		} else {
			fmt.Fprintf(w, "第 %d 行: %s\n", e.Line, e.Message)
		}
	}
	fmt.Fprintf(w, "批次 %s：共 %d 行，导入 %d 行，拒绝 %d 行\n",
		report.BatchID, report.TotalRows, report.ImportedRows, report.RejectedRows)
	return nil
}
