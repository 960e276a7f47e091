package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"teslastats/cache"
	"teslastats/config"
	"teslastats/dataset"
	"teslastats/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RowErrorView 行错误的对外表示
type RowErrorView struct {
	Line    int    `json:"line"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// ImportReport 导入（或仅校验）的结果
type ImportReport struct {
	BatchID       string         `json:"batch_id,omitempty"`
	FileName      string         `json:"file_name"`
	TotalRows     int            `json:"total_rows"`
	ImportedRows  int            `json:"imported_rows"`
	RejectedRows  int            `json:"rejected_rows"`
	DuplicateRows int            `json:"duplicate_rows"`
	Errors        []RowErrorView `json:"errors"`
	Truncated     bool           `json:"truncated"`
}

// ReportMailer 导入报告发送方
type ReportMailer interface {
	SendImportReport(to []string, report *ImportReport) error
}

// ImportService 将 CSV 校验后写入数据库
type ImportService struct {
	db        *gorm.DB
	cache     cache.Cache
	mailer    ReportMailer
	notify    []string
	batchSize int
	maxErrors int
}

// NewImportService 创建导入服务，mailer 为 nil 时不发送报告
func NewImportService(db *gorm.DB, cfg *config.Config, c cache.Cache, mailer ReportMailer) *ImportService {
	s := &ImportService{
		db:        db,
		cache:     c,
		mailer:    mailer,
		batchSize: 500,
		maxErrors: 50,
	}
	if cfg != nil {
		s.notify = cfg.Email.Notify
		if cfg.Import.BatchSize > 0 {
			s.batchSize = cfg.Import.BatchSize
		}
		if cfg.Import.MaxErrors > 0 {
			s.maxErrors = cfg.Import.MaxErrors
		}
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	return s
}

// updateColumns 唯一键冲突时覆盖的列
var updateColumns = []string{
	"estimated_deliveries",
	"production_units",
	"avg_price_usd",
	"battery_capacity_kwh",
	"range_km",
	"co2_saved_tons",
	"charging_stations",
	"import_batch_id",
	"updated_by",
	"updated_at",
}

// Validate 只解析与校验，不写入
func (s *ImportService) Validate(fileName string, r io.Reader) (*ImportReport, error) {
	table, err := dataset.Read(r)
	if err != nil {
		return nil, err
	}
	return s.report(fileName, table), nil
}

// Import 解析 CSV，合法行按 (Year, Month, Region, Model) 覆盖写入，并记录导入批次
func (s *ImportService) Import(ctx context.Context, fileName string, r io.Reader, userID uint) (*ImportReport, error) {
	table, err := dataset.Read(r)
	if err != nil {
		return nil, err
	}

	report := s.report(fileName, table)
	batch := models.ImportBatch{
		ID:            uuid.New().String(),
		FileName:      fileName,
		TotalRows:     report.TotalRows,
		ImportedRows:  report.ImportedRows,
		RejectedRows:  report.RejectedRows,
		DuplicateRows: report.DuplicateRows,
		ErrorSummary:  summarizeErrors(report.Errors),
		RegionRows:    models.RegionRowCounts(table.Records),
		CreatedBy:     userID,
	}
	report.BatchID = batch.ID

	records := table.Records
	for i := range records {
		records[i].ImportBatchID = batch.ID
		records[i].UpdatedBy = userID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(records); start += s.batchSize {
			end := start + s.batchSize
			if end > len(records) {
				end = len(records)
			}
			chunk := records[start:end]
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "year"}, {Name: "month"}, {Name: "region"}, {Name: "model"}},
				DoUpdates: clause.AssignmentColumns(updateColumns),
			}).Create(&chunk).Error; err != nil {
				return fmt.Errorf("写入交付记录失败: %w", err)
			}
		}
		if err := tx.Create(&batch).Error; err != nil {
			return fmt.Errorf("写入导入批次失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("警告: 清理统计缓存失败: %v", err)
	}
	log.Printf("导入完成: %s 批次 %s，导入 %d 行，拒绝 %d 行", fileName, batch.ID, report.ImportedRows, report.RejectedRows)

	if s.mailer != nil && len(s.notify) > 0 {
		if err := s.mailer.SendImportReport(s.notify, report); err != nil {
			log.Printf("警告: 发送导入报告失败: %v", err)
		}
	}
	return report, nil
}

func (s *ImportService) report(fileName string, table *dataset.Table) *ImportReport {
	report := &ImportReport{
		FileName:      fileName,
		TotalRows:     table.TotalRows,
		ImportedRows:  len(table.Records),
		RejectedRows:  len(table.Errors),
		DuplicateRows: table.Duplicates,
		Errors:        make([]RowErrorView, 0, len(table.Errors)),
	}
	for i, e := range table.Errors {
		if i >= s.maxErrors {
			report.Truncated = true
			break
		}
		report.Errors = append(report.Errors, RowErrorView{Line: e.Line, Column: e.Column, Message: e.Err.Error()})
	}
	return report
}

func summarizeErrors(errs []RowErrorView) string {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Column != "" {
			lines = append(lines, fmt.Sprintf("%d %s: %s", e.Line, e.Column, e.Message))
		} else {
			lines = append(lines, fmt.Sprintf("%d: %s", e.Line, e.Message))
		}
	}
	return strings.Join(lines, "\n")
}

// IsInputError 是否为调用方提供的 CSV 本身有问题（表头缺失、格式错误等）
func IsInputError(err error) bool {
	return errors.Is(err, dataset.ErrEmptyInput) ||
		errors.Is(err, dataset.ErrMissingColumn) ||
		errors.Is(err, dataset.ErrMalformed)
}
