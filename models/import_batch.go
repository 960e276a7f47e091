package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportBatch 一次 CSV 导入的结果记录
type ImportBatch struct {
	ID            string            `json:"id" gorm:"primaryKey;size:36"`
	FileName      string            `json:"file_name" gorm:"size:255"`
	TotalRows     int               `json:"total_rows"`
	ImportedRows  int               `json:"imported_rows"`
	RejectedRows  int               `json:"rejected_rows"`
	DuplicateRows int               `json:"duplicate_rows"`
	ErrorSummary  string            `json:"error_summary" gorm:"type:text"`
	RegionRows    datatypes.JSONMap `json:"region_rows"`
	CreatedBy     uint              `json:"created_by" gorm:"index"`
	CreatedAt     time.Time         `json:"created_at"`
}

// TableName 设置表名
func (ImportBatch) TableName() string {
	return "import_batches"
}

// RegionRowCounts 按地区统计导入的行数
func RegionRowCounts(records []DeliveryRecord) datatypes.JSONMap {
	counts := datatypes.JSONMap{}
	for _, r := range records {
		n, _ := counts[string(r.Region)].(int)
		counts[string(r.Region)] = n + 1
	}
	return counts
}

// BeforeCreate 未指定 ID 时生成 UUID
func (b *ImportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
