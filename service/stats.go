package service

import (
	"context"
	"fmt"
	"log"

	"teslastats/analysis"
	"teslastats/cache"
	"teslastats/models"

	"gorm.io/gorm"
)

// StatsService 从数据库读取交付记录并计算统计，结果按 (统计项, 地区) 缓存
type StatsService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewStatsService 创建统计服务
func NewStatsService(db *gorm.DB, c cache.Cache) *StatsService {
	if c == nil {
		c = cache.Noop{}
	}
	return &StatsService{db: db, cache: c}
}

// Records 读取记录，region 为空时读取全部，按 Year, Month, Region, Model 排序
func (s *StatsService) Records(ctx context.Context, region models.Region) ([]models.DeliveryRecord, error) {
	query := s.db.WithContext(ctx).Model(&models.DeliveryRecord{})
	if region != "" {
		query = query.Where("region = ?", region)
	}
	var records []models.DeliveryRecord
	if err := query.Order("year, month, region, model").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询交付记录失败: %w", err)
	}
	return records, nil
}

// compute 先查缓存，未命中时读取记录并计算
func compute[T any](ctx context.Context, s *StatsService, name string, region models.Region, fn func([]models.DeliveryRecord) T) (T, error) {
	var result T
	key := cache.Key(name, string(region))

	hit, err := s.cache.Get(ctx, key, &result)
	if err != nil {
		log.Printf("警告: 读取统计缓存失败: %v", err)
	}
	if hit && err == nil {
		return result, nil
	}

	records, err := s.Records(ctx, region)
	if err != nil {
		return result, err
	}
	result = fn(records)

	if err := s.cache.Set(ctx, key, result); err != nil {
		log.Printf("警告: 写入统计缓存失败: %v", err)
	}
	return result, nil
}

// Describe 数值列描述统计
func (s *StatsService) Describe(ctx context.Context, region models.Region) ([]analysis.ColumnStats, error) {
	return compute(ctx, s, "describe", region, analysis.Describe)
}

// ValueCounts 某列取值次数
func (s *StatsService) ValueCounts(ctx context.Context, region models.Region, column string) ([]analysis.ValueCount, error) {
	return compute(ctx, s, "counts:"+column, region, func(records []models.DeliveryRecord) []analysis.ValueCount {
		return analysis.ValueCounts(records, column)
	})
}

// MonthlyDeliveries 月度交付量
func (s *StatsService) MonthlyDeliveries(ctx context.Context, region models.Region) (analysis.MonthlySeries, error) {
	return compute(ctx, s, "monthly", region, analysis.MonthlyDeliveries)
}

// ProductionVsDeliveries 生产与交付对比
func (s *StatsService) ProductionVsDeliveries(ctx context.Context, region models.Region) (analysis.ProductionComparison, error) {
	return compute(ctx, s, "production", region, analysis.ProductionVsDeliveries)
}

// AvgPrice 月度平均售价
func (s *StatsService) AvgPrice(ctx context.Context, region models.Region) (analysis.MonthlySeries, error) {
	return compute(ctx, s, "price", region, analysis.AvgPriceSeries)
}

// ModelShare 车型占比
func (s *StatsService) ModelShare(ctx context.Context, region models.Region) (analysis.ModelShareResult, error) {
	return compute(ctx, s, "share", region, analysis.ModelShare)
}

// BatteryRange 电池容量与续航
func (s *StatsService) BatteryRange(ctx context.Context, region models.Region) (analysis.BatteryRangeResult, error) {
	return compute(ctx, s, "battery", region, analysis.BatteryRange)
}

// InfraVsSales 充电站与交付
func (s *StatsService) InfraVsSales(ctx context.Context, region models.Region) (analysis.InfraResult, error) {
	return compute(ctx, s, "infra", region, analysis.InfraVsSales)
}

// CorrelationMatrix 数值列相关矩阵
func (s *StatsService) CorrelationMatrix(ctx context.Context, region models.Region) (analysis.CorrMatrix, error) {
	return compute(ctx, s, "correlation", region, analysis.CorrelationMatrix)
}
