package api

import (
	"teslastats/analysis"
	"teslastats/cache"
	"teslastats/database"
	"teslastats/models"
	"teslastats/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler 统计分析处理器
type StatsHandler struct{}

// NewStatsHandler 创建统计分析处理器
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// respond 按地区参数计算并输出结果
func respond[T any](c *gin.Context, fn func(*service.StatsService, models.Region) (T, error)) {
	region, ok := regionParam(c)
	if !ok {
		return
	}
	svc := service.NewStatsService(database.DB, cache.Default())
	result, err := fn(svc, region)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}
	Success(c, result)
}

// Describe 数值列描述统计
// @Summary 数值列描述统计
// @Description count/mean/std/min/25%/50%/75%/max
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=[]analysis.ColumnStats} "获取成功"
// @Failure 400 {object} Response "未知地区"
// @Router /api/v1/statistics/describe [get]
func (h *StatsHandler) Describe(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) ([]analysis.ColumnStats, error) {
		return s.Describe(c.Request.Context(), region)
	})
}

// Counts 分类列计数
// @Summary 分类列计数
// @Tags 统计
// @Produce json
// @Param column query string false "region | model | year | month" default(region)
// @Param region query string false "地区"
// @Success 200 {object} Response{data=[]analysis.ValueCount} "获取成功"
// @Failure 400 {object} Response "参数错误"
// @Router /api/v1/statistics/counts [get]
func (h *StatsHandler) Counts(c *gin.Context) {
	column := c.DefaultQuery("column", analysis.CountByRegion)
	switch column {
	case analysis.CountByRegion, analysis.CountByModel, analysis.CountByYear, analysis.CountByMonth:
	default:
		BadRequest(c, "不支持的计数列: "+column)
		return
	}
	respond(c, func(s *service.StatsService, region models.Region) ([]analysis.ValueCount, error) {
		return s.ValueCounts(c.Request.Context(), region, column)
	})
}

// Monthly 月度交付量
// @Summary 月度交付量
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.MonthlySeries} "获取成功"
// @Router /api/v1/statistics/monthly [get]
func (h *StatsHandler) Monthly(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.MonthlySeries, error) {
		return s.MonthlyDeliveries(c.Request.Context(), region)
	})
}

// Production 产量与交付量对比
// @Summary 产量与交付量对比
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.ProductionComparison} "获取成功"
// @Router /api/v1/statistics/production [get]
func (h *StatsHandler) Production(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.ProductionComparison, error) {
		return s.ProductionVsDeliveries(c.Request.Context(), region)
	})
}

// Price 月度平均售价
// @Summary 月度平均售价
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.MonthlySeries} "获取成功"
// @Router /api/v1/statistics/price [get]
func (h *StatsHandler) Price(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.MonthlySeries, error) {
		return s.AvgPrice(c.Request.Context(), region)
	})
}

// Share 车型月度份额
// @Summary 车型月度份额
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.ModelShareResult} "获取成功"
// @Router /api/v1/statistics/share [get]
func (h *StatsHandler) Share(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.ModelShareResult, error) {
		return s.ModelShare(c.Request.Context(), region)
	})
}

// Battery 电池容量与续航
// @Summary 电池容量与续航
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.BatteryRangeResult} "获取成功"
// @Router /api/v1/statistics/battery [get]
func (h *StatsHandler) Battery(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.BatteryRangeResult, error) {
		return s.BatteryRange(c.Request.Context(), region)
	})
}

// Infra 充电站数量与销量
// @Summary 充电站数量与销量
// @Description 仅统计带有 Charging_Stations 的月份，无数据时 available 为 false
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.InfraResult} "获取成功"
// @Router /api/v1/statistics/infra [get]
func (h *StatsHandler) Infra(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.InfraResult, error) {
		return s.InfraVsSales(c.Request.Context(), region)
	})
}

// Correlation 数值列相关矩阵
// @Summary 数值列相关矩阵
// @Description 含 Year、Month 在内的数值列两两皮尔逊相关系数，Charging_Stations 无数据时不输出
// @Tags 统计
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response{data=analysis.CorrMatrix} "获取成功"
// @Failure 400 {object} Response "未知地区"
// @Router /api/v1/statistics/correlation [get]
func (h *StatsHandler) Correlation(c *gin.Context) {
	respond(c, func(s *service.StatsService, region models.Region) (analysis.CorrMatrix, error) {
		return s.CorrelationMatrix(c.Request.Context(), region)
	})
}
