package api

import (
	"strconv"
	"strings"

	"teslastats/database"
	"teslastats/middleware"
	"teslastats/models"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler 交付记录处理器
type DeliveryHandler struct{}

// NewDeliveryHandler 创建交付记录处理器
func NewDeliveryHandler() *DeliveryHandler {
	return &DeliveryHandler{}
}

// DeliveryRequest 创建/更新交付记录请求
type DeliveryRequest struct {
	Year                int     `json:"year" example:"2023"`
	Month               int     `json:"month" example:"6"`
	Region              string  `json:"region" example:"North America"`
	Model               string  `json:"model" example:"Model Y"`
	EstimatedDeliveries int64   `json:"estimated_deliveries" example:"55000"`
	ProductionUnits     int64   `json:"production_units" example:"58000"`
	AvgPriceUSD         float64 `json:"avg_price_usd" example:"52000"`
	BatteryCapacityKWh  float64 `json:"battery_capacity_kwh" example:"75"`
	RangeKm             float64 `json:"range_km" example:"530"`
	CO2SavedTons        float64 `json:"co2_saved_tons" example:"12000"`
	ChargingStations    *int64  `json:"charging_stations,omitempty"`
}

func (r *DeliveryRequest) toRecord() models.DeliveryRecord {
	return models.DeliveryRecord{
		Year:                r.Year,
		Month:               r.Month,
		Region:              models.Region(strings.TrimSpace(r.Region)),
		Model:               models.VehicleModel(strings.TrimSpace(r.Model)),
		EstimatedDeliveries: r.EstimatedDeliveries,
		ProductionUnits:     r.ProductionUnits,
		AvgPriceUSD:         r.AvgPriceUSD,
		BatteryCapacityKWh:  r.BatteryCapacityKWh,
		RangeKm:             r.RangeKm,
		CO2SavedTons:        r.CO2SavedTons,
		ChargingStations:    r.ChargingStations,
	}
}

// DeliveryListRequest 交付记录列表请求
type DeliveryListRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"10"`
	Year     int    `form:"year" example:"2023"`
	Month    int    `form:"month" example:"6"`
	Region   string `form:"region" example:"Europe"`
	Model    string `form:"model" example:"Model Y"`
}

// keyExists 是否已存在相同 (Year, Month, Region, Model) 的记录，excludeID 为 0 时不排除
func keyExists(rec *models.DeliveryRecord, excludeID uint) (bool, error) {
	query := database.DB.Model(&models.DeliveryRecord{}).
		Where("year = ? AND month = ? AND region = ? AND model = ?", rec.Year, rec.Month, rec.Region, rec.Model)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 交付记录列表
// @Summary 交付记录列表
// @Description 分页查询交付记录，可按年、月、地区、车型筛选，按 Year, Month, Region, Model 排序
// @Tags 交付记录
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量（最大 100）" default(10)
// @Param year query int false "年份"
// @Param month query int false "月份"
// @Param region query string false "地区"
// @Param model query string false "车型"
// @Success 200 {object} Response{data=PageResponse{list=[]models.DeliveryRecord}} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/deliveries [get]
func (h *DeliveryHandler) List(c *gin.Context) {
	var req DeliveryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.DeliveryRecord{})

	if req.Year != 0 {
		query = query.Where("year = ?", req.Year)
	}
	if req.Month != 0 {
		query = query.Where("month = ?", req.Month)
	}
	if req.Region != "" {
		if !models.Region(req.Region).IsValid() {
			BadRequest(c, "未知地区: "+req.Region)
			return
		}
		query = query.Where("region = ?", req.Region)
	}
	if req.Model != "" {
		if !models.VehicleModel(req.Model).IsValid() {
			BadRequest(c, "未知车型: "+req.Model)
			return
		}
		query = query.Where("model = ?", req.Model)
	}

	var total int64
	query.Count(&total)

	var records []models.DeliveryRecord
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("year, month, region, model").Offset(offset).Limit(req.PageSize).Find(&records).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     records,
	})
}

// Get 获取单条交付记录
// @Summary 获取单条交付记录
// @Tags 交付记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response{data=models.DeliveryRecord} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/deliveries/{id} [get]
func (h *DeliveryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var record models.DeliveryRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, record)
}

// Regions 已有数据的地区
// @Summary 已有数据的地区
// @Tags 交付记录
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/deliveries/regions [get]
func (h *DeliveryHandler) Regions(c *gin.Context) {
	var regions []string
	if err := database.DB.Model(&models.DeliveryRecord{}).Distinct("region").Order("region").Pluck("region", &regions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if regions == nil {
		regions = []string{}
	}
	Success(c, regions)
}

// Create 创建交付记录
// @Summary 创建交付记录
// @Description 校验取值范围后创建，(Year, Month, Region, Model) 已存在时返回 409
// @Tags 交付记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeliveryRequest true "交付记录"
// @Success 200 {object} Response{data=models.DeliveryRecord} "创建成功"
// @Failure 400 {object} Response{data=[]models.FieldError} "校验失败"
// @Failure 401 {object} Response "未授权"
// @Failure 409 {object} Response "记录已存在"
// @Router /api/v1/deliveries [post]
func (h *DeliveryHandler) Create(c *gin.Context) {
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	record := req.toRecord()
	record.UpdatedBy = middleware.GetCurrentUserID(c)
	if err := record.Validate(); err != nil {
		validationFailed(c, err)
		return
	}

	exists, err := keyExists(&record, 0)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if exists {
		Conflict(c, "记录已存在: "+record.Key().String())
		return
	}

	if err := database.DB.Create(&record).Error; err != nil {
		// 并发创建时由唯一索引兜底
		if isDuplicateKey(err) {
			Conflict(c, "记录已存在: "+record.Key().String())
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建交付记录失败"))
		return
	}
	invalidateStats(c)

	SuccessWithMessage(c, "创建成功", record)
}

// Update 更新交付记录（整体替换）
// @Summary 更新交付记录
// @Tags 交付记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Param request body DeliveryRequest true "交付记录"
// @Success 200 {object} Response{data=models.DeliveryRecord} "更新成功"
// @Failure 400 {object} Response "校验失败"
// @Failure 404 {object} Response "记录不存在"
// @Failure 409 {object} Response "与其他记录冲突"
// @Router /api/v1/deliveries/{id} [put]
func (h *DeliveryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var existing models.DeliveryRecord
	if err := database.DB.First(&existing, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	record := req.toRecord()
	record.ID = existing.ID
	record.ImportBatchID = existing.ImportBatchID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedBy = middleware.GetCurrentUserID(c)
	if err := record.Validate(); err != nil {
		validationFailed(c, err)
		return
	}

	if record.Key() != existing.Key() {
		exists, err := keyExists(&record, existing.ID)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "查询失败"))
			return
		}
		if exists {
			Conflict(c, "记录已存在: "+record.Key().String())
			return
		}
	}

	if err := database.DB.Save(&record).Error; err != nil {
		if isDuplicateKey(err) {
			Conflict(c, "记录已存在: "+record.Key().String())
			return
		}
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	invalidateStats(c)

	SuccessWithMessage(c, "更新成功", record)
}

// Delete 删除交付记录
// @Summary 删除交付记录
// @Tags 交付记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/deliveries/{id} [delete]
func (h *DeliveryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	result := database.DB.Delete(&models.DeliveryRecord{}, id)
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "删除失败"))
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "记录不存在")
		return
	}
	invalidateStats(c)

	SuccessWithMessage(c, "删除成功", nil)
}
