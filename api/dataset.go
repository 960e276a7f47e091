package api

import (
	"teslastats/models"

	"github.com/gin-gonic/gin"
)

// DatasetHandler 数据集目录处理器
type DatasetHandler struct{}

// NewDatasetHandler 创建数据集目录处理器
func NewDatasetHandler() *DatasetHandler {
	return &DatasetHandler{}
}

// SchemaResponse 交付数据集结构
type SchemaResponse struct {
	Columns  []models.Column `json:"columns"`
	Regions  []models.Region `json:"regions"`
	Models   []string        `json:"models"`
	MinYear  int             `json:"min_year"`
	MaxYear  int             `json:"max_year"`
	MinMonth int             `json:"min_month"`
	MaxMonth int             `json:"max_month"`
}

// Catalog 数据集目录
// @Summary 数据集目录
// @Description 列出 Tesla 交付数据集与汽车价格预测数据集（后者无列说明）
// @Tags 数据集
// @Produce json
// @Success 200 {object} Response{data=[]models.DatasetInfo} "获取成功"
// @Router /api/v1/datasets [get]
func (h *DatasetHandler) Catalog(c *gin.Context) {
	Success(c, models.Catalog())
}

// Schema 交付数据集列定义与取值范围
// @Summary 交付数据集结构
// @Tags 数据集
// @Produce json
// @Success 200 {object} Response{data=SchemaResponse} "获取成功"
// @Router /api/v1/datasets/schema [get]
func (h *DatasetHandler) Schema(c *gin.Context) {
	vehicleModels := make([]string, 0, len(models.VehicleModels()))
	for _, m := range models.VehicleModels() {
		vehicleModels = append(vehicleModels, string(m))
	}

	Success(c, SchemaResponse{
		Columns:  models.DeliveryColumns(),
		Regions:  models.Regions(),
		Models:   vehicleModels,
		MinYear:  models.MinYear,
		MaxYear:  models.MaxYear,
		MinMonth: models.MinMonth,
		MaxMonth: models.MaxMonth,
	})
}
