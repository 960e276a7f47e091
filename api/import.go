package api

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"teslastats/cache"
	"teslastats/config"
	"teslastats/database"
	"teslastats/middleware"
	"teslastats/models"
	"teslastats/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler CSV 导入处理器
type ImportHandler struct {
	cfg *config.Config
}

// NewImportHandler 创建导入处理器
func NewImportHandler(cfg *config.Config) *ImportHandler {
	return &ImportHandler{cfg: cfg}
}

func (h *ImportHandler) service() *service.ImportService {
	var mailer service.ReportMailer
	if h.cfg != nil && h.cfg.Email.Enabled && len(h.cfg.Email.Notify) > 0 {
		mailer = service.NewEmailService(&h.cfg.Email)
	}
	return service.NewImportService(database.DB, h.cfg, cache.Default(), mailer)
}

// openUpload 读取表单中的 file 字段，超过大小限制时返回 400
func (h *ImportHandler) openUpload(c *gin.Context) (multipart.File, string, bool) {
	var maxMB int64 = 20
	if h.cfg != nil && h.cfg.Import.MaxUploadMB > 0 {
		maxMB = h.cfg.Import.MaxUploadMB
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMB<<20)

	header, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "请上传 CSV 文件（字段 file，大小不超过限制）")
		return nil, "", false
	}
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		BadRequest(c, "仅支持 .csv 文件")
		return nil, "", false
	}

	file, err := header.Open()
	if err != nil {
		InternalError(c, "读取上传文件失败")
		return nil, "", false
	}
	return file, filepath.Base(header.Filename), true
}

// Import 导入 CSV
// @Summary 导入交付数据 CSV
// @Description 校验每一行并写入数据库，合法行写入数据库，已存在的 (Year, Month, Region, Model) 会被覆盖，错误行列入报告
// @Tags 导入
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV 文件"
// @Success 200 {object} Response{data=service.ImportReport} "导入完成"
// @Failure 400 {object} Response "文件格式有误"
// @Failure 401 {object} Response "未授权"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/v1/imports [post]
func (h *ImportHandler) Import(c *gin.Context) {
	file, name, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	userID := middleware.GetCurrentUserID(c)
	report, err := h.service().Import(c.Request.Context(), name, file, userID)
	if err != nil {
		if service.IsInputError(err) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "导入失败"))
		return
	}
	if report.RejectedRows > 0 {
		SuccessWithMessage(c, "导入完成，部分行未通过校验", report)
		return
	}

	SuccessWithMessage(c, "导入完成", report)
}

// Validate 只校验 CSV，不写入
// @Summary 校验交付数据 CSV
// @Tags 导入
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV 文件"
// @Success 200 {object} Response{data=service.ImportReport} "校验结果"
// @Failure 400 {object} Response "文件有误"
// @Failure 429 {object} Response "校验过于频繁"
// @Router /api/v1/validate [post]
func (h *ImportHandler) Validate(c *gin.Context) {
	file, name, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	report, err := h.service().Validate(name, file)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Success(c, report)
}

// ListBatches 导入批次列表
// @Summary 导入批次列表
// @Tags 导入
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} Response{data=PageResponse{list=[]models.ImportBatch}} "获取成功"
// @Router /api/v1/imports [get]
func (h *ImportHandler) ListBatches(c *gin.Context) {
	var req struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	var total int64
	database.DB.Model(&models.ImportBatch{}).Count(&total)

	var batches []models.ImportBatch
	offset := (req.Page - 1) * req.PageSize
	if err := database.DB.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&batches).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     batches,
	})
}

// GetBatch 导入批次详情
// @Summary 导入批次详情
// @Tags 导入
// @Produce json
// @Security BearerAuth
// @Param id path string true "批次ID"
// @Success 200 {object} Response{data=models.ImportBatch} "获取成功"
// @Failure 404 {object} Response "批次不存在"
// @Router /api/v1/imports/{id} [get]
func (h *ImportHandler) GetBatch(c *gin.Context) {
	var batch models.ImportBatch
	if err := database.DB.Where("id = ?", c.Param("id")).First(&batch).Error; err != nil {
		NotFound(c, "批次不存在")
		return
	}
	Success(c, batch)
}
