package api

import (
	"bytes"
	"fmt"
	"net/http"

	"teslastats/cache"
	"teslastats/database"
	"teslastats/dataset"
	"teslastats/models"
	"teslastats/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportTotals 导出数据的汇总
type ExportTotals struct {
	Records             int   `json:"records"`
	EstimatedDeliveries int64 `json:"estimated_deliveries"`
	ProductionUnits     int64 `json:"production_units"`
}

func totalsOf(records []models.DeliveryRecord) ExportTotals {
	t := ExportTotals{Records: len(records)}
	for _, r := range records {
		t.EstimatedDeliveries += r.EstimatedDeliveries
		t.ProductionUnits += r.ProductionUnits
	}
	return t
}

// hasChargingStations 任一记录带有充电站数量时导出该列
func hasChargingStations(records []models.DeliveryRecord) bool {
	for _, r := range records {
		if r.ChargingStations != nil {
			return true
		}
	}
	return false
}

// exportFileName 导出文件名，按地区导出时带地区后缀
func exportFileName(region models.Region, ext string) string {
	if region == "" {
		return "tesla_deliveries." + ext
	}
	return fmt.Sprintf("tesla_deliveries_%s.%s", dataset.SafeFileName(region), ext)
}

func (h *ExportHandler) records(c *gin.Context) ([]models.DeliveryRecord, models.Region, bool) {
	region, ok := regionParam(c)
	if !ok {
		return nil, "", false
	}
	records, err := service.NewStatsService(database.DB, cache.Default()).Records(c.Request.Context(), region)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, "", false
	}
	return records, region, true
}

// ExportCSV 导出交付记录为 CSV
// @Summary 导出交付记录
// @Description 按数据集列顺序导出 CSV，可按地区筛选
// @Tags 导出
// @Produce text/csv
// @Param region query string false "地区"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	records, region, ok := h.records(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 打开
	opts := dataset.WriteOptions{ChargingStations: hasChargingStations(records), BOM: true}
	if err := dataset.Write(buf, records, opts); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := exportFileName(region, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出交付记录为 JSON
// @Summary 导出交付记录为 JSON
// @Tags 导出
// @Produce json
// @Param region query string false "地区"
// @Success 200 {object} Response "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	records, region, ok := h.records(c)
	if !ok {
		return
	}

	Success(c, gin.H{
		"region":  region,
		"totals":  totalsOf(records),
		"records": records,
	})
}

// ExportExcel 导出交付记录为 Excel
// @Summary 导出交付记录为 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param region query string false "地区"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	records, region, ok := h.records(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "交付记录"
	f.SetSheetName("Sheet1", sheetName)

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	opts := dataset.WriteOptions{ChargingStations: hasChargingStations(records)}
	headers := opts.Columns()
	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	f.SetColWidth(sheetName, "A", lastCol, 18)

	// 写入表头
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	for i, r := range records {
		row := i + 2
		values := []interface{}{
			r.Year, r.Month, string(r.Region), string(r.Model),
			r.EstimatedDeliveries, r.ProductionUnits, r.AvgPriceUSD,
			r.BatteryCapacityKWh, r.RangeKm, r.CO2SavedTons,
		}
		if opts.ChargingStations {
			if r.ChargingStations != nil {
				values = append(values, *r.ChargingStations)
			} else {
				values = append(values, "")
			}
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), dataStyle)
	}

	// 添加汇总行
	totals := totalsOf(records)
	summaryRow := len(records) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), totals.EstimatedDeliveries)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), totals.ProductionUnits)
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", summaryRow), fmt.Sprintf("共 %d 条记录", totals.Records))
	f.MergeCell(sheetName, fmt.Sprintf("G%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow), summaryStyle)

	filename := exportFileName(region, "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
