package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportRouter() *gin.Engine {
	h := NewExportHandler()
	router := gin.New()
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/json", h.ExportJSON)
	router.GET("/export/excel", h.ExportExcel)
	return router
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records` WHERE region = \\?").
		WithArgs("North America").
		WillReturnRows(deliveryRows())

	w := doJSON(exportRouter(), http.MethodGet, "/export/csv?region=North%20America", "")

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "tesla_deliveries_north_america.csv")

	body := w.Body.String()
	require.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(body, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Year,Month,Region,Model,Estimated_Deliveries,Production_Units,Avg_Price_USD,Battery_Capacity_kWh,Range_km,CO2_Saved_tons", lines[0])
	assert.Equal(t, "2023,6,North America,Model Y,55000,58000,52000,75,530,12000", lines[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportJSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records`").
		WillReturnRows(deliveryRows())

	w := doJSON(exportRouter(), http.MethodGet, "/export/json", "")

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	totals := data["totals"].(map[string]interface{})
	assert.Equal(t, float64(2), totals["records"])
	assert.Equal(t, float64(100000), totals["estimated_deliveries"])
	assert.Equal(t, float64(98000), totals["production_units"])
	assert.Len(t, data["records"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records`").
		WillReturnRows(deliveryRows())

	w := doJSON(exportRouter(), http.MethodGet, "/export/excel", "")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue("交付记录", "A1")
	assert.Equal(t, "Year", header)
	model, _ := f.GetCellValue("交付记录", "D2")
	assert.Equal(t, "Model Y", model)
	summary, _ := f.GetCellValue("交付记录", "A4")
	assert.Equal(t, "合计", summary)
	total, _ := f.GetCellValue("交付记录", "E4")
	assert.Equal(t, "100000", total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_UnknownRegion(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	w := doJSON(exportRouter(), http.MethodGet, "/export/csv?region=Mars", "")

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
