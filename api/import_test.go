package api

import (
	"net/http"
	"testing"
	"time"

	"teslastats/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uploadCSV = "Year,Month,Region,Model,Estimated_Deliveries,Production_Units,Avg_Price_USD,Battery_Capacity_kWh,Range_km,CO2_Saved_tons\n" +
	"2023,6,North America,Model Y,55000,58000,52000,75,530,12000\n" +
	"2023,13,North America,Model Y,55000,58000,52000,75,530,12000\n"

func importRouter() *gin.Engine {
	h := NewImportHandler(&config.Config{Import: config.ImportConfig{MaxUploadMB: 1}})
	router := gin.New()
	router.POST("/imports", setUserIDMiddleware(1), h.Import)
	router.GET("/imports", h.ListBatches)
	router.GET("/imports/:id", h.GetBatch)
	router.POST("/validate", h.Validate)
	return router
}

func TestImportHandler_Import(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `delivery_records`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `import_batches`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doUpload(importRouter(), "/imports", "tesla.csv", uploadCSV)

	assert.Equal(t, 200, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "导入完成，部分行未通过校验", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["batch_id"])
	assert.Equal(t, float64(2), data["total_rows"])
	assert.Equal(t, float64(1), data["imported_rows"])
	assert.Equal(t, float64(1), data["rejected_rows"])
	errs := data["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, float64(3), errs[0].(map[string]interface{})["line"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportHandler_Import_MissingColumn(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	w := doUpload(importRouter(), "/imports", "bad.csv", "Year,Month,Region\n2023,6,Europe\n")

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, decode(t, w)["message"], "Model")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportHandler_Import_NoFile(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w := doJSON(importRouter(), http.MethodPost, "/imports", `{}`)

	assert.Equal(t, 400, w.Code)
}

func TestImportHandler_Import_WrongExtension(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w := doUpload(importRouter(), "/imports", "tesla.xlsx", uploadCSV)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "仅支持 .csv 文件", decode(t, w)["message"])
}

func TestImportHandler_Validate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	w := doUpload(importRouter(), "/validate", "tesla.csv", uploadCSV)

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Nil(t, data["batch_id"])
	assert.Equal(t, float64(1), data["rejected_rows"])
	errs := data["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].(map[string]interface{})["message"], "月份 13")
	// 只校验，不访问数据库
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportHandler_ListBatches(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `import_batches`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `import_batches` ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "total_rows", "imported_rows", "rejected_rows", "duplicate_rows", "error_summary", "region_rows", "created_by", "created_at"}).
			AddRow("0b6c0d4e-2f57-4a43-9d6e-1c1e9b5c1a10", "tesla.csv", 2, 1, 1, 0, "3: 月份 13 超出范围", []byte(`{"North America":1}`), 1, time.Now()))

	w := doJSON(importRouter(), http.MethodGet, "/imports", "")

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	list := data["list"].([]interface{})
	require.Len(t, list, 1)
	batch := list[0].(map[string]interface{})
	assert.Equal(t, "tesla.csv", batch["file_name"])
	assert.Equal(t, map[string]interface{}{"North America": float64(1)}, batch["region_rows"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportHandler_GetBatch_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `import_batches` WHERE id = \\?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(importRouter(), http.MethodGet, "/imports/missing", "")

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

