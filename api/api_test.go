package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teslastats/cache"
	"teslastats/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		cache.SetDefault(nil)
		sqlDB.Close()
	}
}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// deliveryColumns delivery_records 表的列
var deliveryColumns = []string{
	"id", "year", "month", "region", "model",
	"estimated_deliveries", "production_units", "avg_price_usd",
	"battery_capacity_kwh", "range_km", "co2_saved_tons", "charging_stations",
	"import_batch_id", "created_at", "updated_at",
}

func deliveryRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(deliveryColumns).
		AddRow(1, 2023, 6, "North America", "Model Y", 55000, 58000, 52000, 75, 530, 12000, nil, "", now, now).
		AddRow(2, 2023, 7, "North America", "Model Y", 45000, 40000, 51000, 75, 530, 9000, nil, "", now, now)
}

var userColumns = []string{"id", "username", "password", "email", "is_admin", "status", "created_at", "updated_at", "deleted_at"}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doUpload(router *gin.Engine, path, fileName, content string) *httptest.ResponseRecorder {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", fileName)
	part.Write([]byte(content))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
