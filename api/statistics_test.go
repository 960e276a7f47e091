package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsRouter() *gin.Engine {
	h := NewStatsHandler()
	router := gin.New()
	router.GET("/statistics/describe", h.Describe)
	router.GET("/statistics/counts", h.Counts)
	router.GET("/statistics/monthly", h.Monthly)
	router.GET("/statistics/production", h.Production)
	router.GET("/statistics/infra", h.Infra)
	router.GET("/statistics/correlation", h.Correlation)
	return router
}

func TestStatsHandler_Monthly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records` WHERE region = \\? ORDER BY year, month, region, model").
		WithArgs("North America").
		WillReturnRows(deliveryRows())

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/monthly?region=North%20America", "")

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	points := data["points"].([]interface{})
	require.Len(t, points, 2)
	assert.Equal(t, "2023-06", points[0].(map[string]interface{})["period"])
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(100000), summary["total"])
	assert.Equal(t, "2023-07", summary["end"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Production(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records` ORDER BY year, month, region, model").
		WillReturnRows(deliveryRows())

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/production", "")

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(50000), data["mean_deliveries"])
	assert.Equal(t, float64(49000), data["mean_production"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Counts(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records`").
		WillReturnRows(deliveryRows())

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/counts?column=model", "")

	assert.Equal(t, 200, w.Code)
	counts := decode(t, w)["data"].([]interface{})
	require.Len(t, counts, 1)
	assert.Equal(t, "Model Y", counts[0].(map[string]interface{})["value"])
	assert.Equal(t, float64(2), counts[0].(map[string]interface{})["count"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Counts_UnknownColumn(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/counts?column=price", "")

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_UnknownRegion(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/describe?region=Antarctica", "")

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Infra_NoStations(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records`").
		WillReturnRows(deliveryRows())

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/infra", "")

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, false, data["available"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Correlation(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records` WHERE region = \\?").
		WithArgs("North America").
		WillReturnRows(deliveryRows())

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/correlation?region=North%20America", "")

	assert.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	columns := data["columns"].([]interface{})
	// 无充电站数据：Year、Month 加 6 个数值列
	require.Len(t, columns, 8)
	assert.Equal(t, "Year", columns[0])
	values := data["values"].([]interface{})
	require.Len(t, values, 8)
	// 两条记录：交付量与产量同向变化
	assert.InDelta(t, 1.0, values[2].([]interface{})[3].(float64), 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Describe_MissingRatio(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `delivery_records`").
		WillReturnRows(deliveryRows())

	w := doJSON(statsRouter(), http.MethodGet, "/statistics/describe", "")

	assert.Equal(t, 200, w.Code)
	stats := decode(t, w)["data"].([]interface{})
	require.Len(t, stats, 6)
	first := stats[0].(map[string]interface{})
	assert.Equal(t, "Estimated_Deliveries", first["column"])
	assert.Equal(t, float64(0), first["missing_ratio"])
	require.NoError(t, mock.ExpectationsWereMet())
}
