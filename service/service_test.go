package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// deliveryColumns delivery_records 表的列
var deliveryColumns = []string{
	"id", "year", "month", "region", "model",
	"estimated_deliveries", "production_units", "avg_price_usd",
	"battery_capacity_kwh", "range_km", "co2_saved_tons", "charging_stations",
	"import_batch_id", "created_at", "updated_at",
}
