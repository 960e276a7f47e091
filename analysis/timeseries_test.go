package analysis

import (
	"testing"

	"teslastats/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyDeliveries(t *testing.T) {
	series := MonthlyDeliveries(fixture())
	assert.Equal(t, []MonthlyPoint{
		{Period: "2023-01", Value: 400},
		{Period: "2023-02", Value: 200},
		{Period: "2023-03", Value: 400},
	}, series.Points)
	assert.Equal(t, SeriesSummary{Start: "2023-01", End: "2023-03", Total: 1000, Mean: 1000.0 / 3, Min: 200, Max: 400}, series.Summary)

	empty := MonthlyDeliveries(nil)
	assert.Empty(t, empty.Points)
	assert.Equal(t, SeriesSummary{}, empty.Summary)
}

func TestAvgPriceSeries(t *testing.T) {
	series := AvgPriceSeries(fixture())
	require.Len(t, series.Points, 3)
	assert.Equal(t, 45000.0, series.Points[0].Value)
	assert.Equal(t, 45000.0, series.Summary.Min)
	assert.Equal(t, 54000.0, series.Summary.Max)
}

func TestProductionVsDeliveries(t *testing.T) {
	cmp := ProductionVsDeliveries(fixture())
	assert.Equal(t, []ProductionPoint{
		{Period: "2023-01", Deliveries: 400, Production: 400},
		{Period: "2023-02", Deliveries: 200, Production: 400},
		{Period: "2023-03", Deliveries: 400, Production: 0},
	}, cmp.Points)
	// 生产为 0 的 2023-03 不参与比值
	assert.InDelta(t, 0.75, cmp.MeanRatio, 1e-12)
	assert.InDelta(t, 1000.0/3, cmp.MeanDeliveries, 1e-9)
	assert.InDelta(t, 800.0/3, cmp.MeanProduction, 1e-9)
	assert.InDelta(t, -0.5, cmp.Correlation, 1e-9)
}

func TestModelShare(t *testing.T) {
	share := ModelShare(fixture())
	require.Len(t, share.Points, 3)

	jan := share.Points[0].Shares
	assert.InDelta(t, 0.25, jan[models.ModelY], 1e-12)
	assert.InDelta(t, 0.75, jan[models.Model3], 1e-12)
	// 2 月没有 Model 3，按 0 计
	assert.Equal(t, 0.0, share.Points[1].Shares[models.Model3])

	assert.InDelta(t, 0.75, share.MeanShare[models.ModelY], 1e-12)
	assert.InDelta(t, 0.25, share.MeanShare[models.Model3], 1e-12)
	assert.Equal(t, "2023-03", share.LatestPeriod)
	assert.Equal(t, 1.0, share.LatestShare[models.ModelY])
}

func TestBatteryRange(t *testing.T) {
	result := BatteryRange(fixture())
	assert.Equal(t, []BatteryRangePoint{
		{Period: "2023-01", BatteryCapacity: 65, Range: 450},
		{Period: "2023-02", BatteryCapacity: 80, Range: 540},
		{Period: "2023-03", BatteryCapacity: 85, Range: 580},
	}, result.Points)
	assert.Greater(t, result.Correlation, 0.99)
}

func TestInfraVsSales(t *testing.T) {
	assert.False(t, InfraVsSales(fixture()).Available)

	records := fixture()
	records[0].ChargingStations = int64Ptr(10)
	records[1].ChargingStations = int64Ptr(20)
	records[3].ChargingStations = int64Ptr(50)

	result := InfraVsSales(records)
	require.True(t, result.Available)
	assert.Equal(t, []InfraPoint{
		{Period: "2023-01", Deliveries: 400, ChargingStations: 30},
		{Period: "2023-03", Deliveries: 400, ChargingStations: 50},
	}, result.Points)
	assert.Equal(t, 0.0, result.Correlation)
}
