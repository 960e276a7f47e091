package analysis

import (
	"fmt"
	"sort"

	"teslastats/models"
)

// Period 月份标识，如 "2023-06"
func Period(r *models.DeliveryRecord) string {
	return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
}

// groupByMonth 按月份分组，返回升序的月份列表
func groupByMonth(records []models.DeliveryRecord) ([]string, map[string][]*models.DeliveryRecord) {
	groups := make(map[string][]*models.DeliveryRecord)
	for i := range records {
		p := Period(&records[i])
		groups[p] = append(groups[p], &records[i])
	}
	periods := make([]string, 0, len(groups))
	for p := range groups {
		periods = append(periods, p)
	}
	sort.Strings(periods)
	return periods, groups
}

// MonthlyPoint 单月数值
type MonthlyPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// SeriesSummary 月度序列的区间与汇总
type SeriesSummary struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func summarize(points []MonthlyPoint) SeriesSummary {
	if len(points) == 0 {
		return SeriesSummary{}
	}
	s := SeriesSummary{
		Start: points[0].Period,
		End:   points[len(points)-1].Period,
		Min:   points[0].Value,
		Max:   points[0].Value,
	}
	for _, p := range points {
		s.Total += p.Value
		if p.Value < s.Min {
			s.Min = p.Value
		}
		if p.Value > s.Max {
			s.Max = p.Value
		}
	}
	s.Mean = s.Total / float64(len(points))
	return s
}

// MonthlySeries 月度序列及汇总
type MonthlySeries struct {
	Points  []MonthlyPoint `json:"points"`
	Summary SeriesSummary  `json:"summary"`
}

// MonthlyDeliveries 每月交付量合计
func MonthlyDeliveries(records []models.DeliveryRecord) MonthlySeries {
	periods, groups := groupByMonth(records)
	points := make([]MonthlyPoint, 0, len(periods))
	for _, p := range periods {
		var sum int64
		for _, r := range groups[p] {
			sum += r.EstimatedDeliveries
		}
		points = append(points, MonthlyPoint{Period: p, Value: float64(sum)})
	}
	return MonthlySeries{Points: points, Summary: summarize(points)}
}

// AvgPriceSeries 每月平均售价（当月记录的算术平均）
func AvgPriceSeries(records []models.DeliveryRecord) MonthlySeries {
	periods, groups := groupByMonth(records)
	points := make([]MonthlyPoint, 0, len(periods))
	for _, p := range periods {
		prices := make([]float64, 0, len(groups[p]))
		for _, r := range groups[p] {
			prices = append(prices, r.AvgPriceUSD)
		}
		points = append(points, MonthlyPoint{Period: p, Value: Mean(prices)})
	}
	return MonthlySeries{Points: points, Summary: summarize(points)}
}

// ProductionPoint 单月交付与生产合计
type ProductionPoint struct {
	Period     string `json:"period"`
	Deliveries int64  `json:"deliveries"`
	Production int64  `json:"production"`
}

// ProductionComparison 生产与交付对比
type ProductionComparison struct {
	Points         []ProductionPoint `json:"points"`
	MeanDeliveries float64           `json:"mean_deliveries"`
	MeanProduction float64           `json:"mean_production"`
	MeanRatio      float64           `json:"mean_ratio"`
	Correlation    float64           `json:"correlation"`
}

// ProductionVsDeliveries 每月交付/生产合计、交付生产比均值与相关系数
// 生产为 0 的月份不参与比值计算
func ProductionVsDeliveries(records []models.DeliveryRecord) ProductionComparison {
	periods, groups := groupByMonth(records)
	out := ProductionComparison{Points: make([]ProductionPoint, 0, len(periods))}

	deliveries := make([]float64, 0, len(periods))
	production := make([]float64, 0, len(periods))
	var ratios []float64
	for _, p := range periods {
		pt := ProductionPoint{Period: p}
		for _, r := range groups[p] {
			pt.Deliveries += r.EstimatedDeliveries
			pt.Production += r.ProductionUnits
		}
		out.Points = append(out.Points, pt)
		deliveries = append(deliveries, float64(pt.Deliveries))
		production = append(production, float64(pt.Production))
		if pt.Production > 0 {
			ratios = append(ratios, float64(pt.Deliveries)/float64(pt.Production))
		}
	}

	out.MeanDeliveries = Mean(deliveries)
	out.MeanProduction = Mean(production)
	out.MeanRatio = Mean(ratios)
	out.Correlation = Correlation(deliveries, production)
	return out
}

// SharePoint 单月各车型交付占比
type SharePoint struct {
	Period string                          `json:"period"`
	Shares map[models.VehicleModel]float64 `json:"shares"`
}

// ModelShareResult 车型占比变化
type ModelShareResult struct {
	Points       []SharePoint                    `json:"points"`
	MeanShare    map[models.VehicleModel]float64 `json:"mean_share"`
	LatestPeriod string                          `json:"latest_period"`
	LatestShare  map[models.VehicleModel]float64 `json:"latest_share"`
}

// ModelShare 每月各车型交付占比，某月没有出现的车型按 0 计
func ModelShare(records []models.DeliveryRecord) ModelShareResult {
	periods, groups := groupByMonth(records)

	present := make(map[models.VehicleModel]bool)
	for i := range records {
		present[records[i].Model] = true
	}

	out := ModelShareResult{
		Points:    make([]SharePoint, 0, len(periods)),
		MeanShare: make(map[models.VehicleModel]float64),
	}
	for _, p := range periods {
		sums := make(map[models.VehicleModel]float64)
		var total float64
		for _, r := range groups[p] {
			sums[r.Model] += float64(r.EstimatedDeliveries)
			total += float64(r.EstimatedDeliveries)
		}
		shares := make(map[models.VehicleModel]float64, len(present))
		for m := range present {
			if total > 0 {
				shares[m] = sums[m] / total
			} else {
				shares[m] = 0
			}
			out.MeanShare[m] += shares[m]
		}
		out.Points = append(out.Points, SharePoint{Period: p, Shares: shares})
	}

	if n := len(out.Points); n > 0 {
		for m := range out.MeanShare {
			out.MeanShare[m] /= float64(n)
		}
		last := out.Points[n-1]
		out.LatestPeriod = last.Period
		out.LatestShare = last.Shares
	}
	return out
}

// BatteryRangePoint 单月平均电池容量与续航
type BatteryRangePoint struct {
	Period          string  `json:"period"`
	BatteryCapacity float64 `json:"battery_capacity_kwh"`
	Range           float64 `json:"range_km"`
}

// BatteryRangeResult 电池容量与续航趋势
type BatteryRangeResult struct {
	Points      []BatteryRangePoint `json:"points"`
	MeanBattery float64             `json:"mean_battery_capacity_kwh"`
	MeanRange   float64             `json:"mean_range_km"`
	Correlation float64             `json:"correlation"`
}

// BatteryRange 每月平均电池容量与续航及两者相关系数
func BatteryRange(records []models.DeliveryRecord) BatteryRangeResult {
	periods, groups := groupByMonth(records)
	out := BatteryRangeResult{Points: make([]BatteryRangePoint, 0, len(periods))}

	battery := make([]float64, 0, len(periods))
	ranges := make([]float64, 0, len(periods))
	for _, p := range periods {
		var b, r []float64
		for _, rec := range groups[p] {
			b = append(b, rec.BatteryCapacityKWh)
			r = append(r, rec.RangeKm)
		}
		pt := BatteryRangePoint{Period: p, BatteryCapacity: Mean(b), Range: Mean(r)}
		out.Points = append(out.Points, pt)
		battery = append(battery, pt.BatteryCapacity)
		ranges = append(ranges, pt.Range)
	}

	out.MeanBattery = Mean(battery)
	out.MeanRange = Mean(ranges)
	out.Correlation = Correlation(battery, ranges)
	return out
}

// InfraPoint 单月交付与充电站合计
type InfraPoint struct {
	Period           string `json:"period"`
	Deliveries       int64  `json:"deliveries"`
	ChargingStations int64  `json:"charging_stations"`
}

// InfraResult 充电基础设施与交付对比
type InfraResult struct {
	Available   bool         `json:"available"`
	Points      []InfraPoint `json:"points"`
	Correlation float64      `json:"correlation"`
}

// InfraVsSales 每月交付与充电站数量合计，只统计带有充电站数据的月份
func InfraVsSales(records []models.DeliveryRecord) InfraResult {
	periods, groups := groupByMonth(records)
	out := InfraResult{Points: []InfraPoint{}}

	var deliveries, stations []float64
	for _, p := range periods {
		pt := InfraPoint{Period: p}
		has := false
		for _, r := range groups[p] {
			pt.Deliveries += r.EstimatedDeliveries
			if r.ChargingStations != nil {
				pt.ChargingStations += *r.ChargingStations
				has = true
			}
		}
		if !has {
			continue
		}
		out.Points = append(out.Points, pt)
		deliveries = append(deliveries, float64(pt.Deliveries))
		stations = append(stations, float64(pt.ChargingStations))
	}

	out.Available = len(out.Points) > 0
	out.Correlation = Correlation(deliveries, stations)
	return out
}
