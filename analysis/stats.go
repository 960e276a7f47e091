// Package analysis 交付记录的描述统计与月度时间序列
package analysis

import (
	"math"
	"sort"
	"strconv"

	"teslastats/models"
)

// 数值列
const (
	FieldEstimatedDeliveries = "Estimated_Deliveries"
	FieldProductionUnits     = "Production_Units"
	FieldAvgPriceUSD         = "Avg_Price_USD"
	FieldBatteryCapacityKWh  = "Battery_Capacity_kWh"
	FieldRangeKm             = "Range_km"
	FieldCO2SavedTons        = "CO2_Saved_tons"
	FieldChargingStations    = "Charging_Stations"
)

type numericField struct {
	name  string
	value func(*models.DeliveryRecord) (float64, bool)
}

var numericFields = []numericField{
	{FieldEstimatedDeliveries, func(r *models.DeliveryRecord) (float64, bool) { return float64(r.EstimatedDeliveries), true }},
	{FieldProductionUnits, func(r *models.DeliveryRecord) (float64, bool) { return float64(r.ProductionUnits), true }},
	{FieldAvgPriceUSD, func(r *models.DeliveryRecord) (float64, bool) { return r.AvgPriceUSD, true }},
	{FieldBatteryCapacityKWh, func(r *models.DeliveryRecord) (float64, bool) { return r.BatteryCapacityKWh, true }},
	{FieldRangeKm, func(r *models.DeliveryRecord) (float64, bool) { return r.RangeKm, true }},
	{FieldCO2SavedTons, func(r *models.DeliveryRecord) (float64, bool) { return r.CO2SavedTons, true }},
	{FieldChargingStations, func(r *models.DeliveryRecord) (float64, bool) {
		if r.ChargingStations == nil {
			return 0, false
		}
		return float64(*r.ChargingStations), true
	}},
}

// ColumnStats 单列描述统计
type ColumnStats struct {
	Column       string  `json:"column"`
	Count        int     `json:"count"`
	Missing      int     `json:"missing"`
	// MissingRatio 缺失值占全部记录的比例
	MissingRatio float64 `json:"missing_ratio"`
	Mean         float64 `json:"mean"`
	Std          float64 `json:"std"`
	Min          float64 `json:"min"`
	P25          float64 `json:"p25"`
	Median       float64 `json:"median"`
	P75          float64 `json:"p75"`
	Max          float64 `json:"max"`
}

// Describe 对每个数值列计算 count/mean/std/min/四分位/max
// std 为样本标准差 (n-1)；Charging_Stations 全部缺失时不输出
func Describe(records []models.DeliveryRecord) []ColumnStats {
	out := make([]ColumnStats, 0, len(numericFields))
	for _, f := range numericFields {
		values := make([]float64, 0, len(records))
		missing := 0
		for i := range records {
			if v, ok := f.value(&records[i]); ok {
				values = append(values, v)
			} else {
				missing++
			}
		}
		if f.name == FieldChargingStations && len(values) == 0 {
			continue
		}

		st := ColumnStats{Column: f.name, Count: len(values), Missing: missing}
		if len(records) > 0 {
			st.MissingRatio = float64(missing) / float64(len(records))
		}
		if len(values) > 0 {
			sort.Float64s(values)
			st.Mean = Mean(values)
			st.Std = StdDev(values)
			st.Min = values[0]
			st.Max = values[len(values)-1]
			st.P25 = quantileSorted(values, 0.25)
			st.Median = quantileSorted(values, 0.5)
			st.P75 = quantileSorted(values, 0.75)
		}
		out = append(out, st)
	}
	return out
}

// Mean 算术平均，空切片返回 0
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev 样本标准差，少于 2 个值时返回 0
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// quantileSorted 线性插值分位数，与 pandas 默认一致
func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// Correlation 皮尔逊相关系数，长度不一致或方差为 0 时返回 0
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

// Year、Month 与数值列一起参与相关矩阵
var corrFields = append([]numericField{
	{"Year", func(r *models.DeliveryRecord) (float64, bool) { return float64(r.Year), true }},
	{"Month", func(r *models.DeliveryRecord) (float64, bool) { return float64(r.Month), true }},
}, numericFields...)

// CorrMatrix 列两两之间的相关系数，Values[i][j] 对应 Columns[i] 与 Columns[j]
type CorrMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// CorrelationMatrix 所有数值列（含 Year、Month）的皮尔逊相关矩阵
// 每对列只使用两者都有值的记录；Charging_Stations 全部缺失时不输出；无法计算时为 0
func CorrelationMatrix(records []models.DeliveryRecord) CorrMatrix {
	fields := make([]numericField, 0, len(corrFields))
	for _, f := range corrFields {
		if f.name == FieldChargingStations && !anyValue(records, f) {
			continue
		}
		fields = append(fields, f)
	}

	m := CorrMatrix{
		Columns: make([]string, len(fields)),
		Values:  make([][]float64, len(fields)),
	}
	for i, f := range fields {
		m.Columns[i] = f.name
		m.Values[i] = make([]float64, len(fields))
	}

	for i := range fields {
		for j := i; j < len(fields); j++ {
			x, y := pairedValues(records, fields[i], fields[j])
			var r float64
			if i == j {
				if StdDev(x) > 0 {
					r = 1
				}
			} else {
				r = Correlation(x, y)
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func anyValue(records []models.DeliveryRecord, f numericField) bool {
	for i := range records {
		if _, ok := f.value(&records[i]); ok {
			return true
		}
	}
	return false
}

// pairedValues 取两列都有值的记录
func pairedValues(records []models.DeliveryRecord, a, b numericField) ([]float64, []float64) {
	x := make([]float64, 0, len(records))
	y := make([]float64, 0, len(records))
	for i := range records {
		va, okA := a.value(&records[i])
		vb, okB := b.value(&records[i])
		if okA && okB {
			x = append(x, va)
			y = append(y, vb)
		}
	}
	return x, y
}

// 可统计取值次数的列
const (
	CountByRegion = "region"
	CountByModel  = "model"
	CountByYear   = "year"
	CountByMonth  = "month"
)

// ValueCount 取值及出现次数
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts 统计某列各取值的记录数
// region/model 按次数降序，year/month 按取值升序；未知列返回 nil
func ValueCounts(records []models.DeliveryRecord, column string) []ValueCount {
	var key func(*models.DeliveryRecord) string
	byValue := false
	switch column {
	case CountByRegion:
		key = func(r *models.DeliveryRecord) string { return string(r.Region) }
	case CountByModel:
		key = func(r *models.DeliveryRecord) string { return string(r.Model) }
	case CountByYear:
		key = func(r *models.DeliveryRecord) string { return strconv.Itoa(r.Year) }
		byValue = true
	case CountByMonth:
		key = func(r *models.DeliveryRecord) string { return strconv.Itoa(r.Month) }
		byValue = true
	default:
		return nil
	}

	counts := make(map[string]int)
	for i := range records {
		counts[key(&records[i])]++
	}
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}

	sort.Slice(out, func(i, j int) bool {
		if byValue {
			a, _ := strconv.Atoi(out[i].Value)
			b, _ := strconv.Atoi(out[j].Value)
			return a < b
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
