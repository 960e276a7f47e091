package models

import (
	"fmt"
	"strings"
	"time"
)

// 年份与月份取值范围
const (
	MinYear  = 2015
	MaxYear  = 2025
	MinMonth = 1
	MaxMonth = 12
)

// Region 交付地区
type Region string

// 地区常量
const (
	RegionNorthAmerica Region = "North America"
	RegionEurope       Region = "Europe"
	RegionAsia         Region = "Asia"
	RegionMiddleEast   Region = "Middle East"
)

// Regions 获取所有地区
func Regions() []Region {
	return []Region{
		RegionNorthAmerica,
		RegionEurope,
		RegionAsia,
		RegionMiddleEast,
	}
}

// IsValid 是否为已知地区
func (r Region) IsValid() bool {
	for _, v := range Regions() {
		if v == r {
			return true
		}
	}
	return false
}

// VehicleModel 车型
type VehicleModel string

// 车型常量
const (
	ModelS          VehicleModel = "Model S"
	Model3          VehicleModel = "Model 3"
	ModelX          VehicleModel = "Model X"
	ModelY          VehicleModel = "Model Y"
	ModelCybertruck VehicleModel = "Cybertruck"
)

// VehicleModels 获取所有车型
func VehicleModels() []VehicleModel {
	return []VehicleModel{
		ModelS,
		Model3,
		ModelX,
		ModelY,
		ModelCybertruck,
	}
}

// IsValid 是否为已知车型
func (m VehicleModel) IsValid() bool {
	for _, v := range VehicleModels() {
		if v == m {
			return true
		}
	}
	return false
}

// DeliveryRecord Tesla 全球交付记录，每个 (年, 月, 地区, 车型) 一行
type DeliveryRecord struct {
	ID                  uint         `json:"id" gorm:"primaryKey"`
	Year                int          `json:"year" gorm:"not null;uniqueIndex:idx_delivery_key,priority:1"`
	Month               int          `json:"month" gorm:"not null;uniqueIndex:idx_delivery_key,priority:2"`
	Region              Region       `json:"region" gorm:"size:32;not null;uniqueIndex:idx_delivery_key,priority:3"`
	Model               VehicleModel `json:"model" gorm:"size:32;not null;uniqueIndex:idx_delivery_key,priority:4"`
	EstimatedDeliveries int64        `json:"estimated_deliveries" gorm:"not null"`
	ProductionUnits     int64        `json:"production_units" gorm:"not null"`
	AvgPriceUSD         float64      `json:"avg_price_usd" gorm:"column:avg_price_usd;not null"`
	BatteryCapacityKWh  float64      `json:"battery_capacity_kwh" gorm:"column:battery_capacity_kwh;not null"`
	RangeKm             float64      `json:"range_km" gorm:"not null"`
	CO2SavedTons        float64      `json:"co2_saved_tons" gorm:"column:co2_saved_tons;not null"`
	ChargingStations    *int64       `json:"charging_stations,omitempty"`
	ImportBatchID       string       `json:"import_batch_id,omitempty" gorm:"size:36;index"`
	UpdatedBy           uint         `json:"updated_by" gorm:"index"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// TableName 设置表名
func (DeliveryRecord) TableName() string {
	return "delivery_records"
}

// RecordKey 记录唯一键
type RecordKey struct {
	Year   int
	Month  int
	Region Region
	Model  VehicleModel
}

func (k RecordKey) String() string {
	return fmt.Sprintf("%04d-%02d/%s/%s", k.Year, k.Month, k.Region, k.Model)
}

// Key 返回 (Year, Month, Region, Model) 唯一键
func (r *DeliveryRecord) Key() RecordKey {
	return RecordKey{Year: r.Year, Month: r.Month, Region: r.Region, Model: r.Model}
}

// Date 返回记录所属月份的第一天
func (r *DeliveryRecord) Date() time.Time {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 记录校验失败，包含全部不合法字段
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "记录校验失败: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate 校验取值范围、枚举与非负约束
func (r *DeliveryRecord) Validate() error {
	verr := &ValidationError{}

	if r.Year < MinYear || r.Year > MaxYear {
		verr.add("Year", "年份 %d 超出范围 [%d, %d]", r.Year, MinYear, MaxYear)
	}
	if r.Month < MinMonth || r.Month > MaxMonth {
		verr.add("Month", "月份 %d 超出范围 [%d, %d]", r.Month, MinMonth, MaxMonth)
	}
	if !r.Region.IsValid() {
		verr.add("Region", "未知地区 %q", string(r.Region))
	}
	if !r.Model.IsValid() {
		verr.add("Model", "未知车型 %q", string(r.Model))
	}
	if r.EstimatedDeliveries < 0 {
		verr.add("Estimated_Deliveries", "不能为负数")
	}
	if r.ProductionUnits < 0 {
		verr.add("Production_Units", "不能为负数")
	}
	// NaN 比较总是 false，用 !(x >= 0) 一并拒绝
	if !(r.AvgPriceUSD >= 0) {
		verr.add("Avg_Price_USD", "不能为负数")
	}
	if !(r.BatteryCapacityKWh >= 0) {
		verr.add("Battery_Capacity_kWh", "不能为负数")
	}
	if !(r.RangeKm >= 0) {
		verr.add("Range_km", "不能为负数")
	}
	if !(r.CO2SavedTons >= 0) {
		verr.add("CO2_Saved_tons", "不能为负数")
	}
	if r.ChargingStations != nil && *r.ChargingStations < 0 {
		verr.add("Charging_Stations", "不能为负数")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
