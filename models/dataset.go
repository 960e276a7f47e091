package models

// Column 数据集列说明
type Column struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Values      []string `json:"values,omitempty"`
}

// DatasetInfo 数据集目录条目
type DatasetInfo struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SourceURL   string   `json:"source_url"`
	Documented  bool     `json:"documented"`
	Columns     []Column `json:"columns,omitempty"`
}

// 数据集标识
const (
	DatasetTeslaDeliveries    = "tesla-deliveries"
	DatasetCarPricePrediction = "car-price-prediction"
)

// DeliveryColumns Tesla 交付数据集的列定义，顺序即 CSV 表头顺序
func DeliveryColumns() []Column {
	regions := make([]string, 0, len(Regions()))
	for _, r := range Regions() {
		regions = append(regions, string(r))
	}
	vehicleModels := make([]string, 0, len(VehicleModels()))
	for _, m := range VehicleModels() {
		vehicleModels = append(vehicleModels, string(m))
	}

	return []Column{
		{Name: "Year", Type: "integer", Description: "年份 (2015-2025)", Required: true},
		{Name: "Month", Type: "integer", Description: "月份 (1-12)", Required: true},
		{Name: "Region", Type: "category", Description: "交付地区", Required: true, Values: regions},
		{Name: "Model", Type: "category", Description: "车型", Required: true, Values: vehicleModels},
		{Name: "Estimated_Deliveries", Type: "integer", Description: "估算交付量", Required: true},
		{Name: "Production_Units", Type: "integer", Description: "生产数量", Required: true},
		{Name: "Avg_Price_USD", Type: "number", Description: "平均售价（美元）", Required: true},
		{Name: "Battery_Capacity_kWh", Type: "number", Description: "电池容量（kWh）", Required: true},
		{Name: "Range_km", Type: "number", Description: "续航里程（km）", Required: true},
		{Name: "CO2_Saved_tons", Type: "number", Description: "减少的 CO2 排放（吨）", Required: true},
		{Name: "Charging_Stations", Type: "integer", Description: "充电站数量（可选列）", Required: false},
	}
}

// Catalog 数据集目录
// 汽车价格预测数据集只有标题和外部链接，没有公开列定义
func Catalog() []DatasetInfo {
	return []DatasetInfo{
		{
			Key:         DatasetTeslaDeliveries,
			Title:       "Tesla Global Deliveries 2015-2025",
			Description: "按年、月、地区、车型统计的 Tesla 全球交付、产量、价格、电池与续航数据",
			SourceURL:   "https://www.kaggle.com/datasets",
			Documented:  true,
			Columns:     DeliveryColumns(),
		},
		{
			Key:         DatasetCarPricePrediction,
			Title:       "Car Price Prediction",
			Description: "外部托管的汽车价格预测数据集，未提供列说明",
			SourceURL:   "https://www.kaggle.com/datasets",
			Documented:  false,
		},
	}
}
