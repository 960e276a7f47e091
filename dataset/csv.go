// Package dataset 读写 Tesla 交付数据集的 CSV 平面文件
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"teslastats/models"
)

// 列名
const (
	ColumnYear                = "Year"
	ColumnMonth               = "Month"
	ColumnRegion              = "Region"
	ColumnModel               = "Model"
	ColumnEstimatedDeliveries = "Estimated_Deliveries"
	ColumnProductionUnits     = "Production_Units"
	ColumnAvgPriceUSD         = "Avg_Price_USD"
	ColumnBatteryCapacityKWh  = "Battery_Capacity_kWh"
	ColumnRangeKm             = "Range_km"
	ColumnCO2SavedTons        = "CO2_Saved_tons"
	ColumnChargingStations    = "Charging_Stations"
)

// Header 标准表头，10 列均为必需
var Header = []string{
	ColumnYear,
	ColumnMonth,
	ColumnRegion,
	ColumnModel,
	ColumnEstimatedDeliveries,
	ColumnProductionUnits,
	ColumnAvgPriceUSD,
	ColumnBatteryCapacityKWh,
	ColumnRangeKm,
	ColumnCO2SavedTons,
}

const utf8BOM = "\xEF\xBB\xBF"

var (
	// ErrEmptyInput 没有表头
	ErrEmptyInput = errors.New("CSV 内容为空")
	// ErrMissingColumn 表头缺少必需列
	ErrMissingColumn = errors.New("缺少必需列")
	// ErrDuplicateKey (Year, Month, Region, Model) 重复
	ErrDuplicateKey = errors.New("重复的 (Year, Month, Region, Model)")
	// ErrMissingValue 必需单元格为空
	ErrMissingValue = errors.New("缺失值")
	// ErrMalformed CSV 语法错误
	ErrMalformed = errors.New("CSV 格式错误")
)

// RowError 某一数据行的错误，Line 为源文件行号（表头为第 1 行）
type RowError struct {
	Line   int    `json:"line"`
	Column string `json:"column,omitempty"`
	Err    error  `json:"-"`
}

func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("第 %d 行 %s: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("第 %d 行: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Table 一次读取的结果：合法记录与全部行错误
type Table struct {
	Records          []models.DeliveryRecord
	Errors           []*RowError
	TotalRows        int
	Duplicates       int
	ChargingStations bool
}

// Valid 是否没有任何行错误
func (t *Table) Valid() bool {
	return len(t.Errors) == 0
}

// Read 读取 CSV，按表头名称映射列（顺序任意，未知列忽略）
// 不合法的行记入 Table.Errors，不会中断读取；只有表头或 CSV 语法错误才返回 error
func Read(r io.Reader) (*Table, error) {
	return read(r, false)
}

// ReadStrict 遇到第一个不合法的行即返回错误
func ReadStrict(r io.Reader) (*Table, error) {
	return read(r, true)
}

// ReadFile 从文件读取
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func read(r io.Reader, strict bool) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, []byte(utf8BOM)) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("%w: 读取表头失败: %w", ErrMalformed, err)
	}

	index, hasCharging, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	table := &Table{ChargingStations: hasCharging}
	seen := make(map[models.RecordKey]int)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		table.TotalRows++

		rec, rowErr := parseRow(row, index, hasCharging, line)
		if rowErr == nil {
			if first, ok := seen[rec.Key()]; ok {
				table.Duplicates++
				rowErr = &RowError{Line: line, Err: fmt.Errorf("%w: 与第 %d 行重复", ErrDuplicateKey, first)}
			} else {
				seen[rec.Key()] = line
			}
		}

		if rowErr != nil {
			if strict {
				return nil, rowErr
			}
			table.Errors = append(table.Errors, rowErr)
			continue
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

func mapHeader(header []string) (map[string]int, bool, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range Header {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, false, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	_, hasCharging := index[ColumnChargingStations]
	return index, hasCharging, nil
}

func parseRow(row []string, index map[string]int, hasCharging bool, line int) (models.DeliveryRecord, *RowError) {
	var rec models.DeliveryRecord

	cell := func(column string) (string, *RowError) {
		i := index[column]
		if i >= len(row) {
			return "", &RowError{Line: line, Column: column, Err: ErrMissingValue}
		}
		v := strings.TrimSpace(row[i])
		if v == "" {
			return "", &RowError{Line: line, Column: column, Err: ErrMissingValue}
		}
		return v, nil
	}
	intCell := func(column string) (int64, *RowError) {
		v, rowErr := cell(column)
		if rowErr != nil {
			return 0, rowErr
		}
		n, err := parseInt(v)
		if err != nil {
			return 0, &RowError{Line: line, Column: column, Err: err}
		}
		return n, nil
	}
	floatCell := func(column string) (float64, *RowError) {
		v, rowErr := cell(column)
		if rowErr != nil {
			return 0, rowErr
		}
		f, err := parseFloat(v)
		if err != nil {
			return 0, &RowError{Line: line, Column: column, Err: err}
		}
		return f, nil
	}

	year, rowErr := intCell(ColumnYear)
	if rowErr != nil {
		return rec, rowErr
	}
	month, rowErr := intCell(ColumnMonth)
	if rowErr != nil {
		return rec, rowErr
	}
	region, rowErr := cell(ColumnRegion)
	if rowErr != nil {
		return rec, rowErr
	}
	model, rowErr := cell(ColumnModel)
	if rowErr != nil {
		return rec, rowErr
	}
	rec.Year = int(year)
	rec.Month = int(month)
	rec.Region = models.Region(region)
	rec.Model = models.VehicleModel(model)

	if rec.EstimatedDeliveries, rowErr = intCell(ColumnEstimatedDeliveries); rowErr != nil {
		return rec, rowErr
	}
	if rec.ProductionUnits, rowErr = intCell(ColumnProductionUnits); rowErr != nil {
		return rec, rowErr
	}
	if rec.AvgPriceUSD, rowErr = floatCell(ColumnAvgPriceUSD); rowErr != nil {
		return rec, rowErr
	}
	if rec.BatteryCapacityKWh, rowErr = floatCell(ColumnBatteryCapacityKWh); rowErr != nil {
		return rec, rowErr
	}
	if rec.RangeKm, rowErr = floatCell(ColumnRangeKm); rowErr != nil {
		return rec, rowErr
	}
	if rec.CO2SavedTons, rowErr = floatCell(ColumnCO2SavedTons); rowErr != nil {
		return rec, rowErr
	}

	// Charging_Stations 为可选列，空单元格视为缺失
	if hasCharging {
		if i := index[ColumnChargingStations]; i < len(row) && strings.TrimSpace(row[i]) != "" {
			n, err := parseInt(strings.TrimSpace(row[i]))
			if err != nil {
				return rec, &RowError{Line: line, Column: ColumnChargingStations, Err: err}
			}
			rec.ChargingStations = &n
		}
	}

	if err := rec.Validate(); err != nil {
		return rec, &RowError{Line: line, Err: err}
	}
	return rec, nil
}

// parseInt 接受整数或小数部分为 0 的数字（如 "55000.0"）
func parseInt(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q 不是整数", s)
	}
	// float64(math.MaxInt64) 即 2^63，本身已越界
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%q 超出整数范围", s)
	}
	return int64(f), nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q 不是有效数字", s)
	}
	return f, nil
}

// WriteOptions 序列化选项
type WriteOptions struct {
	// ChargingStations 追加 Charging_Stations 列
	ChargingStations bool
	// BOM 写入 UTF-8 BOM，方便 Excel 直接打开
	BOM bool
}

// Columns 按选项返回表头
func (o WriteOptions) Columns() []string {
	columns := append([]string(nil), Header...)
	if o.ChargingStations {
		columns = append(columns, ColumnChargingStations)
	}
	return columns
}

// Write 写出表头与每条记录一行
func Write(w io.Writer, records []models.DeliveryRecord, opts WriteOptions) error {
	if opts.BOM {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(opts.Columns()); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	for i := range records {
		if err := writer.Write(FormatRow(&records[i], opts.ChargingStations)); err != nil {
			return fmt.Errorf("写入记录失败: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile 写出到文件
func WriteFile(path string, records []models.DeliveryRecord, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	if err := Write(f, records, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatRow 将记录格式化为 CSV 行，浮点数使用最短可还原表示
func FormatRow(r *models.DeliveryRecord, chargingStations bool) []string {
	row := []string{
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		string(r.Region),
		string(r.Model),
		strconv.FormatInt(r.EstimatedDeliveries, 10),
		strconv.FormatInt(r.ProductionUnits, 10),
		formatFloat(r.AvgPriceUSD),
		formatFloat(r.BatteryCapacityKWh),
		formatFloat(r.RangeKm),
		formatFloat(r.CO2SavedTons),
	}
	if chargingStations {
		if r.ChargingStations != nil {
			row = append(row, strconv.FormatInt(*r.ChargingStations, 10))
		} else {
			row = append(row, "")
		}
	}
	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
