package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"teslastats/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []models.DeliveryRecord {
	return []models.DeliveryRecord{
		{Year: 2024, Month: 2, Region: models.RegionEurope, Model: models.ModelY, EstimatedDeliveries: 10},
		{Year: 2023, Month: 5, Region: models.RegionNorthAmerica, Model: models.Model3, EstimatedDeliveries: 20},
		{Year: 2023, Month: 5, Region: models.RegionAsia, Model: models.ModelS, EstimatedDeliveries: 30},
		{Year: 2023, Month: 1, Region: models.RegionEurope, Model: models.ModelX, EstimatedDeliveries: 40},
		{Year: 2023, Month: 5, Region: models.RegionAsia, Model: models.Model3, EstimatedDeliveries: 50},
	}
}

func TestSort(t *testing.T) {
	records := sampleRecords()
	Sort(records)

	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.Key().String())
	}
	assert.Equal(t, []string{
		"2023-01/Europe/Model X",
		"2023-05/Asia/Model 3",
		"2023-05/Asia/Model S",
		"2023-05/North America/Model 3",
		"2024-02/Europe/Model Y",
	}, got)
}

func TestRegionNamesAndSplit(t *testing.T) {
	records := sampleRecords()
	assert.Equal(t, []models.Region{models.RegionAsia, models.RegionEurope, models.RegionNorthAmerica}, RegionNames(records))

	split := SplitByRegion(records)
	require.Len(t, split, 3)
	europe := split[models.RegionEurope]
	require.Len(t, europe, 2)
	assert.Equal(t, 2023, europe[0].Year)
	assert.Equal(t, 2024, europe[1].Year)

	assert.Len(t, FilterRegion(records, models.RegionAsia), 2)
	assert.Len(t, FilterRegion(records, ""), 5)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "north_america", SafeFileName(models.RegionNorthAmerica))
	assert.Equal(t, "middle_east", SafeFileName(" Middle East "))
	assert.Equal(t, "a_b", SafeFileName("A/B"))
}

func TestSaveRegionFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "regions")
	paths, err := SaveRegionFiles(dir, "tesla_", SplitByRegion(sampleRecords()), WriteOptions{})
	require.NoError(t, err)

	// 每个地区都要写出，而不是只写最后一个
	assert.Equal(t, []string{
		filepath.Join(dir, "tesla_asia.csv"),
		filepath.Join(dir, "tesla_europe.csv"),
		filepath.Join(dir, "tesla_north_america.csv"),
	}, paths)

	f, err := os.Open(paths[1])
	require.NoError(t, err)
	defer f.Close()

	// 导出的地区文件可以再次读取（数值为 0 的字段仍合法）
	table, err := Read(f)
	require.NoError(t, err)
	assert.Len(t, table.Records, 2)
	assert.True(t, table.Valid())
}

func TestSaveRegionFiles_KeepsRegionColumn(t *testing.T) {
	dir := t.TempDir()
	paths, err := SaveRegionFiles(dir, "", SplitByRegion(sampleRecords()), WriteOptions{})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	header := strings.SplitN(strings.TrimPrefix(string(data), "\ufeff"), "\n", 2)[0]
	assert.Contains(t, strings.Split(strings.TrimSpace(header), ","), ColumnRegion)

	table, err := ReadFile(paths[0])
	require.NoError(t, err)
	for _, rec := range table.Records {
		assert.Equal(t, models.RegionAsia, rec.Region)
	}
}
