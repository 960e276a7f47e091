package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"teslastats/models"
)

// Sort 按 Year, Month, Region, Model 升序原地排序
func Sort(records []models.DeliveryRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.Model < b.Model
	})
}

// RegionNames 返回记录中出现过的地区，按名称排序
func RegionNames(records []models.DeliveryRecord) []models.Region {
	set := make(map[models.Region]struct{})
	for _, r := range records {
		set[r.Region] = struct{}{}
	}
	names := make([]models.Region, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// SplitByRegion 按地区拆分，每个地区内部按 Year, Month 排序
func SplitByRegion(records []models.DeliveryRecord) map[models.Region][]models.DeliveryRecord {
	out := make(map[models.Region][]models.DeliveryRecord)
	for _, r := range records {
		out[r.Region] = append(out[r.Region], r)
	}
	for _, rs := range out {
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].Year != rs[j].Year {
				return rs[i].Year < rs[j].Year
			}
			return rs[i].Month < rs[j].Month
		})
	}
	return out
}

// FilterRegion 只保留指定地区，region 为空时返回原切片
func FilterRegion(records []models.DeliveryRecord, region models.Region) []models.DeliveryRecord {
	if region == "" {
		return records
	}
	out := make([]models.DeliveryRecord, 0, len(records))
	for _, r := range records {
		if r.Region == region {
			out = append(out, r)
		}
	}
	return out
}

// SafeFileName 地区名转文件名："North America" -> "north_america"
func SafeFileName(region models.Region) string {
	s := strings.ToLower(strings.TrimSpace(string(region)))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "/", "_")
}

// SaveRegionFiles 每个地区写一个 <prefix><地区>.csv，返回写出的文件路径
func SaveRegionFiles(dir, prefix string, split map[models.Region][]models.DeliveryRecord, opts WriteOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建目录失败: %w", err)
	}

	regions := make([]models.Region, 0, len(split))
	for region := range split {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })

	paths := make([]string, 0, len(regions))
	for _, region := range regions {
		path := filepath.Join(dir, prefix+SafeFileName(region)+".csv")
		if err := WriteFile(path, split[region], opts); err != nil {
			return paths, fmt.Errorf("写出地区 %s 失败: %w", region, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
