package api

import (
	"errors"
	"log"
	"strings"

	"teslastats/cache"
	"teslastats/models"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// regionParam 读取并校验 region 查询参数，为空表示全部地区
func regionParam(c *gin.Context) (models.Region, bool) {
	region := models.Region(strings.TrimSpace(c.Query("region")))
	if region != "" && !region.IsValid() {
		BadRequest(c, "未知地区: "+string(region))
		return "", false
	}
	return region, true
}

// validationFailed 校验失败时返回 400 与字段列表
func validationFailed(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		ErrorWithData(c, 400, "记录校验失败", verr.Fields)
		return
	}
	BadRequest(c, err.Error())
}

// invalidateStats 数据变更后清空统计缓存
func invalidateStats(c *gin.Context) {
	if err := cache.Default().Invalidate(c.Request.Context()); err != nil {
		log.Printf("警告: 清理统计缓存失败: %v", err)
	}
}

// mysqlDuplicateEntry MySQL 唯一键冲突错误码
const mysqlDuplicateEntry = 1062

// isDuplicateKey 写入是否因唯一索引冲突失败
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
