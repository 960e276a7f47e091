package router

import (
	"time"

	"teslastats/api"
	"teslastats/config"
	_ "teslastats/docs"
	"teslastats/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		v1.POST("/auth/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)

		// 数据集目录
		datasetHandler := api.NewDatasetHandler()
		v1.GET("/datasets", datasetHandler.Catalog)
		v1.GET("/datasets/schema", datasetHandler.Schema)

		// 交付记录查询
		deliveryHandler := api.NewDeliveryHandler()
		deliveries := v1.Group("/deliveries")
		{
			deliveries.GET("", deliveryHandler.List)
			deliveries.GET("/regions", deliveryHandler.Regions)
			deliveries.GET("/:id", deliveryHandler.Get)
		}

		// CSV 校验（不落库）
		importHandler := api.NewImportHandler(cfg)
		v1.POST("/validate", middleware.ValidateRateLimit(cfg.Import.RatePerMinute, time.Minute), importHandler.Validate)

		// 统计分析
		statsHandler := api.NewStatsHandler()
		statistics := v1.Group("/statistics")
		{
			statistics.GET("/describe", statsHandler.Describe)
			statistics.GET("/counts", statsHandler.Counts)
			statistics.GET("/monthly", statsHandler.Monthly)
			statistics.GET("/production", statsHandler.Production)
			statistics.GET("/price", statsHandler.Price)
			statistics.GET("/share", statsHandler.Share)
			statistics.GET("/battery", statsHandler.Battery)
			statistics.GET("/infra", statsHandler.Infra)
			statistics.GET("/correlation", statsHandler.Correlation)
		}

		// 导出相关
		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 交付记录维护
			authorized.POST("/deliveries", deliveryHandler.Create)
			authorized.PUT("/deliveries/:id", deliveryHandler.Update)
			authorized.DELETE("/deliveries/:id", deliveryHandler.Delete)

			// 导入
			imports := authorized.Group("/imports")
			{
				imports.POST("", middleware.ImportRateLimit(cfg.Import.RatePerMinute, time.Minute), importHandler.Import)
				imports.GET("", importHandler.ListBatches)
				imports.GET("/:id", importHandler.GetBatch)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
