package router

import (
	"fmt"
	"strings"

	"github.com/wasel-delivery/internal/cache"
	"github.com/wasel-delivery/internal/config"
	"github.com/wasel-delivery/internal/http/handlers/deliveryapi"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := deliveryapi.NewHandler(c.DeliveryService, c.SaleOrderService)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "wd"
	}
	redisClient := cache.Client()
	apiRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:api", redisPrefix),
		WindowSeconds: cfg.Security.APIRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.APIRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 健康检查（不走鉴权）
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// API 路由组（API Key 鉴权 + 按凭据限流）
	api := r.Group("/api")
	api.Use(APIKeyAuthMiddleware(c.AuthService))
	api.Use(RateLimitMiddleware(redisClient, apiRule, KeyByAPIKey))
	{
		api.GET("/test", handler.Test)
		api.GET("/delivery_orders", handler.GetDeliveryOrders)
		api.POST("/update_delivery_orders", handler.UpdateDeliveryOrders)
		api.POST("/sale_order_data", handler.GetSaleOrderData)
	}

	return r
}
