package provider

import (
	"time"

	"github.com/wasel-delivery/internal/cache"
	"github.com/wasel-delivery/internal/config"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/queue"
	"github.com/wasel-delivery/internal/repository"
	"github.com/wasel-delivery/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	APIKeyRepo          repository.APIKeyRepository
	DeliveryOrderRepo   repository.DeliveryOrderRepository
	SaleOrderRepo       repository.SaleOrderRepository
	AuditLogRepo        repository.AuditLogRepository
	MonitorEndpointRepo repository.MonitorEndpointRepository

	// Services
	AuthService      *service.AuthService
	AuditService     *service.AuditService
	DeliveryService  *service.DeliveryService
	SaleOrderService *service.SaleOrderService
	MonitorService   *service.MonitorService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.APIKeyRepo = repository.NewAPIKeyRepository(db)
	c.DeliveryOrderRepo = repository.NewDeliveryOrderRepository(db)
	c.SaleOrderRepo = repository.NewSaleOrderRepository(db)
	c.AuditLogRepo = repository.NewAuditLogRepository(db)
	c.MonitorEndpointRepo = repository.NewMonitorEndpointRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.APIKeyRepo)
	c.AuditService = service.NewAuditService(c.AuditLogRepo)
	c.DeliveryService = service.NewDeliveryService(c.DeliveryOrderRepo, c.AuditService)
	c.SaleOrderService = service.NewSaleOrderService(c.SaleOrderRepo, c.AuditService)

	monitorTimeout := time.Duration(c.Config.Monitor.TimeoutSeconds) * time.Second
	c.MonitorService = service.NewMonitorService(c.MonitorEndpointRepo, monitorTimeout)
}
