package worker

import (
	"context"
	"errors"
	"time"

	"github.com/wasel-delivery/internal/config"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步队列服务
type Service struct {
	name        string
	server      *asynq.Server
	mux         *asynq.ServeMux
	consumer    *Consumer
	queueClient *queue.Client
	monitor     config.MonitorConfig
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, monitorCfg config.MonitorConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	var queueClient *queue.Client
	if consumer.Container != nil {
		queueClient = consumer.Container.QueueClient
	}
	return &Service{
		name:        "worker",
		server:      server,
		mux:         mux,
		consumer:    consumer,
		queueClient: queueClient,
		monitor:     monitorCfg,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.monitor.Enabled && s.consumer != nil && s.consumer.MonitorService != nil {
		go s.runMonitorPingLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runMonitorPingLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.MonitorService == nil {
		return
	}
	interval := time.Duration(s.monitor.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	// 优先入队由消费端执行，队列不可用时退回本地直拨
	runOnce := func() {
		if s.queueClient.Enabled() {
			if err := s.queueClient.EnqueueMonitorPing(queue.MonitorPingPayload{}); err != nil {
				logger.Warnw("worker_monitor_ping_enqueue_failed", "error", err)
			}
			return
		}
		if err := s.consumer.MonitorService.PingActiveEndpoints(ctx); err != nil {
			logger.Warnw("worker_monitor_ping_loop_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
