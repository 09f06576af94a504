package worker

import (
	"context"
	"encoding/json"

	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/provider"
	"github.com/wasel-delivery/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskMonitorPing, c.handleMonitorPing)
}

func (c *Consumer) handleMonitorPing(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_monitor_ping_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.MonitorPingPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_monitor_ping_unmarshal_failed", "error", err)
		return err
	}
	if c.MonitorService == nil {
		logger.Warnw("worker_monitor_ping_skip_service_nil")
		return nil
	}

	if payload.EndpointID == 0 {
		return c.MonitorService.PingActiveEndpoints(ctx)
	}

	endpoint, err := c.MonitorEndpointRepo.GetByID(payload.EndpointID)
	if err != nil {
		logger.Warnw("worker_monitor_ping_fetch_endpoint_failed", "endpoint_id", payload.EndpointID, "error", err)
		return err
	}
	if endpoint == nil {
		logger.Debugw("worker_monitor_ping_skip_endpoint_not_found", "endpoint_id", payload.EndpointID)
		return nil
	}
	c.MonitorService.PingEndpoint(ctx, endpoint)
	return nil
}
