package queue

import (
	"encoding/json"

	"github.com/wasel-delivery/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskMonitorPing 端点拨测任务
	TaskMonitorPing = constants.TaskMonitorPing
)

// MonitorPingPayload 端点拨测任务载荷
// EndpointID 为 0 表示拨测全部启用中的端点。
type MonitorPingPayload struct {
	EndpointID uint `json:"endpoint_id"`
}

// NewMonitorPingTask 创建端点拨测任务
func NewMonitorPingTask(payload MonitorPingPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMonitorPing, body), nil
}
