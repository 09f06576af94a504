package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"
)

// MonitorService 外部端点拨测服务
type MonitorService struct {
	endpoints repository.MonitorEndpointRepository
	client    *http.Client
}

// NewMonitorService 创建拨测服务
func NewMonitorService(endpoints repository.MonitorEndpointRepository, timeout time.Duration) *MonitorService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MonitorService{
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
	}
}

// PingEndpoint 拨测单个端点并落一条调用记录
// 2xx/3xx 记成功，其余状态码与网络错误记失败；记录写入失败不向上冒泡。
func (s *MonitorService) PingEndpoint(ctx context.Context, endpoint *models.MonitorEndpoint) *models.MonitorEndpointCall {
	if s == nil || endpoint == nil {
		return nil
	}

	method := strings.ToUpper(strings.TrimSpace(endpoint.Method))
	if method == "" {
		method = http.MethodGet
	}

	call := &models.MonitorEndpointCall{
		EndpointID: endpoint.ID,
		Timestamp:  time.Now(),
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, endpoint.URL, nil)
	if err != nil {
		call.Status = constants.AuditStatusError
		call.ErrorMessage = err.Error()
	} else {
		resp, err := s.client.Do(req)
		call.ResponseTimeMS = float64(time.Since(start)) / float64(time.Millisecond)
		if err != nil {
			call.Status = constants.AuditStatusError
			call.ErrorMessage = err.Error()
		} else {
			resp.Body.Close()
			if resp.StatusCode < 400 {
				call.Status = constants.AuditStatusSuccess
			} else {
				call.Status = constants.AuditStatusError
				call.ErrorMessage = fmt.Sprintf("unexpected status code %d", resp.StatusCode)
			}
		}
	}

	if err := s.endpoints.RecordCall(call); err != nil {
		logger.Warnw("monitor_call_record_failed",
			"endpoint_id", endpoint.ID,
			"error", err)
	}
	logger.Debugw("monitor_endpoint_pinged",
		"endpoint_id", endpoint.ID,
		"url", endpoint.URL,
		"status", call.Status,
		"response_time_ms", call.ResponseTimeMS)
	return call
}

// PingActiveEndpoints 拨测所有启用中的端点
func (s *MonitorService) PingActiveEndpoints(ctx context.Context) error {
	if s == nil || s.endpoints == nil {
		return nil
	}
	endpoints, err := s.endpoints.ListActive()
	if err != nil {
		return fmt.Errorf("failed to list monitor endpoints: %w", err)
	}
	for i := range endpoints {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.PingEndpoint(ctx, &endpoints[i])
	}
	return nil
}
