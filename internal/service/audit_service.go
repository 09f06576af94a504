package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"
)

// AuditService 审计日志服务
// 审计写入是尽力而为：失败只打日志，绝不影响业务响应。
type AuditService struct {
	repo repository.AuditLogRepository
}

// NewAuditService 创建审计日志服务
func NewAuditService(repo repository.AuditLogRepository) *AuditService {
	return &AuditService{repo: repo}
}

// RecordFetch 记录一次配送单拉取
func (s *AuditService) RecordFetch(totalFound, assigneeCount int, status, message string) {
	if s == nil || s.repo == nil {
		return
	}
	err := s.repo.CreateFetchLog(&models.DeliveryFetchLog{
		Timestamp:     time.Now(),
		TotalFound:    totalFound,
		AssigneeCount: assigneeCount,
		Status:        status,
		Message:       message,
	})
	if err != nil {
		logger.Warnw("delivery_fetch_log_write_failed", "error", err)
	}
}

// RecordUpdate 记录一次配送单状态变更
func (s *AuditService) RecordUpdate(orderIDs []uint, updatedCount int, targetState, status, message string) {
	if s == nil || s.repo == nil {
		return
	}
	err := s.repo.CreateUpdateLog(&models.DeliveryUpdateLog{
		Timestamp:    time.Now(),
		UpdatedCount: updatedCount,
		TargetState:  targetState,
		OrderIDs:     joinOrderIDs(orderIDs),
		Status:       status,
		Message:      message,
	})
	if err != nil {
		logger.Warnw("delivery_update_log_write_failed", "error", err)
	}
}

// RecordSaleOrderFetch 记录一次销售单查询
func (s *AuditService) RecordSaleOrderFetch(saleOrderID uint, status, message string) {
	if s == nil || s.repo == nil {
		return
	}
	err := s.repo.CreateSaleOrderFetchLog(&models.SaleOrderFetchLog{
		Timestamp:   time.Now(),
		SaleOrderID: saleOrderID,
		Status:      status,
		Message:     message,
	})
	if err != nil {
		logger.Warnw("sale_order_fetch_log_write_failed", "error", err)
	}
}

// ListFetchLogs 查询配送单拉取日志
func (s *AuditService) ListFetchLogs(filter repository.DeliveryFetchLogListFilter) ([]models.DeliveryFetchLog, int64, error) {
	if s == nil || s.repo == nil {
		return []models.DeliveryFetchLog{}, 0, nil
	}
	return s.repo.ListFetchLogs(filter)
}

// ListUpdateLogs 查询配送单变更日志
func (s *AuditService) ListUpdateLogs(filter repository.DeliveryUpdateLogListFilter) ([]models.DeliveryUpdateLog, int64, error) {
	if s == nil || s.repo == nil {
		return []models.DeliveryUpdateLog{}, 0, nil
	}
	return s.repo.ListUpdateLogs(filter)
}

// ListSaleOrderFetchLogs 查询销售单查询日志
func (s *AuditService) ListSaleOrderFetchLogs(filter repository.SaleOrderFetchLogListFilter) ([]models.SaleOrderFetchLog, int64, error) {
	if s == nil || s.repo == nil {
		return []models.SaleOrderFetchLog{}, 0, nil
	}
	return s.repo.ListSaleOrderFetchLogs(filter)
}

// joinOrderIDs 把单据 ID 拼成逗号分隔串
func joinOrderIDs(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ",")
}
