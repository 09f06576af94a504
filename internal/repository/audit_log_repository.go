package repository

import (
	"github.com/wasel-delivery/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository 审计日志数据访问接口
// 三类日志只增不改，查询统一按时间倒序。
type AuditLogRepository interface {
	CreateFetchLog(log *models.DeliveryFetchLog) error
	CreateUpdateLog(log *models.DeliveryUpdateLog) error
	CreateSaleOrderFetchLog(log *models.SaleOrderFetchLog) error
	ListFetchLogs(filter DeliveryFetchLogListFilter) ([]models.DeliveryFetchLog, int64, error)
	ListUpdateLogs(filter DeliveryUpdateLogListFilter) ([]models.DeliveryUpdateLog, int64, error)
	ListSaleOrderFetchLogs(filter SaleOrderFetchLogListFilter) ([]models.SaleOrderFetchLog, int64, error)
}

// GormAuditLogRepository GORM 实现
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository 创建审计日志仓库
func NewAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// CreateFetchLog 写入配送单拉取日志
func (r *GormAuditLogRepository) CreateFetchLog(log *models.DeliveryFetchLog) error {
	if log == nil {
		return nil
	}
	return r.db.Create(log).Error
}

// CreateUpdateLog 写入配送单变更日志
func (r *GormAuditLogRepository) CreateUpdateLog(log *models.DeliveryUpdateLog) error {
	if log == nil {
		return nil
	}
	return r.db.Create(log).Error
}

// CreateSaleOrderFetchLog 写入销售单查询日志
func (r *GormAuditLogRepository) CreateSaleOrderFetchLog(log *models.SaleOrderFetchLog) error {
	if log == nil {
		return nil
	}
	return r.db.Create(log).Error
}

// ListFetchLogs 查询配送单拉取日志
func (r *GormAuditLogRepository) ListFetchLogs(filter DeliveryFetchLogListFilter) ([]models.DeliveryFetchLog, int64, error) {
	query := r.db.Model(&models.DeliveryFetchLog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = paginateLogs(query, filter.Page, filter.PageSize)

	logs := make([]models.DeliveryFetchLog, 0)
	if err := query.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListUpdateLogs 查询配送单变更日志
func (r *GormAuditLogRepository) ListUpdateLogs(filter DeliveryUpdateLogListFilter) ([]models.DeliveryUpdateLog, int64, error) {
	query := r.db.Model(&models.DeliveryUpdateLog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TargetState != "" {
		query = query.Where("target_state = ?", filter.TargetState)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = paginateLogs(query, filter.Page, filter.PageSize)

	logs := make([]models.DeliveryUpdateLog, 0)
	if err := query.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListSaleOrderFetchLogs 查询销售单查询日志
func (r *GormAuditLogRepository) ListSaleOrderFetchLogs(filter SaleOrderFetchLogListFilter) ([]models.SaleOrderFetchLog, int64, error) {
	query := r.db.Model(&models.SaleOrderFetchLog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SaleOrderID != 0 {
		query = query.Where("sale_order_id = ?", filter.SaleOrderID)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = paginateLogs(query, filter.Page, filter.PageSize)

	logs := make([]models.SaleOrderFetchLog, 0)
	if err := query.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
