package repository

import (
	"errors"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"

	"gorm.io/gorm"
)

// MonitorEndpointRepository 拨测端点数据访问接口
type MonitorEndpointRepository interface {
	ListActive() ([]models.MonitorEndpoint, error)
	GetByID(id uint) (*models.MonitorEndpoint, error)
	RecordCall(call *models.MonitorEndpointCall) error
}

// GormMonitorEndpointRepository GORM 实现
type GormMonitorEndpointRepository struct {
	db *gorm.DB
}

// NewMonitorEndpointRepository 创建拨测端点仓库
func NewMonitorEndpointRepository(db *gorm.DB) *GormMonitorEndpointRepository {
	return &GormMonitorEndpointRepository{db: db}
}

// ListActive 获取启用中的拨测端点
func (r *GormMonitorEndpointRepository) ListActive() ([]models.MonitorEndpoint, error) {
	endpoints := make([]models.MonitorEndpoint, 0)
	if err := r.db.
		Where("status = ?", constants.MonitorEndpointActive).
		Order("id asc").
		Find(&endpoints).Error; err != nil {
		return nil, err
	}
	return endpoints, nil
}

// GetByID 根据 ID 获取拨测端点
func (r *GormMonitorEndpointRepository) GetByID(id uint) (*models.MonitorEndpoint, error) {
	var endpoint models.MonitorEndpoint
	if err := r.db.First(&endpoint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &endpoint, nil
}

// RecordCall 记录单次拨测并累计端点计数，同一事务内完成。
func (r *GormMonitorEndpointRepository) RecordCall(call *models.MonitorEndpointCall) error {
	if call == nil {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(call).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"last_call":   call.Timestamp,
			"total_calls": gorm.Expr("total_calls + 1"),
		}
		if call.Status == constants.AuditStatusSuccess {
			updates["success_calls"] = gorm.Expr("success_calls + 1")
		}
		return tx.Model(&models.MonitorEndpoint{}).
			Where("id = ?", call.EndpointID).
			Updates(updates).Error
	})
}
