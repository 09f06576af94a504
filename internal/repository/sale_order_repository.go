package repository

import (
	"errors"

	"github.com/wasel-delivery/internal/models"

	"gorm.io/gorm"
)

// SaleOrderRepository 销售单数据访问接口
type SaleOrderRepository interface {
	GetByID(id uint) (*models.SaleOrder, error)
	GetByAPIOrderID(apiOrderID string) (*models.SaleOrder, error)
	GetByName(name string) (*models.SaleOrder, error)
}

// GormSaleOrderRepository GORM 实现
type GormSaleOrderRepository struct {
	db *gorm.DB
}

// NewSaleOrderRepository 创建销售单仓库
func NewSaleOrderRepository(db *gorm.DB) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{db: db}
}

func (r *GormSaleOrderRepository) withDetail(query *gorm.DB) *gorm.DB {
	return query.Preload("Partner").Preload("Lines").Preload("Lines.Product")
}

// GetByID 根据 ID 获取销售单
func (r *GormSaleOrderRepository) GetByID(id uint) (*models.SaleOrder, error) {
	var order models.SaleOrder
	if err := r.withDetail(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByAPIOrderID 根据上游外部订单号获取销售单
func (r *GormSaleOrderRepository) GetByAPIOrderID(apiOrderID string) (*models.SaleOrder, error) {
	var order models.SaleOrder
	if err := r.withDetail(r.db).Where("api_order_id = ?", apiOrderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByName 根据单号获取销售单
func (r *GormSaleOrderRepository) GetByName(name string) (*models.SaleOrder, error) {
	var order models.SaleOrder
	if err := r.withDetail(r.db).Where("name = ?", name).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
