package repository

import (
	"errors"
	"fmt"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"

	"gorm.io/gorm"
)

// ErrInsufficientStock 成品库存不足，无法完成出库
var ErrInsufficientStock = errors.New("insufficient stock")

// DeliveryOrderRepository 配送单数据访问接口
type DeliveryOrderRepository interface {
	Search(filter DeliveryOrderSearchFilter) ([]models.DeliveryOrder, error)
	GetByIDs(ids []uint) ([]models.DeliveryOrder, error)
	ReadStates(ids []uint) ([]DeliveryOrderState, error)
	WriteState(ids []uint, state string) error
	Finalize(ids []uint) error
	Cancel(ids []uint) error
	WithTx(tx *gorm.DB) *GormDeliveryOrderRepository
}

// GormDeliveryOrderRepository GORM 实现
type GormDeliveryOrderRepository struct {
	db *gorm.DB
}

// NewDeliveryOrderRepository 创建配送单仓库
func NewDeliveryOrderRepository(db *gorm.DB) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDeliveryOrderRepository) WithTx(tx *gorm.DB) *GormDeliveryOrderRepository {
	if tx == nil {
		return r
	}
	return &GormDeliveryOrderRepository{db: tx}
}

func (r *GormDeliveryOrderRepository) withDetail(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Partner").
		Preload("Assignee").
		Preload("Lines").
		Preload("Lines.Product").
		Preload("SaleOrder").
		Preload("SaleOrder.Partner").
		Preload("SaleOrder.Lines").
		Preload("SaleOrder.Lines.Product")
}

// Search 按方向、状态与计划时间窗检索配送单
// 时间窗左闭右开，保证跨日期边界的单据不重不漏。
func (r *GormDeliveryOrderRepository) Search(filter DeliveryOrderSearchFilter) ([]models.DeliveryOrder, error) {
	orders := make([]models.DeliveryOrder, 0)
	query := r.db.Model(&models.DeliveryOrder{})

	if filter.Direction != "" {
		query = query.Where("direction = ?", filter.Direction)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if !filter.ScheduledFrom.IsZero() {
		query = query.Where("scheduled_at >= ?", filter.ScheduledFrom)
	}
	if !filter.ScheduledTo.IsZero() {
		query = query.Where("scheduled_at < ?", filter.ScheduledTo)
	}

	query = r.withDetail(query)
	if err := query.Order("id asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByIDs 按 ID 集合获取配送单
func (r *GormDeliveryOrderRepository) GetByIDs(ids []uint) ([]models.DeliveryOrder, error) {
	orders := make([]models.DeliveryOrder, 0)
	if len(ids) == 0 {
		return orders, nil
	}
	if err := r.db.Preload("Lines").Preload("Lines.Product").
		Where("id IN ?", ids).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ReadStates 读取配送单的状态投影（变更后的权威回读）
func (r *GormDeliveryOrderRepository) ReadStates(ids []uint) ([]DeliveryOrderState, error) {
	rows := make([]DeliveryOrderState, 0)
	if len(ids) == 0 {
		return rows, nil
	}
	if err := r.db.Model(&models.DeliveryOrder{}).
		Select("id", "name", "state").
		Where("id IN ?", ids).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteState 直接写入目标状态（不触发领域动作）
func (r *GormDeliveryOrderRepository) WriteState(ids []uint, state string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.DeliveryOrder{}).
		Where("id IN ?", ids).
		Update("state", state).Error
}

// Finalize 完成出库：校验并扣减每行库存，整批同一事务，任一行失败全部回滚。
// 已处于 done 的单据跳过校验与扣减，重复调用不会二次出库。
func (r *GormDeliveryOrderRepository) Finalize(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var orders []models.DeliveryOrder
		if err := tx.Preload("Lines").Preload("Lines.Product").
			Where("id IN ?", ids).
			Find(&orders).Error; err != nil {
			return err
		}

		pending := make([]*models.DeliveryOrder, 0, len(orders))
		for i := range orders {
			if orders[i].State == constants.DeliveryStateDone {
				continue
			}
			pending = append(pending, &orders[i])
		}
		if len(pending) == 0 {
			return nil
		}

		for _, order := range pending {
			for _, line := range order.Lines {
				if line.Product == nil {
					return fmt.Errorf("delivery order %s line %d: product %d not found", order.Name, line.ID, line.ProductID)
				}
				if line.Product.StockQty < line.Quantity {
					return fmt.Errorf("%w: order %s product %s (have %.2f, need %.2f)",
						ErrInsufficientStock, order.Name, line.Product.Name, line.Product.StockQty, line.Quantity)
				}
			}
		}

		for _, order := range pending {
			for _, line := range order.Lines {
				result := tx.Model(&models.Product{}).
					Where("id = ? AND stock_qty >= ?", line.ProductID, line.Quantity).
					Update("stock_qty", gorm.Expr("stock_qty - ?", line.Quantity))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return fmt.Errorf("%w: order %s product %d", ErrInsufficientStock, order.Name, line.ProductID)
				}
			}
		}

		return tx.Model(&models.DeliveryOrder{}).
			Where("id IN ? AND state <> ?", ids, constants.DeliveryStateDone).
			Update("state", constants.DeliveryStateDone).Error
	})
}

// Cancel 取消配送单：整批同一事务写入 cancel 状态并释放配送员占用。
func (r *GormDeliveryOrderRepository) Cancel(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.DeliveryOrder{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"state":       constants.DeliveryStateCancel,
				"assignee_id": nil,
			}).Error
	})
}
