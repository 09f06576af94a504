package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"
)

// ErrNoOrdersFound 请求的配送单一个都不存在
var ErrNoOrdersFound = errors.New("No delivery orders found")

// DeliveryService 配送单业务服务
type DeliveryService struct {
	orders repository.DeliveryOrderRepository
	audit  *AuditService
	now    func() time.Time
}

// NewDeliveryService 创建配送单服务
func NewDeliveryService(orders repository.DeliveryOrderRepository, audit *AuditService) *DeliveryService {
	return &DeliveryService{
		orders: orders,
		audit:  audit,
		now:    time.Now,
	}
}

// FetchTodayOrders 获取当日待指派出库单，按配送员分组
// 时间窗取服务器本地时区的 [今日零点, 次日零点)；未指派的单据不进入分组。
// 每次调用固定落一条拉取审计，失败时计数归零。
func (s *DeliveryService) FetchTodayOrders(actor *models.APIKey) ([]AssigneeOrdersPayload, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	orders, err := s.orders.Search(repository.DeliveryOrderSearchFilter{
		Direction:     constants.DirectionOutgoing,
		State:         constants.DeliveryStateAwaitingAssignment,
		ScheduledFrom: dayStart,
		ScheduledTo:   dayEnd,
	})
	if err != nil {
		s.audit.RecordFetch(0, 0, constants.AuditStatusError, err.Error())
		return nil, err
	}

	// 按配送员首次出现的顺序分组，保证输出稳定
	groupIndex := make(map[string]int)
	groups := make([]AssigneeOrdersPayload, 0)
	for i := range orders {
		order := &orders[i]
		if order.Assignee == nil {
			continue
		}
		deliveryID := order.Assignee.DeliveryID
		idx, ok := groupIndex[deliveryID]
		if !ok {
			idx = len(groups)
			groupIndex[deliveryID] = idx
			groups = append(groups, AssigneeOrdersPayload{
				AssignTo: deliveryID,
				Orders:   make([]DeliveryOrderPayload, 0, 4),
			})
		}
		groups[idx].Orders = append(groups[idx].Orders, buildDeliveryOrderPayload(order))
	}

	s.audit.RecordFetch(len(orders), len(groups), constants.AuditStatusSuccess,
		fmt.Sprintf("Fetched %d delivery orders for %d assignees", len(orders), len(groups)))
	logger.Infow("delivery_orders_fetched",
		"actor", actorName(actor),
		"total_found", len(orders),
		"assignee_count", len(groups))
	return groups, nil
}

// UpdateOrders 批量推进配送单到目标状态
// done 与 cancel 走领域动作（出库扣减 / 取消），其余状态直接写入；
// 返回的状态以写入后的权威回读为准。
func (s *DeliveryService) UpdateOrders(actor *models.APIKey, orderIDs []uint, state string) ([]repository.DeliveryOrderState, error) {
	orders, err := s.orders.GetByIDs(orderIDs)
	if err != nil {
		s.audit.RecordUpdate(orderIDs, 0, state, constants.AuditStatusError, err.Error())
		return nil, err
	}
	if len(orders) == 0 {
		s.audit.RecordUpdate(orderIDs, 0, state, constants.AuditStatusError, ErrNoOrdersFound.Error())
		return nil, ErrNoOrdersFound
	}

	foundIDs := make([]uint, 0, len(orders))
	for i := range orders {
		foundIDs = append(foundIDs, orders[i].ID)
	}

	switch state {
	case constants.DeliveryStateDone:
		err = s.orders.Finalize(foundIDs)
	case constants.DeliveryStateCancel:
		err = s.orders.Cancel(foundIDs)
	default:
		err = s.orders.WriteState(foundIDs, state)
	}
	if err != nil {
		s.audit.RecordUpdate(orderIDs, 0, state, constants.AuditStatusError, err.Error())
		return nil, err
	}

	states, err := s.orders.ReadStates(foundIDs)
	if err != nil {
		s.audit.RecordUpdate(orderIDs, 0, state, constants.AuditStatusError, err.Error())
		return nil, err
	}

	// 审计记录客户端请求的 ID 列表，未命中的 ID 也留痕
	s.audit.RecordUpdate(orderIDs, len(states), state, constants.AuditStatusSuccess,
		fmt.Sprintf("Delivery orders updated to %s successfully", state))
	logger.Infow("delivery_orders_updated",
		"actor", actorName(actor),
		"target_state", state,
		"updated_count", len(states))
	return states, nil
}

// actorName 提取凭据名用于日志
func actorName(actor *models.APIKey) string {
	if actor == nil {
		return ""
	}
	return actor.Name
}
