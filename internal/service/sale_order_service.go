package service

import (
	"errors"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"
)

// ErrSaleOrderNotFound 按任一标识都未能命中销售单
var ErrSaleOrderNotFound = errors.New("Sale Order not found")

// ErrMissingLookupParam 未提供任何可用的查询标识
var ErrMissingLookupParam = errors.New("Please provide one of: sale_order_id, api_order_id, or name")

// SaleOrderService 销售单查询服务
type SaleOrderService struct {
	orders repository.SaleOrderRepository
	audit  *AuditService
}

// NewSaleOrderService 创建销售单服务
func NewSaleOrderService(orders repository.SaleOrderRepository, audit *AuditService) *SaleOrderService {
	return &SaleOrderService{orders: orders, audit: audit}
}

// FindSaleOrderInput 销售单查询标识，按 ID > 外部订单号 > 单号的优先级取用
type FindSaleOrderInput struct {
	SaleOrderID uint
	APIOrderID  string
	Name        string
}

// FindSaleOrder 按优先级解析标识并返回销售单详情投影
func (s *SaleOrderService) FindSaleOrder(actor *models.APIKey, input FindSaleOrderInput) (*SaleOrderPayload, error) {
	var (
		order *models.SaleOrder
		err   error
	)
	switch {
	case input.SaleOrderID != 0:
		order, err = s.orders.GetByID(input.SaleOrderID)
	case input.APIOrderID != "":
		order, err = s.orders.GetByAPIOrderID(input.APIOrderID)
	case input.Name != "":
		order, err = s.orders.GetByName(input.Name)
	default:
		s.audit.RecordSaleOrderFetch(0, constants.AuditStatusError, ErrMissingLookupParam.Error())
		return nil, ErrMissingLookupParam
	}
	if err != nil {
		s.audit.RecordSaleOrderFetch(input.SaleOrderID, constants.AuditStatusError, err.Error())
		return nil, err
	}
	if order == nil {
		s.audit.RecordSaleOrderFetch(input.SaleOrderID, constants.AuditStatusError, ErrSaleOrderNotFound.Error())
		return nil, ErrSaleOrderNotFound
	}

	s.audit.RecordSaleOrderFetch(order.ID, constants.AuditStatusSuccess, "Sale order data fetched successfully")
	logger.Infow("sale_order_fetched",
		"actor", actorName(actor),
		"sale_order_id", order.ID,
		"name", order.Name)
	return buildSaleOrderPayload(order), nil
}
