package service

import (
	"time"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"
)

// AssigneeOrdersPayload 按配送员分组的当日订单
type AssigneeOrdersPayload struct {
	AssignTo string                 `json:"assign_to"`
	Orders   []DeliveryOrderPayload `json:"orders"`
}

// DeliveryOrderPayload 配送单对外投影
type DeliveryOrderPayload struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Partner       string            `json:"partner"`
	Longitude     float64           `json:"longitude"`
	Latitude      float64           `json:"latitude"`
	DeliveryState string            `json:"delivery_state"`
	MoveLines     []MoveLinePayload `json:"move_lines"`
	SaleOrder     *SaleOrderPayload `json:"sale_order"`
}

// MoveLinePayload 配送单明细行投影
type MoveLinePayload struct {
	ProductID         uint    `json:"product_id"`
	ProductName       string  `json:"product_name"`
	ProductNameArabic string  `json:"product_name_arabic"`
	Quantity          float64 `json:"quantity"`
}

// SaleOrderPayload 销售单对外投影
// order 字段与 api_order_id 同值，为兼容旧客户端保留。
type SaleOrderPayload struct {
	ID             uint                   `json:"id"`
	Name           string                 `json:"name"`
	City           string                 `json:"city"`
	Order          string                 `json:"order"`
	DeliveryTime   string                 `json:"delivery_time"`
	PaymentMethod  string                 `json:"payment_method"`
	PaymentStatus  string                 `json:"payment_status"`
	DeliveryPeriod string                 `json:"delivery_period"`
	APIOrderID     string                 `json:"api_order_id"`
	DateOrder      *string                `json:"date_order"`
	PartnerID      *PartnerPayload        `json:"partner_id"`
	State          string                 `json:"state"`
	AmountTotal    models.Money           `json:"amount_total"`
	OrderLines     []SaleOrderLinePayload `json:"order_lines"`
}

// PartnerPayload 客户对外投影
type PartnerPayload struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// SaleOrderLinePayload 销售单明细行投影
type SaleOrderLinePayload struct {
	ProductID         uint         `json:"product_id"`
	ProductName       string       `json:"product_name"`
	ProductNameArabic string       `json:"product_name_arabic"`
	Quantity          float64      `json:"quantity"`
	PriceUnit         models.Money `json:"price_unit"`
	Size              string       `json:"size"`
	Cut               string       `json:"cut"`
	Preparation       string       `json:"preparation"`
	Shalwata          string       `json:"shalwata"`
	Subtotal          models.Money `json:"subtotal"`
}

// buildSaleOrderPayload 把销售单实体投影为对外结构
func buildSaleOrderPayload(order *models.SaleOrder) *SaleOrderPayload {
	if order == nil {
		return nil
	}

	payload := &SaleOrderPayload{
		ID:             order.ID,
		Name:           order.Name,
		City:           order.City,
		Order:          order.APIOrderID,
		DeliveryTime:   order.DeliveryTime,
		PaymentMethod:  order.PaymentMethod,
		PaymentStatus:  order.PaymentStatus,
		DeliveryPeriod: order.DeliveryPeriod,
		APIOrderID:     order.APIOrderID,
		State:          order.State,
		AmountTotal:    order.AmountTotal,
		OrderLines:     make([]SaleOrderLinePayload, 0, len(order.Lines)),
	}
	if order.DateOrder != nil {
		formatted := order.DateOrder.Format(time.RFC3339)
		payload.DateOrder = &formatted
	}
	if order.Partner != nil {
		payload.PartnerID = &PartnerPayload{
			ID:      order.Partner.ID,
			Name:    order.Partner.Name,
			Phone:   order.Partner.Phone,
			Address: order.Partner.Street,
			State:   order.Partner.Region,
			City:    order.Partner.City,
			Country: order.Partner.Country,
		}
	}
	for _, line := range order.Lines {
		row := SaleOrderLinePayload{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			PriceUnit:   line.PriceUnit,
			Size:        line.Size,
			Cut:         line.Cutting,
			Preparation: line.Preparation,
			Shalwata:    line.Shalwata,
			Subtotal:    line.PriceSubtotal,
		}
		if line.Product != nil {
			row.ProductName = line.Product.Name
			row.ProductNameArabic = line.Product.LocalizedName(constants.ProductLocaleArabic)
		}
		payload.OrderLines = append(payload.OrderLines, row)
	}
	return payload
}

// buildDeliveryOrderPayload 把配送单实体投影为对外结构
func buildDeliveryOrderPayload(order *models.DeliveryOrder) DeliveryOrderPayload {
	payload := DeliveryOrderPayload{
		ID:            order.ID,
		Name:          order.Name,
		Longitude:     order.Longitude,
		Latitude:      order.Latitude,
		DeliveryState: order.State,
		MoveLines:     make([]MoveLinePayload, 0, len(order.Lines)),
		SaleOrder:     buildSaleOrderPayload(order.SaleOrder),
	}
	if order.Partner != nil {
		payload.Partner = order.Partner.Name
	}
	for _, line := range order.Lines {
		row := MoveLinePayload{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if line.Product != nil {
			row.ProductName = line.Product.Name
			row.ProductNameArabic = line.Product.LocalizedName(constants.ProductLocaleArabic)
		}
		payload.MoveLines = append(payload.MoveLines, row)
	}
	return payload
}
