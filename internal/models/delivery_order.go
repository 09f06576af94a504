package models

import "time"

// DeliveryOrder 配送单
// 状态机：draft -> waiting -> confirmed -> assigned -> done | cancel，
// 另有内部状态 delivery_assign 表示已进入当日待指派池。
type DeliveryOrder struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"` // 单号（如 WH/OUT/00042）
	PartnerID   uint      `gorm:"index;not null" json:"partner_id"`
	AssigneeID  *uint     `gorm:"index" json:"assignee_id,omitempty"` // 配送员（未指派为空）
	SaleOrderID *uint     `gorm:"index" json:"sale_order_id,omitempty"`
	Direction   string    `gorm:"type:varchar(16);index;not null" json:"direction"` // outgoing / incoming
	State       string    `gorm:"type:varchar(32);index;not null" json:"state"`
	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Partner   *Partner            `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Assignee  *Assignee           `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	SaleOrder *SaleOrder          `gorm:"foreignKey:SaleOrderID" json:"sale_order,omitempty"`
	Lines     []DeliveryOrderLine `gorm:"foreignKey:DeliveryOrderID" json:"lines,omitempty"`
}

// TableName 指定表名
func (DeliveryOrder) TableName() string {
	return "delivery_orders"
}

// DeliveryOrderLine 配送单明细行（只读投影）
type DeliveryOrderLine struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	DeliveryOrderID uint      `gorm:"index;not null" json:"delivery_order_id"`
	ProductID       uint      `gorm:"index;not null" json:"product_id"`
	Quantity        float64   `gorm:"not null" json:"quantity"`
	CreatedAt       time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (DeliveryOrderLine) TableName() string {
	return "delivery_order_lines"
}
