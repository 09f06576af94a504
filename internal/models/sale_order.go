package models

import "time"

// SaleOrder 销售单（上游商城同步过来的快照）
type SaleOrder struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Name           string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"` // 单号（如 S00042）
	APIOrderID     string     `gorm:"type:varchar(64);index" json:"api_order_id"`        // 上游外部订单号
	PartnerID      uint       `gorm:"index;not null" json:"partner_id"`
	State          string     `gorm:"type:varchar(32);index;not null" json:"state"`
	AmountTotal    Money      `gorm:"type:decimal(20,2);not null;default:0" json:"amount_total"`
	DateOrder      *time.Time `gorm:"index" json:"date_order"`
	City           string     `gorm:"type:varchar(100)" json:"city"`
	DeliveryTime   string     `gorm:"type:varchar(64)" json:"delivery_time"`   // 配送时间窗
	DeliveryPeriod string     `gorm:"type:varchar(64)" json:"delivery_period"` // 配送时段
	PaymentMethod  string     `gorm:"type:varchar(64)" json:"payment_method"`
	PaymentStatus  string     `gorm:"type:varchar(32)" json:"payment_status"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Partner *Partner        `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Lines   []SaleOrderLine `gorm:"foreignKey:SaleOrderID" json:"lines,omitempty"`
}

// TableName 指定表名
func (SaleOrder) TableName() string {
	return "sale_orders"
}

// SaleOrderLine 销售单明细行，携带订单级定制属性
type SaleOrderLine struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SaleOrderID   uint      `gorm:"index;not null" json:"sale_order_id"`
	ProductID     uint      `gorm:"index;not null" json:"product_id"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	PriceUnit     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price_unit"`
	PriceSubtotal Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price_subtotal"`
	Size          string    `gorm:"type:varchar(64)" json:"size"`
	Cutting       string    `gorm:"type:varchar(64)" json:"cutting"`     // 切法
	Preparation   string    `gorm:"type:varchar(64)" json:"preparation"` // 加工方式
	Shalwata      string    `gorm:"type:varchar(64)" json:"shalwata"`
	CreatedAt     time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (SaleOrderLine) TableName() string {
	return "sale_order_lines"
}
