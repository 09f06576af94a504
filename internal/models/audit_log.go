package models

import "time"

// DeliveryFetchLog 当日配送单查询的审计日志
// 说明：每次 /api/delivery_orders 调用固定写入一行，只增不改，按时间倒序检索。
type DeliveryFetchLog struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Timestamp     time.Time `gorm:"index;not null" json:"timestamp"`
	TotalFound    int       `gorm:"not null;default:0" json:"total_found"`
	AssigneeCount int       `gorm:"not null;default:0" json:"assignee_count"`
	Status        string    `gorm:"type:varchar(16);index;not null" json:"status"` // success / error
	Message       string    `gorm:"type:text" json:"message"`
}

// TableName 指定表名
func (DeliveryFetchLog) TableName() string {
	return "delivery_order_fetch_logs"
}

// DeliveryUpdateLog 配送单状态变更的审计日志
type DeliveryUpdateLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Timestamp    time.Time `gorm:"index;not null" json:"timestamp"`
	UpdatedCount int       `gorm:"not null;default:0" json:"updated_count"`
	TargetState  string    `gorm:"type:varchar(32);index" json:"target_state"`
	OrderIDs     string    `gorm:"type:text" json:"order_ids"` // 逗号拼接的单据 ID
	Status       string    `gorm:"type:varchar(16);index;not null" json:"status"`
	Message      string    `gorm:"type:text" json:"message"`
}

// TableName 指定表名
func (DeliveryUpdateLog) TableName() string {
	return "delivery_order_update_logs"
}

// SaleOrderFetchLog 销售单详情查询的审计日志
type SaleOrderFetchLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
	SaleOrderID uint      `gorm:"index" json:"sale_order_id"` // 未能解析到单据时为 0
	Status      string    `gorm:"type:varchar(16);index;not null" json:"status"`
	Message     string    `gorm:"type:text" json:"message"`
}

// TableName 指定表名
func (SaleOrderFetchLog) TableName() string {
	return "sale_order_fetch_logs"
}
