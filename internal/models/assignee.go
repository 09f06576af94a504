package models

import "time"

// Assignee 配送员（聚合分组的维度）
type Assignee struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	DeliveryID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"delivery_id"` // 对外暴露的配送员标识
	Active     bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Assignee) TableName() string {
	return "assignees"
}
