package models

import "time"

// Partner 客户档案（配送单与销售单共用的收货人信息）
type Partner struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(200);index;not null" json:"name"`
	Phone     string    `gorm:"type:varchar(40)" json:"phone"`
	Street    string    `gorm:"type:varchar(255)" json:"street"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	Region    string    `gorm:"type:varchar(100)" json:"region"` // 省/州
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Partner) TableName() string {
	return "partners"
}
