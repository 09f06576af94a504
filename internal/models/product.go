package models

import (
	"time"

	"github.com/wasel-delivery/internal/constants"
)

// Product 商品档案
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(200);index;not null" json:"name"`  // 默认语言名称
	NameArabic  string    `gorm:"type:varchar(200)" json:"name_arabic"`          // ar_001 语言名称
	DefaultCode string    `gorm:"type:varchar(64);index" json:"default_code"`    // 内部编码
	StockQty    float64   `gorm:"not null;default:0" json:"stock_qty"`           // 可用库存
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// LocalizedName 返回指定语言的商品名，缺失时回退默认名称
func (p *Product) LocalizedName(locale string) string {
	if locale == constants.ProductLocaleArabic && p.NameArabic != "" {
		return p.NameArabic
	}
	return p.Name
}
