package models

import "time"

// MonitorEndpoint 外部端点拨测配置
type MonitorEndpoint struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	URL          string     `gorm:"type:varchar(500);not null" json:"url"`
	Method       string     `gorm:"type:varchar(10);not null" json:"method"` // GET/POST/PUT/DELETE
	Status       string     `gorm:"type:varchar(16);index;not null;default:'active'" json:"status"`
	Description  string     `gorm:"type:text" json:"description"`
	LastCall     *time.Time `json:"last_call"`
	TotalCalls   int        `gorm:"not null;default:0" json:"total_calls"`
	SuccessCalls int        `gorm:"not null;default:0" json:"success_calls"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	RecentCalls []MonitorEndpointCall `gorm:"foreignKey:EndpointID" json:"recent_calls,omitempty"`
}

// TableName 指定表名
func (MonitorEndpoint) TableName() string {
	return "monitor_endpoints"
}

// SuccessRate 成功率（百分比）
func (e *MonitorEndpoint) SuccessRate() float64 {
	if e.TotalCalls <= 0 {
		return 0
	}
	return float64(e.SuccessCalls) / float64(e.TotalCalls) * 100
}

// MonitorEndpointCall 单次拨测记录
type MonitorEndpointCall struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	EndpointID     uint      `gorm:"index;not null" json:"endpoint_id"`
	Timestamp      time.Time `gorm:"index;not null" json:"timestamp"`
	Status         string    `gorm:"type:varchar(16);index;not null" json:"status"` // success / error
	ResponseTimeMS float64   `json:"response_time_ms"`
	ErrorMessage   string    `gorm:"type:text" json:"error_message"`
}

// TableName 指定表名
func (MonitorEndpointCall) TableName() string {
	return "monitor_endpoint_calls"
}
