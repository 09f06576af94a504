package repository

import "time"

// DeliveryOrderSearchFilter 查询配送单的过滤条件
type DeliveryOrderSearchFilter struct {
	Direction     string
	State         string
	ScheduledFrom time.Time // 含
	ScheduledTo   time.Time // 不含
}

// DeliveryOrderState 配送单状态投影（id/name/state）
type DeliveryOrderState struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// DeliveryFetchLogListFilter 查询配送单拉取日志的过滤条件
type DeliveryFetchLogListFilter struct {
	Page     int
	PageSize int
	Status   string
	From     *time.Time
	To       *time.Time
}

// DeliveryUpdateLogListFilter 查询配送单变更日志的过滤条件
type DeliveryUpdateLogListFilter struct {
	Page        int
	PageSize    int
	Status      string
	TargetState string
	From        *time.Time
	To          *time.Time
}

// SaleOrderFetchLogListFilter 查询销售单查询日志的过滤条件
type SaleOrderFetchLogListFilter struct {
	Page        int
	PageSize    int
	Status      string
	SaleOrderID uint
	From        *time.Time
	To          *time.Time
}
