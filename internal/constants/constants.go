package constants

// 配送单生命周期状态常量（对外暴露的六个状态）
const (
	DeliveryStateDraft     = "draft"
	DeliveryStateWaiting   = "waiting"
	DeliveryStateConfirmed = "confirmed"
	DeliveryStateAssigned  = "assigned"
	DeliveryStateDone      = "done"
	DeliveryStateCancel    = "cancel"
)

// DeliveryStateAwaitingAssignment 待指派的内部状态（不属于六个对外状态）
const DeliveryStateAwaitingAssignment = "delivery_assign"

// ValidDeliveryStates 允许客户端写入的状态集合（按文档顺序）
var ValidDeliveryStates = []string{
	DeliveryStateDraft,
	DeliveryStateWaiting,
	DeliveryStateConfirmed,
	DeliveryStateAssigned,
	DeliveryStateDone,
	DeliveryStateCancel,
}

// 配送方向常量
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// 审计日志状态常量
const (
	AuditStatusSuccess = "success"
	AuditStatusError   = "error"
)

// APIKeyScopeRPC API Key 的远程调用能力范围
const APIKeyScopeRPC = "rpc"

// 监控端点状态常量
const (
	MonitorEndpointActive   = "active"
	MonitorEndpointInactive = "inactive"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskMonitorPing = "monitor:ping"
)

// ProductLocaleArabic 商品名的备用语言（对应上游的 ar_001）
const ProductLocaleArabic = "ar_001"

// 缓存 key 前缀常量
const (
	CacheKeyAPIKeyState = "api_key_state"
)
