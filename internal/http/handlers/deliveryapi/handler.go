package deliveryapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/wasel-delivery/internal/http/response"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/service"

	"github.com/gin-gonic/gin"
)

// ActorContextKey 鉴权中间件写入的调用方凭据
const ActorContextKey = "api_actor"

// Handler 配送 API 处理器
type Handler struct {
	delivery *service.DeliveryService
	sales    *service.SaleOrderService
}

// NewHandler 创建配送 API 处理器
func NewHandler(delivery *service.DeliveryService, sales *service.SaleOrderService) *Handler {
	return &Handler{delivery: delivery, sales: sales}
}

// Test 连通性探针
func (h *Handler) Test(c *gin.Context) {
	response.Success(c, gin.H{"message": "API is working"})
}

// GetDeliveryOrders 当日待指派出库单，按配送员分组
func (h *Handler) GetDeliveryOrders(c *gin.Context) {
	groups, err := h.delivery.FetchTodayOrders(actorFrom(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": groups})
}

// UpdateDeliveryOrdersRequest 状态变更入参
type UpdateDeliveryOrdersRequest struct {
	DeliveryOrderIDs []uint `json:"delivery_order_ids"`
	State            string `json:"state"`
}

// UpdateDeliveryOrders 批量推进配送单状态
func (h *Handler) UpdateDeliveryOrders(c *gin.Context) {
	payload, ok := readJSONObject(c)
	if !ok {
		response.BadRequest(c, "Invalid JSON data")
		return
	}

	missing := service.MissingFields(payload, []string{"delivery_order_ids", "state"})
	if len(missing) > 0 {
		response.BadRequest(c, "Missing required field: "+strings.Join(missing, ", "))
		return
	}

	var req UpdateDeliveryOrdersRequest
	if !decodePayload(payload, &req) {
		response.BadRequest(c, "Invalid JSON data")
		return
	}
	if !service.ValidDeliveryState(req.State) {
		response.BadRequest(c, "Invalid state: "+req.State)
		return
	}

	states, err := h.delivery.UpdateOrders(actorFrom(c), req.DeliveryOrderIDs, req.State)
	if err != nil {
		if errors.Is(err, service.ErrNoOrdersFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": fmt.Sprintf("Delivery orders updated to %s successfully", req.State),
		"orders":  states,
	})
}

// SaleOrderDataRequest 销售单查询入参
type SaleOrderDataRequest struct {
	SaleOrderID uint   `json:"sale_order_id"`
	APIOrderID  string `json:"api_order_id"`
	Name        string `json:"name"`
}

// GetSaleOrderData 销售单详情，按 sale_order_id > api_order_id > name 解析
func (h *Handler) GetSaleOrderData(c *gin.Context) {
	payload, ok := readJSONObject(c)
	if !ok {
		response.BadRequest(c, "Invalid JSON data")
		return
	}

	var req SaleOrderDataRequest
	if !decodePayload(payload, &req) {
		response.BadRequest(c, "Invalid JSON data")
		return
	}

	saleOrder, err := h.sales.FindSaleOrder(actorFrom(c), service.FindSaleOrderInput{
		SaleOrderID: req.SaleOrderID,
		APIOrderID:  req.APIOrderID,
		Name:        req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingLookupParam) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, service.ErrSaleOrderNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{"sale_order": saleOrder})
}

// readJSONObject 读取请求体，解析并清洗为 JSON 对象
func readJSONObject(c *gin.Context) (map[string]interface{}, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, false
	}
	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}
	payload, ok := service.SanitizeInput(body).(map[string]interface{})
	if !ok {
		return nil, false
	}
	return payload, true
}

// decodePayload 把清洗后的对象解码到类型化入参
func decodePayload(payload map[string]interface{}, target interface{}) bool {
	buf, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	return json.Unmarshal(buf, target) == nil
}

// actorFrom 取出鉴权中间件放入的调用方凭据
func actorFrom(c *gin.Context) *models.APIKey {
	value, ok := c.Get(ActorContextKey)
	if !ok {
		return nil
	}
	actor, _ := value.(*models.APIKey)
	return actor
}
