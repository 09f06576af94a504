package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wasel-delivery/internal/config"
	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testAPIKey = "wsl_test_router_key_001"

func setupRouterTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash key failed: %v", err)
	}
	key := models.APIKey{
		Name:      "router-test",
		KeyPrefix: models.KeyPrefixOf(testAPIKey),
		KeyHash:   string(hashed),
		Scope:     constants.APIKeyScopeRPC,
		Active:    true,
	}
	if err := db.Create(&key).Error; err != nil {
		t.Fatalf("create api key failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container), db
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, apiKey, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if apiKey != "" {
		req.Header.Set("Authorization", apiKey)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("response not json: %v (%s)", err, w.Body.String())
		}
	}
	return w, parsed
}

func TestRouterAuthGate(t *testing.T) {
	engine, _ := setupRouterTest(t)

	t.Run("missing api key", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodGet, "/api/test", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status want 401 got %d", w.Code)
		}
		if body["status"] != "error" || body["message"] != "API key is missing" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid api key", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodGet, "/api/test", "not-a-real-key", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status want 401 got %d", w.Code)
		}
		if body["message"] != "Invalid API key" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("valid api key", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodGet, "/api/test", testAPIKey, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
		if body["status"] != "success" || body["message"] != "API is working" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("health open without key", func(t *testing.T) {
		w, _ := doRequest(t, engine, http.MethodGet, "/health", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
	})
}

func TestRouterDeliveryOrdersFlow(t *testing.T) {
	engine, db := setupRouterTest(t)

	partner := models.Partner{Name: "Ahmed", Phone: "+966511111111", Street: "King Fahd Rd", City: "Riyadh"}
	if err := db.Create(&partner).Error; err != nil {
		t.Fatalf("create partner failed: %v", err)
	}
	product := models.Product{Name: "Lamb Box", NameArabic: "صندوق لحم", StockQty: 10}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	assignee := models.Assignee{Name: "Driver One", DeliveryID: "drv-001", Active: true}
	if err := db.Create(&assignee).Error; err != nil {
		t.Fatalf("create assignee failed: %v", err)
	}

	now := time.Now()
	order := models.DeliveryOrder{
		Name:        "WH/OUT/00901",
		PartnerID:   partner.ID,
		AssigneeID:  &assignee.ID,
		Direction:   constants.DirectionOutgoing,
		State:       constants.DeliveryStateAwaitingAssignment,
		ScheduledAt: time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location()),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	line := models.DeliveryOrderLine{DeliveryOrderID: order.ID, ProductID: product.ID, Quantity: 2}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("create line failed: %v", err)
	}

	t.Run("fetch grouped orders", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodGet, "/api/delivery_orders", testAPIKey, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
		}
		groups, ok := body["orders"].([]interface{})
		if !ok || len(groups) != 1 {
			t.Fatalf("orders want 1 group got %v", body["orders"])
		}
		group := groups[0].(map[string]interface{})
		if group["assign_to"] != "drv-001" {
			t.Fatalf("assign_to want drv-001 got %v", group["assign_to"])
		}
		orders := group["orders"].([]interface{})
		first := orders[0].(map[string]interface{})
		if first["name"] != "WH/OUT/00901" || first["delivery_state"] != constants.DeliveryStateAwaitingAssignment {
			t.Fatalf("unexpected order projection: %v", first)
		}
		if first["sale_order"] != nil {
			t.Fatalf("sale_order want null got %v", first["sale_order"])
		}
		moveLines := first["move_lines"].([]interface{})
		if len(moveLines) != 1 {
			t.Fatalf("move_lines want 1 got %d", len(moveLines))
		}
	})

	t.Run("update invalid json", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodPost, "/api/update_delivery_orders", testAPIKey, "{not json")
		if w.Code != http.StatusBadRequest || body["message"] != "Invalid JSON data" {
			t.Fatalf("want 400 Invalid JSON data got %d %v", w.Code, body)
		}
	})

	t.Run("update missing fields", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodPost, "/api/update_delivery_orders", testAPIKey, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status want 400 got %d", w.Code)
		}
		if body["message"] != "Missing required field: delivery_order_ids, state" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("update invalid state", func(t *testing.T) {
		payload := fmt.Sprintf(`{"delivery_order_ids":[%d],"state":"shipped"}`, order.ID)
		w, body := doRequest(t, engine, http.MethodPost, "/api/update_delivery_orders", testAPIKey, payload)
		if w.Code != http.StatusBadRequest || body["message"] != "Invalid state: shipped" {
			t.Fatalf("want 400 Invalid state got %d %v", w.Code, body)
		}
	})

	t.Run("update unknown orders", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodPost, "/api/update_delivery_orders", testAPIKey, `{"delivery_order_ids":[99999],"state":"done"}`)
		if w.Code != http.StatusNotFound || body["message"] != "No delivery orders found" {
			t.Fatalf("want 404 No delivery orders found got %d %v", w.Code, body)
		}
	})

	t.Run("update to done", func(t *testing.T) {
		payload := fmt.Sprintf(`{"delivery_order_ids":[%d],"state":"done"}`, order.ID)
		w, body := doRequest(t, engine, http.MethodPost, "/api/update_delivery_orders", testAPIKey, payload)
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
		}
		if body["message"] != "Delivery orders updated to done successfully" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		rows := body["orders"].([]interface{})
		if len(rows) != 1 {
			t.Fatalf("orders want 1 got %d", len(rows))
		}
		row := rows[0].(map[string]interface{})
		if row["state"] != constants.DeliveryStateDone {
			t.Fatalf("state want done got %v", row["state"])
		}

		// 库存已扣减
		var p models.Product
		if err := db.First(&p, product.ID).Error; err != nil {
			t.Fatalf("reload product failed: %v", err)
		}
		if p.StockQty != 8 {
			t.Fatalf("stock want 8 got %.2f", p.StockQty)
		}
	})
}

func TestRouterSaleOrderData(t *testing.T) {
	engine, db := setupRouterTest(t)

	partner := models.Partner{Name: "Omar", Phone: "+966522222222", Street: "Tahlia St", City: "Jeddah", Region: "Makkah", Country: "SA"}
	if err := db.Create(&partner).Error; err != nil {
		t.Fatalf("create partner failed: %v", err)
	}
	placed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	order := models.SaleOrder{
		Name:        "S00500",
		APIOrderID:  "EXT-500",
		PartnerID:   partner.ID,
		State:       "sale",
		AmountTotal: models.NewMoneyFromFloat(99.99),
		DateOrder:   &placed,
		City:        "Jeddah",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create sale order failed: %v", err)
	}

	t.Run("no lookup params", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodPost, "/api/sale_order_data", testAPIKey, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status want 400 got %d", w.Code)
		}
		if body["message"] != "Please provide one of: sale_order_id, api_order_id, or name" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodPost, "/api/sale_order_data", testAPIKey, `{"name":"S99999"}`)
		if w.Code != http.StatusNotFound || body["message"] != "Sale Order not found" {
			t.Fatalf("want 404 Sale Order not found got %d %v", w.Code, body)
		}
	})

	t.Run("found by name", func(t *testing.T) {
		w, body := doRequest(t, engine, http.MethodPost, "/api/sale_order_data", testAPIKey, `{"name":" S00500 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
		}
		saleOrder, ok := body["sale_order"].(map[string]interface{})
		if !ok {
			t.Fatalf("sale_order missing: %v", body)
		}
		if saleOrder["name"] != "S00500" || saleOrder["api_order_id"] != "EXT-500" || saleOrder["order"] != "EXT-500" {
			t.Fatalf("unexpected sale order: %v", saleOrder)
		}
		partnerPayload, ok := saleOrder["partner_id"].(map[string]interface{})
		if !ok || partnerPayload["city"] != "Jeddah" {
			t.Fatalf("unexpected partner payload: %v", saleOrder["partner_id"])
		}
		if saleOrder["amount_total"] != "99.99" {
			t.Fatalf("amount_total want 99.99 got %v", saleOrder["amount_total"])
		}
	})
}
