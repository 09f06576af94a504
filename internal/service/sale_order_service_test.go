package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSaleOrderServiceTest(t *testing.T) (*SaleOrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:sale_order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Partner{},
		&models.Product{},
		&models.SaleOrder{},
		&models.SaleOrderLine{},
		&models.SaleOrderFetchLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	audit := NewAuditService(repository.NewAuditLogRepository(db))
	return NewSaleOrderService(repository.NewSaleOrderRepository(db), audit), db
}

func seedSaleOrder(t *testing.T, db *gorm.DB) models.SaleOrder {
	t.Helper()
	partner := models.Partner{Name: "Omar", Phone: "+9665000003", Street: "Tahlia St", City: "Jeddah", Region: "Makkah", Country: "SA"}
	if err := db.Create(&partner).Error; err != nil {
		t.Fatalf("create partner failed: %v", err)
	}
	product := models.Product{Name: "Goat Box", NameArabic: "صندوق ماعز"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	placed := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	order := models.SaleOrder{
		Name:           "S00100",
		APIOrderID:     "EXT-901",
		PartnerID:      partner.ID,
		State:          "sale",
		AmountTotal:    models.NewMoneyFromFloat(312.75),
		DateOrder:      &placed,
		City:           "Jeddah",
		DeliveryTime:   "18:00-20:00",
		DeliveryPeriod: "evening",
		PaymentMethod:  "card",
		PaymentStatus:  "paid",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create sale order failed: %v", err)
	}
	line := models.SaleOrderLine{
		SaleOrderID:   order.ID,
		ProductID:     product.ID,
		Quantity:      2,
		PriceUnit:     models.NewMoneyFromFloat(150),
		PriceSubtotal: models.NewMoneyFromFloat(300),
		Size:          "large",
		Cutting:       "quarters",
		Preparation:   "grilled",
		Shalwata:      "with",
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("create line failed: %v", err)
	}
	return order
}

func TestSaleOrderServiceFindByID(t *testing.T) {
	svc, db := setupSaleOrderServiceTest(t)
	order := seedSaleOrder(t, db)

	payload, err := svc.FindSaleOrder(nil, FindSaleOrderInput{SaleOrderID: order.ID})
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if payload.Name != "S00100" || payload.APIOrderID != "EXT-901" || payload.Order != "EXT-901" {
		t.Fatalf("unexpected payload identifiers: %+v", payload)
	}
	if payload.DateOrder == nil || *payload.DateOrder != "2026-08-31T18:00:00Z" {
		t.Fatalf("unexpected date_order: %v", payload.DateOrder)
	}
	if payload.PartnerID == nil || payload.PartnerID.Address != "Tahlia St" || payload.PartnerID.State != "Makkah" {
		t.Fatalf("unexpected partner payload: %+v", payload.PartnerID)
	}
	if len(payload.OrderLines) != 1 {
		t.Fatalf("order lines want 1 got %d", len(payload.OrderLines))
	}
	lineRow := payload.OrderLines[0]
	if lineRow.Cut != "quarters" || lineRow.Preparation != "grilled" || lineRow.Shalwata != "with" || lineRow.Size != "large" {
		t.Fatalf("unexpected line attributes: %+v", lineRow)
	}
	if lineRow.ProductNameArabic != "صندوق ماعز" {
		t.Fatalf("unexpected arabic name: %s", lineRow.ProductNameArabic)
	}
	if lineRow.Subtotal.String() != "300.00" {
		t.Fatalf("subtotal want 300.00 got %s", lineRow.Subtotal.String())
	}
}

func TestSaleOrderServiceLookupPriority(t *testing.T) {
	svc, db := setupSaleOrderServiceTest(t)
	order := seedSaleOrder(t, db)

	// ID 优先于其他标识，即使其他标识指向不存在的单据
	payload, err := svc.FindSaleOrder(nil, FindSaleOrderInput{
		SaleOrderID: order.ID,
		APIOrderID:  "EXT-does-not-exist",
		Name:        "S99999",
	})
	if err != nil {
		t.Fatalf("priority lookup failed: %v", err)
	}
	if payload.ID != order.ID {
		t.Fatalf("payload id want %d got %d", order.ID, payload.ID)
	}

	payload, err = svc.FindSaleOrder(nil, FindSaleOrderInput{APIOrderID: "EXT-901", Name: "S99999"})
	if err != nil {
		t.Fatalf("api_order_id lookup failed: %v", err)
	}
	if payload.ID != order.ID {
		t.Fatalf("api_order_id lookup returned wrong order: %d", payload.ID)
	}

	payload, err = svc.FindSaleOrder(nil, FindSaleOrderInput{Name: "S00100"})
	if err != nil {
		t.Fatalf("name lookup failed: %v", err)
	}
	if payload.ID != order.ID {
		t.Fatalf("name lookup returned wrong order: %d", payload.ID)
	}
}

func TestSaleOrderServiceNotFoundAndMissingParam(t *testing.T) {
	svc, db := setupSaleOrderServiceTest(t)

	_, err := svc.FindSaleOrder(nil, FindSaleOrderInput{})
	if !errors.Is(err, ErrMissingLookupParam) {
		t.Fatalf("error want ErrMissingLookupParam got %v", err)
	}

	_, err = svc.FindSaleOrder(nil, FindSaleOrderInput{SaleOrderID: 4242})
	if !errors.Is(err, ErrSaleOrderNotFound) {
		t.Fatalf("error want ErrSaleOrderNotFound got %v", err)
	}

	var logs []models.SaleOrderFetchLog
	if err := db.Order("id asc").Find(&logs).Error; err != nil {
		t.Fatalf("load fetch logs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("fetch logs want 2 got %d", len(logs))
	}
	for _, l := range logs {
		if l.Status != constants.AuditStatusError {
			t.Fatalf("log status want error got %s", l.Status)
		}
	}
}
