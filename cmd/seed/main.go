package main

import (
	"time"

	"github.com/wasel-delivery/internal/config"
	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 引导 API Key
	if cfg.Auth.BootstrapKey != "" {
		if err := models.InitBootstrapAPIKey(cfg.Auth.BootstrapKey, cfg.Auth.BootstrapKeyName); err != nil {
			stdLog.Printf("Failed to create bootstrap api key: %v", err)
		}
	}

	// 添加客户
	partners := []models.Partner{
		{Name: "Ahmed Al-Rashid", Phone: "+966500000001", Street: "King Fahd Rd 12", City: "Riyadh", Region: "Riyadh", Country: "SA"},
		{Name: "Fatimah Hassan", Phone: "+966500000002", Street: "Olaya St 45", City: "Riyadh", Region: "Riyadh", Country: "SA"},
		{Name: "Omar Bakr", Phone: "+966500000003", Street: "Tahlia St 8", City: "Jeddah", Region: "Makkah", Country: "SA"},
	}
	for i := range partners {
		p := &partners[i]
		var existing models.Partner
		if err := models.DB.Where("phone = ?", p.Phone).First(&existing).Error; err != nil {
			if err := models.DB.Create(p).Error; err != nil {
				stdLog.Printf("Failed to create partner %s: %v", p.Name, err)
			} else {
				stdLog.Printf("Created partner: %s", p.Name)
			}
		} else {
			*p = existing
			stdLog.Printf("Partner already exists: %s", p.Name)
		}
	}

	// 添加商品
	products := []models.Product{
		{Name: "Lamb Box", NameArabic: "صندوق لحم الضأن", DefaultCode: "LMB-01", StockQty: 120},
		{Name: "Beef Box", NameArabic: "صندوق لحم البقر", DefaultCode: "BF-01", StockQty: 80},
		{Name: "Chicken Box", NameArabic: "صندوق دجاج", DefaultCode: "CHK-01", StockQty: 200},
	}
	for i := range products {
		p := &products[i]
		var existing models.Product
		if err := models.DB.Where("default_code = ?", p.DefaultCode).First(&existing).Error; err != nil {
			if err := models.DB.Create(p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.DefaultCode, err)
			} else {
				stdLog.Printf("Created product: %s", p.DefaultCode)
			}
		} else {
			*p = existing
			stdLog.Printf("Product already exists: %s", p.DefaultCode)
		}
	}

	// 添加配送员
	assignees := []models.Assignee{
		{Name: "Driver One", DeliveryID: "drv-001", Active: true},
		{Name: "Driver Two", DeliveryID: "drv-002", Active: true},
	}
	for i := range assignees {
		a := &assignees[i]
		var existing models.Assignee
		if err := models.DB.Where("delivery_id = ?", a.DeliveryID).First(&existing).Error; err != nil {
			if err := models.DB.Create(a).Error; err != nil {
				stdLog.Printf("Failed to create assignee %s: %v", a.DeliveryID, err)
			} else {
				stdLog.Printf("Created assignee: %s", a.DeliveryID)
			}
		} else {
			*a = existing
			stdLog.Printf("Assignee already exists: %s", a.DeliveryID)
		}
	}

	// 添加销售单与配送单（当日演示数据）
	now := time.Now()
	orderTime := now.Add(-3 * time.Hour)
	saleOrder := models.SaleOrder{
		Name:           "S00001",
		APIOrderID:     "EXT-1001",
		PartnerID:      partners[0].ID,
		State:          "sale",
		AmountTotal:    models.NewMoneyFromFloat(245.50),
		DateOrder:      &orderTime,
		City:           "Riyadh",
		DeliveryTime:   "16:00-18:00",
		DeliveryPeriod: "evening",
		PaymentMethod:  "card",
		PaymentStatus:  "paid",
	}
	var existingSale models.SaleOrder
	if err := models.DB.Where("name = ?", saleOrder.Name).First(&existingSale).Error; err != nil {
		if err := models.DB.Create(&saleOrder).Error; err != nil {
			stdLog.Printf("Failed to create sale order: %v", err)
		} else {
			line := models.SaleOrderLine{
				SaleOrderID:   saleOrder.ID,
				ProductID:     products[0].ID,
				Quantity:      1,
				PriceUnit:     models.NewMoneyFromFloat(245.50),
				PriceSubtotal: models.NewMoneyFromFloat(245.50),
				Size:          "large",
				Cutting:       "quarters",
				Preparation:   "fresh",
				Shalwata:      "without",
			}
			if err := models.DB.Create(&line).Error; err != nil {
				stdLog.Printf("Failed to create sale order line: %v", err)
			}
			stdLog.Printf("Created sale order: %s", saleOrder.Name)
		}
	} else {
		saleOrder = existingSale
		stdLog.Printf("Sale order already exists: %s", saleOrder.Name)
	}

	delivery := models.DeliveryOrder{
		Name:        "WH/OUT/00001",
		PartnerID:   partners[0].ID,
		AssigneeID:  &assignees[0].ID,
		SaleOrderID: &saleOrder.ID,
		Direction:   constants.DirectionOutgoing,
		State:       constants.DeliveryStateAwaitingAssignment,
		ScheduledAt: time.Date(now.Year(), now.Month(), now.Day(), 17, 0, 0, 0, now.Location()),
		Longitude:   46.6753,
		Latitude:    24.7136,
	}
	var existingDelivery models.DeliveryOrder
	if err := models.DB.Where("name = ?", delivery.Name).First(&existingDelivery).Error; err != nil {
		if err := models.DB.Create(&delivery).Error; err != nil {
			stdLog.Printf("Failed to create delivery order: %v", err)
		} else {
			line := models.DeliveryOrderLine{
				DeliveryOrderID: delivery.ID,
				ProductID:       products[0].ID,
				Quantity:        1,
			}
			if err := models.DB.Create(&line).Error; err != nil {
				stdLog.Printf("Failed to create delivery order line: %v", err)
			}
			stdLog.Printf("Created delivery order: %s", delivery.Name)
		}
	} else {
		stdLog.Printf("Delivery order already exists: %s", delivery.Name)
	}

	// 添加拨测端点
	endpoint := models.MonitorEndpoint{
		Name:        "upstream-shop",
		URL:         "https://example.com/health",
		Method:      "GET",
		Status:      constants.MonitorEndpointActive,
		Description: "Upstream shop health probe",
	}
	var existingEndpoint models.MonitorEndpoint
	if err := models.DB.Where("name = ?", endpoint.Name).First(&existingEndpoint).Error; err != nil {
		if err := models.DB.Create(&endpoint).Error; err != nil {
			stdLog.Printf("Failed to create monitor endpoint: %v", err)
		} else {
			stdLog.Printf("Created monitor endpoint: %s", endpoint.Name)
		}
	} else {
		stdLog.Printf("Monitor endpoint already exists: %s", endpoint.Name)
	}

	stdLog.Printf("Seed finished")
}
