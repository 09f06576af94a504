package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuditLogRepositoryTest(t *testing.T) (*GormAuditLogRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:audit_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.DeliveryFetchLog{},
		&models.DeliveryUpdateLog{},
		&models.SaleOrderFetchLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewAuditLogRepository(db), db
}

func TestAuditLogRepositoryFetchLogsOrderedDesc(t *testing.T) {
	repo, _ := setupAuditLogRepositoryTest(t)
	now := time.Now().UTC().Truncate(time.Second)

	logs := []*models.DeliveryFetchLog{
		{Timestamp: now.Add(-2 * time.Hour), TotalFound: 3, AssigneeCount: 2, Status: constants.AuditStatusSuccess},
		{Timestamp: now, TotalFound: 5, AssigneeCount: 3, Status: constants.AuditStatusSuccess},
		{Timestamp: now.Add(-1 * time.Hour), TotalFound: 0, AssigneeCount: 0, Status: constants.AuditStatusError, Message: "db timeout"},
	}
	for _, l := range logs {
		if err := repo.CreateFetchLog(l); err != nil {
			t.Fatalf("create fetch log failed: %v", err)
		}
	}

	rows, total, err := repo.ListFetchLogs(DeliveryFetchLogListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list fetch logs failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("total want 3 got %d", total)
	}
	if len(rows) != 3 {
		t.Fatalf("rows len want 3 got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Timestamp.After(rows[i-1].Timestamp) {
			t.Fatalf("rows not ordered by timestamp desc at index %d", i)
		}
	}

	errRows, errTotal, err := repo.ListFetchLogs(DeliveryFetchLogListFilter{Page: 1, PageSize: 10, Status: constants.AuditStatusError})
	if err != nil {
		t.Fatalf("list error logs failed: %v", err)
	}
	if errTotal != 1 || len(errRows) != 1 {
		t.Fatalf("error rows want 1 got total=%d len=%d", errTotal, len(errRows))
	}
	if errRows[0].Message != "db timeout" {
		t.Fatalf("unexpected message=%s", errRows[0].Message)
	}
}

func TestAuditLogRepositoryFetchLogsPagination(t *testing.T) {
	repo, _ := setupAuditLogRepositoryTest(t)
	now := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 5; i++ {
		log := &models.DeliveryFetchLog{
			Timestamp: now.Add(-time.Duration(i) * time.Minute),
			Status:    constants.AuditStatusSuccess,
		}
		if err := repo.CreateFetchLog(log); err != nil {
			t.Fatalf("create fetch log failed: %v", err)
		}
	}

	rows, total, err := repo.ListFetchLogs(DeliveryFetchLogListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list fetch logs failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("page 2 rows want 2 got %d", len(rows))
	}

	// page_size 为 0 时不分页
	all, _, err := repo.ListFetchLogs(DeliveryFetchLogListFilter{})
	if err != nil {
		t.Fatalf("list without pagination failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("unpaginated rows want 5 got %d", len(all))
	}
}

func TestAuditLogRepositoryUpdateLogFilter(t *testing.T) {
	repo, _ := setupAuditLogRepositoryTest(t)
	now := time.Now().UTC().Truncate(time.Second)

	logs := []*models.DeliveryUpdateLog{
		{Timestamp: now.Add(-10 * time.Minute), UpdatedCount: 2, TargetState: constants.DeliveryStateDone, OrderIDs: "1,2", Status: constants.AuditStatusSuccess},
		{Timestamp: now, UpdatedCount: 1, TargetState: constants.DeliveryStateCancel, OrderIDs: "9", Status: constants.AuditStatusSuccess},
		{Timestamp: now.Add(-5 * time.Minute), UpdatedCount: 0, TargetState: constants.DeliveryStateDone, OrderIDs: "3", Status: constants.AuditStatusError, Message: "insufficient stock"},
	}
	for _, l := range logs {
		if err := repo.CreateUpdateLog(l); err != nil {
			t.Fatalf("create update log failed: %v", err)
		}
	}

	rows, total, err := repo.ListUpdateLogs(DeliveryUpdateLogListFilter{
		Page:        1,
		PageSize:    10,
		TargetState: constants.DeliveryStateDone,
	})
	if err != nil {
		t.Fatalf("list update logs failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("rows want 2 got total=%d len=%d", total, len(rows))
	}
	if rows[0].Timestamp.Before(rows[1].Timestamp) {
		t.Fatalf("rows not ordered by timestamp desc")
	}
}

func TestAuditLogRepositorySaleOrderFetchLogFilter(t *testing.T) {
	repo, _ := setupAuditLogRepositoryTest(t)
	now := time.Now().UTC().Truncate(time.Second)

	logs := []*models.SaleOrderFetchLog{
		{Timestamp: now.Add(-time.Minute), SaleOrderID: 7, Status: constants.AuditStatusSuccess},
		{Timestamp: now, SaleOrderID: 0, Status: constants.AuditStatusError, Message: "Sale Order not found"},
	}
	for _, l := range logs {
		if err := repo.CreateSaleOrderFetchLog(l); err != nil {
			t.Fatalf("create sale order fetch log failed: %v", err)
		}
	}

	rows, total, err := repo.ListSaleOrderFetchLogs(SaleOrderFetchLogListFilter{Page: 1, PageSize: 10, SaleOrderID: 7})
	if err != nil {
		t.Fatalf("list sale order fetch logs failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("rows want 1 got total=%d len=%d", total, len(rows))
	}
	if rows[0].SaleOrderID != 7 {
		t.Fatalf("sale_order_id want 7 got %d", rows[0].SaleOrderID)
	}
}
