package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.APIKey{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewAuthService(repository.NewAPIKeyRepository(db)), db
}

func createTestAPIKey(t *testing.T, db *gorm.DB, rawKey, name string, active bool, expiresAt *time.Time) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawKey), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash key failed: %v", err)
	}
	key := models.APIKey{
		Name:      name,
		KeyPrefix: models.KeyPrefixOf(rawKey),
		KeyHash:   string(hashed),
		Scope:     constants.APIKeyScopeRPC,
		Active:    active,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(&key).Error; err != nil {
		t.Fatalf("create api key failed: %v", err)
	}
}

func TestAuthServiceResolve(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createTestAPIKey(t, db, "wsl_live_abc123def456", "mobile-app", true, nil)

	t.Run("valid key", func(t *testing.T) {
		actor := svc.Resolve("wsl_live_abc123def456")
		if actor == nil {
			t.Fatalf("expected key to resolve")
		}
		if actor.Name != "mobile-app" {
			t.Fatalf("actor name want mobile-app got %s", actor.Name)
		}
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		if svc.Resolve("  wsl_live_abc123def456  ") == nil {
			t.Fatalf("expected trimmed key to resolve")
		}
	})

	t.Run("wrong key same prefix", func(t *testing.T) {
		if svc.Resolve("wsl_live_abc123WRONG") != nil {
			t.Fatalf("wrong key should not resolve")
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if svc.Resolve("") != nil {
			t.Fatalf("empty key should not resolve")
		}
	})
}

func TestAuthServiceResolveInactiveAndExpired(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	createTestAPIKey(t, db, "wsl_test_inactive001", "disabled", false, nil)
	past := time.Now().Add(-time.Hour)
	createTestAPIKey(t, db, "wsl_test_expired0001", "expired", true, &past)
	future := time.Now().Add(time.Hour)
	createTestAPIKey(t, db, "wsl_test_future00001", "valid", true, &future)

	if svc.Resolve("wsl_test_inactive001") != nil {
		t.Fatalf("inactive key should not resolve")
	}
	if svc.Resolve("wsl_test_expired0001") != nil {
		t.Fatalf("expired key should not resolve")
	}
	if svc.Resolve("wsl_test_future00001") == nil {
		t.Fatalf("key with future expiry should resolve")
	}
	if !svc.CheckCredentials("wsl_test_future00001") {
		t.Fatalf("check credentials should pass for valid key")
	}
	if svc.CheckCredentials("wsl_test_expired0001") {
		t.Fatalf("check credentials should fail for expired key")
	}
}

func TestUsableAPIKey(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		key  *models.APIKey
		want bool
	}{
		{name: "nil", key: nil, want: false},
		{name: "active rpc", key: &models.APIKey{Active: true, Scope: constants.APIKeyScopeRPC}, want: true},
		{name: "inactive", key: &models.APIKey{Active: false, Scope: constants.APIKeyScopeRPC}, want: false},
		{name: "wrong scope", key: &models.APIKey{Active: true, Scope: "admin"}, want: false},
		{name: "expired", key: &models.APIKey{Active: true, Scope: constants.APIKeyScopeRPC, ExpiresAt: &past}, want: false},
		{name: "not yet expired", key: &models.APIKey{Active: true, Scope: constants.APIKeyScopeRPC, ExpiresAt: &future}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := usableAPIKey(tc.key, now); got != tc.want {
				t.Fatalf("usable want %v got %v", tc.want, got)
			}
		})
	}
}
