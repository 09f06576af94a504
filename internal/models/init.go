package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/logger"
)

// InitBootstrapAPIKey 初始化引导 API Key
// 仅在 api_keys 表为空且配置了引导密钥时写入，避免覆盖线上已有凭证。
func InitBootstrapAPIKey(rawKey, name string) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	if rawKey == "" {
		return nil
	}

	var count int64
	if err := DB.Model(&APIKey{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count api keys: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawKey), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap api key: %w", err)
	}

	if name == "" {
		name = "bootstrap"
	}
	key := APIKey{
		Name:      name,
		KeyPrefix: KeyPrefixOf(rawKey),
		KeyHash:   string(hashed),
		Scope:     constants.APIKeyScopeRPC,
		Active:    true,
	}
	if err := DB.Create(&key).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap api key: %w", err)
	}

	logger.Infow("bootstrap_api_key_created", "name", name, "prefix", key.KeyPrefix)
	return nil
}
