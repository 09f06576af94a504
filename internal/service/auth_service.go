package service

import (
	"context"
	"strings"
	"time"

	"github.com/wasel-delivery/internal/cache"
	"github.com/wasel-delivery/internal/constants"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"
	"github.com/wasel-delivery/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService 调用凭据校验服务
type AuthService struct {
	keys repository.APIKeyRepository
}

// NewAuthService 创建凭据校验服务
func NewAuthService(keys repository.APIKeyRepository) *AuthService {
	return &AuthService{keys: keys}
}

// Resolve 校验明文 Key 并返回命中的凭据
// 先按前缀检索候选行，再逐一 bcrypt 比对；命中后把指纹映射放进缓存，
// 窗口内免去比对开销。任何内部错误都降级为"未命中"，调用方只看到有效/无效。
func (s *AuthService) Resolve(rawKey string) *models.APIKey {
	if s == nil || s.keys == nil {
		return nil
	}
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return nil
	}

	now := time.Now()
	fingerprint := cache.APIKeyFingerprint(rawKey)
	ctx := context.Background()
	if id, hit, err := cache.GetAPIKeyID(ctx, fingerprint); err == nil && hit {
		key, err := s.keys.GetByID(id)
		if err == nil && usableAPIKey(key, now) {
			return key
		}
		_ = cache.DelAPIKeyID(ctx, fingerprint)
	}

	candidates, err := s.keys.ListActiveByScopePrefix(constants.APIKeyScopeRPC, models.KeyPrefixOf(rawKey))
	if err != nil {
		logger.Warnw("api_key_lookup_failed", "error", err)
		return nil
	}

	for i := range candidates {
		key := &candidates[i]
		if !usableAPIKey(key, now) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(rawKey)) == nil {
			_ = cache.SetAPIKeyID(ctx, fingerprint, key.ID)
			return key
		}
	}
	return nil
}

// CheckCredentials 校验明文 Key 是否有效
func (s *AuthService) CheckCredentials(rawKey string) bool {
	return s.Resolve(rawKey) != nil
}

// usableAPIKey 判断凭据当前是否可用：启用中、rpc 能力范围且未过期。
// 缓存命中的行与前缀检索的行都要过同一道检查，改过范围的凭据不会借缓存续命。
func usableAPIKey(key *models.APIKey, now time.Time) bool {
	if key == nil {
		return false
	}
	return key.Active && key.Scope == constants.APIKeyScopeRPC && !key.Expired(now)
}
