package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/wasel-delivery/internal/constants"
)

// bcrypt 比对开销大，对已命中的明文指纹缓存凭据 ID，窗口内免去逐行比对。
const apiKeyStateTTL = 5 * time.Minute

// APIKeyFingerprint 计算明文 Key 的缓存指纹
// 缓存里只放 SHA-256 指纹，明文本身不落 Redis。
func APIKeyFingerprint(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}

// GetAPIKeyID 查询指纹对应的凭据 ID
func GetAPIKeyID(ctx context.Context, fingerprint string) (uint, bool, error) {
	var id uint
	hit, err := GetJSON(ctx, apiKeyStateKey(fingerprint), &id)
	if err != nil || !hit || id == 0 {
		return 0, false, err
	}
	return id, true, nil
}

// SetAPIKeyID 缓存指纹到凭据 ID 的映射
func SetAPIKeyID(ctx context.Context, fingerprint string, id uint) error {
	if id == 0 {
		return nil
	}
	return SetJSON(ctx, apiKeyStateKey(fingerprint), id, apiKeyStateTTL)
}

// DelAPIKeyID 失效指纹映射
func DelAPIKeyID(ctx context.Context, fingerprint string) error {
	return Del(ctx, apiKeyStateKey(fingerprint))
}

func apiKeyStateKey(fingerprint string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyAPIKeyState, fingerprint)
}
