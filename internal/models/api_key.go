package models

import "time"

// APIKey 外部系统调用凭据
// 说明：明文 Key 只在创建时出现一次，库里只存 bcrypt 哈希；
// key_prefix 用于检索候选行，避免全表逐行比对。
type APIKey struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`            // 凭据名称（标识调用方）
	KeyPrefix string     `gorm:"type:varchar(16);index;not null" json:"key_prefix"` // 明文前缀（检索用）
	KeyHash   string     `gorm:"type:varchar(200);not null" json:"-"`               // bcrypt 哈希
	Scope     string     `gorm:"type:varchar(32);index;not null" json:"scope"`      // 能力范围（rpc）
	Active    bool       `gorm:"index;not null;default:true" json:"active"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"` // 过期时间（空表示永久）
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (APIKey) TableName() string {
	return "api_keys"
}

// Expired 判断凭据是否已过期
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}

// KeyPrefixOf 截取明文 Key 的检索前缀
func KeyPrefixOf(rawKey string) string {
	const prefixLen = 8
	if len(rawKey) <= prefixLen {
		return rawKey
	}
	return rawKey[:prefixLen]
}
