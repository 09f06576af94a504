package repository

import (
	"errors"

	"github.com/wasel-delivery/internal/models"

	"gorm.io/gorm"
)

// APIKeyRepository 调用凭据数据访问接口
type APIKeyRepository interface {
	ListActiveByScopePrefix(scope, prefix string) ([]models.APIKey, error)
	GetByID(id uint) (*models.APIKey, error)
	Create(key *models.APIKey) error
}

// GormAPIKeyRepository GORM 实现
type GormAPIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository 创建凭据仓库
func NewAPIKeyRepository(db *gorm.DB) *GormAPIKeyRepository {
	return &GormAPIKeyRepository{db: db}
}

// ListActiveByScopePrefix 按能力范围与前缀检索启用中的候选凭据
func (r *GormAPIKeyRepository) ListActiveByScopePrefix(scope, prefix string) ([]models.APIKey, error) {
	keys := make([]models.APIKey, 0)
	if err := r.db.
		Where("scope = ? AND key_prefix = ? AND active = ?", scope, prefix, true).
		Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// GetByID 根据 ID 获取凭据
func (r *GormAPIKeyRepository) GetByID(id uint) (*models.APIKey, error) {
	var key models.APIKey
	if err := r.db.First(&key, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

// Create 创建凭据
func (r *GormAPIKeyRepository) Create(key *models.APIKey) error {
	return r.db.Create(key).Error
}
