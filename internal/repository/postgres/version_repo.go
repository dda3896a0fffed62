package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/domain"
)

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) *versionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) Create(ctx context.Context, version *domain.PatchVersion) error {
	return r.db.WithContext(ctx).Create(version).Error
}

func (r *versionRepository) GetAll(ctx context.Context) ([]*domain.PatchVersion, error) {
	var versions []*domain.PatchVersion
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *versionRepository) GetByID(ctx context.Context, id string) (*domain.PatchVersion, error) {
	var version domain.PatchVersion
	err := r.db.WithContext(ctx).First(&version, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}
