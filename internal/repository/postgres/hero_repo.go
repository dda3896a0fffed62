package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/suppa/taox-brain/internal/domain"
)

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *heroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Create(hero).Error
}

func (r *heroRepository) Upsert(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(hero).Error
}

func (r *heroRepository) UpsertMany(ctx context.Context, heroes []*domain.Hero) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(heroes).Error
}

func (r *heroRepository) GetAll(ctx context.Context) ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	err := r.db.WithContext(ctx).Order("name ASC").Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) GetAllByVersion(ctx context.Context, versionID string) ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	err := r.db.WithContext(ctx).Where("version_id = ?", versionID).Order("name ASC").Find(&heroes).Error
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) GetByID(ctx context.Context, id string) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).First(&hero, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Hero{}, "id = ?", id).Error
}
