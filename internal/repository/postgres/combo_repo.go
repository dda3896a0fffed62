package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/domain"
)

type comboRepository struct {
	db *gorm.DB
}

func NewComboRepository(db *gorm.DB) *comboRepository {
	return &comboRepository{db: db}
}

func (r *comboRepository) Create(ctx context.Context, combo *domain.Combo) error {
	return r.db.WithContext(ctx).Create(combo).Error
}

func (r *comboRepository) GetAll(ctx context.Context) ([]*domain.Combo, error) {
	var combos []*domain.Combo
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&combos).Error
	if err != nil {
		return nil, err
	}
	return combos, nil
}

func (r *comboRepository) GetByID(ctx context.Context, id string) (*domain.Combo, error) {
	var combo domain.Combo
	err := r.db.WithContext(ctx).First(&combo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &combo, nil
}

func (r *comboRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Combo{}, "id = ?", id).Error
}
