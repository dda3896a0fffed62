package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/domain"
)

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *matchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.MatchRecord) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) CreateMany(ctx context.Context, matches []*domain.MatchRecord) error {
	return r.db.WithContext(ctx).Create(matches).Error
}

func (r *matchRepository) GetAll(ctx context.Context) ([]*domain.MatchRecord, error) {
	var matches []*domain.MatchRecord
	err := r.db.WithContext(ctx).Order("uploaded_at ASC").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
