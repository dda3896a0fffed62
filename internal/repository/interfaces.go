package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/suppa/taox-brain/internal/domain"
)

// The record store exposes plain document access per collection: full scans,
// create, merge-update by id, delete. No transactions, no secondary indexes.

type HeroRepository interface {
	Create(ctx context.Context, hero *domain.Hero) error
	Upsert(ctx context.Context, hero *domain.Hero) error
	UpsertMany(ctx context.Context, heroes []*domain.Hero) error
	GetAll(ctx context.Context) ([]*domain.Hero, error)
	GetAllByVersion(ctx context.Context, versionID string) ([]*domain.Hero, error)
	GetByID(ctx context.Context, id string) (*domain.Hero, error)
	Delete(ctx context.Context, id string) error
}

type ComboRepository interface {
	Create(ctx context.Context, combo *domain.Combo) error
	GetAll(ctx context.Context) ([]*domain.Combo, error)
	GetByID(ctx context.Context, id string) (*domain.Combo, error)
	Delete(ctx context.Context, id string) error
}

type MatchRepository interface {
	Create(ctx context.Context, match *domain.MatchRecord) error
	CreateMany(ctx context.Context, matches []*domain.MatchRecord) error
	GetAll(ctx context.Context) ([]*domain.MatchRecord, error)
}

type VersionRepository interface {
	Create(ctx context.Context, version *domain.PatchVersion) error
	GetAll(ctx context.Context) ([]*domain.PatchVersion, error)
	GetByID(ctx context.Context, id string) (*domain.PatchVersion, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type Repositories struct {
	Hero    HeroRepository
	Combo   ComboRepository
	Match   MatchRepository
	Version VersionRepository
	User    UserRepository
	Session SessionRepository
}
