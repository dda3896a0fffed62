package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/repository"
)

var (
	ErrVersionNameRequired = errors.New("version name is required")
	ErrVersionNotFound     = errors.New("version not found")
)

type VersionService struct {
	versionRepo repository.VersionRepository
	heroRepo    repository.HeroRepository
}

func NewVersionService(versionRepo repository.VersionRepository, heroRepo repository.HeroRepository) *VersionService {
	return &VersionService{versionRepo: versionRepo, heroRepo: heroRepo}
}

func (s *VersionService) ListVersions(ctx context.Context) ([]*domain.PatchVersion, error) {
	return s.versionRepo.GetAll(ctx)
}

// CreateVersion creates an empty patch version.
func (s *VersionService) CreateVersion(ctx context.Context, name string) (*domain.PatchVersion, error) {
	if name == "" {
		return nil, ErrVersionNameRequired
	}
	version := &domain.PatchVersion{
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.versionRepo.Create(ctx, version); err != nil {
		return nil, fmt.Errorf("create version: %w", err)
	}
	return version, nil
}

// CloneVersion creates a new version and copies every hero of the source
// version into it as fresh documents.
func (s *VersionService) CloneVersion(ctx context.Context, sourceID, name string) (*domain.PatchVersion, int, error) {
	if name == "" {
		return nil, 0, ErrVersionNameRequired
	}
	if _, err := s.versionRepo.GetByID(ctx, sourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrVersionNotFound
		}
		return nil, 0, err
	}

	heroes, err := s.heroRepo.GetAllByVersion(ctx, sourceID)
	if err != nil {
		return nil, 0, err
	}

	version, err := s.CreateVersion(ctx, name)
	if err != nil {
		return nil, 0, err
	}

	copied := 0
	for _, h := range heroes {
		clone := *h
		clone.ID = "" // store assigns a new id
		clone.VersionID = &version.ID
		clone.CreatedAt = time.Now()
		clone.UpdatedAt = time.Now()
		if err := s.heroRepo.Create(ctx, &clone); err != nil {
			return nil, copied, fmt.Errorf("clone hero %s: %w", h.Name, err)
		}
		copied++
	}
	return version, copied, nil
}
