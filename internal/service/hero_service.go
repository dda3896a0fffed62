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

type HeroService struct {
	heroRepo repository.HeroRepository
}

func NewHeroService(heroRepo repository.HeroRepository) *HeroService {
	return &HeroService{heroRepo: heroRepo}
}

type HeroInput struct {
	Name        string
	Role        domain.HeroRole
	Tier        domain.HeroTier
	MetaScore   int
	Counters    []string
	WeakAgainst []string
	ImageURL    string
	Note        string
	VersionID   *string
}

func (in HeroInput) validate() error {
	if in.Name == "" {
		return domain.ErrHeroNameRequired
	}
	if !in.Role.Valid() {
		return domain.ErrInvalidRole
	}
	if !in.Tier.Valid() {
		return domain.ErrInvalidTier
	}
	return nil
}

// clampScore keeps meta scores inside 0..100 regardless of what the editor
// sent.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (s *HeroService) ListHeroes(ctx context.Context, versionID string) ([]*domain.Hero, error) {
	if versionID != "" {
		return s.heroRepo.GetAllByVersion(ctx, versionID)
	}
	return s.heroRepo.GetAll(ctx)
}

func (s *HeroService) GetHero(ctx context.Context, id string) (*domain.Hero, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}
	return hero, nil
}

// CreateHero creates a new hero document with a store-assigned id.
func (s *HeroService) CreateHero(ctx context.Context, input HeroInput) (*domain.Hero, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	hero := heroFromInput(input)
	hero.CreatedAt = time.Now()
	hero.UpdatedAt = time.Now()
	if err := s.heroRepo.Create(ctx, hero); err != nil {
		return nil, fmt.Errorf("create hero: %w", err)
	}
	return hero, nil
}

// UpdateHero merge-updates an existing hero document by id.
func (s *HeroService) UpdateHero(ctx context.Context, id string, input HeroInput) (*domain.Hero, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	existing, err := s.GetHero(ctx, id)
	if err != nil {
		return nil, err
	}

	hero := heroFromInput(input)
	hero.ID = existing.ID
	hero.CreatedAt = existing.CreatedAt
	hero.UpdatedAt = time.Now()
	if err := s.heroRepo.Upsert(ctx, hero); err != nil {
		return nil, fmt.Errorf("update hero: %w", err)
	}
	return hero, nil
}

// DeleteHero removes the document outright; there is no soft delete. Combos
// referencing the hero keep their now-dangling id.
func (s *HeroService) DeleteHero(ctx context.Context, id string) error {
	if _, err := s.GetHero(ctx, id); err != nil {
		return err
	}
	return s.heroRepo.Delete(ctx, id)
}

func heroFromInput(input HeroInput) *domain.Hero {
	return &domain.Hero{
		VersionID:   input.VersionID,
		Name:        input.Name,
		Role:        input.Role,
		Tier:        input.Tier,
		MetaScore:   clampScore(input.MetaScore),
		Counters:    domain.StringList(input.Counters),
		WeakAgainst: domain.StringList(input.WeakAgainst),
		ImageURL:    input.ImageURL,
		Note:        input.Note,
	}
}

// starterHeroes is the bulk seed offered when the knowledge base is empty.
var starterHeroes = []HeroInput{
	{Name: "Nakroth", Role: domain.RoleAssassin, Tier: domain.TierS, MetaScore: 95, Counters: []string{"aleister", "arum"}, Note: "Farm fast, split push."},
	{Name: "Aya", Role: domain.RoleSupport, Tier: domain.TierS, MetaScore: 99, Counters: []string{"zip", "taara"}, Note: "Stick to the tank/carry."},
	{Name: "Florentino", Role: domain.RoleFighter, Tier: domain.TierA, MetaScore: 92, Counters: []string{"arum", "aleister"}, Note: "Skill dependent."},
	{Name: "Krixi", Role: domain.RoleMage, Tier: domain.TierA, MetaScore: 85, Counters: []string{"nakroth"}, Note: "Easy burst damage."},
	{Name: "Zip", Role: domain.RoleSupport, Tier: domain.TierS, MetaScore: 98, Counters: []string{"mina"}, Note: "Save teammates."},
}

var ErrKnowledgeBaseNotEmpty = errors.New("knowledge base already has heroes")

// SeedStarterPack loads the starter heroes. Refused once any hero exists.
func (s *HeroService) SeedStarterPack(ctx context.Context) ([]*domain.Hero, error) {
	existing, err := s.heroRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrKnowledgeBaseNotEmpty
	}

	seeded := make([]*domain.Hero, 0, len(starterHeroes))
	for _, input := range starterHeroes {
		hero, err := s.CreateHero(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", input.Name, err)
		}
		seeded = append(seeded, hero)
	}
	return seeded, nil
}
