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

var ErrComboNotFound = errors.New("combo not found")

type ComboService struct {
	comboRepo repository.ComboRepository
	heroRepo  repository.HeroRepository
}

func NewComboService(comboRepo repository.ComboRepository, heroRepo repository.HeroRepository) *ComboService {
	return &ComboService{comboRepo: comboRepo, heroRepo: heroRepo}
}

type ComboInput struct {
	ComboName   string
	HeroIDs     []string
	BonusScore  int
	Description string
}

// ComboView is a combo with its hero names resolved for display. Ids whose
// hero has since been deleted are omitted from HeroNames without comment.
type ComboView struct {
	Combo     *domain.Combo
	HeroNames []string
}

// CreateCombo validates and stores a new synergy. Hero ids must reference
// existing heroes at creation time; this is not re-checked later.
func (s *ComboService) CreateCombo(ctx context.Context, input ComboInput) (*domain.Combo, error) {
	if input.ComboName == "" {
		return nil, domain.ErrComboNameRequired
	}
	if len(input.HeroIDs) < domain.ComboMinHeroes {
		return nil, domain.ErrComboTooFewHeroes
	}
	if len(input.HeroIDs) > domain.ComboMaxHeroes {
		return nil, domain.ErrComboTooManyHeroes
	}

	seen := make(map[string]bool, len(input.HeroIDs))
	for _, id := range input.HeroIDs {
		if seen[id] {
			return nil, domain.ErrComboDuplicateHero
		}
		seen[id] = true
		if _, err := s.heroRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrComboUnknownHero
			}
			return nil, err
		}
	}

	bonus := input.BonusScore
	if bonus < 0 {
		bonus = 0
	}

	combo := &domain.Combo{
		ComboName:   input.ComboName,
		HeroIDs:     domain.StringList(input.HeroIDs),
		BonusScore:  bonus,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.comboRepo.Create(ctx, combo); err != nil {
		return nil, fmt.Errorf("create combo: %w", err)
	}
	return combo, nil
}

// ListCombos returns all combos with display names resolved against the
// current hero collection.
func (s *ComboService) ListCombos(ctx context.Context) ([]ComboView, error) {
	combos, err := s.comboRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	heroes, err := s.heroRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	nameByID := make(map[string]string, len(heroes))
	for _, h := range heroes {
		nameByID[h.ID] = h.Name
	}

	views := make([]ComboView, 0, len(combos))
	for _, combo := range combos {
		view := ComboView{Combo: combo, HeroNames: []string{}}
		for _, id := range combo.HeroIDList() {
			if name, ok := nameByID[id]; ok {
				view.HeroNames = append(view.HeroNames, name)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ComboService) DeleteCombo(ctx context.Context, id string) error {
	if _, err := s.comboRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComboNotFound
		}
		return err
	}
	return s.comboRepo.Delete(ctx, id)
}
