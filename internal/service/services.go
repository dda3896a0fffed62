package service

import (
	"github.com/suppa/taox-brain/internal/config"
	"github.com/suppa/taox-brain/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Hero      *HeroService
	Combo     *ComboService
	Analytics *AnalyticsService
	Version   *VersionService
	Media     *MediaService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) (*Services, error) {
	media, err := NewMediaService(cfg.CloudinaryURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:      NewAuthService(repos.User, repos.Session, cfg),
		Hero:      NewHeroService(repos.Hero),
		Combo:     NewComboService(repos.Combo, repos.Hero),
		Analytics: NewAnalyticsService(repos.Match),
		Version:   NewVersionService(repos.Version, repos.Hero),
		Media:     media,
	}, nil
}
