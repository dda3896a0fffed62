package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/repository"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Hero{},
		&domain.Combo{},
		&domain.MatchRecord{},
		&domain.PatchVersion{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Hero:    NewHeroRepository(db),
		Combo:   NewComboRepository(db),
		Match:   NewMatchRepository(db),
		Version: NewVersionRepository(db),
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
	}
}
