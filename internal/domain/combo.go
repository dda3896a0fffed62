package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Combo is a stored hero synergy. HeroIDs must reference existing heroes at
// creation time; it is not re-validated afterwards, so a hero deleted later
// leaves a dangling id that display code omits.
type Combo struct {
	ID          string         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ComboName   string         `json:"comboName" gorm:"not null"`
	HeroIDs     datatypes.JSON `json:"heroIds" gorm:"type:jsonb;not null"` // 2-3 distinct hero ids
	BonusScore  int            `json:"bonusScore" gorm:"not null;default:0"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
}

const (
	ComboMinHeroes = 2
	ComboMaxHeroes = 3
)

// HeroIDList decodes the stored hero-id list.
func (c *Combo) HeroIDList() []string {
	var ids []string
	_ = json.Unmarshal(c.HeroIDs, &ids)
	return ids
}
