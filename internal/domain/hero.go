package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Hero struct {
	ID          string         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VersionID   *string        `json:"versionId" gorm:"type:uuid;index"` // patch version, nil = unversioned
	Name        string         `json:"name" gorm:"not null"`
	Role        HeroRole       `json:"role" gorm:"not null"`
	Tier        HeroTier       `json:"tier" gorm:"not null;default:'B'"`
	MetaScore   int            `json:"metaScore" gorm:"not null;default:0"`
	Counters    datatypes.JSON `json:"counters" gorm:"type:jsonb;default:'[]'"`    // hero names this hero is strong against
	WeakAgainst datatypes.JSON `json:"weakAgainst" gorm:"type:jsonb;default:'[]'"` // hero names this hero struggles into
	ImageURL    string         `json:"imageUrl"`
	Note        string         `json:"note"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CounterNames decodes the stored counters list. A malformed or empty column
// yields nil, which downstream scans treat as "counters nothing".
func (h *Hero) CounterNames() []string {
	var names []string
	_ = json.Unmarshal(h.Counters, &names)
	return names
}

// StringList packs a name list into the JSON column format.
func StringList(names []string) datatypes.JSON {
	if names == nil {
		names = []string{}
	}
	b, _ := json.Marshal(names)
	return datatypes.JSON(b)
}

type HeroRole string

const (
	RoleAssassin HeroRole = "Assassin"
	RoleMage     HeroRole = "Mage"
	RoleFighter  HeroRole = "Fighter"
	RoleSupport  HeroRole = "Support"
	RoleTank     HeroRole = "Tank"
	RoleCarry    HeroRole = "Carry"
)

var AllRoles = []HeroRole{RoleAssassin, RoleMage, RoleFighter, RoleSupport, RoleTank, RoleCarry}

func (r HeroRole) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type HeroTier string

const (
	TierS HeroTier = "S"
	TierA HeroTier = "A"
	TierB HeroTier = "B"
	TierC HeroTier = "C"
)

func (t HeroTier) Valid() bool {
	switch t {
	case TierS, TierA, TierB, TierC:
		return true
	}
	return false
}
