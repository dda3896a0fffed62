package domain

import "time"

// PatchVersion labels a snapshot of the hero meta ("Season 1", "Patch 1.2").
// Heroes optionally belong to a version; cloning a version copies its heroes.
type PatchVersion struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
}
