package domain

import (
	"strings"
	"time"
)

// MatchRecord is a single scrim result row. Hero is a free string, not a
// foreign key into heroes; analytics joins by name, so renaming a hero in the
// CMS fragments its historical stats. Kept that way on purpose.
type MatchRecord struct {
	ID         string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date       string    `json:"date" gorm:"not null"`
	Hero       string    `json:"hero" gorm:"not null;index"`
	Result     string    `json:"result" gorm:"not null"`
	Note       string    `json:"note"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// IsWin normalizes the free-form result string against the accepted win
// synonyms.
func (m MatchRecord) IsWin() bool {
	switch strings.ToLower(strings.TrimSpace(m.Result)) {
	case "win", "w", "victory":
		return true
	}
	return false
}
