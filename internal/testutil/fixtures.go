package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/suppa/taox-brain/internal/domain"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	password    string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		displayName: fmt.Sprintf("analyst_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"displayName": b.displayName,
		"password":    b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:          userID,
		DisplayName: authResp.User.DisplayName,
	}

	return user, authResp.AccessToken
}

// HeroBuilder creates test heroes
type HeroBuilder struct {
	name      string
	role      domain.HeroRole
	tier      domain.HeroTier
	metaScore int
	counters  []string
	versionID *string
	note      string
}

// NewHeroBuilder creates a new HeroBuilder with default values
func NewHeroBuilder() *HeroBuilder {
	return &HeroBuilder{
		name:      fmt.Sprintf("Hero%d", time.Now().UnixNano()%100000),
		role:      domain.RoleFighter,
		tier:      domain.TierB,
		metaScore: 50,
	}
}

// WithName sets the hero name
func (b *HeroBuilder) WithName(name string) *HeroBuilder {
	b.name = name
	return b
}

// WithRole sets the hero role
func (b *HeroBuilder) WithRole(role domain.HeroRole) *HeroBuilder {
	b.role = role
	return b
}

// WithTier sets the hero tier
func (b *HeroBuilder) WithTier(tier domain.HeroTier) *HeroBuilder {
	b.tier = tier
	return b
}

// WithMetaScore sets the meta score
func (b *HeroBuilder) WithMetaScore(score int) *HeroBuilder {
	b.metaScore = score
	return b
}

// WithCounters sets the counter name list
func (b *HeroBuilder) WithCounters(counters ...string) *HeroBuilder {
	b.counters = counters
	return b
}

// WithVersion pins the hero to a patch version
func (b *HeroBuilder) WithVersion(versionID string) *HeroBuilder {
	b.versionID = &versionID
	return b
}

// WithNote sets the analyst note
func (b *HeroBuilder) WithNote(note string) *HeroBuilder {
	b.note = note
	return b
}

// Build creates the hero in the database
func (b *HeroBuilder) Build(t *testing.T, db *gorm.DB) *domain.Hero {
	t.Helper()

	hero := &domain.Hero{
		ID:          uuid.New().String(),
		VersionID:   b.versionID,
		Name:        b.name,
		Role:        b.role,
		Tier:        b.tier,
		MetaScore:   b.metaScore,
		Counters:    domain.StringList(b.counters),
		WeakAgainst: domain.StringList(nil),
		Note:        b.note,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(hero).Error; err != nil {
		t.Fatalf("failed to create hero: %v", err)
	}

	return hero
}

// SeedHeroes creates N test heroes with ascending meta scores
func SeedHeroes(t *testing.T, db *gorm.DB, count int) []*domain.Hero {
	t.Helper()

	heroes := make([]*domain.Hero, count)
	for i := 0; i < count; i++ {
		heroes[i] = NewHeroBuilder().
			WithName(fmt.Sprintf("TestHero%d", i)).
			WithMetaScore(50 + i).
			Build(t, db)
	}
	return heroes
}

// SeedMatches creates scrim result rows for the given hero names, alternating
// wins and losses
func SeedMatches(t *testing.T, db *gorm.DB, heroNames []string, perHero int) []*domain.MatchRecord {
	t.Helper()

	var records []*domain.MatchRecord
	for _, name := range heroNames {
		for i := 0; i < perHero; i++ {
			result := "Win"
			if i%2 == 1 {
				result = "Loss"
			}
			record := &domain.MatchRecord{
				ID:         uuid.New().String(),
				Date:       "2026-01-15",
				Hero:       name,
				Result:     result,
				UploadedAt: time.Now(),
			}
			if err := db.Create(record).Error; err != nil {
				t.Fatalf("failed to create match record: %v", err)
			}
			records = append(records, record)
		}
	}
	return records
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
