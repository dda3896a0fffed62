package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/repository"
)

type AnalyticsService struct {
	matchRepo repository.MatchRepository
}

func NewAnalyticsService(matchRepo repository.MatchRepository) *AnalyticsService {
	return &AnalyticsService{matchRepo: matchRepo}
}

type MatchRow struct {
	Date   string
	Hero   string
	Result string
	Note   string
}

// AddMatches stores pre-validated rows as match records, stamping the upload
// time.
func (s *AnalyticsService) AddMatches(ctx context.Context, rows []MatchRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	now := time.Now()
	records := make([]*domain.MatchRecord, len(rows))
	for i, row := range rows {
		records[i] = &domain.MatchRecord{
			Date:       row.Date,
			Hero:       row.Hero,
			Result:     row.Result,
			Note:       row.Note,
			UploadedAt: now,
		}
	}
	if err := s.matchRepo.CreateMany(ctx, records); err != nil {
		return 0, fmt.Errorf("store matches: %w", err)
	}
	return len(records), nil
}

func (s *AnalyticsService) ListMatches(ctx context.Context) ([]*domain.MatchRecord, error) {
	return s.matchRepo.GetAll(ctx)
}

type HeroStats struct {
	Hero      string  `json:"hero"`
	PickCount int     `json:"pickCount"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"winRate"`
}

type StatsSummary struct {
	TotalMatches int         `json:"totalMatches"`
	TotalWins    int         `json:"totalWins"`
	WinRate      float64     `json:"winRate"`
	HeroStats    []HeroStats `json:"heroStats"`
}

// Stats aggregates scrim results. Grouping is by the free-string hero name as
// uploaded, not by hero id, so a renamed hero fragments its own history.
func (s *AnalyticsService) Stats(ctx context.Context) (*StatsSummary, error) {
	matches, err := s.matchRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &StatsSummary{HeroStats: []HeroStats{}}
	summary.TotalMatches = len(matches)

	byHero := make(map[string]*HeroStats)
	order := []string{}
	for _, m := range matches {
		stats, ok := byHero[m.Hero]
		if !ok {
			stats = &HeroStats{Hero: m.Hero}
			byHero[m.Hero] = stats
			order = append(order, m.Hero)
		}
		stats.PickCount++
		if m.IsWin() {
			stats.Wins++
			summary.TotalWins++
		}
	}

	if summary.TotalMatches > 0 {
		summary.WinRate = float64(summary.TotalWins) / float64(summary.TotalMatches) * 100
	}

	for _, hero := range order {
		stats := byHero[hero]
		if stats.PickCount > 0 {
			stats.WinRate = float64(stats.Wins) / float64(stats.PickCount) * 100
		}
		summary.HeroStats = append(summary.HeroStats, *stats)
	}

	// Most-played first; equal counts keep first-uploaded order
	sort.SliceStable(summary.HeroStats, func(i, j int) bool {
		return summary.HeroStats[i].PickCount > summary.HeroStats[j].PickCount
	})

	return summary, nil
}
