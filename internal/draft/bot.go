package draft

import (
	"strings"

	"github.com/suppa/taox-brain/internal/domain"
)

// Bot plays Red. It runs automatically on every Red step; nothing interactive
// gates it.
type Bot struct{}

// AvailablePool filters the full hero list down to what Red may still select,
// preserving the input iteration order. Order matters: both the ban tie-break
// and the counter scan are first-match.
func (Bot) AvailablePool(heroes []*domain.Hero, s *Session) []*domain.Hero {
	used := s.UsedIDs(domain.SideRed)
	pool := make([]*domain.Hero, 0, len(heroes))
	for _, h := range heroes {
		if !used[h.ID] {
			pool = append(pool, h)
		}
	}
	return pool
}

// ChooseBan selects the pool member with the strictly highest meta score.
// Ties keep the first one encountered.
func (Bot) ChooseBan(pool []*domain.Hero) *domain.Hero {
	var best *domain.Hero
	for _, h := range pool {
		if best == nil || h.MetaScore > best.MetaScore {
			best = h
		}
	}
	return best
}

// ChoosePick scans the pool in order and takes the first hero whose counters
// list names any current Blue pick, case-insensitively. Both scans stop at the
// first match; meta score is irrelevant once a counter is found. With no
// counter anywhere, it falls back to the highest meta score.
func (b Bot) ChoosePick(pool []*domain.Hero, blueTeam []*domain.Hero) *domain.Hero {
	blueNames := make(map[string]bool, len(blueTeam))
	for _, h := range blueTeam {
		blueNames[strings.ToLower(h.Name)] = true
	}

	for _, candidate := range pool {
		for _, counter := range candidate.CounterNames() {
			if blueNames[strings.ToLower(counter)] {
				return candidate
			}
		}
	}
	return b.ChooseBan(pool)
}

// Act performs the bot's turn: one ban or pick, then the advance. An empty
// pool is a silent no-op that still consumes the turn so the draft cannot
// deadlock. Returns the selected hero, or nil when the pool was empty.
func (b Bot) Act(s *Session, heroes []*domain.Hero) (*domain.Hero, error) {
	if !s.Active {
		return nil, domain.ErrDraftNotActive
	}
	step := s.CurrentStep()
	if step == nil {
		return nil, domain.ErrDraftComplete
	}
	if step.Team != domain.SideRed {
		return nil, domain.ErrNotYourTurn
	}

	pool := b.AvailablePool(heroes, s)
	if len(pool) == 0 {
		s.skipTurn()
		return nil, nil
	}

	var hero *domain.Hero
	switch step.ActionType {
	case domain.ActionTypeBan:
		hero = b.ChooseBan(pool)
	case domain.ActionTypePick:
		hero = b.ChoosePick(pool, s.BlueTeam)
	}

	if err := s.Advance(hero); err != nil {
		return nil, err
	}
	return hero, nil
}
