// Package draft holds the mock-draft engine: the turn sequencer, the red-side
// bot, and the synergy matcher. Sessions are plain in-memory state machines;
// callers own locking and persistence (there is none — a session dies with the
// process).
package draft

import (
	"github.com/suppa/taox-brain/internal/domain"
)

// Session is the per-analyst draft state for one best-of-N series. The analyst
// always drives Blue; Red is the bot.
type Session struct {
	TurnIndex  int
	Bans       []*domain.Hero
	BlueTeam   []*domain.Hero
	RedTeam    []*domain.Hero
	Format     domain.SeriesFormat
	GameNumber int
	// History holds hero ids already used by each side in earlier games of
	// the series. Only consulted under the BO7 pre-decider rule.
	History map[domain.Side][]string
	Active  bool
}

func NewSession() *Session {
	return &Session{
		Format:     domain.FormatBO5,
		GameNumber: 1,
		History: map[domain.Side][]string{
			domain.SideBlue: {},
			domain.SideRed:  {},
		},
	}
}

// CurrentStep returns the step the draft is waiting on, or nil once complete.
func (s *Session) CurrentStep() *domain.Step {
	return domain.GetStep(s.TurnIndex)
}

// Complete reports whether all steps of the current game have been taken.
func (s *Session) Complete() bool {
	return s.TurnIndex >= domain.TotalSteps()
}

// Start begins the draft for the pending game. Rosters and bans reset; series
// history and the game counter carry over.
func (s *Session) Start(format domain.SeriesFormat) error {
	if s.Active {
		return domain.ErrDraftActive
	}
	if !format.Valid() {
		return domain.ErrInvalidFormat
	}
	s.Format = format
	s.TurnIndex = 0
	s.Bans = nil
	s.BlueTeam = nil
	s.RedTeam = nil
	s.Active = true
	return nil
}

// historyExcluded reports whether series history restricts the hero pool
// right now: BO7 only, and never for the deciding game, where full hero reuse
// is allowed.
func (s *Session) historyExcluded() bool {
	return s.Format == domain.FormatBO7 && s.GameNumber < domain.DeciderGame
}

// UsedIDs returns every hero id the given side may not select: all bans and
// both rosters, plus that side's series history when the BO7 pre-decider rule
// applies.
func (s *Session) UsedIDs(side domain.Side) map[string]bool {
	used := make(map[string]bool)
	for _, h := range s.Bans {
		used[h.ID] = true
	}
	for _, h := range s.BlueTeam {
		used[h.ID] = true
	}
	for _, h := range s.RedTeam {
		used[h.ID] = true
	}
	if s.historyExcluded() {
		for _, id := range s.History[side] {
			used[id] = true
		}
	}
	return used
}

// HeroAvailable reports whether the given side may still select the hero.
func (s *Session) HeroAvailable(side domain.Side, heroID string) bool {
	return !s.UsedIDs(side)[heroID]
}

// Advance applies the selected hero to the current step and moves the draft
// forward by exactly one turn. The selection is rejected, state unchanged, if
// the hero is already banned, picked, or excluded by series history.
func (s *Session) Advance(hero *domain.Hero) error {
	if !s.Active {
		return domain.ErrDraftNotActive
	}
	step := s.CurrentStep()
	if step == nil {
		return domain.ErrDraftComplete
	}
	if !s.HeroAvailable(step.Team, hero.ID) {
		return domain.ErrHeroUnavailable
	}

	switch step.ActionType {
	case domain.ActionTypeBan:
		s.Bans = append(s.Bans, hero)
	case domain.ActionTypePick:
		if step.Team == domain.SideBlue {
			s.BlueTeam = append(s.BlueTeam, hero)
		} else {
			s.RedTeam = append(s.RedTeam, hero)
		}
	}
	s.TurnIndex++
	return nil
}

// skipTurn advances past the current step without a selection. Only the bot
// uses this, when its available pool is empty.
func (s *Session) skipTurn() {
	if s.Active && !s.Complete() {
		s.TurnIndex++
	}
}

// NextGame folds the completed game's rosters into series history and resets
// the board for the following game.
func (s *Session) NextGame() error {
	if !s.Complete() {
		return domain.ErrDraftNotComplete
	}
	for _, h := range s.BlueTeam {
		s.History[domain.SideBlue] = append(s.History[domain.SideBlue], h.ID)
	}
	for _, h := range s.RedTeam {
		s.History[domain.SideRed] = append(s.History[domain.SideRed], h.ID)
	}
	s.GameNumber++
	s.TurnIndex = 0
	s.Bans = nil
	s.BlueTeam = nil
	s.RedTeam = nil
	s.Active = false
	return nil
}

// ResetSeries wipes series history and starts the series over at game 1.
func (s *Session) ResetSeries() {
	s.History = map[domain.Side][]string{
		domain.SideBlue: {},
		domain.SideRed:  {},
	}
	s.GameNumber = 1
	s.TurnIndex = 0
	s.Bans = nil
	s.BlueTeam = nil
	s.RedTeam = nil
	s.Active = false
}
