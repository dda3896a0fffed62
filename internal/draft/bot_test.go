package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/draft"
)

func TestBotBanPicksHighestMeta(t *testing.T) {
	pool := []*domain.Hero{
		newHero("h1", "Florentino", 95),
		newHero("h2", "Aya", 99),
		newHero("h3", "Krixi", 92),
	}

	var bot draft.Bot
	picked := bot.ChooseBan(pool)
	require.NotNil(t, picked)
	assert.Equal(t, "Aya", picked.Name)
}

func TestBotBanTieKeepsFirstEncountered(t *testing.T) {
	pool := []*domain.Hero{
		newHero("h1", "First", 99),
		newHero("h2", "Second", 99),
	}

	var bot draft.Bot
	assert.Equal(t, "h1", bot.ChooseBan(pool).ID)
}

func TestBotPickPrefersCounterOverMeta(t *testing.T) {
	blue := []*domain.Hero{newHero("b1", "Nakroth", 95)}
	pool := []*domain.Hero{
		newHero("h1", "Aya", 99, "aleister", "arum"),
		newHero("h2", "Krixi", 85, "nakroth", "taara"),
	}

	var bot draft.Bot
	picked := bot.ChoosePick(pool, blue)
	require.NotNil(t, picked)
	// Counter match wins regardless of relative meta score.
	assert.Equal(t, "h2", picked.ID)
}

func TestBotPickCounterMatchIsCaseInsensitive(t *testing.T) {
	blue := []*domain.Hero{newHero("b1", "NAKROTH", 95)}
	pool := []*domain.Hero{
		newHero("h1", "Krixi", 85, "Nakroth"),
	}

	var bot draft.Bot
	assert.Equal(t, "h1", bot.ChoosePick(pool, blue).ID)
}

func TestBotPickFirstMatchNotBestMatch(t *testing.T) {
	blue := []*domain.Hero{
		newHero("b1", "Nakroth", 95),
		newHero("b2", "Taara", 80),
	}
	// Both candidates counter a Blue hero; iteration order decides.
	pool := []*domain.Hero{
		newHero("h1", "Krixi", 70, "taara"),
		newHero("h2", "Aya", 99, "nakroth"),
	}

	var bot draft.Bot
	assert.Equal(t, "h1", bot.ChoosePick(pool, blue).ID)
}

func TestBotPickFallsBackToMeta(t *testing.T) {
	blue := []*domain.Hero{newHero("b1", "Nakroth", 95)}
	pool := []*domain.Hero{
		newHero("h1", "Aya", 92, "zip"),
		newHero("h2", "Zip", 98, "mina"),
	}

	var bot draft.Bot
	assert.Equal(t, "h2", bot.ChoosePick(pool, blue).ID)
}

func TestBotActBansOnRedBanStep(t *testing.T) {
	s := draft.NewSession()
	require.NoError(t, s.Start(domain.FormatBO5))

	heroes := heroSet(10)
	require.NoError(t, s.Advance(heroes[0])) // Blue ban, turn 0

	var bot draft.Bot
	picked, err := bot.Act(s, heroes)
	require.NoError(t, err)
	require.NotNil(t, picked)

	assert.Equal(t, 2, s.TurnIndex)
	assert.Len(t, s.Bans, 2)
	// Highest meta of the remaining pool
	assert.Equal(t, "h9", picked.ID)
}

func TestBotActRefusesBlueTurn(t *testing.T) {
	s := draft.NewSession()
	require.NoError(t, s.Start(domain.FormatBO5))

	var bot draft.Bot
	_, err := bot.Act(s, heroSet(10))
	assert.ErrorIs(t, err, domain.ErrNotYourTurn)
	assert.Equal(t, 0, s.TurnIndex)
}

func TestBotActEmptyPoolSkipsTurn(t *testing.T) {
	s := draft.NewSession()
	require.NoError(t, s.Start(domain.FormatBO5))

	// Only one hero exists and Blue bans it; Red's pool is empty.
	h := newHero("h1", "Aya", 99)
	require.NoError(t, s.Advance(h))

	var bot draft.Bot
	picked, err := bot.Act(s, []*domain.Hero{h})
	require.NoError(t, err)
	assert.Nil(t, picked)
	// Turn still advances so the draft cannot deadlock.
	assert.Equal(t, 2, s.TurnIndex)
	assert.Len(t, s.Bans, 1)
}

func TestBotActExcludesRedHistoryUnderBO7(t *testing.T) {
	s := draft.NewSession()
	s.History[domain.SideRed] = []string{"h9"}
	require.NoError(t, s.Start(domain.FormatBO7))

	heroes := heroSet(10)
	require.NoError(t, s.Advance(heroes[0]))

	var bot draft.Bot
	picked, err := bot.Act(s, heroes)
	require.NoError(t, err)
	require.NotNil(t, picked)
	// h9 has top meta but sits in Red's series history.
	assert.Equal(t, "h8", picked.ID)
}

func TestBotPlaysFullGameAgainstScriptedBlue(t *testing.T) {
	s := draft.NewSession()
	require.NoError(t, s.Start(domain.FormatBO5))

	heroes := heroSet(20)
	var bot draft.Bot
	next := 0

	for !s.Complete() {
		step := s.CurrentStep()
		require.NotNil(t, step)
		if step.Team == domain.SideBlue {
			// Scripted analyst: first available hero in list order.
			for ; next < len(heroes); next++ {
				if s.HeroAvailable(domain.SideBlue, heroes[next].ID) {
					break
				}
			}
			require.Less(t, next, len(heroes))
			require.NoError(t, s.Advance(heroes[next]))
		} else {
			_, err := bot.Act(s, heroes)
			require.NoError(t, err)
		}
	}

	assert.Len(t, s.BlueTeam, 3)
	assert.Len(t, s.RedTeam, 3)
	assert.Len(t, s.Bans, 4)
}
