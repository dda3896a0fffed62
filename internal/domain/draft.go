package domain

type Side string

const (
	SideBlue Side = "blue"
	SideRed  Side = "red"
)

type ActionType string

const (
	ActionTypeBan  ActionType = "ban"
	ActionTypePick ActionType = "pick"
)

type SeriesFormat string

const (
	FormatBO1 SeriesFormat = "BO1"
	FormatBO3 SeriesFormat = "BO3"
	FormatBO5 SeriesFormat = "BO5"
	FormatBO7 SeriesFormat = "BO7"
)

func (f SeriesFormat) Valid() bool {
	switch f {
	case FormatBO1, FormatBO3, FormatBO5, FormatBO7:
		return true
	}
	return false
}

// DeciderGame is the game number at which BO7 hero-reuse exclusion is lifted.
const DeciderGame = 7

// Step is a single slot in the fixed draft order.
type Step struct {
	Index      int
	Team       Side
	ActionType ActionType
}

// DraftOrder is the authoritative 10-step sequence for every game: ABAB bans,
// then picks B,R,R,B,B,R. Identical for every game in a series.
var DraftOrder = []Step{
	{0, SideBlue, ActionTypeBan},
	{1, SideRed, ActionTypeBan},
	{2, SideBlue, ActionTypeBan},
	{3, SideRed, ActionTypeBan},
	{4, SideBlue, ActionTypePick},
	{5, SideRed, ActionTypePick},
	{6, SideRed, ActionTypePick},
	{7, SideBlue, ActionTypePick},
	{8, SideBlue, ActionTypePick},
	{9, SideRed, ActionTypePick},
}

// GetStep returns the step at the given turn index, or nil past the end.
func GetStep(index int) *Step {
	if index < 0 || index >= len(DraftOrder) {
		return nil
	}
	return &DraftOrder[index]
}

// TotalSteps returns the number of steps in a single game's draft.
func TotalSteps() int {
	return len(DraftOrder)
}
