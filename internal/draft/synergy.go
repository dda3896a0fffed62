package draft

import (
	"github.com/suppa/taox-brain/internal/domain"
)

// ActiveCombos returns every stored combo whose hero-id set is a non-empty
// subset of the team's hero ids, in the input collection's original order.
// Strict subset membership only; there is no partial credit and no re-sorting
// by bonus score.
func ActiveCombos(team []*domain.Hero, combos []*domain.Combo) []*domain.Combo {
	teamIDs := make(map[string]bool, len(team))
	for _, h := range team {
		teamIDs[h.ID] = true
	}

	var active []*domain.Combo
	for _, combo := range combos {
		ids := combo.HeroIDList()
		if len(ids) == 0 {
			continue
		}
		subset := true
		for _, id := range ids {
			if !teamIDs[id] {
				subset = false
				break
			}
		}
		if subset {
			active = append(active, combo)
		}
	}
	return active
}
