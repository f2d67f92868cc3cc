package engine

import (
	"fmt"
	"sort"
)

// colorGroups counts fielded players per color, preserving the order
// in which each color first appears. The stable order matters for
// error reporting and for breakdown tie-breaking.
func colorGroups(players []Player) (map[string]int, []string) {
	counts := make(map[string]int, len(players))
	order := make([]string, 0, len(players))
	for _, p := range players {
		if _, seen := counts[p.Color]; !seen {
			order = append(order, p.Color)
		}
		counts[p.Color]++
	}
	return counts, order
}

// groupBonus returns the chemistry contribution of a single color
// group. Groups outside the [MinChemistryGroupSize, MaxChemistryGroupSize]
// window score nothing, so stacking a single color past the cap
// forfeits the whole group's bonus.
func groupBonus(count int) int {
	if count < MinChemistryGroupSize || count > MaxChemistryGroupSize {
		return 0
	}
	return count * count
}

// CalculateTeamChemistry computes the chemistry bonus in strict mode:
// the roster must field exactly RequiredChemistryColors distinct colors
// and every color group must hold at least MinPlayersPerColor players.
// It fails with a *ChemistryError on the first violated rule category.
func CalculateTeamChemistry(players []Player) (int, error) {
	counts, order := colorGroups(players)

	if len(counts) != RequiredChemistryColors {
		return 0, &ChemistryError{Rule: RuleColorCount, ColorCount: len(counts)}
	}
	for _, color := range order {
		if counts[color] < MinPlayersPerColor {
			return 0, &ChemistryError{Rule: RuleMinPerColor, Color: color, ColorCount: counts[color]}
		}
	}

	total := 0
	for _, color := range order {
		total += groupBonus(counts[color])
	}
	return total, nil
}

// ValidateTeamChemistry applies the strict rules but accumulates every
// violation instead of failing, so a caller can show all problems at
// once. The color-count rule comes first, then one entry per
// under-populated color in first-appearance order.
func ValidateTeamChemistry(players []Player) ChemistryValidation {
	counts, order := colorGroups(players)

	var errs []string
	if len(counts) != RequiredChemistryColors {
		errs = append(errs, fmt.Sprintf("team must field exactly %d different colors, has %d", RequiredChemistryColors, len(counts)))
	}
	for _, color := range order {
		if counts[color] < MinPlayersPerColor {
			errs = append(errs, fmt.Sprintf("color %s needs at least %d players, has %d", color, MinPlayersPerColor, counts[color]))
		}
	}

	return ChemistryValidation{IsValid: len(errs) == 0, Errors: errs}
}

// ChemistryBreakdown computes the lenient per-color bonuses: one entry
// per color group inside the qualifying window, sorted by descending
// bonus. Ties keep first-appearance order. No roster shape rules are
// enforced here; a team that fails strict validation still earns
// partial chemistry credit in a live match.
func ChemistryBreakdown(players []Player) []ChemistryBonus {
	counts, order := colorGroups(players)

	bonuses := make([]ChemistryBonus, 0, len(order))
	for _, color := range order {
		bonus := groupBonus(counts[color])
		if bonus == 0 {
			continue
		}
		bonuses = append(bonuses, ChemistryBonus{
			Color:       color,
			PlayerCount: counts[color],
			Bonus:       bonus,
		})
	}

	sort.SliceStable(bonuses, func(i, j int) bool {
		return bonuses[i].Bonus > bonuses[j].Bonus
	})
	return bonuses
}

// TotalChemistry sums the lenient breakdown. This is the value that
// feeds team strength.
func TotalChemistry(players []Player) int {
	total := 0
	for _, b := range ChemistryBreakdown(players) {
		total += b.Bonus
	}
	return total
}
