package engine

import "fmt"

// Chemistry rule identifiers carried by ChemistryError.
const (
	RuleColorCount  = "color_count"
	RuleMinPerColor = "min_per_color"
)

// ChemistryError reports the first violated chemistry rule in strict
// mode. Color is set for per-color violations.
type ChemistryError struct {
	Rule       string
	Color      string
	ColorCount int
}

func (e *ChemistryError) Error() string {
	switch e.Rule {
	case RuleColorCount:
		return fmt.Sprintf("team must field exactly %d different colors, has %d", RequiredChemistryColors, e.ColorCount)
	case RuleMinPerColor:
		return fmt.Sprintf("color %s needs at least %d players, has %d", e.Color, MinPlayersPerColor, e.ColorCount)
	default:
		return "chemistry rule violated"
	}
}

// LeagueSizeError reports a league started with the wrong number of
// teams.
type LeagueSizeError struct {
	Got int
}

func (e *LeagueSizeError) Error() string {
	return fmt.Sprintf("a league needs exactly %d teams, got %d", LeagueSize, e.Got)
}
