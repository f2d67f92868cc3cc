package engine

// Chemistry rules. A valid team fields exactly RequiredChemistryColors
// distinct colors with at least MinPlayersPerColor players each. The
// bonus itself is lenient: any color group inside the window scores
// count squared, groups outside the window score nothing.
const (
	RequiredChemistryColors = 3
	MinPlayersPerColor      = 2
	MinChemistryGroupSize   = 2
	MaxChemistryGroupSize   = 7
)

// Win chance model. BaseWinChance and both modifiers are expressed in
// percentage points per strength point; the stronger team gains
// probability faster than the weaker team loses it.
const (
	BaseWinChance = 1.0
	ModifierAbove = 0.05
	ModifierBelow = 0.01
	EvenWinChance = 0.5
)

// Match simulation.
const (
	TotalChancesPerTeam = 100
	FirstMatchMinute    = 1
	LastMatchMinute     = 90
)

// League points schema.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// League shape: 4 teams, every unordered pair once.
const (
	LeagueSize       = 4
	LeagueMatchCount = LeagueSize * (LeagueSize - 1) / 2
)

// Colors a player card can carry. The engine only compares color
// values; the palette lives here so validation and seeding agree.
const (
	ColorRed    = "RED"
	ColorBlue   = "BLUE"
	ColorGreen  = "GREEN"
	ColorYellow = "YELLOW"
	ColorPurple = "PURPLE"
	ColorOrange = "ORANGE"
	ColorBlack  = "BLACK"
	ColorWhite  = "WHITE"
)

// Colors lists the full palette in display order.
var Colors = []string{
	ColorRed,
	ColorBlue,
	ColorGreen,
	ColorYellow,
	ColorPurple,
	ColorOrange,
	ColorBlack,
	ColorWhite,
}

// Positions lists the 15 field positions a card can be assigned to.
var Positions = []string{
	"GK",
	"LB", "CB", "RB",
	"LWB", "RWB",
	"CDM", "CM", "CAM",
	"LM", "RM",
	"LW", "RW",
	"CF", "ST",
}

// ValidColor reports whether c is part of the palette.
func ValidColor(c string) bool {
	for _, color := range Colors {
		if color == c {
			return true
		}
	}
	return false
}

// ValidPosition reports whether p is one of the field positions.
func ValidPosition(p string) bool {
	for _, pos := range Positions {
		if pos == p {
			return true
		}
	}
	return false
}
