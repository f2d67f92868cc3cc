package engine

// Player is the engine's view of a card. Only identity, rating,
// position and color matter for match resolution; presentation fields
// stay on the storage model.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Position string `json:"position"`
	Color    string `json:"color"`
}

// Slot pairs a formation position with the player fielded there.
// Player is nil for an empty slot.
type Slot struct {
	Position string  `json:"position"`
	Player   *Player `json:"player,omitempty"`
}

// Team is a roster as fielded for a single match. The engine never
// mutates a team; strength and chemistry are recomputed on every call.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// FieldedPlayers returns the players occupying non-empty slots, in
// slot order.
func (t Team) FieldedPlayers() []Player {
	players := make([]Player, 0, len(t.Slots))
	for _, slot := range t.Slots {
		if slot.Player != nil {
			players = append(players, *slot.Player)
		}
	}
	return players
}

// TeamStrength is the derived comparison value for one team in one
// match. WinChance is zero until CalculateWinChances fills it in.
type TeamStrength struct {
	TeamID          string  `json:"team_id"`
	PlayerPoints    int     `json:"player_points"`
	ChemistryPoints int     `json:"chemistry_points"`
	TotalStrength   int     `json:"total_strength"`
	WinChance       float64 `json:"win_chance"`
}

// ChemistryBonus reports the contribution of one qualifying color
// group.
type ChemistryBonus struct {
	Color       string `json:"color"`
	PlayerCount int    `json:"player_count"`
	Bonus       int    `json:"bonus"`
}

// ChemistryValidation accumulates every violated chemistry rule so a
// caller can surface all problems at once.
type ChemistryValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// EventType distinguishes scoring from non-scoring match events.
type EventType string

const (
	EventGoal   EventType = "goal"
	EventChance EventType = "chance"
)

// MatchEvent is one entry of a simulated match's chronological log.
// Team is 1 for the home side and 2 for the away side. PlayerID is set
// for goals when the scoring team has fielded players.
type MatchEvent struct {
	Minute   int       `json:"minute"`
	Type     EventType `json:"type"`
	Team     int       `json:"team"`
	PlayerID string    `json:"player_id,omitempty"`
}

// MatchSimulation is the full outcome of one simulated match. The
// chance counts always equal TotalChancesPerTeam; the percentages
// report the realized scoring rate of this particular run.
type MatchSimulation struct {
	Events          []MatchEvent `json:"events"`
	Team1Chances    int          `json:"team1_chances"`
	Team2Chances    int          `json:"team2_chances"`
	Team1Percentage float64      `json:"team1_percentage"`
	Team2Percentage float64      `json:"team2_percentage"`
}

// MatchResult is the scoreline and league points derived from a
// simulation.
type MatchResult struct {
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	HomePoints int    `json:"home_points"`
	AwayPoints int    `json:"away_points"`
}

// Pairing is one fixture of a league round. The first team of the pair
// plays at home.
type Pairing struct {
	MatchNumber int  `json:"match_number"`
	Home        Team `json:"home"`
	Away        Team `json:"away"`
}

// LeagueMatchRecord carries every intermediate artifact of one league
// match so callers can compute standings and render match detail
// without re-running the engine.
type LeagueMatchRecord struct {
	MatchNumber  int             `json:"match_number"`
	Home         Team            `json:"home"`
	Away         Team            `json:"away"`
	Simulation   MatchSimulation `json:"simulation"`
	Result       MatchResult     `json:"result"`
	HomeStrength TeamStrength    `json:"home_strength"`
	AwayStrength TeamStrength    `json:"away_strength"`
}
