package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonbud2010/football-card-manager/internal/engine"
)

func TestMatchRecordRoundTrip(t *testing.T) {
	record := engine.LeagueMatchRecord{
		MatchNumber: 3,
		Home:        engine.Team{ID: "home"},
		Away:        engine.Team{ID: "away"},
		Simulation: engine.MatchSimulation{
			Events: []engine.MatchEvent{
				{Minute: 12, Type: engine.EventGoal, Team: 1, PlayerID: "p1"},
				{Minute: 40, Type: engine.EventChance, Team: 2},
				{Minute: 78, Type: engine.EventGoal, Team: 2, PlayerID: "p9"},
			},
			Team1Chances:    engine.TotalChancesPerTeam,
			Team2Chances:    engine.TotalChancesPerTeam,
			Team1Percentage: 0.01,
			Team2Percentage: 0.01,
		},
		Result: engine.MatchResult{
			HomeTeamID: "home",
			AwayTeamID: "away",
			HomeScore:  1,
			AwayScore:  1,
			HomePoints: engine.PointsDraw,
			AwayPoints: engine.PointsDraw,
		},
		HomeStrength: engine.TeamStrength{TeamID: "home", TotalStrength: 120, WinChance: 0.02},
		AwayStrength: engine.TeamStrength{TeamID: "away", TotalStrength: 100, WinChance: 0.008},
	}

	row, err := NewMatchRecord("league-1", record)
	require.NoError(t, err)

	assert.Equal(t, "league-1", row.LeagueID)
	assert.Equal(t, 3, row.MatchNumber)
	assert.Equal(t, "home", row.HomeTeamID)
	assert.Equal(t, 1, row.HomeScore)
	assert.Equal(t, 1, row.AwayScore)
	assert.Equal(t, engine.PointsDraw, row.HomePoints)
	assert.Equal(t, 120, row.HomeStrength)
	assert.InDelta(t, 0.02, row.HomeWinChance, 1e-9)

	events, err := row.EventLog()
	require.NoError(t, err)
	assert.Equal(t, record.Simulation.Events, events)
}
