package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func simWithGoals(homeGoals, awayGoals int) MatchSimulation {
	var events []MatchEvent
	for i := 0; i < homeGoals; i++ {
		events = append(events, MatchEvent{Minute: 10 + i, Type: EventGoal, Team: 1})
	}
	for i := 0; i < awayGoals; i++ {
		events = append(events, MatchEvent{Minute: 50 + i, Type: EventGoal, Team: 2})
	}
	// Non-scoring events must not influence the scoreline.
	events = append(events, MatchEvent{Minute: 90, Type: EventChance, Team: 1})
	events = append(events, MatchEvent{Minute: 90, Type: EventChance, Team: 2})
	return MatchSimulation{Events: events}
}

func TestCalculateMatchResult(t *testing.T) {
	home := Team{ID: "home"}
	away := Team{ID: "away"}

	tests := []struct {
		name       string
		homeGoals  int
		awayGoals  int
		homePoints int
		awayPoints int
	}{
		{"home win", 3, 1, PointsWin, PointsLoss},
		{"away win", 0, 2, PointsLoss, PointsWin},
		{"draw", 2, 2, PointsDraw, PointsDraw},
		{"goalless draw", 0, 0, PointsDraw, PointsDraw},
		{"single goal margin", 1, 0, PointsWin, PointsLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMatchResult(home, away, simWithGoals(tt.homeGoals, tt.awayGoals))

			assert.Equal(t, "home", result.HomeTeamID)
			assert.Equal(t, "away", result.AwayTeamID)
			assert.Equal(t, tt.homeGoals, result.HomeScore)
			assert.Equal(t, tt.awayGoals, result.AwayScore)
			assert.Equal(t, tt.homePoints, result.HomePoints)
			assert.Equal(t, tt.awayPoints, result.AwayPoints)
		})
	}
}
