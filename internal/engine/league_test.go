package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leagueTeams() []Team {
	teams := make([]Team, LeagueSize)
	for i := range teams {
		id := fmt.Sprintf("team%d", i+1)
		teams[i] = teamOf(id,
			ratedPlayer(id+"-p1", 40+10*i, ColorRed),
			ratedPlayer(id+"-p2", 30, ColorRed),
			ratedPlayer(id+"-p3", 20, ColorBlue),
			ratedPlayer(id+"-p4", 20, ColorBlue),
		)
	}
	return teams
}

func TestGenerateLeaguePairings(t *testing.T) {
	t.Run("six pairings covering every pair once", func(t *testing.T) {
		pairings, err := GenerateLeaguePairings(leagueTeams())
		require.NoError(t, err)
		require.Len(t, pairings, LeagueMatchCount)

		seen := map[string]bool{}
		for i, pairing := range pairings {
			assert.Equal(t, i+1, pairing.MatchNumber)
			key := pairing.Home.ID + "|" + pairing.Away.ID
			assert.False(t, seen[key], "duplicate pairing %s", key)
			seen[key] = true
			assert.NotEqual(t, pairing.Home.ID, pairing.Away.ID)
		}

		// Lexicographic order over the input slice.
		assert.Equal(t, "team1", pairings[0].Home.ID)
		assert.Equal(t, "team2", pairings[0].Away.ID)
		assert.Equal(t, "team3", pairings[5].Home.ID)
		assert.Equal(t, "team4", pairings[5].Away.ID)
	})

	t.Run("rejects any other league size", func(t *testing.T) {
		for _, size := range []int{0, 1, 3, 5} {
			teams := make([]Team, size)
			_, err := GenerateLeaguePairings(teams)

			var sizeErr *LeagueSizeError
			require.ErrorAs(t, err, &sizeErr, "size %d", size)
			assert.Equal(t, size, sizeErr.Got)
		}
	})
}

func TestSimulateLeague(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(99)))
	records, err := sim.SimulateLeague(leagueTeams())
	require.NoError(t, err)
	require.Len(t, records, LeagueMatchCount)

	for _, record := range records {
		// Result must agree with the event log it was derived from.
		homeGoals, awayGoals := 0, 0
		for _, event := range record.Simulation.Events {
			if event.Type != EventGoal {
				continue
			}
			if event.Team == 1 {
				homeGoals++
			} else {
				awayGoals++
			}
		}
		assert.Equal(t, homeGoals, record.Result.HomeScore)
		assert.Equal(t, awayGoals, record.Result.AwayScore)

		assert.Equal(t, record.Home.ID, record.HomeStrength.TeamID)
		assert.Equal(t, record.Away.ID, record.AwayStrength.TeamID)
		assert.Positive(t, record.HomeStrength.WinChance)
		assert.Positive(t, record.AwayStrength.WinChance)
	}
}

func TestSimulateLeagueWrongSize(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)))
	_, err := sim.SimulateLeague(leagueTeams()[:3])

	var sizeErr *LeagueSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 3, sizeErr.Got)
}
