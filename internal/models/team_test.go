package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonbud2010/football-card-manager/internal/engine"
)

func TestTeamToEngine(t *testing.T) {
	striker := Player{ID: "p-st", Name: "Striker", Points: 80, Position: "ST", Color: engine.ColorRed}
	keeper := Player{ID: "p-gk", Name: "Keeper", Points: 70, Position: "GK", Color: engine.ColorBlue}

	team := Team{
		ID:   "t1",
		Name: "Test XI",
		// Out of order on purpose: mapping must sort by slot index.
		Slots: []TeamSlot{
			{TeamID: "t1", SlotIndex: 2, Position: "ST", PlayerID: &striker.ID, Player: &striker},
			{TeamID: "t1", SlotIndex: 0, Position: "GK", PlayerID: &keeper.ID, Player: &keeper},
			{TeamID: "t1", SlotIndex: 1, Position: "CB"},
		},
	}

	engineTeam := team.ToEngine()
	require.Len(t, engineTeam.Slots, 3)
	assert.Equal(t, "GK", engineTeam.Slots[0].Position)
	assert.Equal(t, "p-gk", engineTeam.Slots[0].Player.ID)
	assert.Nil(t, engineTeam.Slots[1].Player)
	assert.Equal(t, "p-st", engineTeam.Slots[2].Player.ID)

	fielded := engineTeam.FieldedPlayers()
	require.Len(t, fielded, 2)
	assert.Equal(t, "p-gk", fielded[0].ID)
	assert.Equal(t, "p-st", fielded[1].ID)
}

func TestTeamHasPlayer(t *testing.T) {
	id := "p1"
	team := Team{Slots: []TeamSlot{
		{SlotIndex: 0, Position: "GK", PlayerID: &id},
		{SlotIndex: 1, Position: "ST"},
	}}

	assert.True(t, team.HasPlayer("p1"))
	assert.False(t, team.HasPlayer("p2"))
}

func TestPlayerValidate(t *testing.T) {
	valid := Player{Name: "Card", Points: 10, Position: "ST", Color: engine.ColorRed}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Player)
	}{
		{"missing name", func(p *Player) { p.Name = "" }},
		{"zero points", func(p *Player) { p.Points = 0 }},
		{"negative points", func(p *Player) { p.Points = -5 }},
		{"unknown position", func(p *Player) { p.Position = "QB" }},
		{"unknown color", func(p *Player) { p.Color = "MAGENTA" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := valid
			tt.mutate(&player)
			assert.Error(t, player.Validate())
		})
	}
}

func TestFormationPositions(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var formation Formation
		layout := []string{"GK", "CB", "CM", "ST"}
		require.NoError(t, formation.SetPositions(layout))

		positions, err := formation.Positions()
		require.NoError(t, err)
		assert.Equal(t, layout, positions)
	})

	t.Run("unknown position rejected", func(t *testing.T) {
		var formation Formation
		require.NoError(t, formation.SetPositions([]string{"GK", "XX"}))
		_, err := formation.Positions()
		assert.Error(t, err)
	})
}
