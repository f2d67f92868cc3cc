package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
)

// Team is a user's lineup for a formation. Slots may be empty; the
// engine recomputes chemistry and strength from the current roster on
// every call, nothing derived is stored here.
type Team struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	FormationID string    `gorm:"type:uuid;not null" json:"formation_id"`
	Name        string    `gorm:"not null" json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Formation Formation  `gorm:"foreignKey:FormationID" json:"formation,omitempty"`
	Slots     []TeamSlot `gorm:"foreignKey:TeamID" json:"slots"`
}

func (Team) TableName() string {
	return "teams"
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TeamSlot assigns a player (or nobody) to one position of the team's
// formation.
type TeamSlot struct {
	TeamID    string  `gorm:"type:uuid;primaryKey" json:"team_id"`
	SlotIndex int     `gorm:"primaryKey" json:"slot_index"`
	Position  string  `gorm:"not null" json:"position"`
	PlayerID  *string `gorm:"type:uuid" json:"player_id,omitempty"`

	Player *Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
}

func (TeamSlot) TableName() string {
	return "team_slots"
}

// FieldedPlayers returns the players assigned to slots, in slot order.
func (t *Team) FieldedPlayers() []Player {
	players := make([]Player, 0, len(t.Slots))
	for _, slot := range t.sortedSlots() {
		if slot.Player != nil {
			players = append(players, *slot.Player)
		}
	}
	return players
}

// ToEngine maps the stored lineup onto the engine's team value. Slots
// are ordered by index so the mapping is stable regardless of how the
// rows came back.
func (t *Team) ToEngine() engine.Team {
	slots := t.sortedSlots()
	engineSlots := make([]engine.Slot, len(slots))
	for i, slot := range slots {
		engineSlots[i] = engine.Slot{Position: slot.Position}
		if slot.Player != nil {
			player := slot.Player.ToEngine()
			engineSlots[i].Player = &player
		}
	}
	return engine.Team{ID: t.ID, Name: t.Name, Slots: engineSlots}
}

func (t *Team) sortedSlots() []TeamSlot {
	slots := make([]TeamSlot, len(t.Slots))
	copy(slots, t.Slots)
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SlotIndex < slots[j].SlotIndex
	})
	return slots
}

// HasPlayer reports whether the card is already fielded somewhere in
// this team.
func (t *Team) HasPlayer(playerID string) bool {
	for _, slot := range t.Slots {
		if slot.PlayerID != nil && *slot.PlayerID == playerID {
			return true
		}
	}
	return false
}
