package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
)

// Lobby statuses.
const (
	LobbyOpen    = "open"
	LobbyStarted = "started"
	LobbyExpired = "expired"
)

// Lobby is a waiting room. When the fourth member joins, the lobby
// starts and a league is created from the members' teams.
type Lobby struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Status    string    `gorm:"not null;default:open;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Members []LobbyMember `gorm:"foreignKey:LobbyID" json:"members"`
}

func (Lobby) TableName() string {
	return "lobbies"
}

func (l *Lobby) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// IsFull reports whether the lobby reached league size.
func (l *Lobby) IsFull() bool {
	return len(l.Members) >= engine.LeagueSize
}

// LobbyMember links a user and the team they entered with.
type LobbyMember struct {
	LobbyID  string    `gorm:"type:uuid;primaryKey" json:"lobby_id"`
	UserID   string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	TeamID   string    `gorm:"type:uuid;not null" json:"team_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (LobbyMember) TableName() string {
	return "lobby_members"
}
