package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
)

// League statuses.
const (
	LeaguePending  = "pending"
	LeagueFinished = "finished"
)

// League is one 4-team round-robin competition.
type League struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	LobbyID     *string    `gorm:"type:uuid" json:"lobby_id,omitempty"`
	Status      string     `gorm:"not null;default:pending;index" json:"status"`
	Seed        *int64     `json:"seed,omitempty"`
	SimulatedAt *time.Time `json:"simulated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Members []LeagueMember `gorm:"foreignKey:LeagueID" json:"members"`
	Matches []MatchRecord  `gorm:"foreignKey:LeagueID" json:"matches,omitempty"`
}

func (League) TableName() string {
	return "leagues"
}

func (l *League) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// LeagueMember is one participating team.
type LeagueMember struct {
	LeagueID string `gorm:"type:uuid;primaryKey" json:"league_id"`
	TeamID   string `gorm:"type:uuid;primaryKey" json:"team_id"`
	UserID   string `gorm:"type:uuid;not null" json:"user_id"`

	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (LeagueMember) TableName() string {
	return "league_members"
}

// MatchRecord persists one simulated league match, including the full
// event log so match detail pages never re-run the engine.
type MatchRecord struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	LeagueID      string         `gorm:"type:uuid;not null;index" json:"league_id"`
	MatchNumber   int            `gorm:"not null" json:"match_number"`
	HomeTeamID    string         `gorm:"type:uuid;not null" json:"home_team_id"`
	AwayTeamID    string         `gorm:"type:uuid;not null" json:"away_team_id"`
	HomeScore     int            `gorm:"not null" json:"home_score"`
	AwayScore     int            `gorm:"not null" json:"away_score"`
	HomePoints    int            `gorm:"not null" json:"home_points"`
	AwayPoints    int            `gorm:"not null" json:"away_points"`
	HomeStrength  int            `gorm:"not null" json:"home_strength"`
	AwayStrength  int            `gorm:"not null" json:"away_strength"`
	HomeWinChance float64        `json:"home_win_chance"`
	AwayWinChance float64        `json:"away_win_chance"`
	Events        datatypes.JSON `gorm:"type:jsonb" json:"events"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (MatchRecord) TableName() string {
	return "match_records"
}

// NewMatchRecord flattens an engine record for storage.
func NewMatchRecord(leagueID string, record engine.LeagueMatchRecord) (*MatchRecord, error) {
	events, err := json.Marshal(record.Simulation.Events)
	if err != nil {
		return nil, fmt.Errorf("failed to encode match events: %w", err)
	}
	return &MatchRecord{
		LeagueID:      leagueID,
		MatchNumber:   record.MatchNumber,
		HomeTeamID:    record.Home.ID,
		AwayTeamID:    record.Away.ID,
		HomeScore:     record.Result.HomeScore,
		AwayScore:     record.Result.AwayScore,
		HomePoints:    record.Result.HomePoints,
		AwayPoints:    record.Result.AwayPoints,
		HomeStrength:  record.HomeStrength.TotalStrength,
		AwayStrength:  record.AwayStrength.TotalStrength,
		HomeWinChance: record.HomeStrength.WinChance,
		AwayWinChance: record.AwayStrength.WinChance,
		Events:        events,
	}, nil
}

// EventLog decodes the stored event list.
func (m *MatchRecord) EventLog() ([]engine.MatchEvent, error) {
	var events []engine.MatchEvent
	if err := json.Unmarshal(m.Events, &events); err != nil {
		return nil, fmt.Errorf("failed to decode match events: %w", err)
	}
	return events, nil
}
