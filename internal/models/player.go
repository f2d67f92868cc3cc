package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
)

// Player is a collectible card. Points, position and color drive the
// match engine; the remaining fields are market and presentation data.
type Player struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Points      int       `gorm:"not null" json:"points"`
	Position    string    `gorm:"not null;index" json:"position"`
	Color       string    `gorm:"not null;index" json:"color"`
	MarketPrice int       `gorm:"not null;default:0" json:"market_price"`
	Percentage  float64   `json:"percentage"`
	Theme       string    `json:"theme"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Validate checks the card against the fixed position and color sets
// and the positive-rating rule.
func (p *Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Points <= 0 {
		return fmt.Errorf("player points must be positive, got %d", p.Points)
	}
	if !engine.ValidPosition(p.Position) {
		return fmt.Errorf("unknown position %q", p.Position)
	}
	if !engine.ValidColor(p.Color) {
		return fmt.Errorf("unknown color %q", p.Color)
	}
	return nil
}

// ToEngine maps the card onto the engine's player value.
func (p *Player) ToEngine() engine.Player {
	return engine.Player{
		ID:       p.ID,
		Name:     p.Name,
		Points:   p.Points,
		Position: p.Position,
		Color:    p.Color,
	}
}
