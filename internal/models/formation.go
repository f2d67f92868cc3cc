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

// Formation describes a team layout: an ordered list of field
// positions stored as JSONB.
type Formation struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	Layout    datatypes.JSON `gorm:"type:jsonb;not null" json:"layout"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Formation) TableName() string {
	return "formations"
}

func (f *Formation) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Positions decodes the layout into its ordered position list.
func (f *Formation) Positions() ([]string, error) {
	var positions []string
	if err := json.Unmarshal(f.Layout, &positions); err != nil {
		return nil, fmt.Errorf("invalid formation layout: %w", err)
	}
	for _, pos := range positions {
		if !engine.ValidPosition(pos) {
			return nil, fmt.Errorf("formation %s contains unknown position %q", f.Name, pos)
		}
	}
	return positions, nil
}

// SetPositions encodes the ordered position list into the layout
// column.
func (f *Formation) SetPositions(positions []string) error {
	data, err := json.Marshal(positions)
	if err != nil {
		return err
	}
	f.Layout = data
	return nil
}
