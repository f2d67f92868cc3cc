package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
	"github.com/jonbud2010/football-card-manager/internal/models"
	"github.com/jonbud2010/football-card-manager/internal/services"
	"github.com/jonbud2010/football-card-manager/pkg/database"
	"github.com/jonbud2010/football-card-manager/pkg/utils"
)

type TeamHandler struct {
	db    *database.DB
	cache *services.CacheService
}

func NewTeamHandler(db *database.DB, cache *services.CacheService) *TeamHandler {
	return &TeamHandler{db: db, cache: cache}
}

func (h *TeamHandler) loadTeam(c *gin.Context) (*models.Team, bool) {
	var team models.Team
	err := h.db.
		Preload("Formation").
		Preload("Slots.Player").
		First(&team, "id = ?", c.Param("id")).Error
	if err != nil {
		utils.SendNotFound(c, "Team not found")
		return nil, false
	}
	return &team, true
}

// GetTeams lists the requesting user's teams.
func (h *TeamHandler) GetTeams(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var teams []models.Team
	err := h.db.
		Preload("Formation").
		Preload("Slots.Player").
		Where("user_id = ?", userID).
		Find(&teams).Error
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch teams")
		return
	}
	utils.SendSuccess(c, teams)
}

// GetTeam returns one team with its slots resolved.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, ok := h.loadTeam(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, team)
}

// CreateTeam creates an empty lineup for a formation, one slot per
// layout position.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req struct {
		Name        string `json:"name" binding:"required"`
		FormationID string `json:"formation_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	var formation models.Formation
	if err := h.db.First(&formation, "id = ?", req.FormationID).Error; err != nil {
		utils.SendNotFound(c, "Formation not found")
		return
	}
	positions, err := formation.Positions()
	if err != nil {
		utils.SendInternalError(c, "Formation layout is invalid")
		return
	}

	team := models.Team{
		UserID:      fmt.Sprint(userID),
		FormationID: formation.ID,
		Name:        req.Name,
	}
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		for i, position := range positions {
			slot := models.TeamSlot{TeamID: team.ID, SlotIndex: i, Position: position}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.SendInternalError(c, "Failed to create team")
		return
	}

	utils.SendCreated(c, team)
}

// UpdateSlots assigns players to the team's slots. A null player id
// empties a slot. Only the owner may edit a team, and a card can fill
// at most one slot.
func (h *TeamHandler) UpdateSlots(c *gin.Context) {
	userID, _ := c.Get("user_id")

	team, ok := h.loadTeam(c)
	if !ok {
		return
	}
	if team.UserID != fmt.Sprint(userID) {
		utils.SendForbidden(c, "Not your team")
		return
	}

	var req struct {
		Slots []struct {
			SlotIndex int     `json:"slot_index"`
			PlayerID  *string `json:"player_id"`
		} `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	assigned := make(map[string]bool)
	for _, update := range req.Slots {
		if update.PlayerID == nil {
			continue
		}
		if assigned[*update.PlayerID] {
			utils.SendValidationError(c, "Duplicate player assignment", *update.PlayerID)
			return
		}
		assigned[*update.PlayerID] = true

		var player models.Player
		if err := h.db.First(&player, "id = ?", *update.PlayerID).Error; err != nil {
			utils.SendValidationError(c, "Unknown player", *update.PlayerID)
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range req.Slots {
			result := tx.Model(&models.TeamSlot{}).
				Where("team_id = ? AND slot_index = ?", team.ID, update.SlotIndex).
				Update("player_id", update.PlayerID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("slot %d does not exist", update.SlotIndex)
			}
		}
		return nil
	})
	if err != nil {
		utils.SendValidationError(c, "Failed to update slots", err.Error())
		return
	}

	updated, ok := h.loadTeam(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, updated)
}

// GetStrength evaluates the team's current strength. Derived on every
// call, never stored.
func (h *TeamHandler) GetStrength(c *gin.Context) {
	team, ok := h.loadTeam(c)
	if !ok {
		return
	}
	strength := engine.EvaluateStrength(team.ToEngine())
	utils.SendSuccess(c, strength)
}

// GetChemistry returns the lenient per-color breakdown together with
// the strict validation verdict, so the UI can show partial credit and
// rule violations side by side.
func (h *TeamHandler) GetChemistry(c *gin.Context) {
	team, ok := h.loadTeam(c)
	if !ok {
		return
	}

	players := team.ToEngine().FieldedPlayers()
	utils.SendSuccess(c, gin.H{
		"breakdown":  engine.ChemistryBreakdown(players),
		"total":      engine.TotalChemistry(players),
		"validation": engine.ValidateTeamChemistry(players),
	})
}
