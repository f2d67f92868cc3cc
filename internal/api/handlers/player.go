package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonbud2010/football-card-manager/internal/models"
	"github.com/jonbud2010/football-card-manager/internal/services"
	"github.com/jonbud2010/football-card-manager/pkg/database"
	"github.com/jonbud2010/football-card-manager/pkg/utils"
)

type PlayerHandler struct {
	db    *database.DB
	cache *services.CacheService
}

func NewPlayerHandler(db *database.DB, cache *services.CacheService) *PlayerHandler {
	return &PlayerHandler{db: db, cache: cache}
}

// GetPlayers lists cards, optionally filtered by position or color.
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	query := h.db.Model(&models.Player{})
	if position := c.Query("position"); position != "" {
		query = query.Where("position = ?", position)
	}
	if color := c.Query("color"); color != "" {
		query = query.Where("color = ?", color)
	}

	var players []models.Player
	if err := query.Order("points DESC").Find(&players).Error; err != nil {
		utils.SendInternalError(c, "Failed to fetch players")
		return
	}
	utils.SendSuccess(c, players)
}

// GetPlayer returns one card.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	var player models.Player
	if err := h.db.First(&player, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendNotFound(c, "Player not found")
		return
	}
	utils.SendSuccess(c, player)
}

// CreatePlayer adds a card to the pool. Admin only.
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Points      int     `json:"points" binding:"required,min=1"`
		Position    string  `json:"position" binding:"required"`
		Color       string  `json:"color" binding:"required"`
		MarketPrice int     `json:"market_price"`
		Percentage  float64 `json:"percentage"`
		Theme       string  `json:"theme"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	player := models.Player{
		Name:        req.Name,
		Points:      req.Points,
		Position:    req.Position,
		Color:       req.Color,
		MarketPrice: req.MarketPrice,
		Percentage:  req.Percentage,
		Theme:       req.Theme,
		ImageURL:    req.ImageURL,
	}
	if err := player.Validate(); err != nil {
		utils.SendValidationError(c, "Invalid player", err.Error())
		return
	}
	if err := h.db.Create(&player).Error; err != nil {
		utils.SendInternalError(c, "Failed to create player")
		return
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		h.cache.Delete(ctx, services.PlayersCacheKey())
	}

	utils.SendCreated(c, player)
}
