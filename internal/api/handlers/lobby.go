package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/services"
	"github.com/jonbud2010/football-card-manager/pkg/utils"
)

type LobbyHandler struct {
	lobbies *services.LobbyService
}

func NewLobbyHandler(lobbies *services.LobbyService) *LobbyHandler {
	return &LobbyHandler{lobbies: lobbies}
}

// ListLobbies returns the open waiting rooms.
func (h *LobbyHandler) ListLobbies(c *gin.Context) {
	lobbies, err := h.lobbies.ListOpen(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to list lobbies")
		return
	}
	utils.SendSuccess(c, lobbies)
}

// CreateLobby opens a new waiting room.
func (h *LobbyHandler) CreateLobby(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	lobby, err := h.lobbies.CreateLobby(c.Request.Context(), req.Name)
	if err != nil {
		utils.SendInternalError(c, "Failed to create lobby")
		return
	}
	utils.SendCreated(c, lobby)
}

// JoinLobby enters the requesting user's team into a lobby. When the
// lobby fills, the response carries the created league.
func (h *LobbyHandler) JoinLobby(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req struct {
		TeamID string `json:"team_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	lobby, league, err := h.lobbies.JoinLobby(c.Request.Context(), c.Param("id"), fmt.Sprint(userID), req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLobbyNotFound), errors.Is(err, gorm.ErrRecordNotFound):
			utils.SendNotFound(c, err.Error())
		case errors.Is(err, services.ErrLobbyNotOpen), errors.Is(err, services.ErrAlreadyInLobby):
			utils.SendConflict(c, err.Error())
		case errors.Is(err, services.ErrNotTeamOwner):
			utils.SendForbidden(c, err.Error())
		default:
			utils.SendInternalError(c, "Failed to join lobby")
		}
		return
	}

	response := gin.H{"lobby": lobby}
	if league != nil {
		response["league"] = league
	}
	utils.SendSuccess(c, response)
}
