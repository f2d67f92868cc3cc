package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jonbud2010/football-card-manager/internal/services"
	"github.com/jonbud2010/football-card-manager/pkg/utils"
)

type LeagueHandler struct {
	leagues *services.LeagueService
}

func NewLeagueHandler(leagues *services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagues: leagues}
}

// CreateLeague starts a pending league over four team ids. Admin
// endpoint; regular players enter leagues through lobbies.
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req struct {
		TeamIDs []string `json:"team_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	league, err := h.leagues.CreateLeague(c.Request.Context(), req.TeamIDs)
	if err != nil {
		if errors.Is(err, services.ErrWrongLeagueSize) || errors.Is(err, services.ErrDuplicateLeagueTeams) {
			utils.SendValidationError(c, "Invalid league", err.Error())
			return
		}
		utils.SendInternalError(c, "Failed to create league")
		return
	}
	utils.SendCreated(c, league)
}

// SimulateLeague resolves all six matches of a pending league.
func (h *LeagueHandler) SimulateLeague(c *gin.Context) {
	matches, err := h.leagues.SimulateLeague(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeagueNotFound):
			utils.SendNotFound(c, "League not found")
		case errors.Is(err, services.ErrLeagueAlreadyFinished):
			utils.SendConflict(c, "League has already been simulated")
		case errors.Is(err, services.ErrWrongLeagueSize):
			utils.SendValidationError(c, "League is not complete", err.Error())
		default:
			utils.SendInternalError(c, "Simulation failed")
		}
		return
	}
	utils.SendSuccess(c, matches)
}

// GetMatches returns the stored match records of a league.
func (h *LeagueHandler) GetMatches(c *gin.Context) {
	matches, err := h.leagues.LeagueMatches(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLeagueNotFound) {
			utils.SendNotFound(c, "League not found")
			return
		}
		utils.SendInternalError(c, "Failed to fetch matches")
		return
	}
	utils.SendSuccess(c, matches)
}

// GetTable returns the league standings.
func (h *LeagueHandler) GetTable(c *gin.Context) {
	table, err := h.leagues.Standings(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLeagueNotFound) {
			utils.SendNotFound(c, "League not found")
			return
		}
		utils.SendInternalError(c, "Failed to compute standings")
		return
	}
	utils.SendSuccess(c, table)
}
