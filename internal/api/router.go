package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonbud2010/football-card-manager/internal/api/handlers"
	"github.com/jonbud2010/football-card-manager/internal/api/middleware"
	"github.com/jonbud2010/football-card-manager/internal/services"
	"github.com/jonbud2010/football-card-manager/pkg/config"
	"github.com/jonbud2010/football-card-manager/pkg/database"
)

// SetupRoutes configures all API routes on the given router group.
func SetupRoutes(group *gin.RouterGroup, db *database.DB, cache *services.CacheService, cfg *config.Config, leagues *services.LeagueService, lobbies *services.LobbyService) {
	playerHandler := handlers.NewPlayerHandler(db, cache)
	teamHandler := handlers.NewTeamHandler(db, cache)
	lobbyHandler := handlers.NewLobbyHandler(lobbies)
	leagueHandler := handlers.NewLeagueHandler(leagues)

	// Public card pool
	group.GET("/players", playerHandler.GetPlayers)
	group.GET("/players/:id", playerHandler.GetPlayer)

	// Authenticated routes
	auth := group.Group("")
	auth.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		auth.GET("/teams", teamHandler.GetTeams)
		auth.POST("/teams", teamHandler.CreateTeam)
		auth.GET("/teams/:id", teamHandler.GetTeam)
		auth.PUT("/teams/:id/slots", teamHandler.UpdateSlots)
		auth.GET("/teams/:id/strength", teamHandler.GetStrength)
		auth.GET("/teams/:id/chemistry", teamHandler.GetChemistry)

		auth.GET("/lobbies", lobbyHandler.ListLobbies)
		auth.POST("/lobbies", lobbyHandler.CreateLobby)
		auth.POST("/lobbies/:id/join", lobbyHandler.JoinLobby)

		auth.POST("/leagues/:id/simulate", leagueHandler.SimulateLeague)
		auth.GET("/leagues/:id/matches", leagueHandler.GetMatches)
		auth.GET("/leagues/:id/table", leagueHandler.GetTable)
	}

	// Admin routes
	admin := group.Group("")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret), middleware.AdminRequired())
	{
		admin.POST("/players", playerHandler.CreatePlayer)
		admin.POST("/leagues", leagueHandler.CreateLeague)
	}
}
