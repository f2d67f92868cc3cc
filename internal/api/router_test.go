package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jonbud2010/football-card-manager/internal/api/middleware"
	"github.com/jonbud2010/football-card-manager/internal/engine"
	"github.com/jonbud2010/football-card-manager/internal/models"
	"github.com/jonbud2010/football-card-manager/internal/services"
	"github.com/jonbud2010/football-card-manager/pkg/config"
	"github.com/jonbud2010/football-card-manager/pkg/database"
)

const testSecret = "test-secret"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type apiFixture struct {
	router  *gin.Engine
	db      *database.DB
	leagues *services.LeagueService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Formation{},
		&models.Team{},
		&models.TeamSlot{},
		&models.Lobby{},
		&models.LobbyMember{},
		&models.League{},
		&models.LeagueMember{},
		&models.MatchRecord{},
	))
	db := &database.DB{DB: gormDB}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{JWTSecret: testSecret}
	leagues := services.NewLeagueService(db, nil, log, 42, time.Minute)
	lobbies := services.NewLobbyService(db, leagues, log)

	router := gin.New()
	SetupRoutes(router.Group("/api/v1"), db, nil, cfg, leagues, lobbies)

	return &apiFixture{router: router, db: db, leagues: leagues}
}

func (f *apiFixture) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func userToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := middleware.GenerateToken(testSecret, userID, "tester", role, time.Hour)
	require.NoError(t, err)
	return token
}

// seedTeam creates a user and a 4-player team with two colors.
func (f *apiFixture) seedTeam(t *testing.T, name string, basePoints int) models.Team {
	t.Helper()

	user := models.User{Username: name + "-owner", PasswordHash: "x"}
	require.NoError(t, f.db.Create(&user).Error)

	formation := models.Formation{Name: name + "-formation"}
	require.NoError(t, formation.SetPositions([]string{"GK", "CB", "CM", "ST"}))
	require.NoError(t, f.db.Create(&formation).Error)

	team := models.Team{UserID: user.ID, FormationID: formation.ID, Name: name}
	require.NoError(t, f.db.Create(&team).Error)

	colors := []string{engine.ColorRed, engine.ColorRed, engine.ColorBlue, engine.ColorBlue}
	positions := []string{"GK", "CB", "CM", "ST"}
	for i := 0; i < 4; i++ {
		player := models.Player{
			Name:     fmt.Sprintf("%s-p%d", name, i+1),
			Points:   basePoints + 10*i,
			Position: positions[i],
			Color:    colors[i],
		}
		require.NoError(t, f.db.Create(&player).Error)
		slot := models.TeamSlot{TeamID: team.ID, SlotIndex: i, Position: positions[i], PlayerID: &player.ID}
		require.NoError(t, f.db.Create(&slot).Error)
	}
	return team
}

func TestPublicPlayerRoutes(t *testing.T) {
	f := newAPIFixture(t)
	f.seedTeam(t, "club", 10)

	rec := f.request(t, http.MethodGet, "/api/v1/players", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	var players []models.Player
	require.NoError(t, json.Unmarshal(resp.Data, &players))
	assert.Len(t, players, 4)
}

func TestAuthRequired(t *testing.T) {
	f := newAPIFixture(t)
	team := f.seedTeam(t, "club", 10)

	rec := f.request(t, http.MethodGet, "/api/v1/teams/"+team.ID+"/strength", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.request(t, http.MethodGet, "/api/v1/teams/"+team.ID+"/strength", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTeamStrengthEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	// Ratings 10,20,30,40 with two color pairs: 100 points + 8 chemistry.
	team := f.seedTeam(t, "club", 10)
	token := userToken(t, team.UserID, models.RoleUser)

	rec := f.request(t, http.MethodGet, "/api/v1/teams/"+team.ID+"/strength", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var strength engine.TeamStrength
	require.NoError(t, json.Unmarshal(resp.Data, &strength))
	assert.Equal(t, team.ID, strength.TeamID)
	assert.Equal(t, 100, strength.PlayerPoints)
	assert.Equal(t, 8, strength.ChemistryPoints)
	assert.Equal(t, 108, strength.TotalStrength)
	assert.Zero(t, strength.WinChance)
}

func TestTeamChemistryEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	// Two colors only: partial credit plus a failed strict validation.
	team := f.seedTeam(t, "club", 10)
	token := userToken(t, team.UserID, models.RoleUser)

	rec := f.request(t, http.MethodGet, "/api/v1/teams/"+team.ID+"/chemistry", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var chemistry struct {
		Breakdown  []engine.ChemistryBonus    `json:"breakdown"`
		Total      int                        `json:"total"`
		Validation engine.ChemistryValidation `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &chemistry))

	assert.Len(t, chemistry.Breakdown, 2)
	assert.Equal(t, 8, chemistry.Total)
	assert.False(t, chemistry.Validation.IsValid)
	require.Len(t, chemistry.Validation.Errors, 1)
	assert.Contains(t, chemistry.Validation.Errors[0], "exactly 3 different colors")
}

func TestAdminOnlyRoutes(t *testing.T) {
	f := newAPIFixture(t)

	payload := gin.H{
		"name":     "New Card",
		"points":   50,
		"position": "ST",
		"color":    engine.ColorGreen,
	}

	rec := f.request(t, http.MethodPost, "/api/v1/players", userToken(t, "u1", models.RoleUser), payload)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.request(t, http.MethodPost, "/api/v1/players", userToken(t, "u1", models.RoleAdmin), payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLeagueSimulationFlow(t *testing.T) {
	f := newAPIFixture(t)

	teamIDs := make([]string, 0, engine.LeagueSize)
	var owner string
	for i := 0; i < engine.LeagueSize; i++ {
		team := f.seedTeam(t, fmt.Sprintf("club%d", i+1), 30+10*i)
		teamIDs = append(teamIDs, team.ID)
		owner = team.UserID
	}

	league, err := f.leagues.CreateLeague(context.Background(), teamIDs)
	require.NoError(t, err)

	token := userToken(t, owner, models.RoleUser)

	rec := f.request(t, http.MethodPost, "/api/v1/leagues/"+league.ID+"/simulate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	var matches []models.MatchRecord
	require.NoError(t, json.Unmarshal(resp.Data, &matches))
	assert.Len(t, matches, engine.LeagueMatchCount)

	// Re-running a finished league conflicts.
	rec = f.request(t, http.MethodPost, "/api/v1/leagues/"+league.ID+"/simulate", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.request(t, http.MethodGet, "/api/v1/leagues/"+league.ID+"/table", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	var table []services.StandingsEntry
	require.NoError(t, json.Unmarshal(resp.Data, &table))
	assert.Len(t, table, engine.LeagueSize)

	rec = f.request(t, http.MethodGet, "/api/v1/leagues/unknown/table", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
