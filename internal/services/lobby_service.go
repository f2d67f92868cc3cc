package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
	"github.com/jonbud2010/football-card-manager/internal/models"
	"github.com/jonbud2010/football-card-manager/pkg/database"
)

var (
	ErrLobbyNotFound  = errors.New("lobby not found")
	ErrLobbyNotOpen   = errors.New("lobby is not open")
	ErrAlreadyInLobby = errors.New("user is already in this lobby")
	ErrNotTeamOwner   = errors.New("team does not belong to this user")
)

// LobbyService manages waiting rooms. The fourth join turns a lobby
// into a pending league.
type LobbyService struct {
	db      *database.DB
	leagues *LeagueService
	logger  *logrus.Logger
}

func NewLobbyService(db *database.DB, leagues *LeagueService, logger *logrus.Logger) *LobbyService {
	return &LobbyService{
		db:      db,
		leagues: leagues,
		logger:  logger,
	}
}

// CreateLobby opens a new waiting room.
func (s *LobbyService) CreateLobby(ctx context.Context, name string) (*models.Lobby, error) {
	lobby := &models.Lobby{Name: name, Status: models.LobbyOpen}
	if err := s.db.WithContext(ctx).Create(lobby).Error; err != nil {
		return nil, fmt.Errorf("failed to create lobby: %w", err)
	}
	return lobby, nil
}

// ListOpen returns joinable lobbies with their members.
func (s *LobbyService) ListOpen(ctx context.Context) ([]models.Lobby, error) {
	var lobbies []models.Lobby
	err := s.db.WithContext(ctx).
		Preload("Members").
		Where("status = ?", models.LobbyOpen).
		Order("created_at").
		Find(&lobbies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lobbies: %w", err)
	}
	return lobbies, nil
}

// JoinLobby adds a user's team to an open lobby. When the lobby
// reaches league size it is marked started and a pending league is
// created from the member teams. Returns the updated lobby and the
// new league, if one was created.
func (s *LobbyService) JoinLobby(ctx context.Context, lobbyID, userID, teamID string) (*models.Lobby, *models.League, error) {
	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("team %s: %w", teamID, gorm.ErrRecordNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team.UserID != userID {
		return nil, nil, ErrNotTeamOwner
	}

	var lobby models.Lobby
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Members").First(&lobby, "id = ?", lobbyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLobbyNotFound
			}
			return err
		}
		if lobby.Status != models.LobbyOpen {
			return ErrLobbyNotOpen
		}
		for _, member := range lobby.Members {
			if member.UserID == userID {
				return ErrAlreadyInLobby
			}
		}

		member := models.LobbyMember{LobbyID: lobby.ID, UserID: userID, TeamID: teamID}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		lobby.Members = append(lobby.Members, member)

		if lobby.IsFull() {
			lobby.Status = models.LobbyStarted
			return tx.Model(&models.Lobby{}).
				Where("id = ?", lobby.ID).
				Update("status", models.LobbyStarted).Error
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if lobby.Status != models.LobbyStarted {
		return &lobby, nil, nil
	}

	teamIDs := make([]string, 0, engine.LeagueSize)
	for _, member := range lobby.Members {
		teamIDs = append(teamIDs, member.TeamID)
	}
	league, err := s.leagues.CreateLeague(ctx, teamIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("lobby %s filled but league creation failed: %w", lobby.ID, err)
	}

	if err := s.db.WithContext(ctx).Model(&models.League{}).
		Where("id = ?", league.ID).
		Update("lobby_id", lobby.ID).Error; err != nil {
		s.logger.WithError(err).Warn("Failed to link league to lobby")
	}

	s.logger.WithFields(logrus.Fields{
		"lobby_id":  lobby.ID,
		"league_id": league.ID,
	}).Info("Lobby filled, league created")

	return &lobby, league, nil
}

// ExpireStale closes open lobbies older than the TTL. Returns how
// many were expired.
func (s *LobbyService) ExpireStale(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-ttl)
	result := s.db.WithContext(ctx).Model(&models.Lobby{}).
		Where("status = ? AND created_at < ?", models.LobbyOpen, cutoff).
		Update("status", models.LobbyExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire lobbies: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}
