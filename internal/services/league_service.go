package services

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jonbud2010/football-card-manager/internal/engine"
	"github.com/jonbud2010/football-card-manager/internal/models"
	"github.com/jonbud2010/football-card-manager/pkg/database"
)

var (
	ErrLeagueNotFound        = errors.New("league not found")
	ErrLeagueAlreadyFinished = errors.New("league has already been simulated")
	ErrWrongLeagueSize       = errors.New("league does not have the required number of teams")
	ErrDuplicateLeagueTeams  = errors.New("league teams must be distinct")
)

// LeagueService is the engine's caller: it loads rosters, owns the
// random source for each simulation, persists the results and keeps
// the caches warm.
type LeagueService struct {
	db       *database.DB
	cache    *CacheService
	logger   *logrus.Logger
	seed     int64
	cacheTTL time.Duration
}

// NewLeagueService creates a LeagueService. A zero seed derives a
// fresh seed per league; a fixed seed reproduces identical league
// outcomes, which is how deterministic environments run.
func NewLeagueService(db *database.DB, cache *CacheService, logger *logrus.Logger, seed int64, cacheTTL time.Duration) *LeagueService {
	return &LeagueService{
		db:       db,
		cache:    cache,
		logger:   logger,
		seed:     seed,
		cacheTTL: cacheTTL,
	}
}

// CreateLeague starts a pending league over exactly four distinct
// teams.
func (s *LeagueService) CreateLeague(ctx context.Context, teamIDs []string) (*models.League, error) {
	if len(teamIDs) != engine.LeagueSize {
		return nil, fmt.Errorf("%w: got %d teams", ErrWrongLeagueSize, len(teamIDs))
	}
	distinct := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		if distinct[id] {
			return nil, fmt.Errorf("%w: team %s appears twice", ErrDuplicateLeagueTeams, id)
		}
		distinct[id] = true
	}

	var teams []models.Team
	if err := s.db.WithContext(ctx).Where("id IN ?", teamIDs).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	if len(teams) != engine.LeagueSize {
		return nil, fmt.Errorf("%w: only %d of %d teams exist", ErrWrongLeagueSize, len(teams), engine.LeagueSize)
	}

	league := &models.League{Status: models.LeaguePending}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(league).Error; err != nil {
			return err
		}
		for _, team := range teams {
			member := models.LeagueMember{LeagueID: league.ID, TeamID: team.ID, UserID: team.UserID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	s.logger.WithField("league_id", league.ID).Info("League created")
	return league, nil
}

// SimulateLeague runs the full 6-match round for a pending league and
// persists one record per match in a single transaction. Finished
// leagues are not re-run.
func (s *LeagueService) SimulateLeague(ctx context.Context, leagueID string) ([]models.MatchRecord, error) {
	league, err := s.loadLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league.Status == models.LeagueFinished {
		return nil, ErrLeagueAlreadyFinished
	}

	teams, err := engineTeams(league)
	if err != nil {
		return nil, err
	}

	seed := s.seedFor(leagueID)
	simulator := engine.NewSimulator(rand.New(rand.NewSource(seed)))

	records, err := simulator.SimulateLeague(teams)
	if err != nil {
		var sizeErr *engine.LeagueSizeError
		if errors.As(err, &sizeErr) {
			return nil, fmt.Errorf("%w: got %d teams", ErrWrongLeagueSize, sizeErr.Got)
		}
		return nil, err
	}

	stored := make([]models.MatchRecord, 0, len(records))
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			row, err := models.NewMatchRecord(league.ID, record)
			if err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			stored = append(stored, *row)
		}

		now := time.Now().UTC()
		return tx.Model(&models.League{}).
			Where("id = ?", league.ID).
			Updates(map[string]interface{}{
				"status":       models.LeagueFinished,
				"seed":         seed,
				"simulated_at": now,
			}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist league results: %w", err)
	}

	s.invalidateLeague(ctx, leagueID)
	s.cacheSet(ctx, LeagueMatchesCacheKey(leagueID), stored)

	s.logger.WithFields(logrus.Fields{
		"league_id": leagueID,
		"matches":   len(stored),
		"seed":      seed,
	}).Info("League simulated")

	return stored, nil
}

// LeagueMatches returns the stored match records, cache first.
func (s *LeagueService) LeagueMatches(ctx context.Context, leagueID string) ([]models.MatchRecord, error) {
	var cached []models.MatchRecord
	if s.cacheGet(ctx, LeagueMatchesCacheKey(leagueID), &cached) {
		return cached, nil
	}

	if _, err := s.loadLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	var matches []models.MatchRecord
	if err := s.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("match_number").
		Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	s.cacheSet(ctx, LeagueMatchesCacheKey(leagueID), matches)
	return matches, nil
}

// StandingsEntry is one row of a league table.
type StandingsEntry struct {
	TeamID       string `json:"team_id"`
	TeamName     string `json:"team_name"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Points       int    `json:"points"`
}

// Standings computes the league table from the stored match records.
// Ordering: points, then goal difference, then goals scored, then team
// name.
func (s *LeagueService) Standings(ctx context.Context, leagueID string) ([]StandingsEntry, error) {
	var cached []StandingsEntry
	if s.cacheGet(ctx, LeagueTableCacheKey(leagueID), &cached) {
		return cached, nil
	}

	league, err := s.loadLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	matches, err := s.LeagueMatches(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*StandingsEntry, engine.LeagueSize)
	for _, member := range league.Members {
		entries[member.TeamID] = &StandingsEntry{
			TeamID:   member.TeamID,
			TeamName: member.Team.Name,
		}
	}

	for _, match := range matches {
		home, away := entries[match.HomeTeamID], entries[match.AwayTeamID]
		if home == nil || away == nil {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += match.HomeScore
		home.GoalsAgainst += match.AwayScore
		away.GoalsFor += match.AwayScore
		away.GoalsAgainst += match.HomeScore
		home.Points += match.HomePoints
		away.Points += match.AwayPoints

		switch {
		case match.HomeScore > match.AwayScore:
			home.Wins++
			away.Losses++
		case match.HomeScore < match.AwayScore:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}

	table := make([]StandingsEntry, 0, len(entries))
	for _, entry := range entries {
		entry.GoalDiff = entry.GoalsFor - entry.GoalsAgainst
		table = append(table, *entry)
	}

	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamName < b.TeamName
	})

	s.cacheSet(ctx, LeagueTableCacheKey(leagueID), table)
	return table, nil
}

// SimulatePending runs every pending league that already has a full
// member list. Used by the background scheduler.
func (s *LeagueService) SimulatePending(ctx context.Context) (int, error) {
	var leagues []models.League
	if err := s.db.WithContext(ctx).
		Preload("Members").
		Where("status = ?", models.LeaguePending).
		Find(&leagues).Error; err != nil {
		return 0, fmt.Errorf("failed to list pending leagues: %w", err)
	}

	simulated := 0
	for _, league := range leagues {
		if len(league.Members) != engine.LeagueSize {
			continue
		}
		if _, err := s.SimulateLeague(ctx, league.ID); err != nil {
			s.logger.WithField("league_id", league.ID).WithError(err).Warn("Scheduled simulation failed")
			continue
		}
		simulated++
	}
	return simulated, nil
}

func (s *LeagueService) loadLeague(ctx context.Context, leagueID string) (*models.League, error) {
	var league models.League
	err := s.db.WithContext(ctx).
		Preload("Members.Team.Slots.Player").
		First(&league, "id = ?", leagueID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to load league: %w", err)
	}
	return &league, nil
}

// engineTeams maps league members onto engine teams in a stable order
// so pairing numbers do not depend on row order.
func engineTeams(league *models.League) ([]engine.Team, error) {
	members := make([]models.LeagueMember, len(league.Members))
	copy(members, league.Members)
	sort.Slice(members, func(i, j int) bool {
		return members[i].TeamID < members[j].TeamID
	})

	teams := make([]engine.Team, len(members))
	for i, member := range members {
		teams[i] = member.Team.ToEngine()
	}
	return teams, nil
}

// seedFor mixes the league id into the seed so concurrent leagues do
// not share RNG state even when started in the same nanosecond.
func (s *LeagueService) seedFor(leagueID string) int64 {
	if s.seed != 0 {
		return s.seed
	}
	h := crc32.NewIEEE()
	h.Write([]byte(leagueID))
	return time.Now().UnixNano() + int64(h.Sum32())
}

func (s *LeagueService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *LeagueService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetWithRetry(ctx, key, value, s.cacheTTL, 3); err != nil {
		s.logger.WithError(err).Warn("Failed to cache league data")
	}
}

func (s *LeagueService) invalidateLeague(ctx context.Context, leagueID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, LeagueMatchesCacheKey(leagueID), LeagueTableCacheKey(leagueID)); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate league cache")
	}
}
