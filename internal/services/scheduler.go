package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SchedulerService runs the periodic housekeeping jobs: expiring stale
// lobbies and simulating pending leagues whose rosters are complete.
type SchedulerService struct {
	lobbies   *LobbyService
	leagues   *LeagueService
	logger    *logrus.Logger
	cron      *cron.Cron
	spec      string
	lobbyTTL  time.Duration
	mu        sync.Mutex
	isRunning bool
}

func NewSchedulerService(lobbies *LobbyService, leagues *LeagueService, logger *logrus.Logger, spec string, lobbyTTL time.Duration) *SchedulerService {
	return &SchedulerService{
		lobbies:  lobbies,
		leagues:  leagues,
		logger:   logger,
		cron:     cron.New(),
		spec:     spec,
		lobbyTTL: lobbyTTL,
	}
}

// Start schedules the background jobs.
func (s *SchedulerService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if _, err := s.cron.AddFunc(s.spec, s.runPendingLeagues); err != nil {
		return fmt.Errorf("failed to schedule league job: %w", err)
	}
	// Lobby cleanup runs hourly; the TTL itself is configured
	// separately.
	if _, err := s.cron.AddFunc("@hourly", s.expireLobbies); err != nil {
		return fmt.Errorf("failed to schedule lobby cleanup: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("spec", s.spec).Info("Scheduler started")
	return nil
}

// Stop halts the scheduled jobs and waits for running ones.
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")
}

func (s *SchedulerService) runPendingLeagues() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	simulated, err := s.leagues.SimulatePending(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Pending league sweep failed")
		return
	}
	if simulated > 0 {
		s.logger.WithField("count", simulated).Info("Simulated pending leagues")
	}
}

func (s *SchedulerService) expireLobbies() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := s.lobbies.ExpireStale(ctx, s.lobbyTTL)
	if err != nil {
		s.logger.WithError(err).Error("Lobby cleanup failed")
		return
	}
	if expired > 0 {
		s.logger.WithField("count", expired).Info("Expired stale lobbies")
	}
}
