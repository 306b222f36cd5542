package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/metrics"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/robfig/cron/v3"
)

// DefaultHousekeepingSchedule runs cleanup hourly.
const DefaultHousekeepingSchedule = "@every 1h"

// HousekeepingService writes the expired status onto pending invitations
// past their expiry and deletes dead refresh tokens. Reads never depend on
// it; it only keeps stored status in line with effective status.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Schedule string
	Now      func() time.Time

	cron *cron.Cron
	wg   sync.WaitGroup
}

// NewHousekeepingService creates the service. An empty schedule defaults to
// DefaultHousekeepingSchedule.
func NewHousekeepingService(st store.Store, logger *slog.Logger, schedule string) *HousekeepingService {
	if schedule == "" {
		schedule = DefaultHousekeepingSchedule
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Schedule: schedule,
		Now:      time.Now,
		cron:     cron.New(cron.WithLogger(cron.DiscardLogger)),
	}
}

// Start runs one cleanup immediately and then registers the cron job.
func (s *HousekeepingService) Start() error {
	if _, err := s.cron.AddFunc(s.Schedule, s.runLogged); err != nil {
		return err
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLogged()
	}()
	s.cron.Start()
	s.Logger.Info("housekeeping service started", slog.String("schedule", s.Schedule))
	return nil
}

// Stop halts the scheduler and waits for a running cleanup to finish.
func (s *HousekeepingService) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) runLogged() {
	if err := s.RunOnce(context.Background()); err != nil {
		s.Logger.Error("housekeeping cleanup failed", slog.Any("error", err))
	}
}

// RunOnce performs every cleanup step. Each step is independent; failures
// are joined.
func (s *HousekeepingService) RunOnce(ctx context.Context) error {
	ts := now(s.Now)
	var errs error

	if n, err := s.Store.Invitations().ExpireStaleInvitations(ctx, ts); err != nil {
		errs = errors.Join(errs, err)
	} else {
		metrics.HousekeepingExpired.WithLabelValues(metrics.KindOrg).Add(float64(n))
		s.Logger.Debug("expired organization invitations", slog.Int64("count", n))
	}

	if n, err := s.Store.AttendeeInvitations().ExpireStaleAttendeeInvitations(ctx, ts); err != nil {
		errs = errors.Join(errs, err)
	} else {
		metrics.HousekeepingExpired.WithLabelValues(metrics.KindAttendee).Add(float64(n))
		s.Logger.Debug("expired attendee invitations", slog.Int64("count", n))
	}

	if n, err := s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx, ts); err != nil {
		errs = errors.Join(errs, err)
	} else {
		s.Logger.Debug("deleted refresh tokens", slog.Int64("count", n))
	}

	return errs
}
