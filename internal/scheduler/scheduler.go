package scheduler

import (
	"context"
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationReminder interface {
	SendDueReminders(ctx context.Context) ([]*domain.Reservation, error)
	ListOverdue(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically dispatches next-day event reminders and surfaces
// overdue reservations in the logs for admin attention.
type Scheduler struct {
	reservations reservationReminder
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations reservationReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.reservations.SendDueReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
	}
	for _, r := range sent {
		s.logger.Info("event reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("event_date", r.EventDate),
		)
	}

	overdue, err := s.reservations.ListOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to list overdue reservations",
			logger.String("error", err.Error()),
		)
		return
	}
	for _, r := range overdue {
		s.logger.Warn("reservation overdue",
			logger.String("reservation_id", r.ID),
			logger.String("event_date", r.EventDate),
			logger.String("status", string(r.Status)),
		)
	}
}
