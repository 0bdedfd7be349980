package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	notifier        ports.Notifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Create registers a reservation directly, without an originating quotation.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, input.EventDate); err != nil {
		return nil, fmt.Errorf("%w: invalid event date, expected %s", domain.ErrValidation, domain.DateLayout)
	}
	if !input.ServiceTier.Valid() {
		return nil, fmt.Errorf("%w: service tier must be rental or decoration", domain.ErrValidation)
	}

	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		EventType:   input.EventType,
		EventDate:   input.EventDate,
		Headcount:   input.Headcount,
		ServiceTier: input.ServiceTier,
		Status:      domain.ReservationStatusPending,
		Total:       input.Total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("event_date", reservation.EventDate),
	)

	return reservation, nil
}

// ChangeStatus moves a reservation to newStatus. completed and cancelled are
// sinks; any other pairing is allowed. Moving to confirmed dispatches the
// confirmation notification.
func (s *ReservationService) ChangeStatus(ctx context.Context, id string, newStatus domain.ReservationStatus) (*domain.Reservation, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, newStatus)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if reservation.Status.Final() {
		return nil, domain.ErrReservationFinal
	}

	if err = s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	reservation.Status = newStatus

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("status", string(newStatus)),
	)

	if newStatus == domain.ReservationStatusConfirmed {
		go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), reservation)
	}

	return reservation, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, status string) ([]*domain.Reservation, error) {
	return s.reservationRepo.List(ctx, status)
}

func (s *ReservationService) Lines(ctx context.Context, id string) ([]domain.ReservationLine, error) {
	return s.reservationRepo.ListLines(ctx, id)
}

// SendDueReminders dispatches the event reminder for confirmed reservations
// happening tomorrow and latches each one so it goes out once.
func (s *ReservationService) SendDueReminders(ctx context.Context) ([]*domain.Reservation, error) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(domain.DateLayout)

	due, err := s.reservationRepo.DueReminders(ctx, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("due reminders: %w", err)
	}

	for _, r := range due {
		if err := s.reservationRepo.MarkReminderSent(ctx, r.ID); err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		go s.notifier.NotifyEventReminder(context.WithoutCancel(ctx), r)
	}

	return due, nil
}

// ListOverdue flags reservations whose event date has passed without the
// reservation reaching a final state. Flagged for admin attention, never
// auto-transitioned.
func (s *ReservationService) ListOverdue(ctx context.Context) ([]*domain.Reservation, error) {
	today := time.Now().UTC().Format(domain.DateLayout)
	return s.reservationRepo.ListOverdue(ctx, today)
}
