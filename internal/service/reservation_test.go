package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports/mocks"
)

func TestReservationService_Create(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reservation, err := svc.Create(context.Background(), domain.CreateReservationInput{
		Name:        "Carlos Ruiz",
		Email:       "carlos@example.com",
		Phone:       "+34600333444",
		EventType:   "birthday",
		EventDate:   "2026-11-02",
		Headcount:   30,
		ServiceTier: domain.ServiceTierDecoration,
		Total:       250,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, reservation.ID)
	assert.Nil(t, reservation.QuotationID)
	assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
	assert.Equal(t, 250.0, reservation.Total)
}

func TestReservationService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateReservationInput
	}{
		{"missing name", domain.CreateReservationInput{EventDate: "2026-11-02", ServiceTier: domain.ServiceTierRental}},
		{"bad date", domain.CreateReservationInput{Name: "Carlos", EventDate: "02/11/2026", ServiceTier: domain.ServiceTierRental}},
		{"bad tier", domain.CreateReservationInput{Name: "Carlos", EventDate: "2026-11-02", ServiceTier: "catering"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reservationRepo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)

			svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

			_, err := svc.Create(context.Background(), tc.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_ChangeStatus_ConfirmNotifies(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusPending}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(stored, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.ReservationStatusConfirmed).Return(nil)
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything).Return()

	reservation, err := svc.ChangeStatus(context.Background(), "r1", domain.ReservationStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, reservation.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_ChangeStatus_CompleteIsSilent(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(stored, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, "r1", domain.ReservationStatusCompleted).Return(nil)

	reservation, err := svc.ChangeStatus(context.Background(), "r1", domain.ReservationStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCompleted, reservation.Status)
}

func TestReservationService_ChangeStatus_FinalIsSink(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.ReservationStatusCompleted,
		domain.ReservationStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			reservationRepo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)

			svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

			stored := &domain.Reservation{ID: "r1", Status: status}
			reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(stored, nil)

			_, err := svc.ChangeStatus(context.Background(), "r1", domain.ReservationStatusPending)

			assert.ErrorIs(t, err, domain.ErrReservationFinal)
		})
	}
}

func TestReservationService_ChangeStatus_UnknownStatus(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	_, err := svc.ChangeStatus(context.Background(), "r1", "shipped")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_SendDueReminders(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	due := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusConfirmed},
		{ID: "r2", Status: domain.ReservationStatusConfirmed},
	}

	reservationRepo.EXPECT().DueReminders(mock.Anything, mock.Anything).Return(due, nil)
	reservationRepo.EXPECT().MarkReminderSent(mock.Anything, "r1").Return(nil)
	reservationRepo.EXPECT().MarkReminderSent(mock.Anything, "r2").Return(nil)
	notifier.EXPECT().NotifyEventReminder(mock.Anything, due[0]).Return()
	notifier.EXPECT().NotifyEventReminder(mock.Anything, due[1]).Return()

	sent, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, sent, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_SendDueReminders_MarkFailureSkipsNotify(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	due := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusConfirmed},
		{ID: "r2", Status: domain.ReservationStatusConfirmed},
	}

	reservationRepo.EXPECT().DueReminders(mock.Anything, mock.Anything).Return(due, nil)
	reservationRepo.EXPECT().MarkReminderSent(mock.Anything, "r1").Return(errors.New("row locked"))
	reservationRepo.EXPECT().MarkReminderSent(mock.Anything, "r2").Return(nil)
	notifier.EXPECT().NotifyEventReminder(mock.Anything, due[1]).Return()

	sent, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, sent, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_ListOverdue(t *testing.T) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewReservationService(reservationRepo, notifier, newTestLogger(t))

	overdue := []*domain.Reservation{{ID: "r1", Status: domain.ReservationStatusPending, EventDate: "2026-08-01"}}
	reservationRepo.EXPECT().ListOverdue(mock.Anything, mock.Anything).Return(overdue, nil)

	got, err := svc.ListOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, overdue, got)
}
