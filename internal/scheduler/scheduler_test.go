package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/scheduler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsReminders(t *testing.T) {
	reminder := mocks.NewMockReservationReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 50*time.Millisecond, log)

	sent := []*domain.Reservation{
		{ID: "r1", EventDate: "2026-10-17", Status: domain.ReservationStatusConfirmed},
	}
	reminder.EXPECT().SendDueReminders(mock.Anything).Return(sent, nil)
	reminder.EXPECT().ListOverdue(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 2)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reminder := mocks.NewMockReservationReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 50*time.Millisecond, log)

	reminder.EXPECT().SendDueReminders(mock.Anything).Return(nil, errors.New("db error"))
	reminder.EXPECT().ListOverdue(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 2)
}

func TestScheduler_Tick_LogsOverdue(t *testing.T) {
	reminder := mocks.NewMockReservationReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 50*time.Millisecond, log)

	overdue := []*domain.Reservation{
		{ID: "r2", EventDate: "2026-08-01", Status: domain.ReservationStatusPending},
	}
	reminder.EXPECT().SendDueReminders(mock.Anything).Return(nil, nil)
	reminder.EXPECT().ListOverdue(mock.Anything).Return(overdue, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reminder := mocks.NewMockReservationReminder(t)
	log := newTestLogger(t)

	s := New(reminder, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	reminder := mocks.NewMockReservationReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 30*time.Millisecond, log)

	reminder.EXPECT().SendDueReminders(mock.Anything).Return(nil, nil).Times(3)
	reminder.EXPECT().ListOverdue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 6)
}
