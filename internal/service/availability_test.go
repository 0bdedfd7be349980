package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports/mocks"
)

func TestAvailabilityService_Resolve(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	product := &domain.Product{ID: "p1", Name: "Folding chair", Stock: 50}
	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	productRepo.EXPECT().AvailableUnits(mock.Anything, "p1", "2026-10-17").Return(37, nil)

	av, err := svc.Resolve(context.Background(), "p1", "2026-10-17")

	require.NoError(t, err)
	assert.Equal(t, 37, av.Units)
	assert.Equal(t, "2026-10-17", av.Date)
	assert.False(t, av.Degraded)
}

func TestAvailabilityService_Resolve_DegradesOnQueryFailure(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	product := &domain.Product{ID: "p1", Name: "Folding chair", Stock: 50}
	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	productRepo.EXPECT().AvailableUnits(mock.Anything, "p1", "2026-10-17").
		Return(0, errors.New("connection refused"))

	av, err := svc.Resolve(context.Background(), "p1", "2026-10-17")

	require.NoError(t, err)
	assert.Equal(t, 50, av.Units)
	assert.True(t, av.Degraded)
}

func TestAvailabilityService_Resolve_ClampsNegative(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	product := &domain.Product{ID: "p1", Stock: 10}
	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	productRepo.EXPECT().AvailableUnits(mock.Anything, "p1", "2026-10-17").Return(-3, nil)

	av, err := svc.Resolve(context.Background(), "p1", "2026-10-17")

	require.NoError(t, err)
	assert.Equal(t, 0, av.Units)
}

func TestAvailabilityService_Resolve_InvalidDate(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	_, err := svc.Resolve(context.Background(), "p1", "17 Oct 2026")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_Resolve_ProductNotFound(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	productRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrProductNotFound)

	_, err := svc.Resolve(context.Background(), "missing", "2026-10-17")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAvailabilityService_CalendarBlocks(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	blocked := []string{"2026-10-17", "2026-10-24"}
	reservationRepo.EXPECT().BlockedDates(mock.Anything, "2026-10-01", "2026-10-31").Return(blocked, nil)

	dates, err := svc.CalendarBlocks(context.Background(), "2026-10-01", "2026-10-31")

	require.NoError(t, err)
	assert.Equal(t, blocked, dates)
}

func TestAvailabilityService_CalendarBlocks_InvalidRange(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(productRepo, reservationRepo, newTestLogger(t))

	_, err := svc.CalendarBlocks(context.Background(), "2026-10-01", "next month")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
