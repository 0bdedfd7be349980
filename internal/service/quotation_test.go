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

func submissionInput() domain.SubmitQuotationInput {
	return domain.SubmitQuotationInput{
		Name:        "Maria Lopez",
		Email:       "maria@example.com",
		Phone:       "+34600111222",
		EventType:   "wedding",
		EventDate:   "2026-10-17",
		Headcount:   80,
		Message:     "outdoor ceremony",
		ServiceTier: domain.ServiceTierRental,
	}
}

func filledCart() *domain.Cart {
	return &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Folding chair", UnitPrice: 2.5, Quantity: 20, AvailableStock: 50},
			{ProductID: "p2", Name: "Round table", UnitPrice: 12, Quantity: 5, AvailableStock: 10},
		},
	}
}

func TestQuotationService_Submit(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, log)

	var createdLines []domain.QuotationLine
	quotationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	quotationRepo.EXPECT().CreateLines(mock.Anything, mock.Anything).
		Run(func(_ context.Context, lines []domain.QuotationLine) {
			createdLines = lines
		}).Return(nil)
	notifier.EXPECT().NotifyNewQuotation(mock.Anything, mock.Anything).Return()

	quotation, err := svc.Submit(context.Background(), submissionInput(), filledCart())

	require.NoError(t, err)
	assert.NotEmpty(t, quotation.ID)
	assert.Equal(t, domain.QuotationStatusPending, quotation.Status)
	assert.Equal(t, 110.0, quotation.Total)
	assert.Equal(t, "maria@example.com", quotation.Email)

	require.Len(t, createdLines, 2)
	assert.Equal(t, quotation.ID, createdLines[0].QuotationID)
	assert.Equal(t, "Folding chair", createdLines[0].ProductName)
	assert.Equal(t, 50.0, createdLines[0].Subtotal)
	assert.Equal(t, 60.0, createdLines[1].Subtotal)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestQuotationService_Submit_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.SubmitQuotationInput, *domain.Cart)
	}{
		{"short name", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.Name = "x" }},
		{"bad email", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.Email = "not-an-email" }},
		{"short phone", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.Phone = "12345" }},
		{"missing date", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.EventDate = "" }},
		{"malformed date", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.EventDate = "17/10/2026" }},
		{"missing event type", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.EventType = "" }},
		{"bad tier", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.ServiceTier = "catering" }},
		{"zero headcount", func(in *domain.SubmitQuotationInput, _ *domain.Cart) { in.Headcount = 0 }},
		{"empty cart", func(_ *domain.SubmitQuotationInput, c *domain.Cart) { c.Lines = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quotationRepo := mocks.NewMockQuotationRepo(t)
			reservationRepo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)

			svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

			input := submissionInput()
			cart := filledCart()
			tc.mutate(&input, cart)

			_, err := svc.Submit(context.Background(), input, cart)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestQuotationService_Submit_DedupesConcurrentSubmits(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	input := submissionInput()
	svc.inflight.Store("maria@example.com|2026-10-17", struct{}{})

	_, err := svc.Submit(context.Background(), input, filledCart())

	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)
}

func TestQuotationService_Approve(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Name: "Maria Lopez", Status: domain.QuotationStatusPending}

	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)
	quotationRepo.EXPECT().UpdateStatus(mock.Anything, "q1", domain.QuotationStatusApproved, (*string)(nil)).Return(nil)
	notifier.EXPECT().NotifyQuotationApproved(mock.Anything, mock.Anything).Return()

	quotation, err := svc.Approve(context.Background(), "q1")

	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusApproved, quotation.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestQuotationService_Reject_WithReason(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Status: domain.QuotationStatusPending}

	var gotReason *string
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)
	quotationRepo.EXPECT().UpdateStatus(mock.Anything, "q1", domain.QuotationStatusRejected, mock.Anything).
		Run(func(_ context.Context, _ string, _ domain.QuotationStatus, reason *string) {
			gotReason = reason
		}).Return(nil)
	notifier.EXPECT().NotifyQuotationRejected(mock.Anything, mock.Anything, "date unavailable").Return()

	quotation, err := svc.Reject(context.Background(), "q1", "date unavailable")

	require.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusRejected, quotation.Status)
	require.NotNil(t, gotReason)
	assert.Equal(t, "date unavailable", *gotReason)
	require.NotNil(t, quotation.RejectReason)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestQuotationService_Approve_AlreadyDecided(t *testing.T) {
	for _, status := range []domain.QuotationStatus{
		domain.QuotationStatusApproved,
		domain.QuotationStatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			quotationRepo := mocks.NewMockQuotationRepo(t)
			reservationRepo := mocks.NewMockReservationRepo(t)
			notifier := mocks.NewMockNotifier(t)

			svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

			stored := &domain.Quotation{ID: "q1", Status: status}
			quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)

			_, err := svc.Approve(context.Background(), "q1")

			assert.ErrorIs(t, err, domain.ErrQuotationDecided)
		})
	}
}

func TestQuotationService_Reject_AlreadyDecided(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Status: domain.QuotationStatusApproved}
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)

	_, err := svc.Reject(context.Background(), "q1", "changed our mind")

	assert.ErrorIs(t, err, domain.ErrQuotationDecided)
}

func TestQuotationService_Convert(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{
		ID:          "q1",
		Name:        "Maria Lopez",
		Email:       "maria@example.com",
		Phone:       "+34600111222",
		EventType:   "wedding",
		EventDate:   "2026-10-17",
		Headcount:   80,
		ServiceTier: domain.ServiceTierDecoration,
		Status:      domain.QuotationStatusPending,
		Total:       110,
	}
	storedLines := []domain.QuotationLine{
		{ID: "l1", QuotationID: "q1", ProductID: "p1", ProductName: "Folding chair", Quantity: 20, UnitPrice: 2.5, Subtotal: 50},
		{ID: "l2", QuotationID: "q1", ProductID: "p2", ProductName: "Round table", Quantity: 5, UnitPrice: 12, Subtotal: 60},
	}

	var copiedLines []domain.ReservationLine
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)
	reservationRepo.EXPECT().ExistsForQuotation(mock.Anything, "q1").Return(false, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	quotationRepo.EXPECT().ListLines(mock.Anything, "q1").Return(storedLines, nil)
	reservationRepo.EXPECT().CreateLines(mock.Anything, mock.Anything).
		Run(func(_ context.Context, lines []domain.ReservationLine) {
			copiedLines = lines
		}).Return(nil)
	quotationRepo.EXPECT().UpdateStatus(mock.Anything, "q1", domain.QuotationStatusApproved, (*string)(nil)).Return(nil)

	reservation, err := svc.Convert(context.Background(), "q1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, reservation.Status)
	require.NotNil(t, reservation.QuotationID)
	assert.Equal(t, "q1", *reservation.QuotationID)
	assert.Equal(t, "Maria Lopez", reservation.Name)
	assert.Equal(t, domain.ServiceTierDecoration, reservation.ServiceTier)
	assert.Equal(t, 110.0, reservation.Total)

	require.Len(t, copiedLines, 2)
	assert.Equal(t, reservation.ID, copiedLines[0].ReservationID)
	assert.NotEqual(t, "l1", copiedLines[0].ID)
	assert.Equal(t, 50.0, copiedLines[0].Subtotal)
	assert.Equal(t, "Round table", copiedLines[1].ProductName)
}

func TestQuotationService_Convert_RejectedNotConvertible(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Status: domain.QuotationStatusRejected}
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)

	_, err := svc.Convert(context.Background(), "q1")

	assert.ErrorIs(t, err, domain.ErrQuotationNotConvertible)
}

func TestQuotationService_Convert_DuplicateReservation(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Status: domain.QuotationStatusApproved}
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)
	reservationRepo.EXPECT().ExistsForQuotation(mock.Anything, "q1").Return(true, nil)

	_, err := svc.Convert(context.Background(), "q1")

	assert.ErrorIs(t, err, domain.ErrDuplicateReservation)
}

func TestQuotationService_Convert_NotFound(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	quotationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrQuotationNotFound)

	_, err := svc.Convert(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrQuotationNotFound)
}

func TestQuotationService_Submit_CreateFails(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	repoErr := errors.New("connection refused")
	quotationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Submit(context.Background(), submissionInput(), filledCart())

	assert.ErrorIs(t, err, repoErr)
}

func TestQuotationService_Submit_LinesFailureKeepsQuotation(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	// The quotation row lands, the line items do not. The error surfaces and
	// the quotation stays; nothing is deleted and nobody is notified.
	repoErr := errors.New("line insert failed")
	quotationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	quotationRepo.EXPECT().CreateLines(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Submit(context.Background(), submissionInput(), filledCart())

	assert.ErrorIs(t, err, repoErr)

	time.Sleep(50 * time.Millisecond) // would catch a stray notify
}

func TestQuotationService_Convert_LineCopyFailureKeepsReservation(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Status: domain.QuotationStatusPending, Total: 50}
	storedLines := []domain.QuotationLine{
		{ID: "l1", QuotationID: "q1", ProductID: "p1", ProductName: "Folding chair", Quantity: 20, UnitPrice: 2.5, Subtotal: 50},
	}

	// The reservation is the primary effect. A failed line copy surfaces the
	// error but rolls nothing back; the quotation is not marked approved.
	repoErr := errors.New("line copy failed")
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)
	reservationRepo.EXPECT().ExistsForQuotation(mock.Anything, "q1").Return(false, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	quotationRepo.EXPECT().ListLines(mock.Anything, "q1").Return(storedLines, nil)
	reservationRepo.EXPECT().CreateLines(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Convert(context.Background(), "q1")

	assert.ErrorIs(t, err, repoErr)
}

func TestQuotationService_Convert_MarkApprovedFailureSurfaced(t *testing.T) {
	quotationRepo := mocks.NewMockQuotationRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewQuotationService(quotationRepo, reservationRepo, notifier, newTestLogger(t))

	stored := &domain.Quotation{ID: "q1", Status: domain.QuotationStatusPending, Total: 50}

	repoErr := errors.New("status update failed")
	quotationRepo.EXPECT().GetByID(mock.Anything, "q1").Return(stored, nil)
	reservationRepo.EXPECT().ExistsForQuotation(mock.Anything, "q1").Return(false, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	quotationRepo.EXPECT().ListLines(mock.Anything, "q1").Return(nil, nil)
	reservationRepo.EXPECT().CreateLines(mock.Anything, mock.Anything).Return(nil)
	quotationRepo.EXPECT().UpdateStatus(mock.Anything, "q1", domain.QuotationStatusApproved, (*string)(nil)).Return(repoErr)

	_, err := svc.Convert(context.Background(), "q1")

	assert.ErrorIs(t, err, repoErr)
}
