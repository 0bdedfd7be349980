package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type QuotationService struct {
	quotationRepo   ports.QuotationRepo
	reservationRepo ports.ReservationRepo
	notifier        ports.Notifier
	logger          logger.Logger

	// inflight dedupes concurrent submits for the same customer and date so a
	// double-click cannot create two quotations.
	inflight sync.Map
}

func NewQuotationService(
	quotationRepo ports.QuotationRepo,
	reservationRepo ports.ReservationRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *QuotationService {
	return &QuotationService{
		quotationRepo:   quotationRepo,
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func validateSubmission(input domain.SubmitQuotationInput, cart *domain.Cart) error {
	if len(strings.TrimSpace(input.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(strings.TrimSpace(input.Phone)) < 8 {
		return fmt.Errorf("%w: phone must be at least 8 characters", domain.ErrValidation)
	}
	if input.EventDate == "" {
		return fmt.Errorf("%w: event date is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, input.EventDate); err != nil {
		return fmt.Errorf("%w: invalid event date, expected %s", domain.ErrValidation, domain.DateLayout)
	}
	if input.EventType == "" {
		return fmt.Errorf("%w: event type is required", domain.ErrValidation)
	}
	if !input.ServiceTier.Valid() {
		return fmt.Errorf("%w: service tier must be rental or decoration", domain.ErrValidation)
	}
	if input.Headcount <= 0 {
		return fmt.Errorf("%w: headcount must be positive", domain.ErrValidation)
	}
	if cart.Empty() {
		return fmt.Errorf("%w: cart is empty", domain.ErrValidation)
	}
	return nil
}

// Submit validates the request and persists the quotation in state pending
// together with one line per cart line, priced from the cart snapshot rather
// than a live lookup. Availability is not re-validated here; a quotation is a
// request for a quote, not a hold, and admins re-check before converting.
//
// The quotation insert and the line inserts are two writes. If the lines fail
// after the quotation landed, the quotation is kept and the error surfaced.
func (s *QuotationService) Submit(ctx context.Context, input domain.SubmitQuotationInput, cart *domain.Cart) (*domain.Quotation, error) {
	if err := validateSubmission(input, cart); err != nil {
		return nil, err
	}

	key := strings.ToLower(input.Email) + "|" + input.EventDate
	if _, loaded := s.inflight.LoadOrStore(key, struct{}{}); loaded {
		return nil, domain.ErrSubmissionInFlight
	}
	defer s.inflight.Delete(key)

	now := time.Now().UTC()
	quotation := &domain.Quotation{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		EventType:   input.EventType,
		EventDate:   input.EventDate,
		Headcount:   input.Headcount,
		Message:     input.Message,
		ServiceTier: input.ServiceTier,
		Status:      domain.QuotationStatusPending,
		Total:       cart.Total(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, fmt.Errorf("create quotation: %w", err)
	}

	lines := make([]domain.QuotationLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, domain.QuotationLine{
			ID:          uuid.New().String(),
			QuotationID: quotation.ID,
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.UnitPrice * float64(l.Quantity),
		})
	}

	if err := s.quotationRepo.CreateLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("create quotation lines: %w", err)
	}

	s.logger.Info("quotation submitted",
		logger.String("quotation_id", quotation.ID),
		logger.String("event_date", quotation.EventDate),
		logger.Int("lines", len(lines)),
	)

	go s.notifier.NotifyNewQuotation(context.WithoutCancel(ctx), quotation)

	return quotation, nil
}

func (s *QuotationService) Approve(ctx context.Context, id string) (*domain.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}

	if quotation.Status.Decided() {
		return nil, domain.ErrQuotationDecided
	}

	if err = s.quotationRepo.UpdateStatus(ctx, id, domain.QuotationStatusApproved, nil); err != nil {
		return nil, fmt.Errorf("approve quotation: %w", err)
	}
	quotation.Status = domain.QuotationStatusApproved

	s.logger.Info("quotation approved", logger.String("quotation_id", id))

	go s.notifier.NotifyQuotationApproved(context.WithoutCancel(ctx), quotation)

	return quotation, nil
}

func (s *QuotationService) Reject(ctx context.Context, id, reason string) (*domain.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}

	if quotation.Status.Decided() {
		return nil, domain.ErrQuotationDecided
	}

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}

	if err = s.quotationRepo.UpdateStatus(ctx, id, domain.QuotationStatusRejected, reasonPtr); err != nil {
		return nil, fmt.Errorf("reject quotation: %w", err)
	}
	quotation.Status = domain.QuotationStatusRejected
	quotation.RejectReason = reasonPtr

	s.logger.Info("quotation rejected", logger.String("quotation_id", id))

	go s.notifier.NotifyQuotationRejected(context.WithoutCancel(ctx), quotation, reason)

	return quotation, nil
}

// Convert turns a quotation into a confirmed reservation, copying the
// customer and event fields and every line verbatim, then marks the
// quotation approved. A quotation that already has a reservation is refused;
// the reservations.quotation_id unique constraint closes the window between
// the pre-check and the insert. The reservation is the primary effect: a
// failure after it lands is reported but not rolled back.
func (s *QuotationService) Convert(ctx context.Context, id string) (*domain.Reservation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}

	if quotation.Status == domain.QuotationStatusRejected {
		return nil, domain.ErrQuotationNotConvertible
	}

	exists, err := s.reservationRepo.ExistsForQuotation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check existing reservation: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateReservation
	}

	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		QuotationID: &quotation.ID,
		Name:        quotation.Name,
		Email:       quotation.Email,
		Phone:       quotation.Phone,
		EventType:   quotation.EventType,
		EventDate:   quotation.EventDate,
		Headcount:   quotation.Headcount,
		ServiceTier: quotation.ServiceTier,
		Status:      domain.ReservationStatusConfirmed,
		Total:       quotation.Total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	quotationLines, err := s.quotationRepo.ListLines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list quotation lines: %w", err)
	}

	lines := make([]domain.ReservationLine, 0, len(quotationLines))
	for _, l := range quotationLines {
		lines = append(lines, domain.ReservationLine{
			ID:            uuid.New().String(),
			ReservationID: reservation.ID,
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Subtotal:      l.Subtotal,
		})
	}

	if err = s.reservationRepo.CreateLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("copy line items: %w", err)
	}

	if err = s.quotationRepo.UpdateStatus(ctx, id, domain.QuotationStatusApproved, nil); err != nil {
		return nil, fmt.Errorf("mark quotation approved: %w", err)
	}

	s.logger.Info("quotation converted",
		logger.String("quotation_id", id),
		logger.String("reservation_id", reservation.ID),
		logger.Int("lines", len(lines)),
	)

	return reservation, nil
}

func (s *QuotationService) GetByID(ctx context.Context, id string) (*domain.Quotation, error) {
	return s.quotationRepo.GetByID(ctx, id)
}

func (s *QuotationService) List(ctx context.Context, status string) ([]*domain.Quotation, error) {
	return s.quotationRepo.List(ctx, status)
}

func (s *QuotationService) Lines(ctx context.Context, id string) ([]domain.QuotationLine, error) {
	return s.quotationRepo.ListLines(ctx, id)
}
