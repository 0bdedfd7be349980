package notification

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports"
)

// Multi fans each notification out to every sink. Sinks already swallow
// their own failures, so one broken channel never silences another.
type Multi struct {
	sinks []ports.Notifier
}

func NewMulti(sinks ...ports.Notifier) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) NotifyNewQuotation(ctx context.Context, q *domain.Quotation) {
	for _, s := range m.sinks {
		s.NotifyNewQuotation(ctx, q)
	}
}

func (m *Multi) NotifyQuotationApproved(ctx context.Context, q *domain.Quotation) {
	for _, s := range m.sinks {
		s.NotifyQuotationApproved(ctx, q)
	}
}

func (m *Multi) NotifyQuotationRejected(ctx context.Context, q *domain.Quotation, reason string) {
	for _, s := range m.sinks {
		s.NotifyQuotationRejected(ctx, q, reason)
	}
}

func (m *Multi) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) {
	for _, s := range m.sinks {
		s.NotifyReservationConfirmed(ctx, r)
	}
}

func (m *Multi) NotifyEventReminder(ctx context.Context, r *domain.Reservation) {
	for _, s := range m.sinks {
		s.NotifyEventReminder(ctx, r)
	}
}
