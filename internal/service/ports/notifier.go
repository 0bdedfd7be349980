package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

// Notifier dispatches customer-facing emails. Implementations log failures
// and never return them; dispatch must not block or fail the state change
// that triggered it.
type Notifier interface {
	NotifyNewQuotation(ctx context.Context, q *domain.Quotation)
	NotifyQuotationApproved(ctx context.Context, q *domain.Quotation)
	NotifyQuotationRejected(ctx context.Context, q *domain.Quotation, reason string)
	NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation)
	NotifyEventReminder(ctx context.Context, r *domain.Reservation)
}
