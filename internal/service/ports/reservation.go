package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	CreateLines(ctx context.Context, lines []domain.ReservationLine) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, status string) ([]*domain.Reservation, error)
	ListLines(ctx context.Context, reservationID string) ([]domain.ReservationLine, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error

	// ExistsForQuotation scans reservations for a non-null back-reference to
	// the quotation. Fast pre-check; the unique constraint is authoritative.
	ExistsForQuotation(ctx context.Context, quotationID string) (bool, error)

	// BlockedDates lists the calendar days occupied by decoration-tier
	// reservations in a blocking status within [from, to].
	BlockedDates(ctx context.Context, from, to string) ([]string, error)

	// DueReminders lists confirmed reservations whose event falls on the
	// given day and whose reminder has not been sent yet.
	DueReminders(ctx context.Context, date string) ([]*domain.Reservation, error)
	MarkReminderSent(ctx context.Context, id string) error
	ListOverdue(ctx context.Context, today string) ([]*domain.Reservation, error)
}
