package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCompleted, ReservationStatusCancelled:
		return true
	}
	return false
}

// Final reports whether the status is a sink with no transitions out.
func (s ReservationStatus) Final() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

// CalendarBlockingStatuses are the reservation states that occupy the public
// decoration calendar. Only decoration-tier reservations in these states
// block a date; rental-tier reservations never do.
var CalendarBlockingStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}

type Reservation struct {
	ID          string            `json:"id"`
	QuotationID *string           `json:"quotation_id,omitempty"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	EventType   string            `json:"event_type"`
	EventDate   string            `json:"event_date"`
	Headcount   int               `json:"headcount"`
	ServiceTier ServiceTier       `json:"service_tier"`
	Status      ReservationStatus `json:"status"`
	Total       float64           `json:"total"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Overdue reports whether the event date has passed while the reservation is
// still in a non-final state. Derived, never stored.
func (r *Reservation) Overdue(now time.Time) bool {
	if r.Status.Final() {
		return false
	}
	date, err := time.Parse(DateLayout, r.EventDate)
	if err != nil {
		return false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	return date.Before(today)
}

// ReservationLine mirrors QuotationLine; conversion copies lines verbatim.
type ReservationLine struct {
	ID            string  `json:"id"`
	ReservationID string  `json:"reservation_id"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
}

type CreateReservationInput struct {
	Name        string
	Email       string
	Phone       string
	EventType   string
	EventDate   string
	Headcount   int
	ServiceTier ServiceTier
	Total       float64
}
