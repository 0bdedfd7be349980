package domain

import "time"

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// Decided reports whether the quotation has left pending. Approve and reject
// only act on pending quotations; conversion is the one operation that still
// touches an approved one.
func (s QuotationStatus) Decided() bool {
	return s == QuotationStatusApproved || s == QuotationStatusRejected
}

type ServiceTier string

const (
	ServiceTierRental     ServiceTier = "rental"
	ServiceTierDecoration ServiceTier = "decoration"
)

func (t ServiceTier) Valid() bool {
	return t == ServiceTierRental || t == ServiceTierDecoration
}

type Quotation struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	EventType    string          `json:"event_type"`
	EventDate    string          `json:"event_date"`
	Headcount    int             `json:"headcount"`
	Message      string          `json:"message"`
	ServiceTier  ServiceTier     `json:"service_tier"`
	Status       QuotationStatus `json:"status"`
	Total        float64         `json:"total"`
	RejectReason *string         `json:"reject_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// QuotationLine is an immutable snapshot of one cart line at submission time.
// Later product price changes never touch it.
type QuotationLine struct {
	ID          string  `json:"id"`
	QuotationID string  `json:"quotation_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type SubmitQuotationInput struct {
	Name        string
	Email       string
	Phone       string
	EventType   string
	EventDate   string
	Headcount   int
	Message     string
	ServiceTier ServiceTier
}
