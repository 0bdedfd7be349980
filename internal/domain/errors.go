package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrQuotationNotFound   = errors.New("quotation not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrImageNotFound       = errors.New("gallery image not found")
)

var (
	ErrCapacity                = errors.New("requested quantity exceeds availability")
	ErrDuplicateReservation    = errors.New("quotation already has a reservation")
	ErrQuotationDecided        = errors.New("quotation is already decided")
	ErrQuotationNotConvertible = errors.New("rejected quotation cannot be converted")
	ErrReservationFinal        = errors.New("reservation is in a final status")
	ErrSubmissionInFlight      = errors.New("submission already in progress")
)

var (
	ErrValidation = errors.New("validation error")
)

// CapacityError carries the availability count the "only N available" message
// needs. It matches ErrCapacity under errors.Is.
type CapacityError struct {
	ProductID string
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d available for this date", e.Available)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}
