package dto

import (
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day"`
	Stock       int     `json:"stock"`
	Available   bool    `json:"available"`
	CategoryID  *string `json:"category_id,omitempty"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
}

type AvailabilityResponse struct {
	ProductID string `json:"product_id"`
	Date      string `json:"date"`
	Units     int    `json:"units"`
	Degraded  bool   `json:"degraded"`
}

type CartLineResponse struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	AvailableStock int     `json:"available_stock"`
	Subtotal       float64 `json:"subtotal"`
}

type CartResponse struct {
	EventDate  string             `json:"event_date"`
	Lines      []CartLineResponse `json:"lines"`
	Total      float64            `json:"total"`
	TotalUnits int                `json:"total_units"`
}

type QuotationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	EventType    string  `json:"event_type"`
	EventDate    string  `json:"event_date"`
	Headcount    int     `json:"headcount"`
	Message      string  `json:"message,omitempty"`
	ServiceTier  string  `json:"service_tier"`
	Status       string  `json:"status"`
	Total        float64 `json:"total"`
	RejectReason *string `json:"reject_reason,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type LineItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type QuotationDetailsResponse struct {
	Quotation QuotationResponse  `json:"quotation"`
	Lines     []LineItemResponse `json:"lines"`
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	QuotationID *string `json:"quotation_id,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	EventType   string  `json:"event_type"`
	EventDate   string  `json:"event_date"`
	Headcount   int     `json:"headcount"`
	ServiceTier string  `json:"service_tier"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
	Overdue     bool    `json:"overdue"`
	CreatedAt   string  `json:"created_at"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GalleryImageResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PricePerDay: p.PricePerDay,
		Stock:       p.Stock,
		Available:   p.Available,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a domain.Availability) AvailabilityResponse {
	return AvailabilityResponse(a)
}

func ToCartResponse(c *domain.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPrice:      l.UnitPrice,
			Quantity:       l.Quantity,
			AvailableStock: l.AvailableStock,
			Subtotal:       l.UnitPrice * float64(l.Quantity),
		})
	}

	return CartResponse{
		EventDate:  c.EventDate,
		Lines:      lines,
		Total:      c.Total(),
		TotalUnits: c.TotalUnits(),
	}
}

func ToQuotationResponse(q *domain.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:           q.ID,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		EventType:    q.EventType,
		EventDate:    q.EventDate,
		Headcount:    q.Headcount,
		Message:      q.Message,
		ServiceTier:  string(q.ServiceTier),
		Status:       string(q.Status),
		Total:        q.Total,
		RejectReason: q.RejectReason,
		CreatedAt:    q.CreatedAt.Format(time.RFC3339),
	}
}

func ToQuotationLineResponses(lines []domain.QuotationLine) []LineItemResponse {
	res := make([]LineItemResponse, 0, len(lines))
	for _, l := range lines {
		res = append(res, LineItemResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return res
}

func ToReservationLineResponses(lines []domain.ReservationLine) []LineItemResponse {
	res := make([]LineItemResponse, 0, len(lines))
	for _, l := range lines {
		res = append(res, LineItemResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return res
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		QuotationID: r.QuotationID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		EventType:   r.EventType,
		EventDate:   r.EventDate,
		Headcount:   r.Headcount,
		ServiceTier: string(r.ServiceTier),
		Status:      string(r.Status),
		Total:       r.Total,
		Overdue:     r.Overdue(time.Now()),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToGalleryImageResponse(img *domain.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:        img.ID,
		Title:     img.Title,
		URL:       img.URL,
		CreatedAt: img.CreatedAt.Format(time.RFC3339),
	}
}
