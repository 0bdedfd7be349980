package dto

type SetEventDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type SubmitQuotationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	EventType   string `json:"event_type" binding:"required"`
	EventDate   string `json:"event_date" binding:"required"`
	Headcount   string `json:"headcount" binding:"required"`
	Message     string `json:"message"`
	ServiceTier string `json:"service_tier" binding:"required"`
}

type RejectQuotationRequest struct {
	Reason string `json:"reason"`
}

type CreateReservationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	EventType   string  `json:"event_type"`
	EventDate   string  `json:"event_date" binding:"required"`
	Headcount   int     `json:"headcount"`
	ServiceTier string  `json:"service_tier" binding:"required"`
	Total       float64 `json:"total"`
}

type ChangeReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day"`
	Stock       int     `json:"stock"`
	Available   *bool   `json:"available"`
	CategoryID  *string `json:"category_id"`
	ImageURL    string  `json:"image_url"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddGalleryImageRequest struct {
	Title string `json:"title"`
	URL   string `json:"url" binding:"required"`
}
