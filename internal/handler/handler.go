package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const sessionCookie = "cart_session"

type CartSvc interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	SetEventDate(ctx context.Context, sessionID, date string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type QuotationSvc interface {
	Submit(ctx context.Context, input domain.SubmitQuotationInput, cart *domain.Cart) (*domain.Quotation, error)
	Approve(ctx context.Context, id string) (*domain.Quotation, error)
	Reject(ctx context.Context, id, reason string) (*domain.Quotation, error)
	Convert(ctx context.Context, id string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Quotation, error)
	List(ctx context.Context, status string) ([]*domain.Quotation, error)
	Lines(ctx context.Context, id string) ([]domain.QuotationLine, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	ChangeStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, status string) ([]*domain.Reservation, error)
	Lines(ctx context.Context, id string) ([]domain.ReservationLine, error)
}

type ProductSvc interface {
	Create(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input domain.CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type AvailabilitySvc interface {
	Resolve(ctx context.Context, productID, date string) (domain.Availability, error)
	CalendarBlocks(ctx context.Context, from, to string) ([]string, error)
}

type CatalogSvc interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	AddGalleryImage(ctx context.Context, title, url string) (*domain.GalleryImage, error)
	ListGallery(ctx context.Context) ([]*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error
}

type Handler struct {
	cartService         CartSvc
	quotationService    QuotationSvc
	reservationService  ReservationSvc
	productService      ProductSvc
	availabilityService AvailabilitySvc
	catalogService      CatalogSvc
}

func NewHandler(
	cartService CartSvc,
	quotationService QuotationSvc,
	reservationService ReservationSvc,
	productService ProductSvc,
	availabilityService AvailabilitySvc,
	catalogService CatalogSvc,
) *Handler {
	return &Handler{
		cartService:         cartService,
		quotationService:    quotationService,
		reservationService:  reservationService,
		productService:      productService,
		availabilityService: availabilityService,
		catalogService:      catalogService,
	}
}

// session returns the cart session id from the cookie, minting one when the
// visitor has none yet.
func (h *Handler) session(c *ginext.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return id
}

// Catalog

func (h *Handler) ListProducts(c *ginext.Context) {
	filter := domain.ProductFilter{
		CategoryID:    c.Query("category"),
		OnlyAvailable: c.Query("all") == "",
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProduct(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	availability, err := h.availabilityService.Resolve(c.Request.Context(), id, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) GetCalendar(c *ginext.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from and to query parameters are required"})
		return
	}

	blocked, err := h.availabilityService.CalendarBlocks(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if blocked == nil {
		blocked = []string{}
	}
	c.JSON(http.StatusOK, ginext.H{"blocked_dates": blocked})
}

// Cart

func (h *Handler) GetCart(c *ginext.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), h.session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *Handler) SetCartDate(c *ginext.Context) {
	var req dto.SetEventDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cart, err := h.cartService.SetEventDate(c.Request.Context(), h.session(c), req.Date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *Handler) AddCartItem(c *ginext.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), h.session(c), req.ProductID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *Handler) UpdateCartItem(c *ginext.Context) {
	productID := c.Param("productID")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), h.session(c), productID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *Handler) RemoveCartItem(c *ginext.Context) {
	productID := c.Param("productID")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), h.session(c), productID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *Handler) ClearCart(c *ginext.Context) {
	if err := h.cartService.Clear(c.Request.Context(), h.session(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cleared"})
}

// Quotations

func (h *Handler) SubmitQuotation(c *ginext.Context) {
	var req dto.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	headcount, err := strconv.Atoi(req.Headcount)
	if err != nil || headcount <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "headcount must be a positive integer"})
		return
	}

	sessionID := h.session(c)
	cart, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.SubmitQuotationInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Headcount:   headcount,
		Message:     req.Message,
		ServiceTier: domain.ServiceTier(req.ServiceTier),
	}
	if input.EventDate == "" {
		input.EventDate = cart.EventDate
	}

	quotation, err := h.quotationService.Submit(c.Request.Context(), input, cart)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Submission succeeded; the cart and its date are done.
	if err = h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuotationResponse(quotation))
}

func (h *Handler) ListQuotations(c *ginext.Context) {
	quotations, err := h.quotationService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		resp = append(resp, dto.ToQuotationResponse(q))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetQuotation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quotation id"})
		return
	}

	quotation, err := h.quotationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	lines, err := h.quotationService.Lines(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuotationDetailsResponse{
		Quotation: dto.ToQuotationResponse(quotation),
		Lines:     dto.ToQuotationLineResponses(lines),
	})
}

func (h *Handler) ApproveQuotation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quotation id"})
		return
	}

	quotation, err := h.quotationService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

func (h *Handler) RejectQuotation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quotation id"})
		return
	}

	var req dto.RejectQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quotation, err := h.quotationService.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

func (h *Handler) ConvertQuotation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quotation id"})
		return
	}

	reservation, err := h.quotationService.Convert(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReservationInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Headcount:   req.Headcount,
		ServiceTier: domain.ServiceTier(req.ServiceTier),
		Total:       req.Total,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	reservations, err := h.reservationService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ChangeReservationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ChangeReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.ChangeStatus(
		c.Request.Context(), id, domain.ReservationStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// Products admin

func (h *Handler) CreateProduct(c *ginext.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), productInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *Handler) UpdateProduct(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, productInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *Handler) DeleteProduct(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func productInput(req dto.CreateProductRequest) domain.CreateProductInput {
	return domain.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		Stock:       req.Stock,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
	}
}

// Categories and gallery admin

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category id"})
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListGallery(c *ginext.Context) {
	images, err := h.catalogService.ListGallery(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GalleryImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, dto.ToGalleryImageResponse(img))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddGalleryImage(c *ginext.Context) {
	var req dto.AddGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	img, err := h.catalogService.AddGalleryImage(c.Request.Context(), req.Title, req.URL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGalleryImageResponse(img))
}

func (h *Handler) DeleteGalleryImage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid image id"})
		return
	}

	if err := h.catalogService.DeleteGalleryImage(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrQuotationNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrImageNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacity),
		errors.Is(err, domain.ErrDuplicateReservation),
		errors.Is(err, domain.ErrQuotationDecided),
		errors.Is(err, domain.ErrQuotationNotConvertible),
		errors.Is(err, domain.ErrReservationFinal),
		errors.Is(err, domain.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
