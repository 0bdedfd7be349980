package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/handler/dto"
	hmocks "github.com/wanerdev/creaparty2020/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	cart         *hmocks.MockCartSvc
	quotation    *hmocks.MockQuotationSvc
	reservation  *hmocks.MockReservationSvc
	product      *hmocks.MockProductSvc
	availability *hmocks.MockAvailabilitySvc
	catalog      *hmocks.MockCatalogSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		cart:         hmocks.NewMockCartSvc(t),
		quotation:    hmocks.NewMockQuotationSvc(t),
		reservation:  hmocks.NewMockReservationSvc(t),
		product:      hmocks.NewMockProductSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		catalog:      hmocks.NewMockCatalogSvc(t),
	}

	h := NewHandler(m.cart, m.quotation, m.reservation, m.product, m.availability, m.catalog)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/products/:id/availability", h.GetAvailability)
		api.GET("/categories", h.ListCategories)
		api.GET("/calendar", h.GetCalendar)
		api.GET("/gallery", h.ListGallery)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/date", h.SetCartDate)
		api.POST("/cart/items", h.AddCartItem)
		api.PATCH("/cart/items/:productID", h.UpdateCartItem)
		api.DELETE("/cart/items/:productID", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		api.POST("/quotations", h.SubmitQuotation)

		api.GET("/quotations", h.ListQuotations)
		api.POST("/quotations/:id/approve", h.ApproveQuotation)
		api.POST("/quotations/:id/reject", h.RejectQuotation)
		api.POST("/quotations/:id/convert", h.ConvertQuotation)
		api.POST("/reservations", h.CreateReservation)
		api.PATCH("/reservations/:id/status", h.ChangeReservationStatus)
	}

	return m, r
}

// --- Cart ---

func TestHandler_GetCart_MintsSessionCookie(t *testing.T) {
	m, r := setupRouter(t)

	m.cart.EXPECT().Get(mock.Anything, mock.Anything).Return(&domain.Cart{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "cart_session=")
}

func TestHandler_GetCart_ReusesSessionCookie(t *testing.T) {
	m, r := setupRouter(t)

	m.cart.EXPECT().Get(mock.Anything, "sess-1").Return(&domain.Cart{EventDate: "2026-10-17"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "sess-1"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-17", resp.EventDate)
}

func TestHandler_AddCartItem_Success(t *testing.T) {
	m, r := setupRouter(t)

	productID := uuid.New().String()
	cart := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: productID, Name: "Folding chair", UnitPrice: 2.5, Quantity: 10, AvailableStock: 40},
		},
	}

	m.cart.EXPECT().AddItem(mock.Anything, mock.Anything, productID, 10).Return(cart, nil)

	body, _ := json.Marshal(dto.AddCartItemRequest{ProductID: productID, Quantity: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 25.0, resp.Total)
	assert.Equal(t, 25.0, resp.Lines[0].Subtotal)
}

func TestHandler_AddCartItem_InvalidProductID(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"product_id":"not-a-uuid","quantity":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddCartItem_OverCapacity(t *testing.T) {
	m, r := setupRouter(t)

	productID := uuid.New().String()
	m.cart.EXPECT().AddItem(mock.Anything, mock.Anything, productID, 25).
		Return(nil, &domain.CapacityError{ProductID: productID, Available: 4})

	body, _ := json.Marshal(dto.AddCartItemRequest{ProductID: productID, Quantity: 25})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "only 4 available")
}

func TestHandler_SetCartDate_InvalidDate(t *testing.T) {
	m, r := setupRouter(t)

	m.cart.EXPECT().SetEventDate(mock.Anything, mock.Anything, "whenever").
		Return(nil, domain.ErrValidation)

	body := []byte(`{"date":"whenever"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/date", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Quotations ---

func TestHandler_SubmitQuotation_Success(t *testing.T) {
	m, r := setupRouter(t)

	cart := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Folding chair", UnitPrice: 2.5, Quantity: 20, AvailableStock: 40},
		},
	}
	quotation := &domain.Quotation{
		ID:          uuid.New().String(),
		Name:        "Maria Lopez",
		Email:       "maria@example.com",
		EventDate:   "2026-10-17",
		ServiceTier: domain.ServiceTierRental,
		Status:      domain.QuotationStatusPending,
		Total:       50,
	}

	m.cart.EXPECT().Get(mock.Anything, mock.Anything).Return(cart, nil)
	m.quotation.EXPECT().Submit(mock.Anything, mock.Anything, cart).Return(quotation, nil)
	m.cart.EXPECT().Clear(mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(dto.SubmitQuotationRequest{
		Name:        "Maria Lopez",
		Email:       "maria@example.com",
		Phone:       "+34600111222",
		EventType:   "wedding",
		EventDate:   "2026-10-17",
		Headcount:   "80",
		ServiceTier: "rental",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.QuotationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 50.0, resp.Total)
}

func TestHandler_SubmitQuotation_BadHeadcount(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.SubmitQuotationRequest{
		Name:        "Maria Lopez",
		Email:       "maria@example.com",
		Phone:       "+34600111222",
		EventType:   "wedding",
		EventDate:   "2026-10-17",
		Headcount:   "a lot",
		ServiceTier: "rental",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitQuotation_InFlight(t *testing.T) {
	m, r := setupRouter(t)

	cart := &domain.Cart{EventDate: "2026-10-17", Lines: []domain.CartLine{{ProductID: "p1", Quantity: 1, AvailableStock: 5}}}

	m.cart.EXPECT().Get(mock.Anything, mock.Anything).Return(cart, nil)
	m.quotation.EXPECT().Submit(mock.Anything, mock.Anything, cart).Return(nil, domain.ErrSubmissionInFlight)

	body, _ := json.Marshal(dto.SubmitQuotationRequest{
		Name:        "Maria Lopez",
		Email:       "maria@example.com",
		Phone:       "+34600111222",
		EventType:   "wedding",
		EventDate:   "2026-10-17",
		Headcount:   "80",
		ServiceTier: "rental",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveQuotation_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	quotation := &domain.Quotation{ID: id, Status: domain.QuotationStatusApproved}

	m.quotation.EXPECT().Approve(mock.Anything, id).Return(quotation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuotationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ApproveQuotation_AlreadyDecided(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.quotation.EXPECT().Approve(mock.Anything, id).Return(nil, domain.ErrQuotationDecided)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectQuotation_EmptyBodyAllowed(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	quotation := &domain.Quotation{ID: id, Status: domain.QuotationStatusRejected}

	m.quotation.EXPECT().Reject(mock.Anything, id, "").Return(quotation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+id+"/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConvertQuotation_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		QuotationID: &id,
		Status:      domain.ReservationStatusConfirmed,
		Total:       110,
	}

	m.quotation.EXPECT().Convert(mock.Anything, id).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+id+"/convert", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.QuotationID)
	assert.Equal(t, id, *resp.QuotationID)
}

func TestHandler_ConvertQuotation_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.quotation.EXPECT().Convert(mock.Anything, id).Return(nil, domain.ErrDuplicateReservation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+id+"/convert", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConvertQuotation_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.quotation.EXPECT().Convert(mock.Anything, id).Return(nil, domain.ErrQuotationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/"+id+"/convert", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	m, r := setupRouter(t)

	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		Name:        "Carlos Ruiz",
		EventDate:   "2026-11-02",
		ServiceTier: domain.ServiceTierDecoration,
		Status:      domain.ReservationStatusPending,
	}

	m.reservation.EXPECT().Create(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Name:        "Carlos Ruiz",
		EventDate:   "2026-11-02",
		ServiceTier: "decoration",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_ChangeReservationStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	reservation := &domain.Reservation{ID: id, Status: domain.ReservationStatusConfirmed}

	m.reservation.EXPECT().ChangeStatus(mock.Anything, id, domain.ReservationStatusConfirmed).
		Return(reservation, nil)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ChangeReservationStatus_Final(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservation.EXPECT().ChangeStatus(mock.Anything, id, domain.ReservationStatusCancelled).
		Return(nil, domain.ErrReservationFinal)

	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Catalog ---

func TestHandler_ListProducts_Success(t *testing.T) {
	m, r := setupRouter(t)

	products := []*domain.Product{
		{ID: uuid.New().String(), Name: "Folding chair", PricePerDay: 2.5, Stock: 50, Available: true},
		{ID: uuid.New().String(), Name: "Round table", PricePerDay: 12, Stock: 20, Available: true},
	}

	m.product.EXPECT().List(mock.Anything, mock.Anything).Return(products, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetProduct_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetProduct_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.product.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrProductNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().Resolve(mock.Anything, id, "2026-10-17").
		Return(domain.Availability{ProductID: id, Date: "2026-10-17", Units: 12}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id+"/availability?date=2026-10-17", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Units)
	assert.False(t, resp.Degraded)
}

func TestHandler_GetAvailability_MissingDate(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCalendar_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.availability.EXPECT().CalendarBlocks(mock.Anything, "2026-10-01", "2026-10-31").
		Return([]string{"2026-10-17"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar?from=2026-10-01&to=2026-10-31", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "2026-10-17"))
}
