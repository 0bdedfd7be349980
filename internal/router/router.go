package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListProducts(c *ginext.Context)
	GetProduct(c *ginext.Context)
	ListCategories(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetCalendar(c *ginext.Context)
	GetCart(c *ginext.Context)
	SetCartDate(c *ginext.Context)
	AddCartItem(c *ginext.Context)
	UpdateCartItem(c *ginext.Context)
	RemoveCartItem(c *ginext.Context)
	ClearCart(c *ginext.Context)
	SubmitQuotation(c *ginext.Context)
	ListGallery(c *ginext.Context)

	ListQuotations(c *ginext.Context)
	GetQuotation(c *ginext.Context)
	ApproveQuotation(c *ginext.Context)
	RejectQuotation(c *ginext.Context)
	ConvertQuotation(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ChangeReservationStatus(c *ginext.Context)
	CreateProduct(c *ginext.Context)
	UpdateProduct(c *ginext.Context)
	DeleteProduct(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	DeleteCategory(c *ginext.Context)
	AddGalleryImage(c *ginext.Context)
	DeleteGalleryImage(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Storefront
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/products/:id/availability", h.GetAvailability)
		api.GET("/categories", h.ListCategories)
		api.GET("/calendar", h.GetCalendar)
		api.GET("/gallery", h.ListGallery)

		// Cart (cookie session)
		api.GET("/cart", h.GetCart)
		api.POST("/cart/date", h.SetCartDate)
		api.POST("/cart/items", h.AddCartItem)
		api.PATCH("/cart/items/:productID", h.UpdateCartItem)
		api.DELETE("/cart/items/:productID", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		api.POST("/quotations", h.SubmitQuotation)
	}

	admin := api.Group("/admin")
	admin.Use(adminAuth)
	{
		admin.GET("/quotations", h.ListQuotations)
		admin.GET("/quotations/:id", h.GetQuotation)
		admin.POST("/quotations/:id/approve", h.ApproveQuotation)
		admin.POST("/quotations/:id/reject", h.RejectQuotation)
		admin.POST("/quotations/:id/convert", h.ConvertQuotation)

		admin.GET("/reservations", h.ListReservations)
		admin.POST("/reservations", h.CreateReservation)
		admin.GET("/reservations/:id", h.GetReservation)
		admin.PATCH("/reservations/:id/status", h.ChangeReservationStatus)

		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.POST("/gallery", h.AddGalleryImage)
		admin.DELETE("/gallery/:id", h.DeleteGalleryImage)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
