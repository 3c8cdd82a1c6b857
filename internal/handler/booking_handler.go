package handler

import (
	"net/http"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/middleware"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/service"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/validation"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/pkg/pagination"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/api/bookings")
	{
		// Guests may book without an account
		bookings.POST("", middleware.OptionalAuth(), h.CreateBooking)
		bookings.GET("", middleware.RequireAuth(), h.ListBookings)
		bookings.POST("/:id/cancel", middleware.RequireAuth(), h.CancelBooking)
	}

	admin := router.Group("/api")
	{
		admin.PATCH("/bookings/:id/status", middleware.RequireRole(model.RoleAdmin), h.UpdateStatus)
		admin.GET("/admin/bookings", middleware.RequireRole(model.RoleAdmin), h.ListAllBookings)
	}
}

// CreateBooking validates and persists a reservation
// @Summary      Book a table
// @Description  Validates the payload against the booking rules and creates a pending reservation
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.BookingRequest  true  "Booking Payload"
// @Success      201      {object}  response.Response{data=service.CreateBookingResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req validation.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.bookingService.CreateBooking(c.Request.Context(), middleware.GetAuthContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}

// ListBookings returns the caller's own bookings by booking date, newest first
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Booking}
// @Failure      401  {object}  response.Response
// @Router       /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, bookings))
}

// CancelBooking cancels the caller's own booking when the lifecycle allows it
// @Summary      Cancel my booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=model.Booking}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /api/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.bookingService.CancelBooking(c.Request.Context(), middleware.GetAuthContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, booking))
}

// UpdateStatus moves a booking along its state machine (staff only)
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Booking ID"
// @Param        payload  body      service.UpdateStatusRequest  true  "Target status"
// @Success      200      {object}  response.Response{data=model.Booking}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), middleware.GetAuthContext(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, booking))
}

// ListAllBookings returns every booking, paginated (staff only)
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/admin/bookings [get]
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	p := pagination.Parse(c)
	bookings, total, err := h.bookingService.ListAllBookings(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"total":    total,
		"page":     p.Page,
		"limit":    p.Limit,
	}))
}
