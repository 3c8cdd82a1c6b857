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

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/contact", h.Submit)
	router.GET("/api/admin/contact-messages", middleware.RequireRole(model.RoleAdmin), h.ListMessages)
}

// Submit stores a contact form submission
// @Summary      Submit contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        payload  body      validation.ContactRequest  true  "Contact Payload"
// @Success      201      {object}  response.Response{data=model.ContactMessage}
// @Failure      400      {object}  response.Response
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req validation.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, msg))
}

// ListMessages returns contact submissions, paginated (staff only)
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/admin/contact-messages [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	p := pagination.Parse(c)
	msgs, total, err := h.contactService.ListMessages(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"messages": msgs,
		"total":    total,
		"page":     p.Page,
		"limit":    p.Limit,
	}))
}
