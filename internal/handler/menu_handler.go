package handler

import (
	"net/http"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/middleware"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/service"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/pkg/pagination"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/api/menu")
	{
		menu.GET("", h.ListMenu)
		menu.POST("", middleware.RequireRole(model.RoleAdmin), h.CreateItem)
		menu.PUT("/:id", middleware.RequireRole(model.RoleAdmin), h.UpdateItem)
		menu.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.DeleteItem)
	}
}

// ListMenu returns the menu, paginated
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/menu [get]
func (h *MenuHandler) ListMenu(c *gin.Context) {
	p := pagination.ParseWith(c, pagination.MenuLimit)
	items, total, err := h.menuService.ListMenu(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	}))
}

// CreateItem adds a menu item (staff only)
// @Summary      Create menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.MenuItemRequest  true  "Menu Item Payload"
// @Success      201      {object}  response.Response{data=model.MenuItem}
// @Failure      400      {object}  response.Response
// @Router       /api/menu [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req service.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateItem edits a menu item (staff only). Historical orders keep their
// snapshotted name and price.
// @Summary      Update menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                   true  "Menu Item ID"
// @Param        payload  body      service.MenuItemRequest  true  "Menu Item Payload"
// @Success      200      {object}  response.Response{data=model.MenuItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	var req service.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteItem removes a menu item (staff only)
// @Summary      Delete menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu Item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	if err := h.menuService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "deleted"}))
}
