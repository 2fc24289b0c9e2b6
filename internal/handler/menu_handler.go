package handler

import (
	"net/http"
	"strconv"

	"restaurant_api/internal/model"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuHandler handles menu item requests
type MenuHandler struct {
	service service.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(s service.MenuService) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) CreateUnderCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req model.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	menu, err := h.service.CreateUnderCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, menu.ToResponse())
}

func (h *MenuHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	menus, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	formatted := make([]model.MenuResponse, 0, len(menus))
	for i := range menus {
		formatted = append(formatted, menus[i].ToResponse())
	}
	c.JSON(http.StatusOK, formatted)
}

func (h *MenuHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid menu ID")
		return
	}

	var req model.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	menu, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu.ToResponse())
}

func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid menu ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Menu item deleted", nil)
}

// RegisterMenuRoutes registers menu routes; browsing by category stays public
func (h *MenuHandler) RegisterMenuRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	menuGroup := rg.Group("/menus")
	{
		menuGroup.GET("/category/:category_id", h.ListByCategory)
		menuGroup.POST("/category/:category_id", authMW, h.CreateUnderCategory)
		menuGroup.PUT("/:id", authMW, h.Update)
		menuGroup.DELETE("/:id", authMW, h.Delete)
	}
}
