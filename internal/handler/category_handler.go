package handler

import (
	"net/http"
	"strconv"

	"restaurant_api/internal/model"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category requests
type CategoryHandler struct {
	service service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	category, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category.ToResponse())
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}

	formatted := make([]model.CategoryResponse, 0, len(categories))
	for i := range categories {
		formatted = append(formatted, categories[i].ToResponse())
	}
	c.JSON(http.StatusOK, formatted)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req model.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category.ToResponse())
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Category and related menu items deleted", nil)
}

// RegisterCategoryRoutes registers category routes; listing stays public
func (h *CategoryHandler) RegisterCategoryRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	categoryGroup := rg.Group("/categories")
	{
		categoryGroup.GET("", h.List)
		categoryGroup.POST("", authMW, h.Create)
		categoryGroup.PUT("/:id", authMW, h.Update)
		categoryGroup.DELETE("/:id", authMW, h.Delete)
	}
}
