package handler

import (
	"net/http"
	"strconv"

	"restaurant_api/internal/model"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee requests
type EmployeeHandler struct {
	service service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(s service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee.ToResponse())
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.service.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}

	formatted := make([]model.EmployeeResponse, 0, len(employees))
	for i := range employees {
		formatted = append(formatted, employees[i].ToResponse())
	}
	c.JSON(http.StatusOK, formatted)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee.ToResponse())
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var req model.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	employee, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee.ToResponse())
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted", nil)
}

// RegisterEmployeeRoutes registers employee routes; every route requires auth
func (h *EmployeeHandler) RegisterEmployeeRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	employeeGroup := rg.Group("/employees")
	employeeGroup.Use(authMW)
	{
		employeeGroup.POST("", h.Create)
		employeeGroup.GET("", h.List)
		employeeGroup.GET("/:id", h.Get)
		employeeGroup.PUT("/:id", h.Update)
		employeeGroup.DELETE("/:id", h.Delete)
	}
}
