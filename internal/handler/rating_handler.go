package handler

import (
	"net/http"
	"strconv"

	"restaurant_api/internal/model"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles menu rating requests
type RatingHandler struct {
	service service.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(s service.RatingService) *RatingHandler {
	return &RatingHandler{service: s}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req model.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	missing := []string{}
	if req.Menu == nil {
		missing = append(missing, "menu")
	}
	if req.Stars == nil {
		missing = append(missing, "stars")
	}
	if len(missing) > 0 {
		verb := "is"
		joined := missing[0]
		if len(missing) > 1 {
			verb = "are"
			joined = missing[0] + ", " + missing[1]
		}
		response.Error(c, http.StatusBadRequest, joined+" "+verb+" required.")
		return
	}

	rating, err := h.service.Create(c.Request.Context(), int(*req.Menu), int(*req.Stars))
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating.ToResponse())
}

func (h *RatingHandler) ListByMenu(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid menu ID")
		return
	}

	ratings, err := h.service.ListByMenu(c.Request.Context(), menuID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	formatted := make([]model.RatingResponse, 0, len(ratings))
	for i := range ratings {
		formatted = append(formatted, ratings[i].ToResponse())
	}
	c.JSON(http.StatusOK, formatted)
}

func (h *RatingHandler) Average(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid menu ID")
		return
	}

	avg, err := h.service.AverageForMenu(c.Request.Context(), menuID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, avg)
}

// RegisterRatingRoutes registers rating routes; submitting a rating and
// reading averages stay public, the raw listing is for the back-office
func (h *RatingHandler) RegisterRatingRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	ratingGroup := rg.Group("/ratings")
	{
		ratingGroup.POST("", h.Create)
		ratingGroup.GET("/menu/:menu_id", authMW, h.ListByMenu)
		ratingGroup.GET("/average/:menu_id", h.Average)
	}
}
