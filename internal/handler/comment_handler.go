package handler

import (
	"net/http"

	"restaurant_api/internal/model"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles customer comment requests
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	comment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment submitted successfully", gin.H{"comment": comment.ToResponse()})
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.service.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}

	formatted := make([]model.CommentResponse, 0, len(comments))
	for i := range comments {
		formatted = append(formatted, comments[i].ToResponse())
	}
	response.Success(c, http.StatusOK, "", gin.H{"comments": formatted})
}

// RegisterCommentRoutes registers comment routes; both are public so diners
// can leave and read feedback without an account
func (h *CommentHandler) RegisterCommentRoutes(rg *gin.RouterGroup) {
	commentGroup := rg.Group("/comments")
	{
		commentGroup.POST("", h.Create)
		commentGroup.GET("", h.List)
	}
}
