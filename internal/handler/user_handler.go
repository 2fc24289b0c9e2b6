package handler

import (
	"errors"
	"net/http"

	"restaurant_api/internal/model"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration, login and account requests
type UserHandler struct {
	service service.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.AuthService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if requireParams(c, "name", req.Name, "phone", req.Phone, "password", req.Password) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if requireParams(c, "phone", req.Phone, "password", req.Password) {
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Access token required.")
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Access token required.")
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if requireParams(c, "oldPassword", req.OldPassword, "newPassword", req.NewPassword) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.Error(c, http.StatusUnauthorized, "Old password is incorrect.")
			return
		}
		renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully.", nil)
}

func (h *UserHandler) UpdatePhoneNumber(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Access token required.")
		return
	}

	var req model.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if requireParams(c, "newPhone", req.NewPhone, "password", req.Password) {
		return
	}

	user, err := h.service.UpdatePhone(c.Request.Context(), userID, req.NewPhone, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.Error(c, http.StatusUnauthorized, "Password is incorrect.")
			return
		}
		renderServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Phone number updated successfully.", gin.H{"user": user})
}

// RegisterUserRoutes registers user routes; register and login stay public
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.POST("/register", h.Register)
		userGroup.POST("/login", h.Login)
		userGroup.GET("/current", authMW, h.CurrentUser)
		userGroup.PUT("/change-password", authMW, h.ChangePassword)
		userGroup.PUT("/update-phone", authMW, h.UpdatePhoneNumber)
	}
}
