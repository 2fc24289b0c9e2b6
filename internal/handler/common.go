package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"restaurant_api/internal/middleware"
	"restaurant_api/internal/response"
	"restaurant_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// requireParams checks the given name/value pairs and renders the
// "<names> is/are required." envelope when any are blank. Returns true when
// the response has been written.
func requireParams(c *gin.Context, params ...string) bool {
	missing := []string{}
	for i := 0; i+1 < len(params); i += 2 {
		if strings.TrimSpace(params[i+1]) == "" {
			missing = append(missing, params[i])
		}
	}
	if len(missing) == 0 {
		return false
	}

	verb := "is"
	if len(missing) > 1 {
		verb = "are"
	}
	response.Error(c, http.StatusBadRequest, fmt.Sprintf("%s %s required.", strings.Join(missing, ", "), verb))
	return true
}

// renderServiceError is the single boundary mapping service failures to the
// response envelope. Unanticipated errors are logged but never leak their
// text to the client.
func renderServiceError(c *gin.Context, err error) {
	if ve, ok := service.AsValidation(err); ok {
		response.ValidationFailed(c, ve.Messages)
		return
	}

	switch {
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrMenuNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid phone or password.")
	case errors.Is(err, service.ErrUserAlreadyExists):
		response.Error(c, http.StatusBadRequest, "User already exists.")
	case errors.Is(err, service.ErrPhoneInUse):
		response.Error(c, http.StatusBadRequest, "Phone number already in use.")
	case errors.Is(err, service.ErrCommentNotAnonymous):
		response.Error(c, http.StatusBadRequest, "Name and phone are required if not anonymous.")
	default:
		log.Printf("Unhandled service error: %v", err)
		response.Error(c, http.StatusInternalServerError, "An error occurred")
	}
}
