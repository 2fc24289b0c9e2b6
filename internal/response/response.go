package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The front-ends expect every endpoint to answer with the same envelope:
// {success:true, message?, ...payload} on success and
// {success:false, message?, errors?} on failure. Payload keys are merged at
// the top level, never nested under a data key.

// Success renders a success envelope. Payload keys are flattened into the
// envelope alongside the optional message.
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error renders an error envelope with a top-level message and optional
// field-level error strings.
func Error(c *gin.Context, status int, message string, errs ...string) {
	body := gin.H{"success": false, "message": message}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	c.JSON(status, body)
}

// ValidationFailed renders the 422 envelope used for entity constraint
// violations: no message, only the list of field messages.
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "errors": errs})
}
