package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API response carries an explicit success flag; failures carry a
// human-readable error and never raw internal detail.

// OK sends a 200 with success:true merged over the given fields.
func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Message sends a 200 with success:true and a user-facing message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// BadRequest sends a 400 failure.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Unauthorized sends a 401 failure.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
}

// UnauthorizedMsg sends a 401 failure with a custom message.
func UnauthorizedMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

// NotFound sends a 404 failure.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found."})
}

// TooManyRequests sends a 429 failure.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": message})
}

// InternalError sends a 500 failure with a generic message. The underlying
// error is for the caller to log, never for the response body.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Something went wrong. Please try again."
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": message})
}
