package middleware

import "github.com/gin-gonic/gin"

// userIDHeader is the header the authentication collaborator sets after
// validating the caller. Inputs reaching this service are pre-validated.
const userIDHeader = "X-User-ID"

// fallbackUserID attributes writes when no caller identity is present,
// e.g. local development or internal jobs.
const fallbackUserID = "system"

// GetUserIDFromContext retrieves the caller's user ID from the request.
func GetUserIDFromContext(c *gin.Context) string {
	if userID := c.GetHeader(userIDHeader); userID != "" {
		return userID
	}
	return fallbackUserID
}
