package response

import "github.com/gin-gonic/gin"

// OK writes the payload as-is. Listing endpoints return bare arrays and the
// booking endpoint returns its own object, so there is no success envelope.
func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes the error envelope shared by every endpoint.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// Internal hides the cause behind a generic message; details belong in logs.
func Internal(c *gin.Context) {
	Error(c, 500, "INTERNAL_ERROR", "Internal Server Error")
}
