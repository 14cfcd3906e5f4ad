package response

import "github.com/gin-gonic/gin"

// Success writes the {success:true, ...payload} envelope. Payload keys
// sit next to the success flag, matching what the frontend consumes.
func Success(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
