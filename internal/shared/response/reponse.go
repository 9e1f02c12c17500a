package response

import (
	"github.com/gin-gonic/gin"
)

// The wire contract uses flat bodies: records and arrays are written
// as-is, everything else is a {message} body (plus {message, url} for
// uploads).

type MessageBody struct {
	Message string `json:"message"`
}

type UploadBody struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{
		Message: message,
	})
}

func Upload(c *gin.Context, url string) {
	c.JSON(200, UploadBody{
		Message: "File uploaded successfully.",
		URL:     url,
	})
}
