package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware caps request bodies, except on upload routes which have their own limit.
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/upload") || strings.HasSuffix(path, "/avatar") {
			c.Next()
			return
		}

		maxSizeMB := appService.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware caps upload and avatar bodies at the max upload size plus 1MB
// for the multipart envelope.
func UploadBodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := appService.GetInt(consts.ConfigMaxUploadSize)
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file must not exceed %dMB", maxSizeMB)})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
