package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "jobdesk/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小（简历上传走 multipart，16MB 足够）
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				resp.Error(http.StatusRequestEntityTooLarge, "request body too large"))
		}
	}
}
