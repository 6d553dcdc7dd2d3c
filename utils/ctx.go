package utils

import "github.com/gin-gonic/gin"

// CurrentEmail อ่าน email ที่ middleware ใส่ไว้ใน context
func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
