package middlewares

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AHMEDNABIB/react-reasturant-server/pkg/resp"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"
	"github.com/AHMEDNABIB/react-reasturant-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireToken ตรวจ Bearer token แล้วเก็บ email claim ลง context
func RequireToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c)
			c.Abort()
			return
		}

		// เก็บ email แบบ normalize แล้ว ให้ทุก ownership check เทียบรูปเดียวกัน
		c.Set("email", utils.NormalizeEmail(claims.Email))
		c.Next()
	}
}

// RequireAdmin เช็ค role จาก user record จริง ไม่เชื่อ claim ใน token
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := utils.CurrentEmail(c)
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				resp.Forbidden(c)
			} else {
				resp.ServerError(c, err)
			}
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			resp.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
